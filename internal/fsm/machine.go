package fsm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/menufsm/internal/logging"
	"github.com/muurk/menufsm/internal/options"
)

// Machine owns all controller state: the current state, the two cursors and
// the active option set. It is not safe for concurrent use; a single loop
// drives it.
type Machine struct {
	state  State
	menu   []MenuItem
	vIndex int
	hIndex int
	active *options.Group
}

// NewMachine creates a machine in StateMenuNav with the cursor on the first
// menu item and no active option set.
func NewMachine(menu []MenuItem) (*Machine, error) {
	if len(menu) == 0 {
		return nil, fmt.Errorf("menu must have at least one item")
	}
	for i, item := range menu {
		switch a := item.Action.(type) {
		case nil:
			return nil, fmt.Errorf("menu item %d (%q) has no action", i, item.Label)
		case BindGroup:
			if a.Group == nil {
				return nil, fmt.Errorf("menu item %d (%q) binds a nil group", i, item.Label)
			}
		}
	}

	items := make([]MenuItem, len(menu))
	copy(items, menu)
	return &Machine{state: StateMenuNav, menu: items}, nil
}

// State returns the current state
func (m *Machine) State() State { return m.state }

// VIndex returns the menu cursor
func (m *Machine) VIndex() int { return m.vIndex }

// HIndex returns the field cursor within the active group
func (m *Machine) HIndex() int { return m.hIndex }

// Active returns the active option set, or nil before any group was selected
func (m *Machine) Active() *options.Group { return m.active }

// Menu returns the menu items
func (m *Machine) Menu() []MenuItem { return m.menu }

// Step applies one button press: it runs the table effect for the current
// state and then moves to the table's next state. If the effect asks to
// terminate, the state is left unchanged and Terminate is returned.
func (m *Machine) Step(b Button) Outcome {
	t, ok := Lookup(m.state, b)
	if !ok {
		logging.Warn("Ignoring invalid button",
			zap.Int("button", int(b)),
			zap.String("state", m.state.String()),
		)
		return Continue
	}

	from := m.state
	if m.apply(t.Effect) == Terminate {
		logging.LogTransition(from.String(), b.String(), t.Effect.String(), "terminate")
		return Terminate
	}
	m.state = t.Next
	logging.LogTransition(from.String(), b.String(), t.Effect.String(), m.state.String())
	return Continue
}

func (m *Machine) apply(e Effect) Outcome {
	switch e {
	case EffectMenuUp:
		if m.vIndex > 0 {
			m.vIndex--
		}
	case EffectMenuDown:
		if m.vIndex < len(m.menu)-1 {
			m.vIndex++
		}
	case EffectActivate:
		item := m.menu[m.vIndex]
		logging.LogActivation(m.vIndex, item.Label)
		return item.Action.activate(m)
	case EffectTerminate:
		return Terminate
	case EffectOptionLeft:
		if m.hIndex > 0 {
			m.hIndex--
		}
	case EffectOptionRight:
		if m.active != nil && m.hIndex < m.active.Len()-1 {
			m.hIndex++
		}
	case EffectIncrement:
		if item := m.current(); item != nil && item.Increment() {
			logging.LogValueChange(m.active.Name(), item.Name(), item.Value())
		}
	case EffectDecrement:
		if item := m.current(); item != nil && item.Decrement() {
			logging.LogValueChange(m.active.Name(), item.Name(), item.Value())
		}
	case EffectEnterEdit, EffectLeaveEdit, EffectReturnToMenu:
		// Pure state changes
	}
	return Continue
}

func (m *Machine) current() *options.Item {
	if m.active == nil {
		return nil
	}
	return m.active.Item(m.hIndex)
}

// Snapshot is a read-only view of the machine after a step, handed to
// renderers.
type Snapshot struct {
	State      State
	MenuLabels []string
	VIndex     int
	Group      *options.Group
	HIndex     int
}

// Snapshot captures the current state for rendering
func (m *Machine) Snapshot() Snapshot {
	labels := make([]string, len(m.menu))
	for i, item := range m.menu {
		labels[i] = item.Label
	}
	return Snapshot{
		State:      m.state,
		MenuLabels: labels,
		VIndex:     m.vIndex,
		Group:      m.active,
		HIndex:     m.hIndex,
	}
}
