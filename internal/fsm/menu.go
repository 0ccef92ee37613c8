package fsm

import (
	"github.com/muurk/menufsm/internal/options"
)

// Action is what a menu item does when selected. The set of actions is
// closed: BindGroup and Exit.
type Action interface {
	activate(m *Machine) Outcome
}

// BindGroup makes Group the active option set and resets the field cursor.
type BindGroup struct {
	Group *options.Group
}

func (a BindGroup) activate(m *Machine) Outcome {
	m.active = a.Group
	m.hIndex = 0
	return Continue
}

// Exit ends the program.
type Exit struct{}

func (Exit) activate(*Machine) Outcome {
	return Terminate
}

// MenuItem is one entry of the top-level menu
type MenuItem struct {
	Label  string
	Action Action
}

// DefaultExitLabel is the label of the exit entry when none is configured
const DefaultExitLabel = "Exit"

// NewMenu builds the menu for a registry: one entry per group, in order,
// followed by the exit entry.
func NewMenu(reg *options.Registry, exitLabel string) []MenuItem {
	if exitLabel == "" {
		exitLabel = DefaultExitLabel
	}

	groups := reg.Groups()
	menu := make([]MenuItem, 0, len(groups)+1)
	for _, g := range groups {
		menu = append(menu, MenuItem{Label: g.MenuLabel(), Action: BindGroup{Group: g}})
	}
	return append(menu, MenuItem{Label: exitLabel, Action: Exit{}})
}
