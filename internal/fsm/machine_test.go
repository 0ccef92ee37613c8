package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/menufsm/internal/options"
)

func newTestMachine(t *testing.T) (*Machine, *options.Registry) {
	t.Helper()
	reg := options.DefaultRegistry()
	m, err := NewMachine(NewMenu(reg, ""))
	require.NoError(t, err)
	return m, reg
}

func press(m *Machine, buttons ...Button) Outcome {
	out := Continue
	for _, b := range buttons {
		out = m.Step(b)
		if out == Terminate {
			return out
		}
	}
	return out
}

func repeat(b Button, n int) []Button {
	out := make([]Button, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestNewMachine(t *testing.T) {
	m, _ := newTestMachine(t)

	assert.Equal(t, StateMenuNav, m.State())
	assert.Equal(t, 0, m.VIndex())
	assert.Equal(t, 0, m.HIndex())
	assert.Nil(t, m.Active())
	require.Len(t, m.Menu(), 3)
	assert.Equal(t, "Set Clock", m.Menu()[0].Label)
	assert.Equal(t, "Set Date", m.Menu()[1].Label)
	assert.Equal(t, "Exit", m.Menu()[2].Label)
}

func TestNewMachineValidation(t *testing.T) {
	tests := []struct {
		name string
		menu []MenuItem
	}{
		{"empty menu", nil},
		{"nil action", []MenuItem{{Label: "Broken"}}},
		{"nil group", []MenuItem{{Label: "Broken", Action: BindGroup{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMachine(tt.menu)
			assert.Error(t, err)
		})
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m, _ := newTestMachine(t)

	press(m, ButtonUp, ButtonUp)
	assert.Equal(t, 0, m.VIndex(), "Up at 0 must not move")

	press(m, repeat(ButtonDown, 10)...)
	assert.Equal(t, 2, m.VIndex(), "Down must stop at the last item")
	assert.Equal(t, StateMenuNav, m.State())

	press(m, ButtonUp)
	assert.Equal(t, 1, m.VIndex())
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m, _ := newTestMachine(t)
	sequence := []Button{
		ButtonDown, ButtonUp, ButtonUp, ButtonDown, ButtonDown, ButtonDown,
		ButtonDown, ButtonUp, ButtonDown, ButtonUp, ButtonUp, ButtonUp,
	}

	for i, b := range sequence {
		m.Step(b)
		assert.GreaterOrEqual(t, m.VIndex(), 0, "step %d", i)
		assert.LessOrEqual(t, m.VIndex(), len(m.Menu())-1, "step %d", i)
	}
}

func TestOptionCursorClamps(t *testing.T) {
	m, _ := newTestMachine(t)

	press(m, ButtonSelect)
	require.Equal(t, StateOptionNav, m.State())

	press(m, ButtonUp)
	assert.Equal(t, 0, m.HIndex(), "left at 0 must not move")

	press(m, repeat(ButtonDown, 7)...)
	assert.Equal(t, 2, m.HIndex(), "right must stop at the last field")
	assert.Equal(t, StateOptionNav, m.State())
}

func TestEditClampsValue(t *testing.T) {
	m, reg := newTestMachine(t)
	hours := reg.Get("clock").Item(0)

	press(m, ButtonSelect, ButtonSelect)
	require.Equal(t, StateOptionEdit, m.State())

	press(m, repeat(ButtonUp, 20)...)
	assert.Equal(t, uint8(23), hours.Value())

	press(m, repeat(ButtonDown, 40)...)
	assert.Equal(t, uint8(0), hours.Value())
	assert.Equal(t, StateOptionEdit, m.State())
}

func TestEditValueStaysInRange(t *testing.T) {
	m, reg := newTestMachine(t)
	press(m, ButtonDown, ButtonSelect) // Set Date
	press(m, ButtonDown, ButtonSelect) // month

	month := reg.Get("date").Item(1)
	sequence := append(repeat(ButtonUp, 15), repeat(ButtonDown, 30)...)
	for _, b := range sequence {
		m.Step(b)
		assert.GreaterOrEqual(t, month.Value(), month.Min())
		assert.LessOrEqual(t, month.Value(), month.Max())
	}
	assert.Equal(t, uint8(1), month.Value())
}

func TestSelectingDateRebindsAndResetsCursor(t *testing.T) {
	m, reg := newTestMachine(t)

	press(m, ButtonSelect)
	require.Same(t, reg.Get("clock"), m.Active())
	press(m, ButtonDown, ButtonDown)
	require.Equal(t, 2, m.HIndex())

	press(m, ButtonEsc)
	require.Equal(t, StateMenuNav, m.State())
	press(m, ButtonDown, ButtonSelect)

	assert.Same(t, reg.Get("date"), m.Active())
	assert.Equal(t, 0, m.HIndex())
	assert.Equal(t, StateOptionNav, m.State())
}

func TestEscFromMenuTerminates(t *testing.T) {
	m, _ := newTestMachine(t)
	press(m, ButtonDown)

	assert.Equal(t, Terminate, m.Step(ButtonEsc))
	assert.Equal(t, StateMenuNav, m.State())
	assert.Equal(t, 1, m.VIndex())
}

func TestEscFromOptionNavReturnsToMenu(t *testing.T) {
	m, _ := newTestMachine(t)
	press(m, ButtonDown, ButtonSelect)
	require.Equal(t, StateOptionNav, m.State())

	assert.Equal(t, Continue, m.Step(ButtonEsc))
	assert.Equal(t, StateMenuNav, m.State())
	assert.Equal(t, 1, m.VIndex(), "menu cursor must be preserved")

	// Next Esc leaves the program rather than re-entering edit mode
	assert.Equal(t, Terminate, m.Step(ButtonEsc))
}

func TestSelectAndEscLeaveEditIdentically(t *testing.T) {
	for _, b := range []Button{ButtonSelect, ButtonEsc} {
		t.Run(b.String(), func(t *testing.T) {
			m, reg := newTestMachine(t)
			press(m, ButtonSelect, ButtonDown, ButtonSelect, ButtonUp, ButtonUp)
			require.Equal(t, StateOptionEdit, m.State())

			assert.Equal(t, Continue, m.Step(b))
			assert.Equal(t, StateOptionNav, m.State())
			assert.Equal(t, 1, m.HIndex())
			assert.Equal(t, uint8(2), reg.Get("clock").Item(1).Value(), "edits are kept in place")
		})
	}
}

func TestExitItemTerminates(t *testing.T) {
	m, _ := newTestMachine(t)

	assert.Equal(t, Continue, press(m, ButtonDown, ButtonDown))
	assert.Equal(t, 2, m.VIndex())
	assert.Equal(t, Terminate, m.Step(ButtonSelect))
	assert.Equal(t, StateMenuNav, m.State())
}

func TestClockEditScenario(t *testing.T) {
	m, reg := newTestMachine(t)
	clock := reg.Get("clock")

	press(m, ButtonSelect)
	press(m, ButtonSelect)
	require.Equal(t, StateOptionEdit, m.State())
	require.Equal(t, 0, m.HIndex())

	press(m, repeat(ButtonUp, 15)...)
	assert.Equal(t, uint8(23), clock.Item(0).Value())

	press(m, ButtonEsc)
	assert.Equal(t, StateOptionNav, m.State())
	assert.Equal(t, 0, m.HIndex())
	assert.Equal(t, []uint8{23, 0, 0}, clock.Values())
}

func TestInvalidButtonIsIgnored(t *testing.T) {
	m, _ := newTestMachine(t)

	assert.Equal(t, Continue, m.Step(Button(42)))
	assert.Equal(t, StateMenuNav, m.State())
	assert.Equal(t, 0, m.VIndex())
}

func TestSnapshot(t *testing.T) {
	m, reg := newTestMachine(t)
	press(m, ButtonSelect, ButtonDown)

	snap := m.Snapshot()
	assert.Equal(t, StateOptionNav, snap.State)
	assert.Equal(t, []string{"Set Clock", "Set Date", "Exit"}, snap.MenuLabels)
	assert.Equal(t, 0, snap.VIndex)
	assert.Equal(t, 1, snap.HIndex)
	assert.Same(t, reg.Get("clock"), snap.Group)
}
