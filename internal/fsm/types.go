package fsm

import "fmt"

// State is the menu controller's current mode
type State int

const (
	// StateMenuNav moves the cursor over the menu items (initial state)
	StateMenuNav State = iota
	// StateOptionNav moves the cursor over the fields of the active group
	StateOptionNav
	// StateOptionEdit changes the value of the field under the cursor
	StateOptionEdit

	stateCount
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateMenuNav:
		return "MenuNav"
	case StateOptionNav:
		return "OptionNav"
	case StateOptionEdit:
		return "OptionEdit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Button is a canonical input event. Raw keys that don't map to a button
// never reach the machine.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonSelect
	ButtonEsc

	buttonCount
)

// Buttons lists every button in table order
var Buttons = []Button{ButtonUp, ButtonDown, ButtonSelect, ButtonEsc}

// String returns a human-readable name for the button
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonSelect:
		return "Select"
	case ButtonEsc:
		return "Esc"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Valid reports whether b is one of the four canonical buttons
func (b Button) Valid() bool {
	return b >= 0 && b < buttonCount
}

// Effect is the side effect executed during a step, before the state changes
type Effect int

const (
	EffectMenuUp Effect = iota
	EffectMenuDown
	EffectActivate
	EffectTerminate
	EffectOptionLeft
	EffectOptionRight
	EffectEnterEdit
	EffectReturnToMenu
	EffectIncrement
	EffectDecrement
	EffectLeaveEdit
)

// String returns a human-readable name for the effect
func (e Effect) String() string {
	switch e {
	case EffectMenuUp:
		return "MenuUp"
	case EffectMenuDown:
		return "MenuDown"
	case EffectActivate:
		return "Activate"
	case EffectTerminate:
		return "Terminate"
	case EffectOptionLeft:
		return "OptionLeft"
	case EffectOptionRight:
		return "OptionRight"
	case EffectEnterEdit:
		return "EnterEdit"
	case EffectReturnToMenu:
		return "ReturnToMenu"
	case EffectIncrement:
		return "Increment"
	case EffectDecrement:
		return "Decrement"
	case EffectLeaveEdit:
		return "LeaveEdit"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Outcome tells the run loop whether to keep reading input
type Outcome int

const (
	// Continue means the step completed and the loop should render and read again
	Continue Outcome = iota
	// Terminate means the user asked to leave; the loop must stop without
	// processing further input
	Terminate
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Terminate:
		return "Terminate"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
