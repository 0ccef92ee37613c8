// Package tui implements the full-screen terminal front end for the settings
// menu.
//
// It is an alternative to the raw-terminal loop in package runner: the same
// fsm.Machine is driven from Bubble Tea key messages instead of bytes read
// from stdin. Each key is mapped through input.Mapper; unbound keys are
// dropped, bound keys become exactly one Machine.Step. When the machine
// reports Terminate the program quits without drawing another frame.
//
// # Screens
//
// The screen is chosen from the machine state after each step:
//   - MenuNav: menu list with a cursor marker
//   - OptionNav: the active group's values with the cursor value underlined
//   - OptionEdit: the active group's values with the edited value highlighted
//
// A bubbles/help footer shows what the four buttons do in the current state.
//
// # Usage Example
//
//	machine, _ := fsm.NewMachine(settings.Menu)
//	if err := tui.Run(machine, settings.Mapper); err != nil {
//	    return err
//	}
package tui
