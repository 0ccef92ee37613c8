// Package fsm implements the settings menu state machine.
//
// The machine has three states and four buttons. Every (state, button) pair
// has exactly one entry in a data table that names an effect and the next
// state; Machine.Step runs the effect and then moves to the next state:
//
//	State       Up            Down           Select               Esc
//	MenuNav     MenuUp        MenuDown       Activate  → OptionNav Terminate
//	OptionNav   OptionLeft    OptionRight    EnterEdit → OptionEdit ReturnToMenu → MenuNav
//	OptionEdit  Increment     Decrement      LeaveEdit → OptionNav  LeaveEdit → OptionNav
//
// Cursor moves and value edits clamp at their bounds and never wrap. Menu
// items carry an Action: BindGroup makes an option group the active set and
// resets the field cursor, Exit ends the program. Termination is reported to
// the caller as the Terminate outcome; the machine never exits the process.
//
// Usage:
//
//	reg := options.DefaultRegistry()
//	m, err := fsm.NewMachine(fsm.NewMenu(reg, ""))
//	if err != nil {
//	    return err
//	}
//	if m.Step(fsm.ButtonSelect) == fsm.Terminate {
//	    return nil
//	}
package fsm
