package fsm

// Transition is one cell of the transition table
type Transition struct {
	Effect Effect
	Next   State
}

// table maps every (state, button) pair to an effect and the next state.
// In OptionEdit, Select and Esc are deliberately identical: edits are applied
// in place, so leaving edit mode has nothing to commit or discard.
var table = [stateCount][buttonCount]Transition{
	StateMenuNav: {
		ButtonUp:     {EffectMenuUp, StateMenuNav},
		ButtonDown:   {EffectMenuDown, StateMenuNav},
		ButtonSelect: {EffectActivate, StateOptionNav},
		ButtonEsc:    {EffectTerminate, StateMenuNav},
	},
	StateOptionNav: {
		ButtonUp:     {EffectOptionLeft, StateOptionNav},
		ButtonDown:   {EffectOptionRight, StateOptionNav},
		ButtonSelect: {EffectEnterEdit, StateOptionEdit},
		ButtonEsc:    {EffectReturnToMenu, StateMenuNav},
	},
	StateOptionEdit: {
		ButtonUp:     {EffectIncrement, StateOptionEdit},
		ButtonDown:   {EffectDecrement, StateOptionEdit},
		ButtonSelect: {EffectLeaveEdit, StateOptionNav},
		ButtonEsc:    {EffectLeaveEdit, StateOptionNav},
	},
}

// Lookup returns the table entry for a state and button. ok is false if
// either is out of range.
func Lookup(s State, b Button) (t Transition, ok bool) {
	if s < 0 || s >= stateCount || !b.Valid() {
		return Transition{}, false
	}
	return table[s][b], true
}
