package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
)

// keyMap holds the bindings shown in the help footer. The same four buttons
// mean different things in each state, so the help text is per state.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Esc    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Esc}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Esc},
	}
}

var helpText = map[fsm.State][4]string{
	fsm.StateMenuNav:    {"up", "down", "open", "quit"},
	fsm.StateOptionNav:  {"left", "right", "edit", "back"},
	fsm.StateOptionEdit: {"increase", "decrease", "done", "done"},
}

// newKeyMaps builds one keyMap per state from the configured keys
func newKeyMaps(km input.KeyMap) map[fsm.State]keyMap {
	binding := func(b fsm.Button, desc string) key.Binding {
		keys := km.Keys(b)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	maps := make(map[fsm.State]keyMap, len(helpText))
	for state, text := range helpText {
		maps[state] = keyMap{
			Up:     binding(fsm.ButtonUp, text[0]),
			Down:   binding(fsm.ButtonDown, text[1]),
			Select: binding(fsm.ButtonSelect, text[2]),
			Esc:    binding(fsm.ButtonEsc, text[3]),
		}
	}
	return maps
}
