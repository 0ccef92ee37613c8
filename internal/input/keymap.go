package input

import (
	"fmt"
	"strings"

	"github.com/muurk/menufsm/internal/fsm"
)

// KeyMap lists the key tokens bound to each button. Single characters are
// matched case-insensitively; named keys use the token names produced by
// Source and Bubble Tea ("up", "down", "left", "right", "enter", "esc").
// The space bar may be written as " " or "space".
type KeyMap struct {
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Select []string `yaml:"select"`
	Esc    []string `yaml:"esc"`
}

// DefaultKeyMap binds Q/W/E/R plus the arrow keys, Enter and Esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     []string{"q", "up", "left"},
		Down:   []string{"w", "down", "right"},
		Select: []string{"e", "enter"},
		Esc:    []string{"r", "esc"},
	}
}

// Keys returns the tokens bound to a button
func (k KeyMap) Keys(b fsm.Button) []string {
	switch b {
	case fsm.ButtonUp:
		return k.Up
	case fsm.ButtonDown:
		return k.Down
	case fsm.ButtonSelect:
		return k.Select
	case fsm.ButtonEsc:
		return k.Esc
	default:
		return nil
	}
}

// Mapper turns raw key tokens into buttons
type Mapper struct {
	keys   map[string]fsm.Button
	keyMap KeyMap
}

// NewMapper validates a key map and builds a mapper from it. Every button
// needs at least one key and no key may be bound twice.
func NewMapper(km KeyMap) (*Mapper, error) {
	m := &Mapper{
		keys:   make(map[string]fsm.Button),
		keyMap: km,
	}

	for _, b := range fsm.Buttons {
		keys := km.Keys(b)
		if len(keys) == 0 {
			return nil, fmt.Errorf("no key bound to %s", b)
		}
		for _, key := range keys {
			token := normalize(key)
			if token == "" {
				return nil, fmt.Errorf("empty key bound to %s", b)
			}
			if other, exists := m.keys[token]; exists {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, other, b)
			}
			m.keys[token] = b
		}
	}

	return m, nil
}

// KeyMap returns the key map the mapper was built from
func (m *Mapper) KeyMap() KeyMap {
	return m.keyMap
}

// Map returns the button for a token. ok is false for unbound tokens, which
// must be dropped before reaching the machine.
func (m *Mapper) Map(token string) (b fsm.Button, ok bool) {
	b, ok = m.keys[normalize(token)]
	return b, ok
}

// normalize lowercases a token. Whitespace is significant: " " is the space
// bar, not an empty key.
func normalize(token string) string {
	if token == " " {
		return TokenSpace
	}
	return strings.ToLower(token)
}
