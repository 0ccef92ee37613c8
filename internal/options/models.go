package options

import (
	"fmt"
	"strings"
)

// Item is a single bounded numeric field. Min and Max are fixed at
// construction; Value only ever moves by one step and never leaves [Min, Max].
type Item struct {
	name  string
	value uint8
	min   uint8
	max   uint8
}

// NewItem creates an item, rejecting bounds that are inverted or an initial
// value outside them.
func NewItem(name string, value, min, max uint8) (*Item, error) {
	if name == "" {
		return nil, NewValidationError("", "option name cannot be empty")
	}
	if min > max {
		return nil, NewValidationError(name, fmt.Sprintf("min %d is greater than max %d", min, max))
	}
	if value < min || value > max {
		return nil, NewValidationError(name, fmt.Sprintf("value %d outside range %d-%d", value, min, max))
	}
	return &Item{name: name, value: value, min: min, max: max}, nil
}

// MustItem is like NewItem but panics on invalid input. Only use it for
// compiled-in definitions.
func MustItem(name string, value, min, max uint8) *Item {
	item, err := NewItem(name, value, min, max)
	if err != nil {
		panic(err)
	}
	return item
}

func (i *Item) Name() string { return i.name }
func (i *Item) Value() uint8 { return i.value }
func (i *Item) Min() uint8   { return i.min }
func (i *Item) Max() uint8   { return i.max }

// Increment raises the value by one unless it is already at Max.
// Returns true if the value changed.
func (i *Item) Increment() bool {
	if i.value < i.max {
		i.value++
		return true
	}
	return false
}

// Decrement lowers the value by one unless it is already at Min.
// Returns true if the value changed.
func (i *Item) Decrement() bool {
	if i.value > i.min {
		i.value--
		return true
	}
	return false
}

// Group is an ordered, fixed-length set of items edited together, e.g. the
// hours/minutes/seconds of a clock.
type Group struct {
	name      string
	menuLabel string
	label     string
	separator rune
	items     []*Item
}

// NewGroup creates a group. Label is printed in front of the joined values
// ("Time: ") and menuLabel is the text of the menu entry that selects it.
func NewGroup(name, menuLabel, label string, separator rune, items ...*Item) (*Group, error) {
	if name == "" {
		return nil, NewValidationError("", "group name cannot be empty")
	}
	if len(items) == 0 {
		return nil, NewValidationError(name, "group must have at least one option")
	}
	if separator == 0 {
		return nil, NewValidationError(name, "separator cannot be empty")
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item == nil {
			return nil, NewValidationError(name, "nil option")
		}
		if seen[item.name] {
			return nil, NewValidationError(name+"."+item.name, "duplicate option name")
		}
		seen[item.name] = true
	}

	if menuLabel == "" {
		menuLabel = name
	}

	return &Group{
		name:      name,
		menuLabel: menuLabel,
		label:     label,
		separator: separator,
		items:     append([]*Item(nil), items...),
	}, nil
}

func (g *Group) Name() string      { return g.name }
func (g *Group) MenuLabel() string { return g.menuLabel }
func (g *Group) Label() string     { return g.label }
func (g *Group) Separator() rune   { return g.separator }

// Len returns the number of items in the group
func (g *Group) Len() int { return len(g.items) }

// Item returns the item at index i
func (g *Group) Item(i int) *Item { return g.items[i] }

// Values returns a copy of the current values in order
func (g *Group) Values() []uint8 {
	values := make([]uint8, len(g.items))
	for i, item := range g.items {
		values[i] = item.value
	}
	return values
}

// Format joins the values as two-digit numbers separated by the group's
// separator, e.g. "12:00:00".
func (g *Group) Format() string {
	parts := make([]string, len(g.items))
	for i, item := range g.items {
		parts[i] = fmt.Sprintf("%02d", item.value)
	}
	return strings.Join(parts, string(g.separator))
}

// String returns the label followed by the formatted values
func (g *Group) String() string {
	return g.label + g.Format()
}
