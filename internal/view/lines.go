package view

import (
	"fmt"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/options"
)

// Kind identifies which of the three screens a snapshot is drawn as
type Kind int

const (
	KindMenu Kind = iota
	KindOptions
	KindEdit
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindOptions:
		return "options"
	case KindEdit:
		return "edit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the screen for a snapshot. The screen depends only on the
// state after the step.
func KindOf(snap fsm.Snapshot) Kind {
	switch {
	case snap.State == fsm.StateOptionEdit && snap.Group != nil:
		return KindEdit
	case snap.State == fsm.StateOptionNav && snap.Group != nil:
		return KindOptions
	default:
		return KindMenu
	}
}

const (
	menuTitle    = "=== MENU ==="
	optionsTitle = "=== OPTIONS ==="
	menuCursor   = " > "
	menuPadding  = "   "
	navMarker    = "--"
)

// Lines renders a snapshot as plain text lines
func Lines(snap fsm.Snapshot) []string {
	switch KindOf(snap) {
	case KindEdit:
		return EditLines(snap.Group, snap.HIndex)
	case KindOptions:
		return OptionLines(snap.Group, snap.HIndex)
	default:
		return MenuLines(snap.MenuLabels, snap.VIndex)
	}
}

// MenuLines lists the menu with " > " in front of the item under the cursor.
func MenuLines(labels []string, cursor int) []string {
	lines := make([]string, 0, len(labels)+2)
	lines = append(lines, "", menuTitle)
	for i, label := range labels {
		if i == cursor {
			lines = append(lines, menuCursor+label)
		} else {
			lines = append(lines, menuPadding+label)
		}
	}
	return lines
}

// OptionLines shows the group's values with "--" under the value at cursor.
func OptionLines(g *options.Group, cursor int) []string {
	return []string{
		"",
		optionsTitle,
		g.String(),
		indent.String(navMarker, uint(ValueColumn(g, cursor))),
	}
}

// EditLines shows the group's values with the value being edited repeated in
// brackets beneath itself.
func EditLines(g *options.Group, cursor int) []string {
	col := ValueColumn(g, cursor) - 1
	if col < 0 {
		col = 0
	}
	marker := fmt.Sprintf("[%02d]", g.Item(cursor).Value())
	return []string{
		"",
		optionsTitle,
		g.String(),
		indent.String(marker, uint(col)),
	}
}

// ValueColumn returns the display column where value i starts in
// g.String().
func ValueColumn(g *options.Group, i int) int {
	col := ansi.PrintableRuneWidth(g.Label())
	sepWidth := ansi.PrintableRuneWidth(string(g.Separator()))
	for j := 0; j < i && j < g.Len(); j++ {
		col += len(fmt.Sprintf("%02d", g.Item(j).Value())) + sepWidth
	}
	return col
}
