package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/options"
)

// Styled renders a snapshot as a bordered lipgloss box of the given width.
func Styled(snap fsm.Snapshot, width int) string {
	var body string
	switch KindOf(snap) {
	case KindEdit:
		body = styledOptions(snap.Group, snap.HIndex, true)
	case KindOptions:
		body = styledOptions(snap.Group, snap.HIndex, false)
	default:
		body = styledMenu(snap.MenuLabels, snap.VIndex)
	}
	return BoxStyle(width).Render(body)
}

func styledMenu(labels []string, cursor int) string {
	lines := []string{TitleStyle.Render("MENU"), ""}
	for i, label := range labels {
		if i == cursor {
			lines = append(lines, SelectedMenuItemStyle.Render(
				lipgloss.NewStyle().Foreground(PrimaryColor).Render(CursorMarker)+label))
		} else {
			lines = append(lines, MenuItemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

func styledOptions(g *options.Group, cursor int, editing bool) string {
	title := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(g.Label()), ":"))
	if title == "" {
		title = g.Name()
	}

	var values strings.Builder
	values.WriteString(g.Label())
	for i := 0; i < g.Len(); i++ {
		if i > 0 {
			values.WriteString(SeparatorStyle.Render(string(g.Separator())))
		}
		text := fmt.Sprintf("%02d", g.Item(i).Value())
		switch {
		case i == cursor && editing:
			values.WriteString(EditValueStyle.Render(text))
		case i == cursor:
			values.WriteString(CursorValueStyle.Render(text))
		default:
			values.WriteString(ValueStyle.Render(text))
		}
	}

	item := g.Item(cursor)
	hint := fmt.Sprintf("%s (%d-%d)", item.Name(), item.Min(), item.Max())
	hintStyle := HintStyle
	if editing && (item.Value() == item.Min() || item.Value() == item.Max()) {
		hintStyle = BoundHintStyle
	}

	return strings.Join([]string{
		TitleStyle.Render(strings.ToUpper(title)),
		"",
		" " + values.String(),
		" " + hintStyle.Render(hint),
	}, "\n")
}
