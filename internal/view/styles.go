package view

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, borders, cursor
	SuccessColor = lipgloss.Color("#43BF6D") // Green - value being edited
	WarningColor = lipgloss.Color("#FFA500") // Orange - value at a bound
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 72 // Maximum content width before capping
)

// Shared styles
var (
	// TitleStyle is for the screen title ("MENU", "TIME")
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(1)

	// MenuItemStyle is for menu entries not under the cursor
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(3)

	// SelectedMenuItemStyle is for the menu entry under the cursor
	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(1)

	// ValueStyle is for option values not under the cursor
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// CursorValueStyle is for the value under the cursor while navigating
	CursorValueStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Underline(true)

	// EditValueStyle is for the value being edited
	EditValueStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true).
			Reverse(true)

	// SeparatorStyle is for the glyph between values
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HintStyle is for the field name/range line
	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// BoundHintStyle is used for the hint when the value sits on a bound
	BoundHintStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Italic(true)
)

// Cursor marker shown in front of the selected menu entry
const CursorMarker = "▸ "

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// BoxStyle returns the rounded border around a screen
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, 1)
}
