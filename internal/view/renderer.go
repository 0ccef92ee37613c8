package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/menufsm/internal/fsm"
)

// ANSI control sequences
const (
	ClearScreen = "\033[H\033[J"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// Renderer draws the screen for a snapshot. The run loop calls it after
// every step, before reading the next key.
type Renderer interface {
	Render(snap fsm.Snapshot) error
	// Close restores anything Render changed on the terminal
	Close() error
}

// Names accepted by NewRenderer
const (
	RendererPlain  = "plain"
	RendererStyled = "styled"
)

// NewRenderer creates a renderer by name. When crlf is set, lines end in
// "\r\n" as required by a terminal in raw mode.
func NewRenderer(name string, out io.Writer, crlf bool) (Renderer, error) {
	switch name {
	case "", RendererPlain:
		return NewPlainRenderer(out, crlf), nil
	case RendererStyled:
		return NewStyledRenderer(out, crlf, GetTerminalWidth()), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (expected %s or %s)", name, RendererPlain, RendererStyled)
	}
}

// PlainRenderer draws the classic console screens: cleared terminal, a
// "=== MENU ===" or "=== OPTIONS ===" header and ASCII cursor markers.
type PlainRenderer struct {
	out     io.Writer
	newline string
}

// NewPlainRenderer creates a plain renderer writing to out
func NewPlainRenderer(out io.Writer, crlf bool) *PlainRenderer {
	return &PlainRenderer{out: out, newline: lineEnding(crlf)}
}

// Render implements Renderer
func (r *PlainRenderer) Render(snap fsm.Snapshot) error {
	var b strings.Builder
	b.WriteString(ClearScreen)
	if KindOf(snap) == KindMenu {
		b.WriteString(HideCursor)
	}
	for _, line := range Lines(snap) {
		b.WriteString(line)
		b.WriteString(r.newline)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Close implements Renderer
func (r *PlainRenderer) Close() error {
	_, err := io.WriteString(r.out, ShowCursor)
	return err
}

// StyledRenderer draws the screens as lipgloss boxes
type StyledRenderer struct {
	out     io.Writer
	newline string
	width   int
}

// NewStyledRenderer creates a styled renderer for the given box width
func NewStyledRenderer(out io.Writer, crlf bool, width int) *StyledRenderer {
	return &StyledRenderer{out: out, newline: lineEnding(crlf), width: width}
}

// Render implements Renderer
func (r *StyledRenderer) Render(snap fsm.Snapshot) error {
	content := Styled(snap, r.width)
	if r.newline != "\n" {
		content = strings.ReplaceAll(content, "\n", r.newline)
	}
	_, err := io.WriteString(r.out, ClearScreen+HideCursor+content+r.newline)
	return err
}

// Close implements Renderer
func (r *StyledRenderer) Close() error {
	_, err := io.WriteString(r.out, ShowCursor)
	return err
}

func lineEnding(crlf bool) string {
	if crlf {
		return "\r\n"
	}
	return "\n"
}
