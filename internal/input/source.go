package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupt is returned by Source.Next when Ctrl+C is read. In raw mode
// the terminal no longer turns Ctrl+C into a signal.
var ErrInterrupt = errors.New("interrupted")

// Named tokens produced by Source
const (
	TokenUp    = "up"
	TokenDown  = "down"
	TokenRight = "right"
	TokenLeft  = "left"
	TokenEnter = "enter"
	TokenEsc   = "esc"
	TokenSpace = "space"
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// Source reads key tokens from a byte stream, one per call.
//
// Printable characters are returned as-is. Carriage return becomes "enter",
// a lone ESC becomes "esc" and ANSI arrow sequences become "up", "down",
// "right" and "left". A line feed is returned unchanged so that line-buffered
// input ("q\n") does not turn into an extra Select.
type Source struct {
	r *bufio.Reader
}

// NewSource creates a source reading from r
func NewSource(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// Next blocks until one token is available
func (s *Source) Next() (string, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return "", err
	}

	switch ch {
	case keyCtrlC:
		return "", ErrInterrupt
	case '\r':
		return TokenEnter, nil
	case keyEscape:
		return s.readEscape()
	}
	return string(ch), nil
}

// readEscape distinguishes a bare ESC from a CSI/SS3 arrow sequence. Escape
// sequences arrive in a single read, so a bare ESC has nothing buffered
// behind it.
func (s *Source) readEscape() (string, error) {
	if s.r.Buffered() == 0 {
		return TokenEsc, nil
	}

	next, err := s.r.ReadByte()
	if err != nil {
		return TokenEsc, nil
	}
	if next != '[' && next != 'O' {
		// ESC followed by an ordinary key: keep the key for the next call
		_ = s.r.UnreadByte()
		return TokenEsc, nil
	}

	final, err := s.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch final {
	case 'A':
		return TokenUp, nil
	case 'B':
		return TokenDown, nil
	case 'C':
		return TokenRight, nil
	case 'D':
		return TokenLeft, nil
	}

	// Unknown sequence (function keys etc.): consume up to the final byte
	seq := []byte{keyEscape, next, final}
	for final < 0x40 || final > 0x7e {
		final, err = s.r.ReadByte()
		if err != nil {
			return "", err
		}
		seq = append(seq, final)
	}
	return string(seq), nil
}

// EnableRawMode puts f into raw mode if it is a terminal, so keys arrive
// without waiting for Enter. The returned function restores the previous
// mode. For non-terminals it does nothing.
func EnableRawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
