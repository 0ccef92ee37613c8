package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
	"github.com/muurk/menufsm/internal/logging"
	"github.com/muurk/menufsm/internal/view"
)

// AppModel drives an fsm.Machine from Bubble Tea key messages. Each mapped
// key is exactly one machine step; Bubble Tea redraws after every Update.
type AppModel struct {
	machine *fsm.Machine
	mapper  *input.Mapper
	keys    map[fsm.State]keyMap

	Help       help.Model
	Width      int
	Terminated bool
}

// NewAppModel creates a model for the machine using the mapper's key map
func NewAppModel(machine *fsm.Machine, mapper *input.Mapper) AppModel {
	return AppModel{
		machine: machine,
		mapper:  mapper,
		keys:    newKeyMaps(mapper.KeyMap()),
		Help:    help.New(),
		Width:   view.GetTerminalWidth(),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = clampWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			logging.LogTermination("interrupted")
			return m, tea.Quit
		}

		button, ok := m.mapper.Map(msg.String())
		if !ok {
			return m, nil
		}
		if m.machine.Step(button) == fsm.Terminate {
			logging.LogTermination("exit requested")
			m.Terminated = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the current screen with a help footer wrapped to the
// screen width
func (m AppModel) View() string {
	if m.Terminated {
		return ""
	}

	var b strings.Builder
	b.WriteString(view.Styled(m.machine.Snapshot(), m.Width))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(m.Help.View(m.keys[m.machine.State()]), m.Width))
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the user leaves the menu.
func Run(machine *fsm.Machine, mapper *input.Mapper) error {
	p := tea.NewProgram(NewAppModel(machine, mapper), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func clampWidth(width int) int {
	if width < view.MinTerminalWidth {
		return view.MinTerminalWidth
	}
	if width > view.MaxContentWidth {
		return view.MaxContentWidth
	}
	return width
}
