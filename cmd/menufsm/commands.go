package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/menufsm/internal/config"
	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
	"github.com/muurk/menufsm/internal/logging"
	"github.com/muurk/menufsm/internal/options"
	"github.com/muurk/menufsm/internal/runner"
	"github.com/muurk/menufsm/internal/tui"
	"github.com/muurk/menufsm/internal/view"
)

// Command flags
var (
	rendererName string
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// runCmd runs the menu on the raw terminal
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the menu on the raw terminal",
	Long: `Run the settings menu reading single keys from stdin.

The terminal is switched to raw mode so keys take effect without Enter.
When stdin is not a terminal, keys are read from the stream as-is, which
makes the menu scriptable.`,
	Example: `  # Plain console screens
  menufsm run

  # Boxed, coloured screens
  menufsm run --renderer styled

  # Scripted: open Set Clock, edit hours, +3, leave
  printf 'eeqqqrr' | menufsm run`,
	RunE: runMenu,
}

func init() {
	runCmd.Flags().StringVar(&rendererName, "renderer", "", "Screen renderer (plain, styled); overrides the config file")
}

func runMenu(cmd *cobra.Command, args []string) error {
	settings, machine, err := loadMachine()
	if err != nil {
		return err
	}

	name := settings.Renderer
	if rendererName != "" {
		name = rendererName
	}

	rawTerminal := term.IsTerminal(int(os.Stdin.Fd()))
	renderer, err := view.NewRenderer(name, os.Stdout, rawTerminal)
	if err != nil {
		return err
	}

	restore, err := input.EnableRawMode(os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		_ = renderer.Close()
		if err := restore(); err != nil {
			logging.Warn("Failed to restore terminal", zap.Error(err))
		}
	}()

	r, err := runner.New(runner.Config{
		Source:   input.NewSource(os.Stdin),
		Mapper:   settings.Mapper,
		Machine:  machine,
		Renderer: renderer,
	})
	if err != nil {
		return err
	}

	logging.Info("Menu started",
		zap.String("renderer", name),
		zap.Bool("raw_terminal", rawTerminal),
	)
	err = r.Run()
	logging.Info("Menu stopped", zap.Int("steps", r.Steps()))
	logFinalValues(settings.Registry)
	return err
}

// tuiCmd runs the menu as a full-screen Bubble Tea program
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the menu as a full-screen TUI",
	Long: `Run the settings menu as a full-screen terminal UI with a help footer.

Uses the same key bindings and menu as 'menufsm run'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, machine, err := loadMachine()
		if err != nil {
			return err
		}
		err = tui.Run(machine, settings.Mapper)
		logFinalValues(settings.Registry)
		return err
	},
}

// loadMachine loads and validates the configuration and builds the machine.
// Configuration errors are fatal and reported before any screen is drawn.
func loadMachine() (*config.Settings, *fsm.Machine, error) {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return nil, nil, err
	}

	machine, err := fsm.NewMachine(settings.Menu)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid menu: %w", err)
	}
	return settings, machine, nil
}

// logFinalValues records the option values the session ended with
func logFinalValues(reg *options.Registry) {
	for _, g := range reg.Groups() {
		logging.Info("Final values",
			zap.String("group", g.Name()),
			zap.Uint8s("values", g.Values()),
		)
	}
}

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the built-in menu (clock, date, exit) and key bindings to the
configuration file so they can be customised.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if _, err := f.Build(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		data, err := f.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
