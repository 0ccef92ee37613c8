// Menufsm is a terminal settings menu driven by a finite-state machine.
//
// The menu lists option groups (a clock and a date by default) and an Exit
// entry. Four buttons navigate it: Up, Down, Select and Esc, bound by
// default to Q, W, E and R (plus the arrow keys, Enter and Esc).
//
// Usage:
//
//	menufsm [command] [flags]
//
// Running without arguments starts the menu on the raw terminal.
// See 'menufsm --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/menufsm/internal/logging"
	"github.com/muurk/menufsm/internal/version"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "menufsm",
	Short: "Terminal settings menu driven by a state machine",
	Long: `A terminal settings menu for editing bounded numeric options such as
a clock (hours/minutes/seconds) and a date (day/month/year).

Keys (default):
  Q / Up / Left      Up     (menu up, field left, value +1)
  W / Down / Right   Down   (menu down, field right, value -1)
  E / Enter          Select (open group, edit field, finish editing)
  R / Esc            Esc    (quit from menu, back to menu, finish editing)

If no command is specified, the menu runs directly on the terminal.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: $MENUFSM_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent if unset")

	rootCmd.AddCommand(versionCmd)
}

// setup loads .env and initializes logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return logging.Initialize(logLevel)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Banner("menufsm"))
	},
}
