// Package config provides the menufsm configuration file.
//
// The configuration is a YAML file describing the menu: which option groups
// exist, their fields and bounds, the separator and label used to display
// them, the exit entry label, the key bindings and the renderer. It is read
// once at startup; values edited in the menu are never written back.
//
// # Configuration File Location
//
//   - $MENUFSM_CONFIG if set
//   - Linux: $XDG_CONFIG_HOME/menufsm/config.yaml or $HOME/.config/menufsm/config.yaml
//   - macOS: $HOME/.config/menufsm/config.yaml
//   - Windows: %LOCALAPPDATA%\menufsm\config.yaml
//
// A missing file at the default location means the built-in clock/date menu.
//
// # Validation
//
// File.Build checks every group and field before anything is shown: initial
// values must lie within [min, max], separators must be a single character
// and every button needs at least one key with no key bound twice. Errors
// are *options.ValidationError values naming the offending field.
//
// # Usage Example
//
//	settings, err := config.LoadSettings(flagPath)
//	if err != nil {
//	    return err
//	}
//	machine, err := fsm.NewMachine(settings.Menu)
package config
