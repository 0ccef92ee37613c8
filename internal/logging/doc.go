// Package logging provides structured logging for menufsm.
//
// This package wraps zap logger with convenience functions for the few
// events worth recording: machine steps, menu activations, option edits and
// termination.
//
// # Log Levels
//
//   - Debug: every FSM step and option value change
//   - Info: menu activations, termination
//   - Warn: ignored input, unusual configuration
//   - Error: terminal or configuration failures
//
// # Configuration
//
// Logging is silent unless MENUFSM_LOG_LEVEL is set (or --log-level is
// passed). Output goes to stderr, or to the file named by MENUFSM_LOG_FILE,
// so it never interleaves with the menu drawn on stdout:
//
//	MENUFSM_LOG_LEVEL=debug MENUFSM_LOG_FILE=/tmp/menufsm.log menufsm
//
// Initialize once at startup:
//
//	if err := logging.Initialize(levelFlag); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
