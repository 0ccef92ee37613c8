package runner

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
	"github.com/muurk/menufsm/internal/logging"
	"github.com/muurk/menufsm/internal/view"
)

// TokenSource supplies raw key tokens, blocking until one is available
type TokenSource interface {
	Next() (string, error)
}

// Config holds the collaborators of a run loop
type Config struct {
	Source   TokenSource   // Raw key tokens
	Mapper   *input.Mapper // Token to button mapping
	Machine  *fsm.Machine  // State machine to drive
	Renderer view.Renderer // Screen output
}

// Runner is the single-threaded control loop: read one token, map it, step
// the machine, render, repeat.
type Runner struct {
	config Config
	steps  int
}

// New creates a runner. All collaborators are required.
func New(config Config) (*Runner, error) {
	switch {
	case config.Source == nil:
		return nil, fmt.Errorf("runner: source is required")
	case config.Mapper == nil:
		return nil, fmt.Errorf("runner: mapper is required")
	case config.Machine == nil:
		return nil, fmt.Errorf("runner: machine is required")
	case config.Renderer == nil:
		return nil, fmt.Errorf("runner: renderer is required")
	}
	return &Runner{config: config}, nil
}

// Steps returns how many buttons were applied to the machine
func (r *Runner) Steps() int {
	return r.steps
}

// Run draws the initial screen and processes input until the machine asks
// to terminate or the input ends. Ctrl+C and end of input stop the loop
// without error. Nothing is drawn after termination.
func (r *Runner) Run() error {
	if err := r.render(); err != nil {
		return err
	}

	for {
		token, err := r.config.Source.Next()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				logging.LogTermination("end of input")
				return nil
			case errors.Is(err, input.ErrInterrupt):
				logging.LogTermination("interrupted")
				return nil
			default:
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		button, ok := r.config.Mapper.Map(token)
		if !ok {
			logging.Debug("Ignoring unbound key", zap.String("token", token))
			continue
		}

		r.steps++
		if r.config.Machine.Step(button) == fsm.Terminate {
			logging.LogTermination("exit requested")
			return nil
		}

		if err := r.render(); err != nil {
			return err
		}
	}
}

func (r *Runner) render() error {
	if err := r.config.Renderer.Render(r.config.Machine.Snapshot()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}
