package output

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	timeout time.Duration
	enabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithTimeout sets the spinner timeout.
func WithTimeout(timeout time.Duration) SpinnerOption {
	return func(c *spinnerConfig) {
		c.timeout = timeout
	}
}

// WithEnabled turns the animation off when enabled is false.
// The action still runs.
func WithEnabled(enabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.enabled = enabled
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any. Without a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title:   "Working...",
		enabled: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.enabled || !IsTTY() {
		return action()
	}

	actionCtx := ctx
	var cancel context.CancelFunc
	if cfg.timeout > 0 {
		actionCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- action()
	}()

	var actionErr error
	done := false

	s := spinner.New().Title(cfg.title)

	spinnerErr := s.Action(func() {
		select {
		case <-actionCtx.Done():
		case actionErr = <-errCh:
			done = true
		}
	}).Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	if done {
		return actionErr
	}

	select {
	case err := <-errCh:
		return err
	case <-actionCtx.Done():
		return actionCtx.Err()
	}
}
