// Package vcs initializes version control in generated projects.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rdt-dev/rdt/internal/output"
)

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit from RDT"

// ErrGitNotFound is returned when no git binary is on PATH.
var ErrGitNotFound = errors.New("git binary not found in PATH")

// CommandError is a git invocation that exited unsuccessfully.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + firstLine(out)
	}
	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// InitRepository creates a git repository in dir and commits every file in it.
func InitRepository(ctx context.Context, dir string) error {
	git, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}

	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", InitialCommitMessage},
	}
	for _, args := range steps {
		if err := run(ctx, git, dir, args); err != nil {
			return err
		}
	}
	output.Debug("initialized git repository", "dir", dir)
	return nil
}

func run(ctx context.Context, git, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, git, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return &CommandError{Args: args, Output: out.String(), Err: err}
	}
	return nil
}
