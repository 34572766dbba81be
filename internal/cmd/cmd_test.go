package cmd

import (
	"bytes"
	"testing"

	"github.com/rdt-dev/rdt/internal/testutil"
)

// execute runs the root command with args in an isolated environment and
// returns everything written to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateEnv(t)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	return ExitCodeFromError(err)
}
