package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/generator"
	"github.com/rdt-dev/rdt/internal/output"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check that a directory looks like a generated project",
		Long: `Check that a directory looks like a generated project.

Checks the requirement manifest, README.md, .gitignore, .env.example,
pyproject.toml and the src/ directory, and detects the framework from its
entry point. Exits non-zero when anything is missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runValidate(cmd, args[0]))
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	in, err := generator.Inspect(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range in.Checks {
		if c.Present {
			fmt.Fprintln(out, output.FormatVetCheck(c.Item, "found"))
		} else {
			fmt.Fprintln(out, output.FormatVetFailure(c.Item, "missing"))
		}
	}
	if in.Framework != "" {
		fmt.Fprintln(out, output.FormatVetCheck("framework", string(in.Framework)))
	} else {
		fmt.Fprintln(out, output.FormatVetFailure("framework", "no entry point found"))
	}

	if !in.Valid() {
		return &ExitError{
			Err:     oerrors.Wrap(oerrors.ErrValidation, "missing "+strings.Join(in.Missing(), ", ")),
			Code:    ExitValidationError,
		}
	}
	fmt.Fprintln(out, output.FormatCheckmark("Project structure is valid: "+output.StyleNoun.Render(path)))
	return nil
}
