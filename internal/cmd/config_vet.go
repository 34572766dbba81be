package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/config"
	"github.com/rdt-dev/rdt/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against its schema.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Every field is known and holds an allowed value
  4. The default ORM works with the default framework

Examples:
  rdt config vet
  rdt config vet --config ./rdt.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runConfigVet(cmd, g))
		},
	}
}

func runConfigVet(cmd *cobra.Command, g *GlobalConfig) error {
	path, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	output.Debug("validating config", "path", path)

	v, err := config.NewValidator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = v.ValidateFile(path)

	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			fmt.Fprintln(out, output.FormatVetFailure(e.Field, e.Message))
		}
		return &ExitError{Err: err, Code: ExitValidationError, Printed: true}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, output.FormatVetCheck("Configuration is valid", path))
	return nil
}
