package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rdt-dev/rdt/internal/config"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/output"
)

const configHeader = "# rdt configuration\n# Flags override these values; RDT_* environment variables override the file.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is written to the resolved config path, ~/.rdt/config.yaml unless
--config or RDT_CONFIG says otherwise.

Examples:
  rdt config init
  rdt config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runConfigInit(cmd, g, force))
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(cmd *cobra.Command, g *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "already exists",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrExists,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.StyleNoun.Render(path)))
	return nil
}
