package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage rdt configuration",
		Long: `Manage the rdt configuration file.

The config path is resolved using precedence:
  --config flag > RDT_CONFIG env > ~/.rdt/config.yaml`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigVetCmd(g))

	return c
}
