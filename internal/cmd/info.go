package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <framework>",
		Short: "Show compatibility details for a framework",
		Long: `Show compatibility details for a framework.

Examples:
  rdt info FastAPI
  rdt info django-rest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fw, err := project.ParseFramework(args[0])
			if err != nil {
				return withExitCode(err)
			}
			info, _ := project.FrameworkInfo(fw)

			dbs := make([]string, len(info.Databases))
			for i, d := range info.Databases {
				dbs[i] = string(d)
			}
			incompatible := joinORMs(info.IncompatibleORMs)
			if incompatible == "" {
				incompatible = "none"
			}

			tbl := output.NewTable("Property", "Value").Title(output.StyleNoun.Render(string(fw)))
			tbl.Row("Compatible ORMs", joinORMs(info.CompatibleORMs))
			tbl.Row("Incompatible ORMs", incompatible)
			tbl.Row("Reason", info.Reason)
			tbl.Row("Databases", strings.Join(dbs, ", "))
			tbl.Row("Async", output.FeatureMark(info.Async, "yes", "no"))
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
