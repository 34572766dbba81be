package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported frameworks and their ORMs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := output.NewTable("Framework", "Compatible ORMs", "Async").Title("Supported Frameworks")
			for _, fw := range project.Frameworks() {
				info, _ := project.FrameworkInfo(fw)
				tbl.Row(string(fw), joinORMs(info.CompatibleORMs), output.FeatureMark(info.Async, "yes", "no"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

func joinORMs(orms []project.ORM) string {
	names := make([]string, len(orms))
	for i, o := range orms {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}
