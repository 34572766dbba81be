package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/cmdutil"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/output"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd(g *GlobalConfig) *cobra.Command {
	var (
		pf         cmdutil.ProjectFlags
		formatFlag string
	)

	c := &cobra.Command{
		Use:   "summary",
		Short: "Show what create would generate",
		Long: `Show what create would generate without writing anything.

Takes the same flags as create.

Examples:
  rdt summary -n my-api -f FastAPI -o json
  rdt summary -n my-api --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runSummary(cmd, g, &pf, formatFlag))
		},
	}

	pf.AddTo(c)
	// -o is taken by --orm.
	c.Flags().StringVar(&formatFlag, "output", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

func runSummary(cmd *cobra.Command, g *GlobalConfig, pf *cmdutil.ProjectFlags, formatFlag string) error {
	format, ok := output.ParseFormat(formatFlag)
	if !ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", formatFlag), "output",
			"Use one of: "+strings.Join(output.ValidFormats(), ", "))
	}

	cfg, _, gen, err := resolveProject(cmd, g, pf)
	if err != nil {
		return err
	}

	s, err := gen.Summary(cfg)
	if err != nil {
		return err
	}

	if format == output.FormatTable {
		fmt.Fprintln(cmd.OutOrStdout(), cmdutil.SummaryTable(s))
		return nil
	}
	return output.Encode(cmd.OutOrStdout(), s, format)
}
