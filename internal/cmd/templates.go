package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/cmdutil"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/templates"
)

type templatesOptions struct {
	templatesDir string
	check        bool
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(g *GlobalConfig) *cobra.Command {
	var opts templatesOptions

	c := &cobra.Command{
		Use:   "templates [pattern]",
		Short: "List available templates",
		Long: `List the templates in the active template set.

The built-in set is used unless --templates-dir or the templatesDir config
value names a directory. A pattern filters template ids with shell-style
wildcards.

Examples:
  rdt templates
  rdt templates 'fastapi/*/*.tmpl'
  rdt templates --templates-dir ./my-templates --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return withExitCode(runTemplates(cmd, g, pattern, &opts))
		},
	}

	c.Flags().StringVar(&opts.templatesDir, "templates-dir", "", "Template directory to list instead of the built-in set")
	c.Flags().BoolVar(&opts.check, "check", false, "Check that every supported combination has its required templates")

	return c
}

func runTemplates(cmd *cobra.Command, g *GlobalConfig, pattern string, opts *templatesOptions) error {
	dir := opts.templatesDir
	if dir == "" {
		loaded, err := g.LoadedConfig()
		if err != nil {
			return err
		}
		dir = loaded.TemplatesDir
	}

	r, err := cmdutil.NewRenderer(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.check {
		return checkTemplates(cmd, r)
	}

	ids, err := r.ListTemplates(pattern)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		output.Warn("no templates matched", "pattern", pattern, "root", r.SearchRoot())
		return nil
	}

	tbl := output.NewTable("Template", "Size").Title(r.SearchRoot())
	for _, id := range ids {
		info, err := r.Info(id)
		if err != nil {
			return err
		}
		tbl.Row(id, strconv.FormatInt(info.Size, 10))
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}

func checkTemplates(cmd *cobra.Command, r *templates.Renderer) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, pair := range templates.Combinations() {
		label := fmt.Sprintf("%s + %s", pair.Framework, pair.ORM)
		ok, missing := templates.ValidateTemplatesExist(r, pair.Framework, pair.ORM)
		if ok {
			fmt.Fprintln(out, output.FormatVetCheck(label, "complete"))
			continue
		}
		failed++
		fmt.Fprintln(out, output.FormatVetFailure(label, fmt.Sprintf("%d missing", len(missing))))
		for _, id := range missing {
			fmt.Fprintln(out, "    "+output.StyleDim.Render(id))
		}
	}
	if failed > 0 {
		return &ExitError{
			Err:  oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("%d combinations have missing templates", failed)),
			Code: ExitNotFound,
		}
	}
	return nil
}
