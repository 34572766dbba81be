package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/cmdutil"
	"github.com/rdt-dev/rdt/internal/config"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/generator"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/vcs"
)

type createOptions struct {
	project       cmdutil.ProjectFlags
	noInteractive bool
	dryRun        bool
}

// NewCreateCmd creates the create command.
func NewCreateCmd(g *GlobalConfig) *cobra.Command {
	var opts createOptions

	c := &cobra.Command{
		Use:   "create",
		Short: "Create a new API project",
		Long: `Create a new API project.

Values not given as flags come from the config file (~/.rdt/config.yaml)
and then from built-in defaults: FastAPI, the framework's first compatible
ORM, PostgreSQL, and every feature enabled.

Examples:
  # Quick creation
  rdt create --name my-api --framework FastAPI --orm SQLAlchemy --database PostgreSQL

  # No authentication
  rdt create -n my-api -f Flask-Restx -o SQLAlchemy -d SQLite --no-auth

  # Show what would be generated
  rdt create -n my-api --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runCreate(cmd, g, &opts))
		},
	}

	opts.project.AddTo(c)
	c.Flags().BoolVar(&opts.noInteractive, "no-interactive", false,
		"Plain output without spinner or styling; requires --name, --framework and --database")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generation summary and exit")

	return c
}

// resolveProject turns flags and configuration into a validated project
// configuration and the renderer to generate it with.
func resolveProject(cmd *cobra.Command, g *GlobalConfig, pf *cmdutil.ProjectFlags) (project.Config, cmdutil.Resolution, *generator.Generator, error) {
	loaded, err := g.LoadedConfig()
	if err != nil {
		return project.Config{}, cmdutil.Resolution{}, nil, err
	}

	res, err := pf.Resolve(cmd, loaded)
	if err != nil {
		return project.Config{}, res, nil, err
	}
	config.LogResolvedValues(res.Values)

	if strings.TrimSpace(res.Options.Name) == "" {
		return project.Config{}, res, nil, oerrors.NewValidationError(
			"project name is required", "name", "Pass --name")
	}

	cfg, err := project.New(res.Options)
	if err != nil {
		return project.Config{}, res, nil, err
	}

	r, err := cmdutil.NewRenderer(res.TemplatesDir)
	if err != nil {
		return project.Config{}, res, nil, err
	}
	return cfg, res, generator.New(r), nil
}

func runCreate(cmd *cobra.Command, g *GlobalConfig, opts *createOptions) error {
	out := cmd.OutOrStdout()
	interactive := !opts.noInteractive

	cfg, res, gen, err := resolveProject(cmd, g, &opts.project)
	if err != nil {
		return err
	}

	if opts.noInteractive {
		var missing []string
		for _, s := range []struct{ key, flag string }{
			{"defaults.framework", "--framework"},
			{"defaults.database", "--database"},
		} {
			if res.Source(s.key) == config.SourceDefault {
				missing = append(missing, s.flag)
			}
		}
		if len(missing) > 0 {
			return oerrors.NewValidationError(
				strings.Join(missing, " and ")+" required with --no-interactive", "",
				"Pass the flags or set defaults in the config file")
		}
	}

	summary, err := gen.Summary(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cmdutil.SummaryTable(summary))

	if opts.dryRun {
		return nil
	}

	if ok, errs := gen.ValidateBeforeGenerate(cfg); !ok {
		cmdutil.PrintErrors("validation failed", errs)
		return &ExitError{
			Err:     fmt.Errorf("validation failed for %s", cfg.Name),
			Code:    ExitValidationError,
			Printed: true,
		}
	}

	var path string
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		path, genErr = gen.Generate(cfg)
		return genErr
	}, output.WithTitle("Generating "+cfg.Name+"..."), output.WithEnabled(interactive))
	if err != nil {
		return err
	}

	if cfg.GitInit {
		if err := vcs.InitRepository(cmd.Context(), path); err != nil {
			output.Warn("git initialization failed", "error", err)
		} else {
			fmt.Fprintln(out, output.FormatCheckmark("Git repository initialized"))
		}
	}

	tree, err := cmdutil.FileTree(path)
	if err != nil {
		output.Debug("could not render file tree", "error", err)
	} else {
		fmt.Fprintln(out, tree)
	}

	fmt.Fprintln(out, output.FormatCheckmark("Project created at "+output.StyleNoun.Render(path)))
	fmt.Fprintln(out, output.RenderMarkdown(cmdutil.NextSteps(path, cfg), interactive && output.IsTTY()))
	return nil
}
