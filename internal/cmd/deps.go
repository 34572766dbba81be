package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/config"
	"github.com/rdt-dev/rdt/internal/deps"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
)

// depsProjectName stands in for the project name, which no dependency
// depends on.
const depsProjectName = "preview"

type depsOptions struct {
	orm      string
	database string
	auth     bool
	noAuth   bool
	tests    bool
	noTests  bool
}

// NewDepsCmd creates the deps command.
func NewDepsCmd() *cobra.Command {
	var opts depsOptions

	c := &cobra.Command{
		Use:   "deps <framework>",
		Short: "List the Python dependencies of a configuration",
		Long: `List the Python dependencies a generated project would pin.

Examples:
  rdt deps FastAPI
  rdt deps Flask-Restx --orm Peewee --no-auth`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runDeps(cmd, args[0], &opts))
		},
	}

	c.Flags().StringVarP(&opts.orm, "orm", "o", "", "ORM (default: the framework's first compatible ORM)")
	c.Flags().StringVarP(&opts.database, "database", "d", config.DefaultDatabase, "Database")
	c.Flags().BoolVar(&opts.auth, "auth", false, "Include authentication dependencies (default)")
	c.Flags().BoolVar(&opts.noAuth, "no-auth", false, "Exclude authentication dependencies")
	c.Flags().BoolVar(&opts.tests, "tests", false, "Include the testing suite (default)")
	c.Flags().BoolVar(&opts.noTests, "no-tests", false, "Exclude the testing suite")
	c.MarkFlagsMutuallyExclusive("auth", "no-auth")
	c.MarkFlagsMutuallyExclusive("tests", "no-tests")

	return c
}

func runDeps(cmd *cobra.Command, framework string, opts *depsOptions) error {
	fw, err := project.ParseFramework(framework)
	if err != nil {
		return err
	}

	orm := project.ORM("")
	if opts.orm != "" {
		if orm, err = project.ParseORM(opts.orm); err != nil {
			return err
		}
	} else if compatible := project.CompatibleORMs(fw); len(compatible) > 0 {
		orm = compatible[0]
	}

	db, err := project.ParseDatabase(opts.database)
	if err != nil {
		return err
	}

	cfg, err := project.New(project.Options{
		Name:         depsProjectName,
		Framework:    fw,
		ORM:          orm,
		Database:     db,
		AuthEnabled:  !opts.noAuth,
		TestingSuite: !opts.noTests,
	})
	if err != nil {
		return err
	}

	m := deps.NewManager()
	all := m.AllDependencies(cfg)
	info := m.Info(cfg)
	out := cmd.OutOrStdout()

	stats := output.NewTable("Category", "Count").Title(fmt.Sprintf("%s + %s", fw, orm))
	stats.Row("Base", strconv.Itoa(info.Base))
	stats.Row("Framework", strconv.Itoa(info.Framework))
	stats.Row("ORM", strconv.Itoa(info.ORM))
	stats.Row("Auth", strconv.Itoa(info.Auth))
	stats.Row("Testing", strconv.Itoa(info.Testing))
	stats.Row("Total", strconv.Itoa(info.Total))
	fmt.Fprintln(out, stats.String())

	pkgs := output.NewTable("Package", "Requirement")
	for _, req := range all {
		pkgs.Row(deps.PackageName(req), req)
	}
	fmt.Fprintln(out, pkgs.String())

	for _, c := range m.CheckConflicts(all) {
		output.Warn("dependency conflict", "detail", c)
	}
	return nil
}
