// Package cmdutil provides shared command utilities for the create and
// summary commands. It centralizes the project flag group, precedence
// resolution against the config file and presentation helpers.
package cmdutil

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/config"
	"github.com/rdt-dev/rdt/internal/project"
)

// ProjectFlags holds the flags that describe a project
// (create, summary).
type ProjectFlags struct {
	Name         string
	Framework    string
	ORM          string
	Database     string
	OutputDir    string
	TemplatesDir string

	Auth, NoAuth     bool
	Docker, NoDocker bool
	Tests, NoTests   bool
	Git, NoGit       bool
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.Name, "name", "n", "", "Project name")
	fl.StringVarP(&f.Framework, "framework", "f", "",
		"Web framework: Flask-Restx, FastAPI, Django-Rest (default: from config, then FastAPI)")
	fl.StringVarP(&f.ORM, "orm", "o", "",
		"ORM: SQLAlchemy, TortoiseORM, Peewee, DjangoORM (default: first compatible)")
	fl.StringVarP(&f.Database, "database", "d", "",
		"Database: PostgreSQL, MySQL, SQLite (default: from config, then PostgreSQL)")
	fl.StringVar(&f.OutputDir, "output-dir", "",
		"Directory to create the project in (default: current directory)")
	fl.StringVar(&f.TemplatesDir, "templates-dir", "",
		"Render from a template directory instead of the built-in set")

	pairs := []struct {
		on, off *bool
		name    string
		help    string
	}{
		{&f.Auth, &f.NoAuth, "auth", "JWT authentication"},
		{&f.Docker, &f.NoDocker, "docker", "Docker support"},
		{&f.Tests, &f.NoTests, "tests", "testing suite"},
		{&f.Git, &f.NoGit, "git", "git repository initialization"},
	}
	for _, p := range pairs {
		fl.BoolVar(p.on, p.name, false, "Include "+p.help)
		fl.BoolVar(p.off, "no-"+p.name, false, "Leave out "+p.help)
		cmd.MarkFlagsMutuallyExclusive(p.name, "no-"+p.name)
	}
}

// feature returns the value of a --x/--no-x pair and whether either was given.
func feature(cmd *cobra.Command, name string, on, off bool) (bool, bool) {
	switch {
	case cmd.Flags().Changed("no-" + name):
		return !off, true
	case cmd.Flags().Changed(name):
		return on, true
	default:
		return false, false
	}
}

// Resolution is the outcome of resolving project flags.
type Resolution struct {
	Options project.Options
	Values  []config.ResolvedValue
	// TemplatesDir is empty when the built-in templates are used.
	TemplatesDir string
}

// Source returns where the setting with the given key came from.
func (r Resolution) Source(key string) config.ConfigSource {
	for _, v := range r.Values {
		if v.Key == key {
			return v.Source
		}
	}
	return ""
}

// Resolve combines flags, the loaded config and built-in defaults into
// project options. cfg may be nil. Unknown framework, ORM or database
// names yield a project.ValidationErrors.
func (f *ProjectFlags) Resolve(cmd *cobra.Command, cfg *config.Config) (Resolution, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	d := cfg.Defaults
	var res Resolution
	changed := cmd.Flags().Changed

	str := func(key, flagName, flag, loaded, def string) string {
		v, rv := config.Resolve(config.Candidate[string]{
			Key: key, Flag: flag, FlagSet: changed(flagName),
			Config: config.StringValue(loaded), Default: def,
		})
		res.Values = append(res.Values, rv)
		return v
	}
	boolean := func(key, name string, on, off bool, loaded *bool) bool {
		flag, set := feature(cmd, name, on, off)
		v, rv := config.Resolve(config.Candidate[bool]{
			Key: key, Flag: flag, FlagSet: set, Config: loaded, Default: config.DefaultFeature,
		})
		res.Values = append(res.Values, rv)
		return v
	}

	name := str("name", "name", f.Name, "", "")
	fwName := str("defaults.framework", "framework", f.Framework, d.Framework, config.DefaultFramework)
	ormName := str("defaults.orm", "orm", f.ORM, d.ORM, "")
	dbName := str("defaults.database", "database", f.Database, d.Database, config.DefaultDatabase)
	outputDir := str("outputDir", "output-dir", f.OutputDir, cfg.OutputDir, "")
	res.TemplatesDir = str("templatesDir", "templates-dir", f.TemplatesDir, cfg.TemplatesDir, "")

	var verrs project.ValidationErrors
	collect := func(err error) {
		var ve project.ValidationErrors
		if errors.As(err, &ve) {
			verrs = append(verrs, ve...)
		}
	}

	fw, err := project.ParseFramework(fwName)
	collect(err)
	db, err := project.ParseDatabase(dbName)
	collect(err)

	var orm project.ORM
	if ormName != "" {
		orm, err = project.ParseORM(ormName)
		collect(err)
	} else if fw.Valid() {
		orm = project.CompatibleORMs(fw)[0]
	}

	if len(verrs) > 0 {
		return res, verrs
	}

	expanded, err := config.ExpandPath(outputDir)
	if err != nil {
		return res, err
	}

	res.Options = project.Options{
		Name:          name,
		Framework:     fw,
		ORM:           orm,
		Database:      db,
		AuthEnabled:   boolean("defaults.auth", "auth", f.Auth, f.NoAuth, d.Auth),
		DockerSupport: boolean("defaults.docker", "docker", f.Docker, f.NoDocker, d.Docker),
		TestingSuite:  boolean("defaults.tests", "tests", f.Tests, f.NoTests, d.Tests),
		GitInit:       boolean("defaults.git", "git", f.Git, f.NoGit, d.Git),
		OutputDir:     expanded,
	}
	return res, nil
}
