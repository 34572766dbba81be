package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

const (
	maxNameLength = 50
	pythonVersion = "3.11"
)

// Options holds the raw inputs for a Config.
type Options struct {
	Name          string
	Framework     Framework
	ORM           ORM
	Database      Database
	AuthEnabled   bool
	DockerSupport bool
	TestingSuite  bool
	GitInit       bool

	// OutputDir is the directory the project is created in.
	// Empty means the working directory at the time OutputPath is called.
	OutputDir string
}

// Config is a validated project description. It is a value type and is
// never modified after New returns it.
type Config struct {
	Name          string
	Framework     Framework
	ORM           ORM
	Database      Database
	AuthEnabled   bool
	DockerSupport bool
	TestingSuite  bool
	GitInit       bool
	OutputDir     string
}

// New normalizes opts and validates the result.
func New(opts Options) (Config, error) {
	cfg := Config{
		Name:          strings.ToLower(strings.TrimSpace(opts.Name)),
		Framework:     opts.Framework,
		ORM:           opts.ORM,
		Database:      opts.Database,
		AuthEnabled:   opts.AuthEnabled,
		DockerSupport: opts.DockerSupport,
		TestingSuite:  opts.TestingSuite,
		GitInit:       opts.GitInit,
		OutputDir:     opts.OutputDir,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return "invalid project configuration: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match oerrors.ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks every field and the framework/ORM pairing.
func (c Config) Validate() error {
	var errs ValidationErrors

	if msg := validateName(c.Name); msg != "" {
		errs = append(errs, ValidationError{Field: "name", Message: msg})
	}

	fwValid := c.Framework.Valid()
	if !fwValid {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: fmt.Sprintf("%q is not one of %s", c.Framework, joinChoices(allFrameworks)),
		})
	}

	ormValid := c.ORM.Valid()
	if !ormValid {
		errs = append(errs, ValidationError{
			Field:   "orm",
			Message: fmt.Sprintf("%q is not one of %s", c.ORM, joinChoices(allORMs)),
		})
	}

	if !c.Database.Valid() {
		errs = append(errs, ValidationError{
			Field:   "database",
			Message: fmt.Sprintf("%q is not one of %s", c.Database, joinChoices(allDatabases)),
		})
	}

	if fwValid && ormValid {
		if ok, reason := ValidateCombination(c.Framework, c.ORM); !ok {
			errs = append(errs, ValidationError{
				Field: "orm",
				Message: fmt.Sprintf("%s is not compatible with %s (%s); use %s",
					c.ORM, c.Framework, reason, joinChoices(CompatibleORMs(c.Framework))),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateName(name string) string {
	switch {
	case name == "":
		return "project name cannot be empty"
	case len(name) > maxNameLength:
		return fmt.Sprintf("project name must be at most %d characters", maxNameLength)
	case name[0] >= '0' && name[0] <= '9':
		return "project name cannot start with a number"
	}
	for _, r := range name {
		if !isAlnum(r) && r != '-' && r != '_' {
			return "project name can only contain letters, numbers, hyphens and underscores"
		}
	}
	return ""
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// OutputPath returns the directory the project will be generated into.
func (c Config) OutputPath() (string, error) {
	base := c.OutputDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}
	return filepath.Join(base, c.Name), nil
}

// AppName is Name turned into a Python identifier: every character that is
// not a letter, digit or underscore becomes an underscore.
func (c Config) AppName() string {
	b := []byte(c.Name)
	for i, ch := range b {
		if !isAlnum(rune(ch)) && ch != '_' {
			b[i] = '_'
		}
	}
	return string(b)
}

// IsAsync reports whether the framework runs on an event loop.
func (c Config) IsAsync() bool {
	return c.Framework == FastAPI
}

// RequiresAsyncDriver reports whether the database needs an async driver.
func (c Config) RequiresAsyncDriver() bool {
	return c.IsAsync() && c.Database != SQLite
}

// PythonVersion is the Python version generated projects target.
func (c Config) PythonVersion() string {
	return pythonVersion
}

// Port is the default development server port.
func (c Config) Port() int {
	if c.Framework == FastAPI {
		return 8000
	}
	return 5300
}

// TemplateContext returns the data templates are rendered with.
// Each call returns a new map.
func (c Config) TemplateContext() map[string]any {
	return map[string]any{
		"name":                  c.Name,
		"framework":             string(c.Framework),
		"orm":                   string(c.ORM),
		"database":              string(c.Database),
		"auth_enabled":          c.AuthEnabled,
		"docker_support":        c.DockerSupport,
		"testing_suite":         c.TestingSuite,
		"git_init":              c.GitInit,
		"app_name":              c.AppName(),
		"python_version":        c.PythonVersion(),
		"port":                  c.Port(),
		"is_async":              c.IsAsync(),
		"requires_async_driver": c.RequiresAsyncDriver(),
	}
}
