// Package config loads, validates and resolves the rdt user configuration.
package config

// Defaults are the values used for create options not given on the command line.
type Defaults struct {
	// Framework is a framework name such as "FastAPI".
	// Env: RDT_DEFAULTS_FRAMEWORK
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty"`

	// ORM is an ORM name. Empty selects the framework's first compatible ORM.
	// Env: RDT_DEFAULTS_ORM
	ORM string `json:"orm,omitempty" yaml:"orm,omitempty"`

	// Database is a database name such as "PostgreSQL".
	// Env: RDT_DEFAULTS_DATABASE
	Database string `json:"database,omitempty" yaml:"database,omitempty"`

	Auth   *bool `json:"auth,omitempty" yaml:"auth,omitempty"`
	Docker *bool `json:"docker,omitempty" yaml:"docker,omitempty"`
	Tests  *bool `json:"tests,omitempty" yaml:"tests,omitempty"`
	Git    *bool `json:"git,omitempty" yaml:"git,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the rdt configuration file, ~/.rdt/config.yaml.
type Config struct {
	// TemplatesDir replaces the built-in template set with a directory on disk.
	// Env: RDT_TEMPLATES_DIR
	TemplatesDir string `json:"templatesDir,omitempty" yaml:"templatesDir,omitempty"`

	// OutputDir is the directory projects are created in. Default: the
	// working directory.
	// Env: RDT_OUTPUT_DIR
	OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`

	Defaults Defaults  `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Log      LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// Built-in defaults.
const (
	DefaultFramework = "FastAPI"
	DefaultDatabase  = "PostgreSQL"
	DefaultFeature   = true
)

// DefaultConfig returns a Config with all default values populated.
// Used by `rdt config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			Framework: DefaultFramework,
			Database:  DefaultDatabase,
			Auth:      boolPtr(DefaultFeature),
			Docker:    boolPtr(DefaultFeature),
			Tests:     boolPtr(DefaultFeature),
			Git:       boolPtr(DefaultFeature),
		},
		Log: LogConfig{
			Timestamps: boolPtr(true),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
