package config

import (
	"os"

	"github.com/rdt-dev/rdt/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one setting was resolved.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// Candidate holds every value a setting could take.
type Candidate[T any] struct {
	// Key is the config key, such as "defaults.framework".
	Key string
	// Flag is the flag value, used only when FlagSet is true.
	Flag    T
	FlagSet bool
	// Config is the loaded value, from the file or the environment; nil
	// when neither sets it.
	Config  *T
	Default T
}

// Resolve picks a value using precedence: (1) flag, (2) environment or
// config file, (3) built-in default. Loaded values are attributed to the
// environment when the key's environment variable is set.
func Resolve[T any](c Candidate[T]) (T, ResolvedValue) {
	rv := ResolvedValue{Key: c.Key, Shadowed: make(map[ConfigSource]any)}

	loaded := SourceConfig
	if env, ok := EnvVar(c.Key); ok {
		if _, set := os.LookupEnv(env); set {
			loaded = SourceEnv
		}
	}

	switch {
	case c.FlagSet:
		rv.Value, rv.Source = c.Flag, SourceFlag
		if c.Config != nil {
			rv.Shadowed[loaded] = *c.Config
		}
		rv.Shadowed[SourceDefault] = c.Default
		return c.Flag, rv
	case c.Config != nil:
		rv.Value, rv.Source = *c.Config, loaded
		rv.Shadowed[SourceDefault] = c.Default
		return *c.Config, rv
	default:
		rv.Value, rv.Source = c.Default, SourceDefault
		return c.Default, rv
	}
}

// StringValue returns nil for an empty string, so unset string fields
// fall through to the next source.
func StringValue(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RDT_CONFIG env, (3) ~/.rdt/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(ConfigEnvVar)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
