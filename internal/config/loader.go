package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for rdt configuration.
const envPrefix = "RDT"

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"templatesDir":       "RDT_TEMPLATES_DIR",
	"outputDir":          "RDT_OUTPUT_DIR",
	"defaults.framework": "RDT_DEFAULTS_FRAMEWORK",
	"defaults.orm":       "RDT_DEFAULTS_ORM",
	"defaults.database":  "RDT_DEFAULTS_DATABASE",
	"defaults.auth":      "RDT_DEFAULTS_AUTH",
	"defaults.docker":    "RDT_DEFAULTS_DOCKER",
	"defaults.tests":     "RDT_DEFAULTS_TESTS",
	"defaults.git":       "RDT_DEFAULTS_GIT",
	"log.timestamps":     "RDT_LOG_TIMESTAMPS",
}

// EnvVar returns the environment variable bound to a config key.
func EnvVar(key string) (string, bool) {
	env, ok := envBindings[key]
	return env, ok
}

// Loader loads configuration from the config file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
