package config

import (
	"os"
	"path/filepath"
)

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "RDT_CONFIG"

// Paths contains standard filesystem paths for rdt.
type Paths struct {
	// HomeDir is the rdt home directory (~/.rdt).
	HomeDir string

	// ConfigFile is the path to the config file (~/.rdt/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default paths for rdt.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rdtHome := filepath.Join(homeDir, ".rdt")

	return &Paths{
		HomeDir:    rdtHome,
		ConfigFile: filepath.Join(rdtHome, "config.yaml"),
	}, nil
}

// GetConfigFile returns the config file path.
// If RDT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
