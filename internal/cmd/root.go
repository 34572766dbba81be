// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdt-dev/rdt/internal/config"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created by NewRootCmd and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration; empty when no file exists.
	Config *config.Config
	// ConfigPath is the resolved config file path.
	ConfigPath string
	Verbose    bool

	// loadErr is the error from loading the config file, reported by the
	// commands that need the configuration.
	loadErr error
}

// LoadedConfig returns the configuration after checking it is usable.
func (g *GlobalConfig) LoadedConfig() (*config.Config, error) {
	if g.loadErr != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  g.loadErr.Error(),
			Location: g.ConfigPath,
			Hint:     "Run 'rdt config vet' for details",
			Cause:    oerrors.ErrValidation,
		}
	}
	if g.Config == nil {
		return &config.Config{}, nil
	}

	v, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(g.Config); err != nil {
		return nil, err
	}
	return g.Config, nil
}

// NewRootCmd creates the root command for the rdt CLI.
func NewRootCmd() *cobra.Command {
	g := &GlobalConfig{}
	var (
		configFlag     string
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "rdt",
		Short: "Rapid Development Tool",
		Long: `rdt generates ready-to-run Python API projects.

Supported frameworks and ORMs:
  Flask-Restx   SQLAlchemy, Peewee
  FastAPI       SQLAlchemy, TortoiseORM
  Django-Rest   DjangoORM`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, g, configFlag, timestampsFlag)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: RDT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd(g))
	rootCmd.AddCommand(NewSummaryCmd(g))
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewDepsCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewTemplatesCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *GlobalConfig, configFlag string, timestampsFlag bool) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	g.ConfigPath = pathResult.ConfigPath

	g.Config, g.loadErr = config.NewLoader().Load(g.ConfigPath)

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if g.Config != nil && g.Config.Log.Timestamps != nil {
		logCfg.Timestamps = g.Config.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("rdt started", "version", info.Version, "cue_sdk", info.CUESDKVersion)
	config.LogResolvedValues([]config.ResolvedValue{{
		Key:      "config",
		Value:    pathResult.ConfigPath,
		Source:   pathResult.Source,
		Shadowed: shadowedPaths(pathResult.Shadowed),
	}})
	if g.loadErr != nil {
		output.Debug("config load error", "error", g.loadErr)
	}
	return nil
}

func shadowedPaths(in map[config.ConfigSource]string) map[config.ConfigSource]any {
	out := make(map[config.ConfigSource]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
