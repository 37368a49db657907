// Package cmd provides the CLI commands for the directory.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-directory/config"
	"github.com/gcbaptista/go-directory/internal/engine"
	"github.com/gcbaptista/go-directory/internal/logging"
)

// DefaultConfigPath is read when --config is not given. A missing file is fine.
const DefaultConfigPath = "directory.yml"

// rootOptions carries the persistent flags and the configuration they resolve to.
type rootOptions struct {
	configPath string
	dataFile   string
	logLevel   string

	cfg *config.Config
}

// NewRootCmd creates the root command for the directory CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Competition policy directory",
		Long: `directory serves a read-only directory of competition-policy experts,
institutions, laws, cases and reports, with faceted list views and a
keyword search across every collection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", DefaultConfigPath, "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.dataFile, "data", "", "Dataset file (.yaml, .json or .gob); empty uses the embedded seed")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newFacetsCmd(opts))
	cmd.AddCommand(newExportCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// load resolves the configuration, applies flag overrides and installs the logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("data") {
		cfg.Data.File = o.dataFile
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logging.Setup(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, cmd.ErrOrStderr())
	o.cfg = cfg
	return nil
}

// engine creates the engine for the resolved configuration.
func (o *rootOptions) engine() (*engine.Engine, error) {
	eng, err := engine.NewEngine(engine.Options{
		DataFile:  o.cfg.Data.File,
		MaxEvents: o.cfg.Analytics.MaxEvents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start directory: %w", err)
	}
	return eng, nil
}
