package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"easyinit/internal/config"
	"easyinit/internal/logger"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configFile string
	dir        string
	logLevel   string
	logJSON    bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "easyinit",
		Short:         "Generate initializers for annotated Go structs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to the config file (default: nearest "+config.FileName+")")
	flags.StringVarP(&opts.dir, "dir", "C", ".", "directory to run in")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error or disabled")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log in JSON format")

	root.AddCommand(newGenCommand(opts))
	root.AddCommand(newConfigCommand(opts))

	return root
}

// loadConfig resolves the configuration in precedence order: defaults, then
// the config file, then command line flags.
func (o *globalOptions) loadConfig(cmd *cobra.Command, overrides *config.Config) (*config.Config, error) {
	cfg := config.Default()

	path := o.configFile
	if path == "" {
		found, err := config.Find(o.dir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.Merge(fileCfg); err != nil {
			return nil, fmt.Errorf("merging %s: %w", path, err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		overrides.Log.Level = o.logLevel
	}
	overrides.Log.JSON = o.logJSON

	if err := cfg.Merge(overrides); err != nil {
		return nil, fmt.Errorf("merging flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupLogger stores a logger configured by cfg in the command context.
func setupLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.LogLevel(cfg.Log.Level)
	logCfg.JSON = cfg.Log.JSON
	logCfg.Output = cmd.ErrOrStderr()

	log := logger.NewLogger(logCfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.ContextWithLogger(ctx, log))

	return log
}
