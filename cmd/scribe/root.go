package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
)

var (
	verbose    bool
	configPath string
	adapter    string
	dataPath   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A small note keeper with per-note formatting",
	Long: `Scribe keeps short notes, newest first. Each note remembers its own font,
size, text case and alignment. Notes are stored as one JSON document in a file,
SQLite database or MongoDB collection.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/scribe/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: memory, fs, sqlite or mongo")
	rootCmd.PersistentFlags().StringVar(&dataPath, "path", "", "Data location for the fs and sqlite adapters")
}

// loadConfig reads the config file and applies the global flags over it.
func loadConfig() scribe.Config {
	cfg, err := scribe.LoadConfig(configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if adapter != "" {
		cfg.Adapter = adapter
	}
	if dataPath != "" {
		cfg.Path = dataPath
	}
	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}
	return cfg
}

func openNotebook(ctx context.Context) *scribe.Notebook {
	cfg := loadConfig()
	opts := append(cfg.Options(), scribe.WithLogger(slog.Default()))

	nb, err := scribe.Open(ctx, opts...)
	if err != nil {
		fatal("Failed to open notebook", err)
	}
	return nb
}
