// Package main provides the CLI entrypoint for windcfg.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/config"
	"github.com/jmylchreest/windcfg/internal/descriptor"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose          bool
		configPath       string
		descriptorFormat string
	}
	logger *slog.Logger

	// loader reads descriptors for every subcommand
	loader *descriptor.Loader
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "windcfg",
	Short: "Load and inspect utility-CSS build descriptors",
	Long: `windcfg loads the declarative descriptor behind a utility-CSS build
(content globs, theme extension and plugins) and validates it.

Descriptors may be written as JSON, YAML or TOML. windcfg never scans the
content globs and never merges with the build tool's default theme: it only
reports what the descriptor declares.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flag overrides the configured descriptor format
		formatName := cfg.Descriptor.Format
		if globalOpts.descriptorFormat != "" {
			formatName = globalOpts.descriptorFormat
		}
		format, err := descriptor.ParseFormat(formatName)
		if err != nil {
			return err
		}

		loader = descriptor.NewLoader(logger)
		loader.SetFormat(format)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/windcfg/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.descriptorFormat, "descriptor-format", "",
		"Descriptor format: json, yaml, toml (default: by file extension)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// loadDescriptor loads the descriptor named by args, falling back to the
// configured default path. Returns the path actually used.
func loadDescriptor(args []string) (*descriptor.Descriptor, string, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path := cfg.DescriptorPath(arg)

	d, err := loader.Load(path)
	if err != nil {
		return nil, path, err
	}
	return d, path, nil
}
