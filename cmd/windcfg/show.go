package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/render"
)

var showOpts struct {
	format     string
	noSwatches bool
	preset     string
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a loaded descriptor",
	Long: `Load a descriptor and print it.

Formats:
  plain  human readable listing with color swatches (default)
  json   descriptor document as JSON
  yaml   descriptor document as YAML
  toml   descriptor document as TOML

The json, yaml and toml output can be loaded again by windcfg, which makes
show a converter between descriptor formats.

Examples:
  # Inspect the descriptor in the current directory
  windcfg show

  # Convert a YAML descriptor to JSON
  windcfg show theme.yaml -f json > tailwind.config.json

  # Print a bundled preset
  windcfg show --preset hud`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showOpts.format, "format", "f", "",
		"Output format (plain, json, yaml, toml; default from config)")
	showCmd.Flags().BoolVar(&showOpts.noSwatches, "no-swatches", false,
		"Disable color swatches in plain output")
	showCmd.Flags().StringVar(&showOpts.preset, "preset", "",
		"Show a bundled preset instead of a file")
}

func runShow(cmd *cobra.Command, args []string) error {
	formatName := cfg.Output.Format
	if showOpts.format != "" {
		formatName = showOpts.format
	}
	format, err := render.ParseFormatType(formatName)
	if err != nil {
		return err
	}

	d, err := loadDescriptorOrPreset(args, showOpts.preset)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Swatches = cfg.Output.Swatches && !showOpts.noSwatches

	return render.NewFormatter(format, opts).Format(cmd.OutOrStdout(), d)
}
