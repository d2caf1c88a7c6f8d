package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/config"
	"github.com/jmylchreest/windcfg/internal/descriptor"
	"github.com/jmylchreest/windcfg/internal/preset"
	"github.com/jmylchreest/windcfg/internal/render"
)

var initOpts struct {
	preset     string
	force      bool
	saveConfig bool
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a bundled preset as a new descriptor",
	Long: `Write a bundled preset to disk as a starting descriptor.

Without a path the preset is written to tailwind.config plus the preset's
own extension (for example tailwind.config.json). When the path's extension
or --descriptor-format names another format, the preset is converted.
Existing files are only replaced with --force.

With --save-config the written path becomes the default descriptor in the
windcfg config file.

Use 'windcfg presets' to list the available presets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOpts.preset, "preset", "p", preset.DefaultName,
		"Preset to write")
	initCmd.Flags().BoolVarP(&initOpts.force, "force", "f", false,
		"Overwrite an existing file")
	initCmd.Flags().BoolVar(&initOpts.saveConfig, "save-config", false,
		"Record the written path as the default descriptor")
}

func runInit(cmd *cobra.Command, args []string) error {
	ext := preset.Extension(initOpts.preset)
	if ext == "" {
		return fmt.Errorf("unknown preset %q (available: %s)",
			initOpts.preset, strings.Join(preset.List(), ", "))
	}

	dest := "tailwind.config" + ext
	if len(args) > 0 {
		dest = args[0]
	}

	format := loader.FormatFor(dest)
	data, err := presetData(initOpts.preset, format)
	if err != nil {
		return err
	}

	// Check the bytes load before anything touches disk
	if _, err := loader.Decode(data, format); err != nil {
		return fmt.Errorf("preset %s does not load as %s: %w", initOpts.preset, format, err)
	}

	if err := preset.WriteFile(dest, data, initOpts.force); err != nil {
		return err
	}

	d, err := loader.Load(dest)
	if err != nil {
		return fmt.Errorf("wrote %s but it does not load: %w", dest, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summarize(dest, d))

	if initOpts.saveConfig {
		return saveDescriptorPath(cmd, dest)
	}
	return nil
}

// presetData returns the preset encoded as format. The bundled bytes are
// used as-is when the formats match so comments survive.
func presetData(name string, format descriptor.Format) ([]byte, error) {
	data, native, ok := preset.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", preset.ErrUnknownPreset, name)
	}
	if format == native {
		return data, nil
	}

	switch format {
	case descriptor.FormatJSON, descriptor.FormatYAML, descriptor.FormatTOML:
	default:
		return nil, fmt.Errorf("cannot write a %s descriptor; use a .json, .yaml or .toml path", format)
	}

	d, err := preset.Load(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	f := render.NewFormatter(render.FormatType(format), render.DefaultOptions())
	if err := f.Format(&buf, d); err != nil {
		return nil, fmt.Errorf("encode preset %s as %s: %w", name, format, err)
	}
	return buf.Bytes(), nil
}

// saveDescriptorPath stores dest as the configured default descriptor.
func saveDescriptorPath(cmd *cobra.Command, dest string) error {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return err
	}

	cfg.Descriptor.Path = abs
	path := globalOpts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	logger.Debug("saved default descriptor", "config", path, "descriptor", abs)
	fmt.Fprintf(cmd.OutOrStdout(), "default descriptor set in %s\n", path)
	return nil
}
