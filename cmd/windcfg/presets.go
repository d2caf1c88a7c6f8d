package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/descriptor"
	"github.com/jmylchreest/windcfg/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List bundled presets",
	Long: `List the descriptors bundled with windcfg.

Presets can be printed with 'windcfg show --preset NAME', browsed with
'windcfg tokens --preset NAME' or written to disk with 'windcfg init'.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, name := range preset.List() {
		d, err := preset.Load(name)
		if err != nil {
			logger.Warn("bundled preset failed to load", "preset", name, "error", err)
			continue
		}

		marker := " "
		if name == preset.DefaultName {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %-5s %s\n",
			marker, name, preset.Extension(name),
			plural(len(d.Tokens()), "token"))
	}
	return nil
}

// loadDescriptorOrPreset loads a bundled preset when name is set,
// otherwise the descriptor named by args.
func loadDescriptorOrPreset(args []string, name string) (*descriptor.Descriptor, error) {
	if name != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot use a path together with --preset")
		}
		return preset.Load(name)
	}

	d, _, err := loadDescriptor(args)
	return d, err
}
