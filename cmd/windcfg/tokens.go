package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/render"
	"github.com/jmylchreest/windcfg/internal/tui"
)

var tokensOpts struct {
	interactive bool
	category    string
	preset      string
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [path]",
	Short: "List theme extension tokens",
	Long: `List the tokens a descriptor adds to the build tool's theme.

Color tokens are shown with a swatch. Use --interactive to browse the
tokens in a terminal UI.

Key bindings (interactive):
  j/k, ↑/↓     Navigate list
  tab          Next category
  shift+tab    Previous category
  /            Filter tokens
  c            Copy token value to clipboard
  n            Copy token name to clipboard
  ?            Toggle help
  q            Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensOpts.interactive, "interactive", "i", false,
		"Browse tokens in the terminal UI")
	tokensCmd.Flags().StringVarP(&tokensOpts.category, "category", "c", "",
		"Only list one category (colors, fontFamily, ...)")
	tokensCmd.Flags().StringVar(&tokensOpts.preset, "preset", "",
		"Use a bundled preset instead of a file")
}

func runTokens(cmd *cobra.Command, args []string) error {
	d, err := loadDescriptorOrPreset(args, tokensOpts.preset)
	if err != nil {
		return err
	}

	if tokensOpts.interactive {
		return tui.Run(tui.RunOptions{
			Config:     cfg,
			Descriptor: d,
		})
	}

	categories := d.Categories()
	if tokensOpts.category != "" && !slices.Contains(categories, tokensOpts.category) {
		return fmt.Errorf("unknown category %q (available: %s)",
			tokensOpts.category, strings.Join(categories, ", "))
	}

	opts := render.DefaultOptions()
	opts.Swatches = cfg.Output.Swatches
	opts.Category = tokensOpts.category
	if opts.Category == "" {
		// Tokens only, no content or plugins
		for _, cat := range categories {
			opts.Category = cat
			if err := render.NewPlainFormatter(opts).Format(cmd.OutOrStdout(), d); err != nil {
				return err
			}
		}
		return nil
	}

	return render.NewPlainFormatter(opts).Format(cmd.OutOrStdout(), d)
}
