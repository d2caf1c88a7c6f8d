package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

var validateOpts struct {
	quiet bool // Suppress output, return exit code only
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check that a descriptor loads",
	Long: `Load a descriptor and report whether it is valid.

Exit codes:
  0  descriptor is valid
  1  descriptor is missing, malformed or fails validation

Every validation problem is listed with the path of the offending field,
for example "theme.extend.colors.dark must be a string, got number".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVarP(&validateOpts.quiet, "quiet", "q", false,
		"Suppress output, return exit code only")
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, path, err := loadDescriptor(args)
	if err != nil {
		if !validateOpts.quiet {
			fmt.Fprintln(os.Stderr, describeLoadError(err))
		}
		os.Exit(1)
	}

	if validateOpts.quiet {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), summarize(path, d))
	return nil
}

// summarize builds the one-line validation report.
func summarize(path string, d *descriptor.Descriptor) string {
	source := path
	if info, err := os.Stat(path); err == nil {
		source = fmt.Sprintf("%s (%s, modified %s)",
			path,
			humanize.Bytes(uint64(info.Size())),
			humanize.Time(info.ModTime()))
	}

	return fmt.Sprintf("ok: %s: %s, %s, %s, %s",
		source,
		plural(len(d.Content), "content glob"),
		plural(len(d.Theme.Extend.Colors), "color"),
		plural(len(d.Theme.Extend.FontFamily), "font family", "font families"),
		plural(len(d.Plugins), "plugin"))
}

// describeLoadError turns a load error into a short diagnosis.
func describeLoadError(err error) string {
	switch {
	case errors.Is(err, descriptor.ErrScriptDescriptor):
		return fmt.Sprintf("unsupported: %v (or pass --descriptor-format)", err)
	case errors.Is(err, descriptor.ErrNotFound):
		return fmt.Sprintf("missing: %v", err)
	case errors.Is(err, descriptor.ErrParse):
		return fmt.Sprintf("malformed: %v", err)
	case errors.Is(err, descriptor.ErrValidation):
		return fmt.Sprintf("invalid:\n%v", err)
	default:
		return err.Error()
	}
}

// plural formats a count with a singular or plural noun.
// The plural form defaults to singular + "s".
func plural(n int, singular string, pluralForm ...string) string {
	word := singular + "s"
	if len(pluralForm) > 0 {
		word = pluralForm[0]
	}
	if n == 1 {
		word = singular
	}
	return humanize.Comma(int64(n)) + " " + word
}
