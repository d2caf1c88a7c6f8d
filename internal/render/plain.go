package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Swatch renders a block of width cells filled with a CSS color value.
// Values lipgloss cannot interpret render as an empty block.
func Swatch(value string, width int) string {
	if width <= 0 {
		width = DefaultOptions().SwatchWidth
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(value)).
		Render(strings.Repeat(" ", width))
}

// PlainFormatter formats descriptors as a human readable listing.
type PlainFormatter struct {
	opts Options
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts Options) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes the descriptor as plain text.
// With Options.Category set only that category's tokens are written.
func (f *PlainFormatter) Format(w io.Writer, d *descriptor.Descriptor) error {
	var sb strings.Builder

	if f.opts.Category == "" {
		sb.WriteString(headingStyle.Render("content") + "\n")
		writeList(&sb, d.Content)
	}

	tokens := d.Tokens()
	width := 0
	for _, tok := range tokens {
		width = max(width, len(tok.Name))
	}

	category := ""
	for _, tok := range tokens {
		if f.opts.Category != "" && tok.Category != f.opts.Category {
			continue
		}
		if tok.Category != category {
			category = tok.Category
			sb.WriteString(headingStyle.Render(category) + "\n")
		}
		f.writeToken(&sb, tok, width)
	}

	if f.opts.Category == "" {
		sb.WriteString(headingStyle.Render("plugins") + "\n")
		writeList(&sb, d.Plugins)

		if d.DarkMode != "" {
			fmt.Fprintf(&sb, "%s %s\n", headingStyle.Render("darkMode"), d.DarkMode)
		}
		if d.Prefix != "" {
			fmt.Fprintf(&sb, "%s %s\n", headingStyle.Render("prefix"), d.Prefix)
		}
		if d.Important {
			fmt.Fprintf(&sb, "%s true\n", headingStyle.Render("important"))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *PlainFormatter) writeToken(sb *strings.Builder, tok descriptor.Token, width int) {
	sb.WriteString("  ")
	if f.opts.Swatches && tok.Category == descriptor.CategoryColors {
		sb.WriteString(Swatch(tok.Value, f.opts.SwatchWidth) + " ")
	}
	fmt.Fprintf(sb, "%-*s  %s\n", width, tok.Name, tok.Value)
}

func writeList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("  " + dimStyle.Render("(none)") + "\n")
		return
	}
	for _, item := range items {
		sb.WriteString("  " + item + "\n")
	}
}
