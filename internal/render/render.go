// Package render provides output formatters for loaded descriptors.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

// Formatter formats a descriptor for output.
type Formatter interface {
	// Format writes the formatted descriptor to the writer.
	Format(w io.Writer, d *descriptor.Descriptor) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatTOML  FormatType = "toml"
)

// FormatTypes lists every supported output format.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML, FormatTOML}

// ParseFormatType validates a user-supplied format name.
func ParseFormatType(s string) (FormatType, error) {
	f := FormatType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FormatTypes {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want plain, json, yaml or toml)", s)
}

// NewFormatter creates a formatter for the specified format type.
// Unknown types fall back to plain output.
func NewFormatter(format FormatType, opts Options) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatTOML:
		return NewTOMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// Options configures formatter behavior.
type Options struct {
	Swatches    bool   // Draw color swatches in plain output
	SwatchWidth int    // Swatch width in cells (0 = default)
	Category    string // Restrict token listings to one category (plain only)
}

// DefaultOptions returns sensible defaults for terminal output.
func DefaultOptions() Options {
	return Options{
		Swatches:    true,
		SwatchWidth: 4,
	}
}
