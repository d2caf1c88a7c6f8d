package render

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

// JSONFormatter formats descriptors as JSON.
type JSONFormatter struct {
	opts Options
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the descriptor document as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, d *descriptor.Descriptor) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d.Document())
}

// YAMLFormatter formats descriptors as YAML.
type YAMLFormatter struct {
	opts Options
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts Options) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the descriptor document as YAML.
func (f *YAMLFormatter) Format(w io.Writer, d *descriptor.Descriptor) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(d.Document()); err != nil {
		return err
	}
	return encoder.Close()
}

// TOMLFormatter formats descriptors as TOML.
type TOMLFormatter struct {
	opts Options
}

// NewTOMLFormatter creates a new TOML formatter.
func NewTOMLFormatter(opts Options) *TOMLFormatter {
	return &TOMLFormatter{opts: opts}
}

// Format writes the descriptor document as TOML.
func (f *TOMLFormatter) Format(w io.Writer, d *descriptor.Descriptor) error {
	return toml.NewEncoder(w).Encode(d.Document())
}
