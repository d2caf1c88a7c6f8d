package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a descriptor.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"

	// FormatScript is detected for JavaScript config files, which are
	// recognised only to be rejected.
	FormatScript Format = "javascript"
)

// ErrScriptDescriptor is returned when a JavaScript descriptor is loaded
// without forcing a data format.
var ErrScriptDescriptor = errors.New("JavaScript descriptors are not supported; convert to JSON, YAML or TOML")

// ParseFormat converts a user-supplied name into a Format.
// The empty string yields FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown descriptor format %q (want json, yaml or toml)", s)
	}
}

// DetectFormat picks a format from the file extension.
// Unknown extensions are treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".js", ".cjs", ".mjs", ".ts":
		return FormatScript
	default:
		return FormatJSON
	}
}

// unmarshal decodes data into a generic document tree.
func unmarshal(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatScript:
		return nil, ErrScriptDescriptor
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, err
	}

	// An empty YAML document decodes without error
	if raw == nil {
		raw = make(map[string]any)
	}
	return raw, nil
}
