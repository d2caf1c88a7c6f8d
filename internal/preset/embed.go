// Package preset provides bundled descriptors that can be loaded directly or
// scaffolded into a project.
package preset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

// EmbeddedPresets contains all bundled descriptor files.
//
//go:embed presets/*.json presets/*.yaml presets/*.toml
var EmbeddedPresets embed.FS

// DefaultName is the preset used when none is requested.
const DefaultName = "highway17"

// BundledPresets lists all embedded preset names.
var BundledPresets = []string{"highway17", "hud", "minimal"}

// ErrUnknownPreset is returned when a preset name is not bundled.
var ErrUnknownPreset = errors.New("unknown preset")

// lookup finds the embedded file for a preset name.
func lookup(name string) (string, bool) {
	if name == "" {
		name = DefaultName
	}

	entries, err := fs.ReadDir(EmbeddedPresets, "presets")
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		file := entry.Name()
		if strings.TrimSuffix(file, path.Ext(file)) == name {
			return path.Join("presets", file), true
		}
	}
	return "", false
}

// Get retrieves a bundled preset by name.
// Returns the raw bytes, their format and whether it was found.
func Get(name string) ([]byte, descriptor.Format, bool) {
	file, ok := lookup(name)
	if !ok {
		return nil, descriptor.FormatAuto, false
	}
	data, err := EmbeddedPresets.ReadFile(file)
	if err != nil {
		return nil, descriptor.FormatAuto, false
	}
	return data, descriptor.DetectFormat(file), true
}

// Load loads and validates a bundled preset.
func Load(name string) (*descriptor.Descriptor, error) {
	file, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return descriptor.LoadFS(EmbeddedPresets, file)
}

// List returns names of all embedded presets.
func List() []string {
	var presets []string

	entries, err := fs.ReadDir(EmbeddedPresets, "presets")
	if err != nil {
		return BundledPresets // Fallback to known list
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		presets = append(presets, strings.TrimSuffix(name, path.Ext(name)))
	}

	return presets
}

// Extension returns the file extension of a bundled preset, such as ".json".
func Extension(name string) string {
	file, ok := lookup(name)
	if !ok {
		return ""
	}
	return path.Ext(file)
}

// Write copies a bundled preset to dest, creating parent directories.
// An existing file is only replaced when force is set.
func Write(name, dest string, force bool) error {
	data, _, ok := Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return WriteFile(dest, data, force)
}

// WriteFile writes descriptor data to dest with the same rules as Write.
func WriteFile(dest string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}
