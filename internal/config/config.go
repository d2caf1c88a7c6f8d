// Package config handles windcfg's own settings file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultDescriptorPath = "tailwind.config.json"
	DefaultOutputFormat   = "plain"
)

// Config represents the windcfg configuration.
type Config struct {
	Descriptor DescriptorConfig `toml:"descriptor"`
	Output     OutputConfig     `toml:"output"`
	TUI        TUIConfig        `toml:"tui"`
	Clipboard  ClipboardConfig  `toml:"clipboard"`
}

// DescriptorConfig holds descriptor lookup defaults.
type DescriptorConfig struct {
	Path   string `toml:"path"`   // Used when no path argument is given
	Format string `toml:"format"` // json, yaml, toml (empty = by extension)
}

// OutputConfig holds default output options.
type OutputConfig struct {
	Format   string `toml:"format"`   // plain, json, yaml, toml
	Swatches bool   `toml:"swatches"` // Color swatches in plain output
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// ClipboardConfig holds clipboard settings (TUI only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Descriptor: DescriptorConfig{
			Path:   DefaultDescriptorPath,
			Format: "",
		},
		Output: OutputConfig{
			Format:   DefaultOutputFormat,
			Swatches: true,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "windcfg", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DescriptorPath returns the descriptor to load: arg if given,
// otherwise the configured default.
func (c *Config) DescriptorPath(arg string) string {
	if arg != "" {
		return arg
	}
	if c.Descriptor.Path != "" {
		return c.Descriptor.Path
	}
	return DefaultDescriptorPath
}
