package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "tailwind.config.json", cfg.Descriptor.Path)
	assert.Empty(t, cfg.Descriptor.Format)
	assert.Equal(t, "plain", cfg.Output.Format)
	assert.True(t, cfg.Output.Swatches)
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[descriptor]
path = "web/tailwind.config.yaml"
format = "yaml"

[output]
format = "json"
swatches = false

[tui]
show_help = false

[clipboard]
command = "xclip"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "web/tailwind.config.yaml", cfg.Descriptor.Path)
	assert.Equal(t, "yaml", cfg.Descriptor.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Swatches)
	assert.False(t, cfg.TUI.ShowHelp)
	assert.Equal(t, "xclip", cfg.Clipboard.Command)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[output]
format = "yaml"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, "yaml", cfg.Output.Format)

	// Unchanged fields should have defaults
	assert.True(t, cfg.Output.Swatches)
	assert.Equal(t, "tailwind.config.json", cfg.Descriptor.Path)
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`this is not valid toml [`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Descriptor.Path = "site/tailwind.config.toml"
	cfg.Output.Swatches = false

	err := cfg.Save(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "site/tailwind.config.toml", loaded.Descriptor.Path)
	assert.False(t, loaded.Output.Swatches)
}

func TestConfig_DescriptorPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "explicit.yaml", cfg.DescriptorPath("explicit.yaml"))
	assert.Equal(t, "tailwind.config.json", cfg.DescriptorPath(""))

	cfg.Descriptor.Path = ""
	assert.Equal(t, DefaultDescriptorPath, cfg.DescriptorPath(""))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/windcfg/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	path := ConfigPath()
	assert.Contains(t, path, "windcfg/config.toml")
}
