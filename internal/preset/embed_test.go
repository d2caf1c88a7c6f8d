package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/windcfg/internal/descriptor"
)

func TestList(t *testing.T) {
	assert.ElementsMatch(t, BundledPresets, List())
	assert.Contains(t, List(), DefaultName)
}

func TestLoad_Highway17(t *testing.T) {
	d, err := Load("highway17")
	require.NoError(t, err)

	assert.Equal(t, []string{"./web/components/**/*.templ", "./cmd/**/*.templ"}, d.Content)
	assert.Equal(t, map[string]string{
		"valve-orange": "#FF8C00",
		"valve-dark":   "#0D0D0D",
		"valve-cyan":   "#00FFFF",
		"valve-green":  "#00FF00",
		"dark":         "#0D0D0D",
	}, d.Theme.Extend.Colors)
	assert.Equal(t, []string{"Courier New", "monospace"}, d.Theme.Extend.FontFamily["mono"])
	assert.Empty(t, d.Plugins)
}

func TestLoad_DefaultName(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "#FF8C00", d.Theme.Extend.Colors["valve-orange"])
}

func TestLoad_Hud(t *testing.T) {
	d, err := Load("hud")
	require.NoError(t, err)

	assert.Equal(t, "class", d.DarkMode)
	assert.Equal(t, "#FF8C00", d.Theme.Extend.Colors["hud"])
	assert.Equal(t, "#8C4D00", d.Theme.Extend.Colors["hud-dim"])
	assert.Equal(t, "#FF3B30", d.Theme.Extend.Colors["health-low"])
	assert.Equal(t, []string{"Impact"}, d.Theme.Extend.FontFamily["display"])
	assert.Equal(t, "2px", d.Theme.Extend.Other["borderRadius"]["hud"])
}

func TestLoad_Minimal(t *testing.T) {
	d, err := Load("minimal")
	require.NoError(t, err)
	assert.Equal(t, []string{"./web/**/*.templ"}, d.Content)
	assert.Empty(t, d.Tokens())
}

func TestLoad_AllPresetsValidate(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			_, err := Load(name)
			assert.NoError(t, err)
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestGet(t *testing.T) {
	data, format, ok := Get("hud")
	require.True(t, ok)
	assert.Equal(t, descriptor.FormatTOML, format)
	assert.Contains(t, string(data), "[theme.extend.colors.hud]")

	_, _, ok = Get("nonexistent")
	assert.False(t, ok)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".json", Extension("highway17"))
	assert.Equal(t, ".yaml", Extension("minimal"))
	assert.Equal(t, "", Extension("nonexistent"))
}

func TestWrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "web", "tailwind.config.json")

	require.NoError(t, Write("highway17", dest, false))

	d, err := descriptor.Load(dest)
	require.NoError(t, err)
	assert.Len(t, d.Theme.Extend.Colors, 5)

	// Refuses to overwrite without force
	err = Write("highway17", dest, false)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0644))
	require.NoError(t, Write("highway17", dest, true))

	d, err = descriptor.Load(dest)
	require.NoError(t, err)
	assert.Len(t, d.Content, 2)
}

func TestWrite_Unknown(t *testing.T) {
	err := Write("nonexistent", filepath.Join(t.TempDir(), "x.json"), false)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
