package descriptor

import (
	"maps"
	"slices"
	"strings"
)

// Well-known theme extension categories.
const (
	CategoryColors     = "colors"
	CategoryFontFamily = "fontFamily"
)

// Descriptor is the typed form of a build descriptor.
// Values returned by Load are never mutated by this package afterwards.
type Descriptor struct {
	Content   []string // Glob patterns scanned for class names, in declared order
	Theme     Theme
	Plugins   []string // Plugin references, in declared order
	DarkMode  string   // Optional dark mode strategy ("media", "class", ...)
	Prefix    string   // Optional class prefix
	Important bool
}

// Theme holds the theme section of a descriptor.
// Only the additive "extend" intent is exposed; merging with the
// build tool's default tokens is not done here.
type Theme struct {
	Extend Extension
}

// Extension maps theme categories to their extra tokens.
type Extension struct {
	Colors     map[string]string            // Color token name -> CSS color
	FontFamily map[string][]string          // Font role -> ordered font stack
	Other      map[string]map[string]string // Any other category -> token -> value
}

// Token is a single flattened theme extension entry.
type Token struct {
	Category string
	Name     string
	Value    string
}

// New returns an empty descriptor with all collections initialised.
func New() *Descriptor {
	return &Descriptor{
		Content: []string{},
		Plugins: []string{},
		Theme: Theme{
			Extend: Extension{
				Colors:     make(map[string]string),
				FontFamily: make(map[string][]string),
				Other:      make(map[string]map[string]string),
			},
		},
	}
}

// Categories returns the extension categories that hold at least one token,
// colors and fontFamily first, the rest sorted by name.
func (d *Descriptor) Categories() []string {
	var cats []string
	if len(d.Theme.Extend.Colors) > 0 {
		cats = append(cats, CategoryColors)
	}
	if len(d.Theme.Extend.FontFamily) > 0 {
		cats = append(cats, CategoryFontFamily)
	}
	for _, name := range slices.Sorted(maps.Keys(d.Theme.Extend.Other)) {
		if len(d.Theme.Extend.Other[name]) > 0 {
			cats = append(cats, name)
		}
	}
	return cats
}

// Tokens returns every extension token in a stable order:
// by category (as Categories) and then by token name.
// Font stacks are joined with ", ".
func (d *Descriptor) Tokens() []Token {
	var tokens []Token

	for _, name := range slices.Sorted(maps.Keys(d.Theme.Extend.Colors)) {
		tokens = append(tokens, Token{
			Category: CategoryColors,
			Name:     name,
			Value:    d.Theme.Extend.Colors[name],
		})
	}

	for _, name := range slices.Sorted(maps.Keys(d.Theme.Extend.FontFamily)) {
		tokens = append(tokens, Token{
			Category: CategoryFontFamily,
			Name:     name,
			Value:    strings.Join(d.Theme.Extend.FontFamily[name], ", "),
		})
	}

	for _, cat := range slices.Sorted(maps.Keys(d.Theme.Extend.Other)) {
		values := d.Theme.Extend.Other[cat]
		for _, name := range slices.Sorted(maps.Keys(values)) {
			tokens = append(tokens, Token{Category: cat, Name: name, Value: values[name]})
		}
	}

	return tokens
}

// Equal reports whether two descriptors are structurally equal.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !slices.Equal(d.Content, o.Content) ||
		!slices.Equal(d.Plugins, o.Plugins) ||
		d.DarkMode != o.DarkMode ||
		d.Prefix != o.Prefix ||
		d.Important != o.Important {
		return false
	}

	a, b := d.Theme.Extend, o.Theme.Extend
	if !maps.Equal(a.Colors, b.Colors) {
		return false
	}
	if !maps.EqualFunc(a.FontFamily, b.FontFamily, func(x, y []string) bool {
		return slices.Equal(x, y)
	}) {
		return false
	}
	return maps.EqualFunc(a.Other, b.Other, func(x, y map[string]string) bool {
		return maps.Equal(x, y)
	})
}

// Document returns the descriptor in its declarative shape, suitable for
// re-encoding as JSON, YAML or TOML. Optional fields are omitted when unset.
func (d *Descriptor) Document() map[string]any {
	extend := make(map[string]any, 2+len(d.Theme.Extend.Other))
	extend[CategoryColors] = d.Theme.Extend.Colors
	extend[CategoryFontFamily] = d.Theme.Extend.FontFamily
	for cat, values := range d.Theme.Extend.Other {
		extend[cat] = values
	}

	doc := map[string]any{
		"content": d.Content,
		"theme":   map[string]any{"extend": extend},
		"plugins": d.Plugins,
	}
	if d.DarkMode != "" {
		doc["darkMode"] = d.DarkMode
	}
	if d.Prefix != "" {
		doc["prefix"] = d.Prefix
	}
	if d.Important {
		doc["important"] = true
	}
	return doc
}
