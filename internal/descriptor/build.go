package descriptor

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// defaultKey names the value of a nested token group itself.
const defaultKey = "DEFAULT"

// builder converts a decoded document tree into a Descriptor,
// collecting every validation problem it finds.
type builder struct {
	logger   *slog.Logger
	problems []error
}

func (b *builder) fail(field, format string, args ...any) {
	b.problems = append(b.problems, &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

// err returns nil, the single problem, or all problems joined.
func (b *builder) err() error {
	switch len(b.problems) {
	case 0:
		return nil
	case 1:
		return b.problems[0]
	default:
		return errors.Join(b.problems...)
	}
}

func (b *builder) build(raw map[string]any) *Descriptor {
	d := New()

	if _, ok := raw["content"]; !ok {
		b.fail("content", "is required")
	}

	for _, key := range sortedKeys(raw) {
		value := raw[key]
		switch key {
		case "content":
			d.Content = b.content(value)
		case "theme":
			d.Theme = b.theme(value)
		case "plugins":
			d.Plugins = b.stringList("plugins", value, false)
		case "darkMode":
			d.DarkMode = b.str("darkMode", value)
		case "prefix":
			d.Prefix = b.str("prefix", value)
		case "important":
			v, ok := value.(bool)
			if !ok {
				b.fail("important", "must be a boolean, got %s", kindOf(value))
			}
			d.Important = v
		default:
			b.logger.Debug("ignoring unrecognised descriptor option", "key", key)
		}
	}

	return d
}

// content accepts either a list of globs or an object with a "files" list.
func (b *builder) content(value any) []string {
	if m, ok := asMap(value); ok {
		files, ok := m["files"]
		if !ok {
			b.fail("content.files", "is required when content is an object")
			return []string{}
		}
		if rel, ok := m["relative"]; ok {
			if _, isBool := rel.(bool); !isBool {
				b.fail("content.relative", "must be a boolean, got %s", kindOf(rel))
			}
		}
		return b.stringList("content.files", files, true)
	}
	return b.stringList("content", value, true)
}

func (b *builder) stringList(field string, value any, nonEmpty bool) []string {
	items, ok := value.([]any)
	if !ok {
		b.fail(field, "must be a list of strings, got %s", kindOf(value))
		return []string{}
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			b.fail(fmt.Sprintf("%s[%d]", field, i), "must be a string, got %s", kindOf(item))
			continue
		}
		if nonEmpty && s == "" {
			b.fail(fmt.Sprintf("%s[%d]", field, i), "must not be empty")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (b *builder) str(field string, value any) string {
	s, ok := value.(string)
	if !ok {
		b.fail(field, "must be a string, got %s", kindOf(value))
	}
	return s
}

func (b *builder) theme(value any) Theme {
	t := New().Theme
	if value == nil {
		return t
	}

	m, ok := asMap(value)
	if !ok {
		b.fail("theme", "must be an object, got %s", kindOf(value))
		return t
	}

	for _, key := range sortedKeys(m) {
		if key != "extend" {
			b.logger.Debug("theme overrides are left to the build tool", "category", key)
			continue
		}
		b.extension(m[key], &t.Extend)
	}
	return t
}

func (b *builder) extension(value any, ext *Extension) {
	if value == nil {
		return
	}

	m, ok := asMap(value)
	if !ok {
		b.fail("theme.extend", "must be an object, got %s", kindOf(value))
		return
	}

	for _, cat := range sortedKeys(m) {
		field := "theme.extend." + cat
		if m[cat] == nil {
			continue
		}
		switch cat {
		case CategoryColors:
			b.flatten(field, "", m[cat], ext.Colors)
		case CategoryFontFamily:
			b.fontFamily(field, m[cat], ext.FontFamily)
		default:
			values, ok := stringTokens(m[cat])
			if !ok {
				b.logger.Debug("skipping extend category without plain string tokens", "category", cat)
				continue
			}
			ext.Other[cat] = values
		}
	}
}

// stringTokens returns value as a flat name to string map. Categories holding
// tuples, numbers or nested objects (fontSize, zIndex, keyframes) are not tokens.
func stringTokens(value any) (map[string]string, bool) {
	m, ok := asMap(value)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for key, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[key] = s
	}
	return out, true
}

// flatten copies string tokens into out, joining nested group names with "-".
func (b *builder) flatten(field, prefix string, value any, out map[string]string) {
	m, ok := asMap(value)
	if !ok {
		b.fail(field, "must be an object, got %s", kindOf(value))
		return
	}

	for _, key := range sortedKeys(m) {
		name := joinToken(prefix, key)
		path := field + "." + key

		switch v := m[key].(type) {
		case string:
			if _, dup := out[name]; dup {
				b.fail(path, "duplicates token %q", name)
				continue
			}
			out[name] = v
		default:
			if _, isMap := asMap(v); isMap {
				b.flatten(path, name, v, out)
				continue
			}
			b.fail(path, "must be a string, got %s", kindOf(v))
		}
	}
}

func (b *builder) fontFamily(field string, value any, out map[string][]string) {
	m, ok := asMap(value)
	if !ok {
		b.fail(field, "must be an object, got %s", kindOf(value))
		return
	}

	for _, role := range sortedKeys(m) {
		path := field + "." + role
		switch v := m[role].(type) {
		case string:
			out[role] = []string{v}
		case []any:
			out[role] = b.stringList(path, v, true)
		default:
			b.fail(path, "must be a string or a list of strings, got %s", kindOf(v))
		}
	}
}

func joinToken(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == defaultKey:
		return prefix
	default:
		return prefix + "-" + key
	}
}

// asMap normalises the map shapes produced by the JSON, YAML and TOML decoders.
func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "object"
	case float64, float32, int, int64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
