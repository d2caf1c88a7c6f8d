package descriptor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleDescriptor() *Descriptor {
	d := New()
	d.Content = []string{"./web/**/*.templ"}
	d.Theme.Extend.Colors["valve-orange"] = "#FF8C00"
	d.Theme.Extend.Colors["dark"] = "#0D0D0D"
	d.Theme.Extend.FontFamily["mono"] = []string{"Courier New", "monospace"}
	d.Theme.Extend.Other["spacing"] = map[string]string{"72": "18rem"}
	return d
}

func TestTokens_Order(t *testing.T) {
	tokens := sampleDescriptor().Tokens()

	assert.Equal(t, []Token{
		{Category: "colors", Name: "dark", Value: "#0D0D0D"},
		{Category: "colors", Name: "valve-orange", Value: "#FF8C00"},
		{Category: "fontFamily", Name: "mono", Value: "Courier New, monospace"},
		{Category: "spacing", Name: "72", Value: "18rem"},
	}, tokens)
}

func TestCategories(t *testing.T) {
	d := sampleDescriptor()
	assert.Equal(t, []string{"colors", "fontFamily", "spacing"}, d.Categories())

	assert.Empty(t, New().Categories())
}

func TestEqual(t *testing.T) {
	a := sampleDescriptor()
	b := sampleDescriptor()
	assert.True(t, a.Equal(b))

	b.Theme.Extend.FontFamily["mono"] = []string{"monospace", "Courier New"}
	assert.False(t, a.Equal(b), "font stack order matters")

	b = sampleDescriptor()
	b.Content = append(b.Content, "./cmd/**")
	assert.False(t, a.Equal(b))

	b = sampleDescriptor()
	b.Theme.Extend.Other["spacing"]["84"] = "21rem"
	assert.False(t, a.Equal(b))

	var nilDesc *Descriptor
	assert.True(t, nilDesc.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestDocument_RoundTrip(t *testing.T) {
	want := sampleDescriptor()
	want.DarkMode = "class"

	data, err := json.Marshal(want.Document())
	require.NoError(t, err)

	got, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestDocument_OmitsUnsetOptionals(t *testing.T) {
	doc := New().Document()
	assert.NotContains(t, doc, "darkMode")
	assert.NotContains(t, doc, "prefix")
	assert.NotContains(t, doc, "important")
	assert.Contains(t, doc, "plugins")
}

// genDescriptor draws a random valid descriptor.
func genDescriptor(t *rapid.T) *Descriptor {
	name := rapid.StringMatching(`[a-z][a-z0-9]{0,8}`)
	value := rapid.StringMatching(`#[0-9A-F]{6}`)

	d := New()
	d.Content = rapid.SliceOf(rapid.StringMatching(`\./[a-z]{1,6}/\*\*/\*\.[a-z]{2,5}`)).Draw(t, "content")
	d.Plugins = rapid.SliceOf(rapid.StringMatching(`@?[a-z]{1,8}(/[a-z]{1,8})?`)).Draw(t, "plugins")
	d.Theme.Extend.Colors = rapid.MapOf(name, value).Draw(t, "colors")
	d.Theme.Extend.FontFamily = rapid.MapOf(name,
		rapid.SliceOfN(rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,10}`), 1, 3)).Draw(t, "fonts")

	// Encoders turn nil collections into null, which is not a valid descriptor
	if d.Content == nil {
		d.Content = []string{}
	}
	if d.Plugins == nil {
		d.Plugins = []string{}
	}
	if d.Theme.Extend.Colors == nil {
		d.Theme.Extend.Colors = make(map[string]string)
	}
	if d.Theme.Extend.FontFamily == nil {
		d.Theme.Extend.FontFamily = make(map[string][]string)
	}
	return d
}

func TestDecode_PreservesContentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		want := genDescriptor(t)

		data, err := json.Marshal(want.Document())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		got, err := Decode(data, FormatJSON)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Content) != len(want.Content) {
			t.Fatalf("content length %d, want %d", len(got.Content), len(want.Content))
		}
		if !want.Equal(got) {
			t.Fatalf("decoded descriptor differs: %+v vs %+v", want, got)
		}
	})
}

func TestDecode_IdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data, err := json.Marshal(genDescriptor(t).Document())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		first, err := Decode(data, FormatJSON)
		if err != nil {
			t.Fatalf("first decode: %v", err)
		}
		second, err := Decode(data, FormatJSON)
		if err != nil {
			t.Fatalf("second decode: %v", err)
		}
		if !first.Equal(second) {
			t.Fatalf("decodes differ")
		}
	})
}
