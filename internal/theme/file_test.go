package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThemeFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midnight.json")
	content := `{
  "name": "midnight",
  "version": "1.0.0",
  "type": "dark",
  "colors": {
    "colors.background": "#1e1e1e",
    "button.background": "@colors.background"
  },
  "styles": {
    "font.size": "13px"
  },
  "tokenColors": [
    {"name": "Comments", "scope": "comment", "settings": {"foreground": "#6a9955", "fontStyle": "italic"}}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}

	if th.Name() != "midnight" {
		t.Errorf("Expected name 'midnight', got %s", th.Name())
	}
	if th.Type() != TypeDark {
		t.Errorf("Expected type dark, got %s", th.Type())
	}
	if v, _ := th.Color("button.background"); v != "@colors.background" {
		t.Errorf("References should load unresolved, got %s", v)
	}
	if v, _ := th.Property("font.size"); v != "13px" {
		t.Errorf("Expected font.size 13px, got %s", v)
	}
	rules := th.TokenColors()
	if len(rules) != 1 || rules[0].Settings.FontStyle != "italic" {
		t.Errorf("Expected 1 italic rule, got %+v", rules)
	}
}

func TestLoadThemeFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylight.toml")
	content := `name = "daylight"
version = "1.0.0"
type = "light"

[colors]
"colors.background" = "#ffffff"
"colors.foreground" = "#333333"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}
	if th.Name() != "daylight" {
		t.Errorf("Expected name 'daylight', got %s", th.Name())
	}
	if v, _ := th.Color("colors.foreground"); v != "#333333" {
		t.Errorf("Expected colors.foreground #333333, got %s", v)
	}
}

func TestLoadThemeNestedColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.json")
	content := `{
  "name": "nested",
  "version": "1.0.0",
  "colors": {
    "button": {"background": "#007acc", "foreground": "#ffffff"}
  }
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}
	if v, _ := th.Color("button.background"); v != "#007acc" {
		t.Errorf("Nested keys should flatten with dots, got %s", v)
	}
}

func TestLoadThemeMalformed(t *testing.T) {
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadThemeFromFile(badJSON); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for malformed JSON, got %v", err)
	}

	badTOML := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badTOML, []byte("name = [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadThemeFromFile(badTOML); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for malformed TOML, got %v", err)
	}

	if _, err := LoadThemeFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadThemeInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	content := `{"name": "", "version": "nope", "colors": {"colors.background": "#zzzzzz"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := LoadThemeFromFile(path)
	if err == nil {
		t.Fatal("Expected validation failure")
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("Expected *BuildError, got %T", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original, err := NewBuilder("roundtrip").
		SetVersion("2.0.0").
		SetType(TypeDark).
		AddColor("colors.background", "#1e1e1e").
		AddColor("button.background", "@colors.background").
		AddStyle("font.size", "13px").
		AddMetadata("author", "test").
		AddTokenColor("comment", TokenColorSettings{Foreground: "#6a9955", FontStyle: "italic"}, "Comments").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, ext := range []string{".json", ".toml"} {
		path := filepath.Join(t.TempDir(), "theme"+ext)
		if err := SaveThemeToFile(original, path); err != nil {
			t.Fatalf("SaveThemeToFile(%s) failed: %v", ext, err)
		}

		loaded, err := LoadThemeFromFile(path)
		if err != nil {
			t.Fatalf("LoadThemeFromFile(%s) failed: %v", ext, err)
		}
		if !loaded.Equal(original) {
			t.Errorf("%s round trip changed the theme", ext)
		}
	}
}

func TestSaveThemeNil(t *testing.T) {
	if err := SaveThemeToFile(nil, filepath.Join(t.TempDir(), "x.json")); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	th, err := FromMap(map[string]any{
		"name":    "inline",
		"version": "1.0.0",
		"type":    "dark",
		"colors": map[string]any{
			"colors.background": "#1e1e1e",
		},
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if th.Name() != "inline" {
		t.Errorf("Expected name 'inline', got %s", th.Name())
	}
}

func TestFromMapNonStringVersion(t *testing.T) {
	th, err := FromMap(map[string]any{
		"name":    "typed",
		"version": 2.0,
		"type":    "dark",
		"colors": map[string]any{
			"colors.background": "#1e1e1e",
		},
	})
	if th != nil {
		t.Errorf("Expected no theme for non-string version, got version %s", th.Version())
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for non-string version, got %v", err)
	}
}

func TestFromMapIllTypedFields(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{"name", 7},
		{"type", []any{"dark"}},
		{"colors", "notamap"},
		{"styles", 42},
		{"metadata", "author"},
		{"metadata", map[string]any{"author": 5}},
		{"tokenColors", "bold"},
		{"tokenColors", []any{"bold"}},
		{"tokenColors", []any{map[string]any{"scope": "comment", "settings": "italic"}}},
		{"tokenColors", []any{map[string]any{"scope": 3, "settings": map[string]any{}}}},
	}
	for _, tt := range tests {
		doc := map[string]any{
			"name":    "typed",
			"version": "1.0.0",
			"type":    "dark",
			"colors": map[string]any{
				"colors.background": "#1e1e1e",
			},
		}
		doc[tt.field] = tt.value
		th, err := FromMap(doc)
		if th != nil {
			t.Errorf("Expected no theme for ill-typed %s %v, got one", tt.field, tt.value)
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Expected ErrInvalidFormat for ill-typed %s %v, got %v", tt.field, tt.value, err)
		}
	}
}

func TestLoadThemeIllTypedField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "illtyped.json")
	content := `{"name": "illtyped", "version": 2.0, "type": "dark", "colors": {"colors.background": "#1e1e1e"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	if _, err := LoadThemeFromFile(path); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for non-string version in file, got %v", err)
	}
}
