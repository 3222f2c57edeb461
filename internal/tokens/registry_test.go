package tokens

import (
	"strings"
	"testing"
)

// fakeTheme is a minimal ThemeReader for resolution tests.
type fakeTheme struct {
	themeType string
	colors    map[string]string
}

func (f *fakeTheme) Color(name string) (string, bool) {
	v, ok := f.colors[name]
	return v, ok
}

func (f *fakeTheme) Type() string { return f.themeType }

func TestCatalogComplete(t *testing.T) {
	if Count() != 180 {
		t.Errorf("Expected 180 catalog tokens, got %d", Count())
	}

	for _, name := range AllNames() {
		tok, ok := Get(name)
		if !ok {
			t.Fatalf("Get(%q) failed for a listed name", name)
		}
		if tok.Description == "" {
			t.Errorf("Token %s has no description", name)
		}
		if tok.DefaultLight == "" {
			t.Errorf("Token %s has no light default", name)
		}
		if tok.DefaultDark == "" {
			t.Errorf("Token %s has no dark default", name)
		}
		if tok.Category == "" {
			t.Errorf("Token %s has no category", name)
		}
		if !ValidName(name) {
			t.Errorf("Catalog token %s has a malformed name", name)
		}
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"colors.background", "button.hoverBackground", "a", "tab.activeBorder", "x_y.z1"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}

	invalid := []string{"", "9token", ".leading", "has space", "has-dash", "has!bang", strings.Repeat("a", 256)}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("Expected %q to be invalid", name)
		}
	}
}

func TestByCategory(t *testing.T) {
	buttons := ByCategory(CategoryButton)
	if len(buttons) == 0 {
		t.Fatal("Expected button tokens in the catalog")
	}
	for i, tok := range buttons {
		if tok.Category != CategoryButton {
			t.Errorf("Token %s has wrong category %s", tok.Name, tok.Category)
		}
		if i > 0 && buttons[i-1].Name > tok.Name {
			t.Error("ByCategory should return sorted entries")
		}
	}
}

func TestDefaultValue(t *testing.T) {
	light, ok := DefaultValue("button.background", false)
	if !ok {
		t.Fatal("Expected button.background in the catalog")
	}
	dark, _ := DefaultValue("button.background", true)
	if light == dark {
		t.Errorf("Expected distinct light/dark defaults, got %s for both", light)
	}
	if dark != "#0e639c" {
		t.Errorf("Expected dark default #0e639c, got %s", dark)
	}

	if _, ok := DefaultValue("not.a.token", true); ok {
		t.Error("Expected unknown token to report ok=false")
	}
}

func TestNamesWithPrefix(t *testing.T) {
	names := NamesWithPrefix("statusBar.")
	if len(names) == 0 {
		t.Fatal("Expected statusBar.* tokens")
	}
	for _, name := range names {
		if !strings.HasPrefix(name, "statusBar.") {
			t.Errorf("Unexpected name %s for prefix statusBar.", name)
		}
	}
}

func TestResolveExplicitValueWins(t *testing.T) {
	th := &fakeTheme{themeType: "dark", colors: map[string]string{
		"button.background": "#ff00ff",
	}}
	if v := Resolve("button.background", th); v != "#ff00ff" {
		t.Errorf("Expected explicit value #ff00ff, got %s", v)
	}
}

func TestResolveCatalogDefault(t *testing.T) {
	dark := &fakeTheme{themeType: "dark", colors: map[string]string{
		"colors.background": "#1e1e1e",
	}}
	if v := Resolve("button.background", dark); v != "#0e639c" {
		t.Errorf("Expected dark catalog default #0e639c, got %s", v)
	}

	light := &fakeTheme{themeType: "light"}
	if v := Resolve("button.background", light); v != "#007acc" {
		t.Errorf("Expected light catalog default #007acc, got %s", v)
	}
}

func TestResolveSuffixHeuristic(t *testing.T) {
	th := &fakeTheme{themeType: "dark", colors: map[string]string{
		"colors.background": "#101010",
		"colors.foreground": "#fafafa",
	}}

	// Unknown tokens ending in background/foreground borrow the base colors.
	if v := Resolve("myWidget.background", th); v != "#101010" {
		t.Errorf("Expected borrowed background #101010, got %s", v)
	}
	if v := Resolve("myWidget.customForeground", th); v != "#fafafa" {
		t.Errorf("Expected borrowed foreground #fafafa, got %s", v)
	}
}

func TestResolveHardFallbacks(t *testing.T) {
	empty := &fakeTheme{themeType: "dark"}

	if v := Resolve("myWidget.background", empty); v != "#1e1e1e" {
		t.Errorf("Expected hard dark background fallback, got %s", v)
	}
	if v := Resolve("myWidget.foreground", empty); v != "#d4d4d4" {
		t.Errorf("Expected hard dark foreground fallback, got %s", v)
	}
	if v := Resolve("myWidget.border", empty); v != "#cccccc" {
		t.Errorf("Expected generic dark fallback, got %s", v)
	}

	lightEmpty := &fakeTheme{themeType: "light"}
	if v := Resolve("myWidget.border", lightEmpty); v != "#333333" {
		t.Errorf("Expected generic light fallback, got %s", v)
	}
}

func TestResolveNilTheme(t *testing.T) {
	// No theme at all still yields a usable dark color.
	if v := Resolve("button.background", nil); v != "#0e639c" {
		t.Errorf("Expected dark catalog default with nil theme, got %s", v)
	}
	if v := Resolve("unknown.thing", nil); v == "" {
		t.Error("Resolve should never return an empty value")
	}
}

func TestIsDarkTheme(t *testing.T) {
	if !IsDarkTheme(&fakeTheme{themeType: "dark"}) {
		t.Error("Type dark should be dark")
	}
	if !IsDarkTheme(&fakeTheme{themeType: "high-contrast"}) {
		t.Error("Type high-contrast should be dark")
	}
	if IsDarkTheme(&fakeTheme{themeType: "light"}) {
		t.Error("Type light should not be dark")
	}

	// Without a type, background luminance decides.
	darkBg := &fakeTheme{colors: map[string]string{"colors.background": "#101010"}}
	if !IsDarkTheme(darkBg) {
		t.Error("Near-black background should be dark")
	}
	lightBg := &fakeTheme{colors: map[string]string{"colors.background": "#f8f8f8"}}
	if IsDarkTheme(lightBg) {
		t.Error("Near-white background should not be dark")
	}

	// Nothing to go on: treated as dark.
	if !IsDarkTheme(&fakeTheme{}) {
		t.Error("Theme with no type and no background should default to dark")
	}
	if !IsDarkTheme(nil) {
		t.Error("Nil theme should default to dark")
	}
}

func BenchmarkResolve(b *testing.B) {
	th := &fakeTheme{themeType: "dark", colors: map[string]string{
		"colors.background": "#1e1e1e",
	}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Resolve("button.background", th)
	}
}
