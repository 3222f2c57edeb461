package theme

import (
	"fmt"
	"testing"
)

func TestThemeAccessors(t *testing.T) {
	th := New("midnight", "1.2.0", TypeDark,
		map[string]string{"colors.background": "#1e1e1e", "colors.foreground": "#d4d4d4"},
		map[string]string{"font.size": "13px"},
		map[string]string{"author": "test"},
		[]TokenColor{{Name: "Comments", Scope: "comment", Settings: TokenColorSettings{Foreground: "#6a9955", FontStyle: "italic"}}})

	if th.Name() != "midnight" {
		t.Errorf("Expected name 'midnight', got %s", th.Name())
	}
	if th.Version() != "1.2.0" {
		t.Errorf("Expected version '1.2.0', got %s", th.Version())
	}
	if th.Type() != TypeDark {
		t.Errorf("Expected type dark, got %s", th.Type())
	}

	if v, ok := th.Color("colors.background"); !ok || v != "#1e1e1e" {
		t.Errorf("Expected colors.background #1e1e1e, got %s (ok=%v)", v, ok)
	}
	if _, ok := th.Color("colors.missing"); ok {
		t.Error("Expected missing color to report ok=false")
	}
	if v := th.ColorOr("colors.missing", "#000000"); v != "#000000" {
		t.Errorf("Expected fallback #000000, got %s", v)
	}

	if v, ok := th.Property("font.size"); !ok || v != "13px" {
		t.Errorf("Expected font.size 13px, got %s (ok=%v)", v, ok)
	}
	if v := th.PropertyOr("font.weight", "normal"); v != "normal" {
		t.Errorf("Expected fallback 'normal', got %s", v)
	}

	if v, ok := th.Metadata("author"); !ok || v != "test" {
		t.Errorf("Expected metadata author 'test', got %s (ok=%v)", v, ok)
	}

	if th.ColorCount() != 2 {
		t.Errorf("Expected 2 colors, got %d", th.ColorCount())
	}
	if len(th.TokenColors()) != 1 {
		t.Errorf("Expected 1 token color rule, got %d", len(th.TokenColors()))
	}
	if th.SizeEstimate() <= 0 {
		t.Error("SizeEstimate should be positive")
	}
}

func TestThemeImmutability(t *testing.T) {
	colors := map[string]string{"colors.background": "#ffffff"}
	th := New("snapshot", "1.0.0", TypeLight, colors, nil, nil, nil)

	// Mutating the input after construction must not leak in.
	colors["colors.background"] = "#000000"
	if v, _ := th.Color("colors.background"); v != "#ffffff" {
		t.Errorf("Expected #ffffff after input mutation, got %s", v)
	}

	// Mutating an accessor copy must not leak in either.
	th.Colors()["colors.background"] = "#ff0000"
	if v, _ := th.Color("colors.background"); v != "#ffffff" {
		t.Errorf("Expected #ffffff after copy mutation, got %s", v)
	}
}

func TestThemeHashStable(t *testing.T) {
	a := New("t", "1.0.0", TypeDark,
		map[string]string{"a": "#111111", "b": "#222222"}, nil, nil, nil)
	b := New("t", "1.0.0", TypeDark,
		map[string]string{"b": "#222222", "a": "#111111"}, nil, nil, nil)

	if a.Hash() != b.Hash() {
		t.Errorf("Expected equal hashes for equal themes, got %d and %d", a.Hash(), b.Hash())
	}
	if !a.Equal(b) {
		t.Error("Expected themes with identical fields to be Equal")
	}
}

func TestThemeHashDiffers(t *testing.T) {
	base := New("t", "1.0.0", TypeDark,
		map[string]string{"colors.background": "#1e1e1e"}, nil, nil, nil)

	cases := []*Theme{
		New("u", "1.0.0", TypeDark, map[string]string{"colors.background": "#1e1e1e"}, nil, nil, nil),
		New("t", "2.0.0", TypeDark, map[string]string{"colors.background": "#1e1e1e"}, nil, nil, nil),
		New("t", "1.0.0", TypeLight, map[string]string{"colors.background": "#1e1e1e"}, nil, nil, nil),
		New("t", "1.0.0", TypeDark, map[string]string{"colors.background": "#2e2e2e"}, nil, nil, nil),
	}

	for i, other := range cases {
		if base.Equal(other) {
			t.Errorf("Case %d: expected themes to differ", i)
		}
		if base.Hash() == other.Hash() {
			t.Errorf("Case %d: expected hashes to differ", i)
		}
	}
}

func TestThemeEqualNil(t *testing.T) {
	th := New("t", "1.0.0", TypeLight, nil, nil, nil, nil)
	if th.Equal(nil) {
		t.Error("Theme should not equal nil")
	}
	if !th.Equal(th) {
		t.Error("Theme should equal itself")
	}
}

func TestSizeEstimateLargeTheme(t *testing.T) {
	b := NewBuilder("big").SetType(TypeDark)
	for i := 0; i < 1000; i++ {
		b.AddColor(fmt.Sprintf("big%d.background", i), "#1e1e1e")
	}
	th, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := th.SizeEstimate(); got <= 0 || got >= 500*1024 {
		t.Errorf("Expected a 1000-property theme to fit under 500KB, got %d bytes", got)
	}
}
