// Package tokens holds the static catalog of themeable color tokens:
// hierarchical dot-separated names, each with a category, description, and
// light/dark default values. The catalog is the bottom layer of token
// resolution; Resolve never fails to produce a usable color.
package tokens

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vilosource/vfwidgets-theme/internal/color"
)

// Category classifies a token by the UI area it themes.
type Category string

const (
	CategoryBase        Category = "base"
	CategoryButton      Category = "button"
	CategoryInput       Category = "input"
	CategoryList        Category = "list"
	CategoryEditor      Category = "editor"
	CategorySidebar     Category = "sidebar"
	CategoryPanel       Category = "panel"
	CategoryTab         Category = "tab"
	CategoryActivityBar Category = "activity-bar"
	CategoryStatusBar   Category = "status-bar"
	CategoryTitleBar    Category = "title-bar"
	CategoryMenu        Category = "menu"
	CategoryScrollbar   Category = "scrollbar"
	CategoryMisc        Category = "misc"
)

// ColorToken is one immutable catalog entry.
type ColorToken struct {
	Name         string
	Category     Category
	Description  string
	DefaultLight string
	DefaultDark  string
}

// ThemeReader is the read-only surface of a theme that token resolution
// needs. *theme.Theme satisfies it.
type ThemeReader interface {
	// Color returns the theme's explicit value for a token, if defined.
	Color(name string) (string, bool)
	// Type returns the theme type: "light", "dark", or "high-contrast".
	Type() string
}

// namePattern: dot-hierarchical, starts with a letter,
// letters/digits/dot/underscore only.
var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._]*$`)

const maxNameLength = 255

// Hard-coded bottom of the fallback chain.
const (
	fallbackLightBackground = "#ffffff"
	fallbackDarkBackground  = "#1e1e1e"
	fallbackLightForeground = "#333333"
	fallbackDarkForeground  = "#d4d4d4"
	fallbackLightGeneric    = "#333333"
	fallbackDarkGeneric     = "#cccccc"
)

var (
	byName     map[string]ColorToken
	byCategory map[Category][]ColorToken
)

func init() {
	byName = make(map[string]ColorToken, len(catalog))
	byCategory = make(map[Category][]ColorToken)
	for _, t := range catalog {
		byName[t.Name] = t
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
}

// ValidName reports whether name is a well-formed token name.
func ValidName(name string) bool {
	return len(name) <= maxNameLength && namePattern.MatchString(name)
}

// Get returns the catalog entry for name.
func Get(name string) (ColorToken, bool) {
	t, ok := byName[name]
	return t, ok
}

// ByCategory returns all catalog entries in the given category,
// sorted by name.
func ByCategory(cat Category) []ColorToken {
	entries := byCategory[cat]
	out := make([]ColorToken, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DefaultValue returns the catalog default for name in the requested mode.
func DefaultValue(name string, isDark bool) (string, bool) {
	t, ok := byName[name]
	if !ok {
		return "", false
	}
	if isDark {
		return t.DefaultDark, true
	}
	return t.DefaultLight, true
}

// Count returns the number of catalog entries.
func Count() int {
	return len(byName)
}

// AllNames returns every catalog token name, sorted.
func AllNames() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesWithPrefix returns the sorted catalog names starting with prefix.
func NamesWithPrefix(prefix string) []string {
	var names []string
	for name := range byName {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve is the primary resolution entry point for consumers. It always
// returns a usable color: the theme's explicit value if defined, else the
// catalog default for the theme's light/dark mode, else a suffix heuristic
// (background/foreground tokens borrow the theme's own base colors), else a
// generic dark/light pair.
func Resolve(token string, theme ThemeReader) string {
	if theme != nil {
		if v, ok := theme.Color(token); ok {
			return v
		}
	}

	dark := IsDarkTheme(theme)
	if v, ok := DefaultValue(token, dark); ok {
		return v
	}

	switch {
	case strings.HasSuffix(token, "background") || strings.HasSuffix(token, "Background"):
		if theme != nil {
			if v, ok := theme.Color("colors.background"); ok {
				return v
			}
		}
		if dark {
			return fallbackDarkBackground
		}
		return fallbackLightBackground
	case strings.HasSuffix(token, "foreground") || strings.HasSuffix(token, "Foreground"):
		if theme != nil {
			if v, ok := theme.Color("colors.foreground"); ok {
				return v
			}
		}
		if dark {
			return fallbackDarkForeground
		}
		return fallbackLightForeground
	}

	if dark {
		return fallbackDarkGeneric
	}
	return fallbackLightGeneric
}

// IsDarkTheme reports whether theme should use dark defaults. The theme's
// explicit type is authoritative ("dark" and "high-contrast" are dark);
// without one, the base background's relative luminance decides. A theme
// with neither is treated as dark, matching the engine's built-in default.
func IsDarkTheme(theme ThemeReader) bool {
	if theme == nil {
		return true
	}

	switch theme.Type() {
	case "dark", "high-contrast":
		return true
	case "light":
		return false
	}

	if bg, ok := theme.Color("colors.background"); ok {
		if c, err := color.Parse(bg); err == nil {
			return color.RelativeLuminance(c) < 0.5
		}
	}
	return true
}
