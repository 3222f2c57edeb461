// Package theme implements the theme resolution engine: the immutable Theme
// value object, its Builder and Validator, composition of multiple themes,
// and @token reference resolution.
package theme

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Theme types. Type drives which registry defaults a theme picks up.
const (
	TypeLight        = "light"
	TypeDark         = "dark"
	TypeHighContrast = "high-contrast"
)

// TokenColorSettings holds the style settings of one syntax-highlight rule.
type TokenColorSettings struct {
	Foreground string
	FontStyle  string
}

// TokenColor is one ordered syntax-highlight rule.
type TokenColor struct {
	Name     string
	Scope    string
	Settings TokenColorSettings
}

// Theme is an immutable, named bundle of token->value mappings plus
// metadata. Once constructed it is never mutated, only superseded by a new
// instance, so it is freely shareable across goroutines. Construct through
// Builder.Build for validated data; New itself does not validate.
type Theme struct {
	name        string
	version     string
	themeType   string
	colors      map[string]string
	styles      map[string]string
	metadata    map[string]string
	tokenColors []TokenColor

	hash uint64
	size int
}

// New constructs a Theme, copying every input so later mutation of the
// arguments cannot leak in.
func New(name, version, themeType string, colors, styles, metadata map[string]string, tokenColors []TokenColor) *Theme {
	t := &Theme{
		name:        name,
		version:     version,
		themeType:   themeType,
		colors:      copyMap(colors),
		styles:      copyMap(styles),
		metadata:    copyMap(metadata),
		tokenColors: append([]TokenColor(nil), tokenColors...),
	}
	t.hash = t.computeHash()
	t.size = t.computeSize()
	return t
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Name returns the theme's identity.
func (t *Theme) Name() string { return t.name }

// Version returns the theme's semantic version.
func (t *Theme) Version() string { return t.version }

// Type returns "light", "dark", or "high-contrast".
func (t *Theme) Type() string { return t.themeType }

// Color returns the stored value for a color token. The value may itself be
// an @reference; resolving references is the Resolver's job.
func (t *Theme) Color(name string) (string, bool) {
	v, ok := t.colors[name]
	return v, ok
}

// ColorOr returns the stored color value or fallback when absent.
func (t *Theme) ColorOr(name, fallback string) string {
	if v, ok := t.colors[name]; ok {
		return v
	}
	return fallback
}

// Property returns the stored value for a style token.
func (t *Theme) Property(name string) (string, bool) {
	v, ok := t.styles[name]
	return v, ok
}

// PropertyOr returns the stored style value or fallback when absent.
func (t *Theme) PropertyOr(name, fallback string) string {
	if v, ok := t.styles[name]; ok {
		return v
	}
	return fallback
}

// Metadata returns the metadata value for key.
func (t *Theme) Metadata(key string) (string, bool) {
	v, ok := t.metadata[key]
	return v, ok
}

// Colors returns a copy of the color mapping.
func (t *Theme) Colors() map[string]string { return copyMap(t.colors) }

// Styles returns a copy of the style mapping.
func (t *Theme) Styles() map[string]string { return copyMap(t.styles) }

// MetadataMap returns a copy of the metadata mapping.
func (t *Theme) MetadataMap() map[string]string { return copyMap(t.metadata) }

// TokenColors returns a copy of the ordered syntax-highlight rules.
func (t *Theme) TokenColors() []TokenColor {
	return append([]TokenColor(nil), t.tokenColors...)
}

// ColorCount returns the number of color tokens the theme defines.
func (t *Theme) ColorCount() int { return len(t.colors) }

// SizeEstimate returns an approximate in-memory footprint in bytes,
// for diagnostics.
func (t *Theme) SizeEstimate() int { return t.size }

// Hash returns a stable hash over all fields, enabling Themes to be used as
// cache keys. Computed once at construction.
func (t *Theme) Hash() uint64 { return t.hash }

// Equal reports whether two Themes are equal over all fields.
func (t *Theme) Equal(other *Theme) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.hash != other.hash {
		return false
	}
	if t.name != other.name || t.version != other.version || t.themeType != other.themeType {
		return false
	}
	if !mapsEqual(t.colors, other.colors) || !mapsEqual(t.styles, other.styles) || !mapsEqual(t.metadata, other.metadata) {
		return false
	}
	if len(t.tokenColors) != len(other.tokenColors) {
		return false
	}
	for i := range t.tokenColors {
		if t.tokenColors[i] != other.tokenColors[i] {
			return false
		}
	}
	return true
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// computeHash writes a canonical encoding of every field into FNV-1a.
func (t *Theme) computeHash() uint64 {
	h := fnv.New64a()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}

	write(t.name, t.version, t.themeType)
	for _, m := range []map[string]string{t.colors, t.styles, t.metadata} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		write(fmt.Sprintf("%d", len(keys)))
		for _, k := range keys {
			write(k, m[k])
		}
	}
	for _, tc := range t.tokenColors {
		write(tc.Name, tc.Scope, tc.Settings.Foreground, tc.Settings.FontStyle)
	}
	return h.Sum64()
}

// computeSize approximates the footprint: string payloads plus per-entry
// map/slice overhead.
func (t *Theme) computeSize() int {
	const entryOverhead = 48

	size := len(t.name) + len(t.version) + len(t.themeType)
	for _, m := range []map[string]string{t.colors, t.styles, t.metadata} {
		for k, v := range m {
			size += len(k) + len(v) + entryOverhead
		}
	}
	for _, tc := range t.tokenColors {
		size += len(tc.Name) + len(tc.Scope) + len(tc.Settings.Foreground) + len(tc.Settings.FontStyle) + entryOverhead
	}
	return size
}
