package theme

// Builder is a fluent, single-owner construction surface that produces a
// validated, immutable Theme. Builders are short-lived and not safe for
// concurrent use. Values already set on the builder always win over values
// copied in by Extend, including across multi-level extension chains.
type Builder struct {
	name        string
	version     string
	themeType   string
	colors      map[string]string
	styles      map[string]string
	metadata    map[string]string
	tokenColors []TokenColor

	snapshot *builderState
}

// builderState captures the builder's in-progress state for Rollback.
type builderState struct {
	name        string
	version     string
	themeType   string
	colors      map[string]string
	styles      map[string]string
	metadata    map[string]string
	tokenColors []TokenColor
}

// NewBuilder creates a builder for a theme with the given name.
// Version defaults to "1.0.0" until SetVersion is called.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		version:  "1.0.0",
		colors:   make(map[string]string),
		styles:   make(map[string]string),
		metadata: make(map[string]string),
	}
}

// SetName sets the theme name.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetVersion sets the semantic version.
func (b *Builder) SetVersion(version string) *Builder {
	b.version = version
	return b
}

// SetType sets the theme type: "light", "dark", or "high-contrast".
func (b *Builder) SetType(themeType string) *Builder {
	b.themeType = themeType
	return b
}

// AddColor sets a color token value.
func (b *Builder) AddColor(token, value string) *Builder {
	b.colors[token] = value
	return b
}

// AddStyle sets a style token value.
func (b *Builder) AddStyle(token, value string) *Builder {
	b.styles[token] = value
	return b
}

// AddMetadata sets a metadata entry.
func (b *Builder) AddMetadata(key, value string) *Builder {
	b.metadata[key] = value
	return b
}

// AddTokenColor appends a syntax-highlight rule.
func (b *Builder) AddTokenColor(scope string, settings TokenColorSettings, name string) *Builder {
	b.tokenColors = append(b.tokenColors, TokenColor{Name: name, Scope: scope, Settings: settings})
	return b
}

// Extend copies the parent theme's colors, styles, and metadata into the
// builder for keys the builder has not set yet; values set on the child
// before Extend win. The parent's syntax rules are inserted ahead of the
// child's so the child's take precedence in ordered matching. The parent's
// name is recorded under metadata["parent_theme"], and the parent's type is
// inherited when the builder has none.
func (b *Builder) Extend(parent *Theme) *Builder {
	if parent == nil {
		return b
	}

	for k, v := range parent.colors {
		if _, ok := b.colors[k]; !ok {
			b.colors[k] = v
		}
	}
	for k, v := range parent.styles {
		if _, ok := b.styles[k]; !ok {
			b.styles[k] = v
		}
	}
	for k, v := range parent.metadata {
		if _, ok := b.metadata[k]; !ok {
			b.metadata[k] = v
		}
	}
	b.tokenColors = append(parent.TokenColors(), b.tokenColors...)

	if _, ok := b.metadata["parent_theme"]; !ok {
		b.metadata["parent_theme"] = parent.name
	}
	if b.themeType == "" {
		b.themeType = parent.themeType
	}
	return b
}

// Checkpoint snapshots the in-progress state so a risky batch of edits can
// be discarded with Rollback. A new checkpoint replaces the previous one.
func (b *Builder) Checkpoint() *Builder {
	b.snapshot = &builderState{
		name:        b.name,
		version:     b.version,
		themeType:   b.themeType,
		colors:      copyMap(b.colors),
		styles:      copyMap(b.styles),
		metadata:    copyMap(b.metadata),
		tokenColors: append([]TokenColor(nil), b.tokenColors...),
	}
	return b
}

// Rollback restores the most recent checkpoint. Without one it is a no-op.
func (b *Builder) Rollback() *Builder {
	if b.snapshot == nil {
		return b
	}
	s := b.snapshot
	b.name = s.name
	b.version = s.version
	b.themeType = s.themeType
	b.colors = copyMap(s.colors)
	b.styles = copyMap(s.styles)
	b.metadata = copyMap(s.metadata)
	b.tokenColors = append([]TokenColor(nil), s.tokenColors...)
	return b
}

// Build validates the assembled data and returns a new immutable Theme.
// It never consumes the builder: calling Build repeatedly keeps working,
// and further edits never affect previously built Themes. An unset type
// defaults to light.
func (b *Builder) Build() (*Theme, error) {
	themeType := b.themeType
	if themeType == "" {
		themeType = TypeLight
	}

	v := NewValidator()
	if !v.Validate(b.document(themeType)) {
		return nil, &BuildError{Errors: v.Errors(), Suggestions: v.Suggestions()}
	}

	return New(b.name, b.version, themeType, b.colors, b.styles, b.metadata, b.tokenColors), nil
}

// document assembles the builder state into the raw document shape the
// validator checks.
func (b *Builder) document(themeType string) map[string]any {
	colors := make(map[string]any, len(b.colors))
	for k, v := range b.colors {
		colors[k] = v
	}
	styles := make(map[string]any, len(b.styles))
	for k, v := range b.styles {
		styles[k] = v
	}
	tokenColors := make([]any, len(b.tokenColors))
	for i, tc := range b.tokenColors {
		tokenColors[i] = map[string]any{
			"name":  tc.Name,
			"scope": tc.Scope,
			"settings": map[string]any{
				"foreground": tc.Settings.Foreground,
				"fontStyle":  tc.Settings.FontStyle,
			},
		}
	}

	return map[string]any{
		"name":        b.name,
		"version":     b.version,
		"type":        themeType,
		"colors":      colors,
		"styles":      styles,
		"tokenColors": tokenColors,
	}
}
