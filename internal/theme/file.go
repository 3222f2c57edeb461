package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// themeDocument is the persisted document shape. Colors are written flat;
// on load, nested mappings are also accepted and flattened with dots.
type themeDocument struct {
	Name        string               `json:"name" toml:"name"`
	Version     string               `json:"version" toml:"version"`
	Type        string               `json:"type" toml:"type"`
	Colors      map[string]string    `json:"colors" toml:"colors"`
	Styles      map[string]string    `json:"styles,omitempty" toml:"styles,omitempty"`
	Metadata    map[string]string    `json:"metadata,omitempty" toml:"metadata,omitempty"`
	TokenColors []tokenColorDocument `json:"tokenColors,omitempty" toml:"tokenColors,omitempty"`
}

type tokenColorDocument struct {
	Name     string                     `json:"name,omitempty" toml:"name,omitempty"`
	Scope    string                     `json:"scope" toml:"scope"`
	Settings tokenColorSettingsDocument `json:"settings" toml:"settings"`
}

type tokenColorSettingsDocument struct {
	Foreground string `json:"foreground,omitempty" toml:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty" toml:"fontStyle,omitempty"`
}

// LoadThemeFromFile reads and validates a theme document. The format is
// chosen by extension: .toml is TOML, anything else is JSON.
func LoadThemeFromFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	raw := make(map[string]any)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidFormat, path, err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidFormat, path, err)
		}
	}

	t, err := FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// SaveThemeToFile writes the theme as a document, JSON or TOML by extension.
func SaveThemeToFile(t *Theme, path string) error {
	if t == nil {
		return fmt.Errorf("%w: no theme to save", ErrNotInitialized)
	}

	doc := themeDocument{
		Name:     t.name,
		Version:  t.version,
		Type:     t.themeType,
		Colors:   t.Colors(),
		Styles:   t.Styles(),
		Metadata: t.MetadataMap(),
	}
	for _, tc := range t.tokenColors {
		doc.TokenColors = append(doc.TokenColors, tokenColorDocument{
			Name:  tc.Name,
			Scope: tc.Scope,
			Settings: tokenColorSettingsDocument{
				Foreground: tc.Settings.Foreground,
				FontStyle:  tc.Settings.FontStyle,
			},
		})
	}

	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(doc)
		data = buf.Bytes()
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize theme: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}

// FromMap builds a validated Theme from an in-memory document without
// touching a filesystem. Colors and styles may be flat token->value
// mappings or nested mappings; nested keys are flattened with dots.
// A field present with the wrong shape is a schema violation and fails
// with ErrInvalidFormat; ill-typed fields are never silently dropped.
func FromMap(data map[string]any) (*Theme, error) {
	name, _, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}
	b := NewBuilder(name)

	version, ok, err := stringField(data, "version")
	if err != nil {
		return nil, err
	}
	if ok {
		b.SetVersion(version)
	}
	themeType, ok, err := stringField(data, "type")
	if err != nil {
		return nil, err
	}
	if ok {
		b.SetType(themeType)
	}

	colors, err := mappingField(data, "colors")
	if err != nil {
		return nil, err
	}
	for token, value := range flatten(colors) {
		b.AddColor(token, value)
	}
	styles, err := mappingField(data, "styles")
	if err != nil {
		return nil, err
	}
	for token, value := range flatten(styles) {
		b.AddStyle(token, value)
	}
	metadata, err := mappingField(data, "metadata")
	if err != nil {
		return nil, err
	}
	for key, value := range metadata {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: metadata.%s must be a string, got %T", ErrInvalidFormat, key, value)
		}
		b.AddMetadata(key, s)
	}

	rules, err := tokenColorRules(data["tokenColors"])
	if err != nil {
		return nil, err
	}
	for i, rule := range rules {
		ruleName, _, err := stringField(rule, "name")
		if err != nil {
			return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
		}
		scope, _, err := stringField(rule, "scope")
		if err != nil {
			return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
		}
		var settings TokenColorSettings
		if raw, present := rule["settings"]; present {
			s, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: tokenColors[%d].settings must be an object, got %T", ErrInvalidFormat, i, raw)
			}
			if settings.Foreground, _, err = stringField(s, "foreground"); err != nil {
				return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
			}
			if settings.FontStyle, _, err = stringField(s, "fontStyle"); err != nil {
				return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
			}
		}
		b.AddTokenColor(scope, settings, ruleName)
	}

	return b.Build()
}

// stringField reads a string field from a decoded document, reporting
// whether it was present. A present non-string value is a schema violation.
func stringField(data map[string]any, key string) (string, bool, error) {
	raw, present := data[key]
	if !present {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidFormat, key, raw)
	}
	return s, true, nil
}

// mappingField reads a mapping field; an absent field yields nil.
func mappingField(data map[string]any, key string) (map[string]any, error) {
	raw, present := data[key]
	if !present || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a mapping, got %T", ErrInvalidFormat, key, raw)
	}
	return m, nil
}

// tokenColorRules normalizes the decoded tokenColors array. JSON decodes an
// array of objects as []any; the TOML decoder produces []map[string]any.
// Any other shape, including non-object entries, is a schema violation.
func tokenColorRules(raw any) ([]map[string]any, error) {
	switch entries := raw.(type) {
	case nil:
		return nil, nil
	case []map[string]any:
		return entries, nil
	case []any:
		rules := make([]map[string]any, 0, len(entries))
		for _, entry := range entries {
			rule, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: tokenColors entries must be objects, got %T", ErrInvalidFormat, entry)
			}
			rules = append(rules, rule)
		}
		return rules, nil
	}
	return nil, fmt.Errorf("%w: tokenColors must be an array of rules, got %T", ErrInvalidFormat, raw)
}

// flatten turns possibly-nested token mappings into a flat map, joining
// nested keys with dots. Non-string leaves are rendered with %v so the
// validator reports them against their full token path.
func flatten(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	flattenInto(out, "", m)
	return out
}

func flattenInto(out map[string]string, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch value := v.(type) {
		case map[string]any:
			flattenInto(out, key, value)
		case string:
			out[key] = value
		default:
			out[key] = fmt.Sprintf("%v", value)
		}
	}
}
