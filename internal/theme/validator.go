package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vilosource/vfwidgets-theme/internal/color"
	"github.com/vilosource/vfwidgets-theme/internal/tokens"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?$`)

// Validator performs structural validation of raw theme documents and
// accessibility validation of constructed Themes. Errors and suggestions
// accumulate across a Validate call and are retrievable afterwards.
type Validator struct {
	errs        []ValidationError
	suggestions []string
}

// NewValidator creates an empty validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Errors returns the errors accumulated by the last Validate call.
func (v *Validator) Errors() []ValidationError {
	return append([]ValidationError(nil), v.errs...)
}

// Suggestions returns free-text hints accumulated by the last Validate call.
func (v *Validator) Suggestions() []string {
	return append([]string(nil), v.suggestions...)
}

func (v *Validator) addError(field, message string) {
	v.errs = append(v.errs, ValidationError{Field: field, Message: message})
}

// Validate checks the structure of a raw theme document: required fields,
// a semantic version string, color values in an accepted format, and
// well-formed tokenColors entries. It returns true when no errors were
// found. Unknown token names are legal (themes may define custom tokens),
// but malformed names produce an error plus a nearest-match suggestion.
func (v *Validator) Validate(data map[string]any) bool {
	v.errs = nil
	v.suggestions = nil

	name, _ := data["name"].(string)
	if strings.TrimSpace(name) == "" {
		v.addError("name", "theme name is required and must be a non-empty string")
	}

	if version, ok := data["version"]; ok {
		s, isString := version.(string)
		if !isString || !versionPattern.MatchString(s) {
			v.addError("version", fmt.Sprintf("version %v is not a semantic version (expected MAJOR.MINOR.PATCH)", version))
		}
	} else {
		v.addError("version", "version is required")
	}

	if themeType, ok := data["type"]; ok {
		s, isString := themeType.(string)
		if !isString || (s != TypeLight && s != TypeDark && s != TypeHighContrast) {
			v.addError("type", fmt.Sprintf("type %v is not one of light, dark, high-contrast", themeType))
		}
	}

	if colors, ok := data["colors"]; ok {
		v.validateColors(colors)
	}
	if styles, ok := data["styles"]; ok {
		v.validateStyles(styles)
	}
	if tokenColors, ok := data["tokenColors"]; ok {
		v.validateTokenColors(tokenColors)
	}

	return len(v.errs) == 0
}

func (v *Validator) validateColors(raw any) {
	colors, ok := raw.(map[string]any)
	if !ok {
		v.addError("colors", "colors must be a mapping of token name to value")
		return
	}

	for token, value := range colors {
		field := "colors." + token

		if !tokens.ValidName(token) {
			v.addError(field, "token name must start with a letter and contain only letters, digits, dots, and underscores")
			if nearest := nearestToken(token); nearest != "" {
				v.suggestions = append(v.suggestions, fmt.Sprintf("%s: did you mean %q?", token, nearest))
			}
			continue
		}

		s, isString := value.(string)
		if !isString {
			v.addError(field, "color value must be a string")
			continue
		}
		if !color.IsValid(s) {
			v.addError(field, fmt.Sprintf("%q is not a hex, rgb(), hsl(), named color, or @reference", s))
		}
	}
}

func (v *Validator) validateStyles(raw any) {
	styles, ok := raw.(map[string]any)
	if !ok {
		v.addError("styles", "styles must be a mapping of token name to value")
		return
	}

	for token, value := range styles {
		field := "styles." + token
		if !tokens.ValidName(token) {
			v.addError(field, "token name must start with a letter and contain only letters, digits, dots, and underscores")
			continue
		}
		if _, isString := value.(string); !isString {
			v.addError(field, "style value must be a string")
		}
	}
}

func (v *Validator) validateTokenColors(raw any) {
	entries, err := tokenColorRules(raw)
	if err != nil {
		v.addError("tokenColors", "tokenColors must be an array of rules")
		return
	}

	for i, rule := range entries {
		field := fmt.Sprintf("tokenColors[%d]", i)
		settings, ok := rule["settings"].(map[string]any)
		if !ok {
			v.addError(field, "rule must contain a settings object")
			continue
		}
		if fg, ok := settings["foreground"].(string); ok && fg != "" && !color.IsValid(fg) {
			v.addError(field+".settings.foreground", fmt.Sprintf("%q is not a valid color", fg))
		}
	}
}

// AccessibilityReport is the result of ValidateAccessibility.
type AccessibilityReport struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Foreground/background role pairs checked for contrast when both sides are
// declared as literal colors.
var contrastPairs = [][2]string{
	{"colors.foreground", "colors.background"},
	{"button.foreground", "button.background"},
	{"input.foreground", "input.background"},
	{"editor.foreground", "editor.background"},
	{"list.activeSelectionForeground", "list.activeSelectionBackground"},
	{"statusBar.foreground", "statusBar.background"},
	{"tab.activeForeground", "tab.activeBackground"},
}

// ValidateAccessibility computes WCAG contrast ratios for the theme's
// declared foreground/background role pairs. Ratios below 4.5:1 are
// reported as warnings; below 3:1 additionally as errors. Pairs with
// unresolved references or unparseable values are skipped.
func (v *Validator) ValidateAccessibility(t *Theme) AccessibilityReport {
	report := AccessibilityReport{IsValid: true}
	if t == nil {
		return report
	}

	for _, pair := range contrastPairs {
		fgValue, ok := t.Color(pair[0])
		if !ok {
			continue
		}
		bgValue, ok := t.Color(pair[1])
		if !ok {
			continue
		}

		fg, err := color.Parse(fgValue)
		if err != nil {
			continue
		}
		bg, err := color.Parse(bgValue)
		if err != nil {
			continue
		}

		ratio := color.ContrastRatio(fg, bg)
		if ratio < 4.5 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s on %s has contrast %.2f:1, below the 4.5:1 minimum", pair[0], pair[1], ratio))
		}
		if ratio < 3.0 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s on %s has contrast %.2f:1, below the 3:1 hard floor", pair[0], pair[1], ratio))
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// AvailableProperties returns the sorted registry token names starting with
// prefix, for building "did you mean" hints.
func (v *Validator) AvailableProperties(prefix string) []string {
	return tokens.NamesWithPrefix(prefix)
}

// FormatError produces a multi-part, human-readable message for a bad token:
// the offending token, the reason, a best-guess correction, the available
// properties under the same prefix, and a documentation pointer. It never
// fails, even for tokens with no matches.
func (v *Validator) FormatError(badToken, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "theme property %q failed: %s\n", badToken, reason)

	if nearest := nearestToken(badToken); nearest != "" {
		fmt.Fprintf(&b, "  did you mean %q?\n", nearest)
	}

	prefix := badToken
	if i := strings.Index(badToken, "."); i > 0 {
		prefix = badToken[:i+1]
	}
	if available := tokens.NamesWithPrefix(prefix); len(available) > 0 {
		const maxListed = 8
		if len(available) > maxListed {
			available = available[:maxListed]
		}
		fmt.Fprintf(&b, "  available under %q: %s\n", prefix, strings.Join(available, ", "))
	}

	b.WriteString("  see docs/theme-tokens.md for the full token catalog")
	return b.String()
}

// nearestToken returns the registry token closest to name by edit distance,
// or "" when nothing is acceptably close.
func nearestToken(name string) string {
	if len(name) < 2 {
		return ""
	}

	maxDistance := 2
	if len(name) > 8 {
		maxDistance = 4
	}

	best := ""
	bestDistance := -1
	for _, candidate := range tokens.AllNames() {
		d := levenshteinDistance(name, candidate)
		if d == 0 {
			return ""
		}
		if d <= maxDistance && (bestDistance == -1 || d < bestDistance) {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// levenshteinDistance is the minimum number of single-character edits
// required to change one string into the other. Two-row rolling matrix.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	cols := len(s2) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j < cols; j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[cols-1]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
