// Package color validates and parses the color value formats accepted in
// theme definitions: hex (#RGB, #RRGGBB, #RRGGBBAA), rgb()/rgba(),
// hsl()/hsla(), W3C named colors, and @token references.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern       = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern       = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9.]+)\s*)?\)$`)
	hslPattern       = regexp.MustCompile(`^hsla?\(\s*([0-9.]+)\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*(?:,\s*([0-9.]+)\s*)?\)$`)
	referencePattern = regexp.MustCompile(`^@[a-zA-Z][a-zA-Z0-9._]*$`)
)

// IsReference reports whether value is an @token reference.
func IsReference(value string) bool {
	return referencePattern.MatchString(value)
}

// ReferenceTarget returns the token name a reference points at.
// Returns "" if value is not a reference.
func ReferenceTarget(value string) string {
	if !IsReference(value) {
		return ""
	}
	return value[1:]
}

// IsLiteral reports whether value is a concrete color in one of the
// accepted formats (hex, rgb, hsl, or a recognized named color).
func IsLiteral(value string) bool {
	if hexPattern.MatchString(value) {
		return true
	}
	if rgbPattern.MatchString(value) || hslPattern.MatchString(value) {
		return true
	}
	_, known := tcell.ColorNames[strings.ToLower(value)]
	return known
}

// IsValid reports whether value is a literal color or an @token reference.
func IsValid(value string) bool {
	return IsLiteral(value) || IsReference(value)
}

// Parse converts a literal color value into a colorful.Color.
// References are rejected; resolve them first.
func Parse(value string) (colorful.Color, error) {
	value = strings.TrimSpace(value)

	switch {
	case strings.HasPrefix(value, "#"):
		return parseHex(value)
	case rgbPattern.MatchString(value):
		m := rgbPattern.FindStringSubmatch(value)
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return colorful.Color{}, fmt.Errorf("rgb channel out of range: %s", value)
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
	case hslPattern.MatchString(value):
		m := hslPattern.FindStringSubmatch(value)
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return colorful.Hsl(h, s/100, l/100), nil
	}

	if tc, known := tcell.ColorNames[strings.ToLower(value)]; known {
		r, g, b := tc.RGB()
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
	}

	return colorful.Color{}, fmt.Errorf("unrecognized color value: %q", value)
}

// parseHex handles #RGB, #RRGGBB, and #RRGGBBAA (alpha is dropped).
func parseHex(value string) (colorful.Color, error) {
	if !hexPattern.MatchString(value) {
		return colorful.Color{}, fmt.Errorf("malformed hex color: %q", value)
	}

	hex := value[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		hex = hex[:6]
	}

	return colorful.Hex("#" + hex)
}

// Tcell converts a literal color value to a tcell.Color.
func Tcell(value string) (tcell.Color, error) {
	c, err := Parse(value)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// RelativeLuminance computes WCAG relative luminance with per-channel
// sRGB-to-linear gamma correction.
func RelativeLuminance(c colorful.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio (L1+0.05)/(L2+0.05),
// with the lighter luminance as L1. The result ranges from 1 to 21.
func ContrastRatio(a, b colorful.Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
