// Package colors parses the color notations used in annotation markup and
// converts them for terminal rendering.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexAlpha parses a hexadecimal color in one of the notations '#rgb',
// '#rrggbb' or '#rrggbbaa' and returns the color and its opacity (1.0 if no
// alpha channel is given).
func ParseHexAlpha(s string) (colorful.Color, float64, error) {
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, 0, fmt.Errorf("color '%s' does not start with '#'", s)
	}
	switch len(s) {
	case 4, 7, 9:
	default:
		return colorful.Color{}, 0, fmt.Errorf("color '%s' has invalid length", s)
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in color '%s' (%w)", s, err)
		}
		alpha = float64(a) / 255.0
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("invalid color '%s' (%w)", s, err)
	}
	return c, alpha, nil
}

// Valid returns whether the given string is a color ParseHexAlpha accepts.
func Valid(s string) bool {
	_, _, err := ParseHexAlpha(s)
	return err == nil
}

// BlendOver composites a (possibly translucent) hex color over the given
// opaque background, as a terminal cannot render translucency itself.
func BlendOver(hex string, background colorful.Color) (colorful.Color, error) {
	c, alpha, err := ParseHexAlpha(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	return background.BlendRgb(c, alpha).Clamped(), nil
}

// ToTcell converts a colorful.Color to a tcell.Color.
func ToTcell(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

// Lighten returns the color lightened by the given percentage, 100 yielding
// white.
func Lighten(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn+((1.0-ltn)*scalar))
}

// Darken returns the color darkened by the given percentage, 100 yielding
// black.
func Darken(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn-(ltn*scalar))
}

// ReadableForeground returns black or white, whichever is more readable on
// the given background.
func ReadableForeground(background colorful.Color) colorful.Color {
	l, _, _ := background.Lab()
	if l > 0.6 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
