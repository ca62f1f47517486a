package colors_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/alight/internal/colors"
)

func TestParseHexAlpha(t *testing.T) {
	for _, tc := range []struct {
		in    string
		hex   string
		alpha float64
	}{
		{"#fff", "#ffffff", 1.0},
		{"#ffff00", "#ffff00", 1.0},
		{"#D2B3FFA6", "#d2b3ff", float64(0xa6) / 255.0},
		{"#00000000", "#000000", 0},
	} {
		c, a, err := colors.ParseHexAlpha(tc.in)
		if err != nil {
			t.Errorf("'%s' rejected: %s", tc.in, err.Error())
			continue
		}
		if c.Hex() != tc.hex || a != tc.alpha {
			t.Errorf("'%s' parsed to %s/%f", tc.in, c.Hex(), a)
		}
	}

	for _, in := range []string{"", "yellow", "ffff00", "#ffff0", "#ffff00zz", "#gggggg"} {
		if colors.Valid(in) {
			t.Errorf("'%s' unexpectedly valid", in)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	c := colorful.Color{R: 0x12 / 255.0, G: 0x34 / 255.0, B: 0x56 / 255.0}
	if !colors.Lighten(c, 0).AlmostEqualRgb(c) || !colors.Darken(c, 0).AlmostEqualRgb(c) {
		t.Error("0% changed the color")
	}
	if !colors.Lighten(c, 100).AlmostEqualRgb(colorful.Color{R: 1, G: 1, B: 1}) {
		t.Error("100% lighter is not white")
	}
	if !colors.Darken(c, 100).AlmostEqualRgb(colorful.Color{}) {
		t.Error("100% darker is not black")
	}
}

func TestReadableForeground(t *testing.T) {
	if colors.ReadableForeground(colorful.Color{R: 1, G: 1, B: 0.8}).Hex() != "#000000" {
		t.Error("expected black on light background")
	}
	if colors.ReadableForeground(colorful.Color{R: 0.1, G: 0.1, B: 0.3}).Hex() != "#ffffff" {
		t.Error("expected white on dark background")
	}
}
