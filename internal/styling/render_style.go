package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/alight/internal/colors"
	"github.com/ja-he/alight/internal/config"
)

// DrawStyling is style information used for rendering text.
// It should represent foreground and background color as well as modifiers
// such as italicization.
// A DrawStyling can be converted to any styling needed by a renderer, e.g., a
// tcell.Style for a tcell-based renderer via AsTcell.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultDimmed() DrawStyling
	DefaultEmphasized() DrawStyling
	LightenedBG(percentage int) DrawStyling
	DarkenedBG(percentage int) DrawStyling

	// WithBackground returns a copy with the given background color and a
	// foreground that is readable on it.
	WithBackground(bg colorful.Color) DrawStyling
	Background() colorful.Color

	Bolded() DrawStyling
	Italicized() DrawStyling
	Underlined() DrawStyling

	ToString() string
}

// FallbackStyling is a DrawStyling that holds non-renderer-specific colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colors.ToTcell(s.fg)).
		Background(colors.ToTcell(s.bg)).
		Bold(s.bold).Italic(s.italic).Underline(s.underlined)
}

// DefaultDimmed returns a copy of this styling with 'dimmed' colors, i.E. it
// lightens them by a default value.
func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	result := s.clone()
	result.fg = colors.Lighten(result.fg, 50)
	result.bg = colors.Lighten(result.bg, 50)
	return result
}

// DefaultEmphasized returns a copy of this styling with 'emphasized' colors,
// i.E. it darkens them by a default value.
func (s *FallbackStyling) DefaultEmphasized() DrawStyling {
	result := s.clone()
	result.fg = colors.Darken(result.fg, 20)
	result.bg = colors.Darken(result.bg, 20)
	return result
}

// LightenedBG returns a copy of this styling with the background color
// lightened by the requested percentage.
func (s *FallbackStyling) LightenedBG(percentage int) DrawStyling {
	result := s.clone()
	result.bg = colors.Lighten(result.bg, percentage)
	return result
}

// DarkenedBG returns a copy of this styling with the background color darkened
// by the requested percentage.
func (s *FallbackStyling) DarkenedBG(percentage int) DrawStyling {
	result := s.clone()
	result.bg = colors.Darken(result.bg, percentage)
	return result
}

// WithBackground returns a copy of this styling with the given background and
// a black or white foreground, whichever reads better on it.
func (s *FallbackStyling) WithBackground(bg colorful.Color) DrawStyling {
	result := s.clone()
	result.bg = bg
	result.fg = colors.ReadableForeground(bg)
	return result
}

// Background returns the background color.
func (s *FallbackStyling) Background() colorful.Color { return s.bg }

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s *FallbackStyling) Bolded() DrawStyling {
	result := s.clone()
	result.bold = true
	return result
}

// Italicized returns a copy of this styling which is guaranteed to be
// italicized.
func (s *FallbackStyling) Italicized() DrawStyling {
	result := s.clone()
	result.italic = true
	return result
}

// Underlined returns a copy of this styling which is guaranteed to be
// underlined.
func (s *FallbackStyling) Underlined() DrawStyling {
	result := s.clone()
	result.underlined = true
	return result
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s *FallbackStyling) ToString() string {
	return fmt.Sprintf(
		"[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]",
		s.fg.Hex(),
		s.bg.Hex(),
		s.bold,
		s.italic,
		s.underlined,
	)
}

func (s *FallbackStyling) clone() *FallbackStyling {
	newS := *s
	return &newS
}

// StyleFromHex constructs and returns a styling from two hexadecimally
// formatted strings for the foreground and background color.
// Invalid colors fall back to black (and are logged by the caller's config
// validation, not here).
//
// Examples:
//   - '#ff0000'
//   - '#fff'
//   - '#BEEF42'
func StyleFromHex(fg, bg string) *FallbackStyling {
	fgColor, _, _ := colors.ParseHexAlpha(fg)
	bgColor, _, _ := colors.ParseHexAlpha(bg)
	return &FallbackStyling{
		fg: fgColor,
		bg: bgColor,
	}
}

// StyleFromColors constructs a style by the given colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{
		fg: fg,
		bg: bg,
	}
}

// StyleFromConfig constructs a style from a config styling.
func StyleFromConfig(c config.Styling) DrawStyling {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s
}
