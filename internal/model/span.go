package model

import (
	"strings"
	"unicode"
)

// SelectionSpan is the decomposition of selected text into leading whitespace,
// body and trailing whitespace.
//
// Prefix + Body + Suffix always equals the text it was split from. Body only
// excludes whitespace at the very ends; whitespace inside is kept.
type SelectionSpan struct {
	Prefix string
	Body   string
	Suffix string
}

// SplitSelection decomposes the given text into a SelectionSpan.
// For whitespace-only text, all of it ends up in Prefix and Body is empty.
func SplitSelection(text string) SelectionSpan {
	body := strings.TrimLeftFunc(text, isSpace)
	prefix := text[:len(text)-len(body)]

	trimmed := strings.TrimRightFunc(body, isSpace)
	suffix := body[len(trimmed):]

	return SelectionSpan{
		Prefix: prefix,
		Body:   trimmed,
		Suffix: suffix,
	}
}

// Join reassembles the span with the given body in place of the original.
func (s SelectionSpan) Join(body string) string {
	return s.Prefix + body + s.Suffix
}

// String returns the text the span was split from.
func (s SelectionSpan) String() string {
	return s.Join(s.Body)
}

// isSpace matches the whitespace class of the markup editors we target,
// which (unlike unicode.IsSpace) includes the byte order mark but not the
// next line control (U+0085).
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
