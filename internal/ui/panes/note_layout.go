package panes

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// visualRow is a screen row of the note, i.E. (a wrapped segment of) a line.
type visualRow struct {
	line    int
	startCh int
	endCh   int
}

// wrapLines lays out the lines in rows of at most the given display width.
// Every line gets at least one row, also when empty; a rune wider than the
// width gets a row of its own.
func wrapLines(lines []string, width int) []visualRow {
	if width < 1 {
		width = 1
	}

	rows := make([]visualRow, 0, len(lines))
	for n, line := range lines {
		start, col := 0, 0
		ch := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if col+w > width && ch > start {
				rows = append(rows, visualRow{line: n, startCh: start, endCh: ch})
				start, col = ch, 0
			}
			col += w
			ch++
		}
		rows = append(rows, visualRow{line: n, startCh: start, endCh: ch})
	}
	return rows
}

// chAtColumn returns the rune index within the row's segment of the line that
// the given display column (relative to the row's start) falls on.
// Columns past the end of the segment yield the end of the segment.
func chAtColumn(line string, row visualRow, col int) int {
	ch, x := 0, 0
	for _, r := range line {
		if ch < row.startCh {
			ch++
			continue
		}
		if ch >= row.endCh {
			break
		}
		w := runewidth.RuneWidth(r)
		if col < x+w {
			return ch
		}
		x += w
		ch++
	}
	return row.endCh
}

// columnOfCh returns the display column (relative to the row's start) of the
// rune at the given index within the row's segment of the line.
func columnOfCh(line string, row visualRow, target int) int {
	ch, x := 0, 0
	for _, r := range line {
		if ch >= target || ch >= row.endCh {
			break
		}
		if ch >= row.startCh {
			x += runewidth.RuneWidth(r)
		}
		ch++
	}
	return x
}

// markOpenPattern matches the opening tag of a highlight, capturing its color.
var markOpenPattern = regexp.MustCompile(`<mark style="background: ?([^;"]+);?">`)

// markClosePattern matches the closing tag of a highlight.
var markClosePattern = regexp.MustCompile(`</mark>`)

// runeClass is how a rune of the note is drawn.
type runeClass struct {
	// color of the innermost highlight the rune is in, "" if none
	color string
	// tag is set for runes that are part of a highlight's markup
	tag bool
}

// markTag is the byte range of a highlight tag within a line.
type markTag struct {
	start, end int
	open       bool
	color      string
}

// findMarkTags returns the highlight tags of the line in order.
func findMarkTags(line string) []markTag {
	tags := []markTag{}
	for _, m := range markOpenPattern.FindAllStringSubmatchIndex(line, -1) {
		tags = append(tags, markTag{start: m[0], end: m[1], open: true, color: line[m[2]:m[3]]})
	}
	for _, m := range markClosePattern.FindAllStringIndex(line, -1) {
		tags = append(tags, markTag{start: m[0], end: m[1]})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].start < tags[j].start })
	return tags
}

// classifyRunes determines for every rune of every line whether it is in a
// highlight (and which) or part of highlight markup.
// Highlights may span lines and nest; unbalanced closing tags are ignored.
func classifyRunes(lines []string) [][]runeClass {
	result := make([][]runeClass, len(lines))
	stack := []string{}
	top := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for n, line := range lines {
		tags := findMarkTags(line)
		classes := make([]runeClass, 0, utf8.RuneCountInString(line))

		ti := 0
		for b, r := range line {
			for ti < len(tags) && b >= tags[ti].end {
				ti++
			}
			inTag := ti < len(tags) && b >= tags[ti].start
			if inTag && tags[ti].open && b == tags[ti].start {
				stack = append(stack, tags[ti].color)
			}

			classes = append(classes, runeClass{color: top(), tag: inTag})

			if inTag && !tags[ti].open && b+utf8.RuneLen(r) == tags[ti].end && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		result[n] = classes
	}

	return result
}
