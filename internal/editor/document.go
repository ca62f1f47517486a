// Package editor provides the note document the annotation tools operate on:
// a line buffer with a cursor, a selection and an undo history.
package editor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ja-he/alight/internal/model"
)

// DefaultHistoryDepth is the number of undo steps a document keeps by default.
const DefaultHistoryDepth = 200

type snapshot struct {
	text   string
	cursor model.DocPos
}

// Document is an editable text document.
//
// Positions are line and rune column; all positions passed in are clamped to
// the document's content.
type Document struct {
	mtx sync.RWMutex

	lines  []string
	cursor model.DocPos

	// selection is anchor (From) to head (To), possibly backwards; nil if
	// nothing is selected.
	selection *model.DocRange

	history      []snapshot
	historyDepth int

	dirty bool
}

// NewDocument returns a new document with the given content, the cursor at
// its start and an empty undo history.
func NewDocument(text string) *Document {
	return &Document{
		lines:        splitLines(text),
		historyDepth: DefaultHistoryDepth,
	}
}

// Text returns the full content of the document.
func (d *Document) Text() string {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return strings.Join(d.lines, "\n")
}

// Reload replaces the full content, e.g. after the backing file changed.
// The undo history is dropped and the document is considered clean.
func (d *Document) Reload(text string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.lines = splitLines(text)
	d.selection = nil
	d.history = nil
	d.dirty = false
	d.cursor = d.clamp(d.cursor)
}

// LineCount returns the number of lines (at least 1).
func (d *Document) LineCount() int {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return len(d.lines)
}

// Line returns the n-th line, "" if there is no such line.
func (d *Document) Line(n int) string {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return d.lines[n]
}

// Cursor returns the cursor position.
func (d *Document) Cursor() model.DocPos {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return d.cursor
}

// SetCursor moves the cursor to the given (clamped) position.
// It does not affect the selection.
func (d *Document) SetCursor(pos model.DocPos) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.cursor = d.clamp(pos)
}

// SetSelection selects the given range (clamped to the document) and moves
// the cursor to its head.
// Selecting an empty range clears the selection.
func (d *Document) SetSelection(r model.DocRange) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	r = model.DocRange{From: d.clamp(r.From), To: d.clamp(r.To)}
	d.cursor = r.To
	if r.Empty() {
		d.selection = nil
		return
	}
	d.selection = &r
}

// SelectionRange returns the selected range in document order, if anything is
// selected.
func (d *Document) SelectionRange() (model.DocRange, bool) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	if d.selection == nil {
		return model.DocRange{}, false
	}
	return d.selection.Normalized(), true
}

// SomethingSelected returns whether a non-empty range is selected.
func (d *Document) SomethingSelected() bool {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return d.selection != nil
}

// Selection returns the selected text ("" if nothing is selected).
func (d *Document) Selection() string {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	if d.selection == nil {
		return ""
	}

	r := d.selection.Normalized()
	runes := []rune(strings.Join(d.lines, "\n"))
	return string(runes[d.offset(r.From):d.offset(r.To)])
}

// ReplaceSelection replaces the selected text (or inserts at the cursor, if
// nothing is selected) as a single undoable step.
// Afterwards nothing is selected and the cursor is at the end of the inserted
// text.
func (d *Document) ReplaceSelection(text string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	r := model.DocRange{From: d.cursor, To: d.cursor}
	if d.selection != nil {
		r = d.selection.Normalized()
	}

	d.pushHistory()

	runes := []rune(strings.Join(d.lines, "\n"))
	from, to := d.offset(r.From), d.offset(r.To)
	inserted := []rune(text)

	result := make([]rune, 0, len(runes)-(to-from)+len(inserted))
	result = append(result, runes[:from]...)
	result = append(result, inserted...)
	result = append(result, runes[to:]...)

	d.lines = splitLines(string(result))
	d.cursor = d.posAt(from + len(inserted))
	d.selection = nil
	d.dirty = true
}

// ClearSelection deselects without changing the text or cursor.
func (d *Document) ClearSelection() {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.selection = nil
}

// Undo reverts the most recent change.
// Returns false if there was nothing to undo.
func (d *Document) Undo() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if len(d.history) == 0 {
		return false
	}
	last := d.history[len(d.history)-1]
	d.history = d.history[:len(d.history)-1]

	d.lines = splitLines(last.text)
	d.cursor = d.clamp(last.cursor)
	d.selection = nil
	d.dirty = true
	return true
}

// Invoke invokes the named editor command.
// Only "undo" is known.
func (d *Document) Invoke(name string) error {
	switch name {
	case "undo":
		if !d.Undo() {
			return fmt.Errorf("nothing to undo")
		}
		return nil
	default:
		return fmt.Errorf("unknown command '%s'", name)
	}
}

// Dirty returns whether the document changed since it was last marked clean.
func (d *Document) Dirty() bool {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return d.dirty
}

// MarkClean marks the document as not having unsaved changes.
func (d *Document) MarkClean() {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.dirty = false
}

func (d *Document) pushHistory() {
	d.history = append(d.history, snapshot{text: strings.Join(d.lines, "\n"), cursor: d.cursor})
	if d.historyDepth > 0 && len(d.history) > d.historyDepth {
		d.history = d.history[len(d.history)-d.historyDepth:]
	}
}

func (d *Document) clamp(pos model.DocPos) model.DocPos {
	if pos.Line < 0 {
		return model.DocPos{}
	}
	if pos.Line >= len(d.lines) {
		last := len(d.lines) - 1
		return model.DocPos{Line: last, Ch: runeLen(d.lines[last])}
	}
	if pos.Ch < 0 {
		pos.Ch = 0
	}
	if l := runeLen(d.lines[pos.Line]); pos.Ch > l {
		pos.Ch = l
	}
	return pos
}

// offset converts a (clamped) position to a rune offset into the text.
func (d *Document) offset(pos model.DocPos) int {
	pos = d.clamp(pos)
	offset := 0
	for i := 0; i < pos.Line; i++ {
		offset += runeLen(d.lines[i]) + 1
	}
	return offset + pos.Ch
}

// posAt converts a rune offset into the text to a position.
func (d *Document) posAt(offset int) model.DocPos {
	for i, line := range d.lines {
		l := runeLen(line)
		if offset <= l {
			return model.DocPos{Line: i, Ch: offset}
		}
		offset -= l + 1
	}
	return d.clamp(model.DocPos{Line: len(d.lines)})
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func runeLen(s string) int {
	return len([]rune(s))
}
