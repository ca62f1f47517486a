package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

// NoteDocument is the document a note pane shows.
type NoteDocument interface {
	LineCount() int
	Line(n int) string
	Cursor() model.DocPos
	SetCursor(model.DocPos)
	SelectionRange() (model.DocRange, bool)
}

// NotePane shows the note text, soft-wrapped, with highlights drawn in their
// colors, the selection, and the cursor.
//
// It is the scrollable region of the application, and maps screen positions to
// document positions and back.
type NotePane struct {
	ui.LeafPane

	doc     NoteDocument
	marks   *styling.MarkStyler
	scroll  *ui.ScrollParams
	cursors ui.CursorLocationRequestHandler
}

// ScrollOffset returns the number of rows scrolled past.
func (p *NotePane) ScrollOffset() int { return p.scroll.ScrollOffset() }

// SetScrollOffset scrolls to the given row offset (clamped).
func (p *NotePane) SetScrollOffset(offset int) { p.scroll.SetScrollOffset(offset) }

// ScrollBy scrolls by the given number of rows (negative is up).
func (p *NotePane) ScrollBy(rows int) { p.scroll.ScrollBy(rows) }

// ScrollToTop scrolls to the first row.
func (p *NotePane) ScrollToTop() { p.scroll.SetScrollOffset(0) }

// ScrollToBottom scrolls to the last row.
func (p *NotePane) ScrollToBottom() { p.scroll.SetScrollOffset(p.maxScroll()) }

// PageHeight returns the number of rows a page scroll moves.
func (p *NotePane) PageHeight() int {
	_, _, _, h := p.Dimensions()
	if h > 2 {
		return h / 2
	}
	return 1
}

// SetCursor moves the document's cursor.
func (p *NotePane) SetCursor(pos model.DocPos) {
	p.doc.SetCursor(pos)
}

// ScrollCursorIntoView scrolls as little as possible such that the cursor is
// visible.
func (p *NotePane) ScrollCursorIntoView() {
	_, _, w, h := p.Dimensions()
	rows := wrapLines(p.lines(), w)
	p.scroll.EnsureVisible(rowOf(rows, p.doc.Cursor()), h)
}

// PosAtCoords returns the document position shown at the given screen
// position.
// Positions on the pane beyond the end of the document map to the document's
// end, positions off the pane are not found.
func (p *NotePane) PosAtCoords(x, y int) (model.DocPos, bool) {
	px, py, w, h := p.Dimensions()
	if !ui.Contains(px, py, w, h, x, y) {
		return model.DocPos{}, false
	}

	lines := p.lines()
	rows := wrapLines(lines, w)
	idx := p.scroll.ScrollOffset() + (y - py)
	if idx >= len(rows) {
		last := rows[len(rows)-1]
		return model.DocPos{Line: last.line, Ch: last.endCh}, true
	}

	row := rows[idx]
	return model.DocPos{Line: row.line, Ch: chAtColumn(lines[row.line], row, x-px)}, true
}

// CoordsAtPos returns the screen position at which the given document position
// is shown, if it is visible.
func (p *NotePane) CoordsAtPos(pos model.DocPos) (x, y int, visible bool) {
	px, py, w, h := p.Dimensions()
	lines := p.lines()
	rows := wrapLines(lines, w)

	r := rowOf(rows, pos)
	idx := r - p.scroll.ScrollOffset()
	if idx < 0 || idx >= h || pos.Line >= len(lines) {
		return 0, 0, false
	}
	row := rows[r]
	col := columnOfCh(lines[pos.Line], row, pos.Ch)
	if col >= w {
		col = w - 1
	}
	return px + col, py + idx, true
}

// Draw draws this pane.
func (p *NotePane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	base := p.Stylesheet.NoteText
	p.Renderer.DrawBox(x, y, w, h, base)

	lines := p.lines()
	rows := wrapLines(lines, w)
	classes := classifyRunes(lines)
	cursor := p.doc.Cursor()
	selection, hasSelection := p.doc.SelectionRange()

	offset := p.scroll.ScrollOffset()
	for i := 0; i < h && offset+i < len(rows); i++ {
		row := rows[offset+i]
		rowBase := base
		if row.line == cursor.Line && !hasSelection {
			rowBase = p.Stylesheet.NoteCursorLine
			p.Renderer.DrawBox(x, y+i, w, 1, rowBase)
		}

		col := 0
		ch := 0
		for _, r := range lines[row.line] {
			if ch >= row.endCh {
				break
			}
			if ch >= row.startCh {
				style := rowBase
				class := classes[row.line][ch]
				if class.color != "" {
					style = p.marks.Style(class.color)
				}
				if class.tag {
					style = style.DefaultDimmed()
				}
				pos := model.DocPos{Line: row.line, Ch: ch}
				if hasSelection && !pos.Before(selection.From) && pos.Before(selection.To) {
					style = p.Stylesheet.NoteSelection
				}
				p.Renderer.DrawText(x+col, y+i, w-col, 1, style, string(r))
				col += runewidth.RuneWidth(r)
			}
			ch++
		}
	}

	if cx, cy, ok := p.CoordsAtPos(cursor); ok {
		p.cursors.Put(ui.CursorLocation{X: cx, Y: cy}, "note")
	} else {
		p.cursors.Delete("note")
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *NotePane) GetPositionInfo(x, y int) ui.PositionInfo {
	pos, ok := p.PosAtCoords(x, y)
	return &ui.NotePanePositionInfo{Pos: pos, InText: ok}
}

func (p *NotePane) lines() []string {
	n := p.doc.LineCount()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = p.doc.Line(i)
	}
	return lines
}

func (p *NotePane) maxScroll() int {
	_, _, w, h := p.Dimensions()
	if n := len(wrapLines(p.lines(), w)) - h; n > 0 {
		return n
	}
	return 0
}

// rowOf returns the index of the row the position is shown in.
func rowOf(rows []visualRow, pos model.DocPos) int {
	for i, row := range rows {
		if row.line != pos.Line {
			continue
		}
		if pos.Ch < row.endCh || i == len(rows)-1 || rows[i+1].line != pos.Line {
			return i
		}
	}
	return len(rows) - 1
}

// NewNotePane constructs and returns a new NotePane.
func NewNotePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	doc NoteDocument,
	cursors ui.CursorLocationRequestHandler,
) *NotePane {
	p := &NotePane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		doc:     doc,
		marks:   styling.NewMarkStyler(stylesheet.NoteText),
		cursors: cursors,
	}
	p.scroll = ui.NewScrollParams(p.maxScroll)
	return p
}
