package panes_test

import (
	"testing"
	"time"

	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/editor"
	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/input/processors"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/potatolog"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
	"github.com/ja-he/alight/internal/ui/panes"
)

type drawCall struct {
	x, y, w, h int
	text       string
}

type renderer struct {
	dims  func() (x, y, w, h int)
	texts []drawCall
	boxes []drawCall
}

func (r *renderer) Dimensions() (x, y, w, h int) { return r.dims() }
func (r *renderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.boxes = append(r.boxes, drawCall{x: x, y: y, w: w, h: h})
}
func (r *renderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.texts = append(r.texts, drawCall{x: x, y: y, w: w, h: h, text: text})
}

type screen struct {
	cleared, shown int
	cursor         *ui.CursorLocation
}

func (s *screen) Clear()                        { s.cleared++ }
func (s *screen) Show()                         { s.shown++ }
func (s *screen) HideCursor()                   { s.cursor = nil }
func (s *screen) ShowCursor(l ui.CursorLocation) { s.cursor = &l }

type cursors struct {
	at map[string]ui.CursorLocation
}

func (c *cursors) Put(l ui.CursorLocation, requester string) { c.at[requester] = l }
func (c *cursors) Delete(requester string)                   { delete(c.at, requester) }

func stylesheet() styling.Stylesheet {
	return *styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
}

func dims(x, y, w, h int) func() (int, int, int, int) {
	return func() (int, int, int, int) { return x, y, w, h }
}

func TestNotePaneCoordinates(t *testing.T) {
	doc := editor.NewDocument("hello world\nsecond")
	c := &cursors{at: map[string]ui.CursorLocation{}}
	r := &renderer{dims: dims(0, 0, 5, 4)}
	p := panes.NewNotePane(r, dims(0, 0, 5, 4), stylesheet(), doc, c)

	t.Run("position at coordinates", func(t *testing.T) {
		for _, tc := range []struct {
			x, y     int
			expected model.DocPos
		}{
			{0, 0, model.DocPos{Line: 0, Ch: 0}},
			{1, 1, model.DocPos{Line: 0, Ch: 6}},
			{3, 2, model.DocPos{Line: 0, Ch: 11}},
			{2, 3, model.DocPos{Line: 1, Ch: 2}},
		} {
			pos, ok := p.PosAtCoords(tc.x, tc.y)
			if !ok || pos != tc.expected {
				t.Errorf("at %d,%d: expected %s, got %s (%t)", tc.x, tc.y, tc.expected.String(), pos.String(), ok)
			}
		}
		if _, ok := p.PosAtCoords(5, 0); ok {
			t.Error("found position off pane")
		}
	})

	t.Run("coordinates at position", func(t *testing.T) {
		x, y, ok := p.CoordsAtPos(model.DocPos{Line: 0, Ch: 5})
		if !ok || x != 0 || y != 1 {
			t.Errorf("expected 0,1, got %d,%d (%t)", x, y, ok)
		}
	})

	t.Run("scrolled", func(t *testing.T) {
		p.SetScrollOffset(10)
		defer p.ScrollToTop()

		if p.ScrollOffset() != 1 {
			t.Fatalf("expected offset clamped to 1, got %d", p.ScrollOffset())
		}
		if pos, _ := p.PosAtCoords(0, 0); pos != (model.DocPos{Line: 0, Ch: 5}) {
			t.Errorf("expected 0:5 at top, got %s", pos.String())
		}
		if x, y, ok := p.CoordsAtPos(model.DocPos{Line: 1, Ch: 5}); !ok || x != 0 || y != 3 {
			t.Errorf("expected 0,3, got %d,%d (%t)", x, y, ok)
		}
		if _, _, ok := p.CoordsAtPos(model.DocPos{Line: 0, Ch: 0}); ok {
			t.Error("position scrolled past reported visible")
		}
	})

	t.Run("draw places cursor", func(t *testing.T) {
		doc.SetCursor(model.DocPos{Line: 0, Ch: 7})
		p.Draw()
		if l, ok := c.at["note"]; !ok || l != (ui.CursorLocation{X: 2, Y: 1}) {
			t.Errorf("expected cursor at 2:1, got %v (%t)", l, ok)
		}

		p.SetScrollOffset(1)
		doc.SetCursor(model.DocPos{Line: 0, Ch: 0})
		p.Draw()
		if _, ok := c.at["note"]; ok {
			t.Error("cursor placed though scrolled out of view")
		}
		p.ScrollCursorIntoView()
		if p.ScrollOffset() != 0 {
			t.Errorf("expected cursor scrolled into view, offset %d", p.ScrollOffset())
		}
	})
}

func TestToolsPaneHitTesting(t *testing.T) {
	tools := model.DefaultTools()
	sheet := stylesheet()
	open := true
	w, h := panes.ToggleWidth+panes.ToolsColumns*10, panes.ToolsPaneHeight(len(tools))
	p := panes.NewToolsPane(
		&renderer{dims: dims(0, 0, w, h)},
		dims(0, 0, w, h),
		sheet,
		styling.NewToolStyling(tools, sheet.Tools),
		func() model.Tool { return tools[0] },
		func() bool { return open },
	)

	toolAt := func(x, y int) (*ui.ToolsPanePositionInfo, bool) {
		info, ok := p.GetPositionInfo(x, y).(*ui.ToolsPanePositionInfo)
		return info, ok
	}

	t.Run("grid", func(t *testing.T) {
		for _, tc := range []struct {
			x, y  int
			index int
		}{
			{0, 0, 0},
			{9, 0, 0},
			{10, 0, 1},
			{35, 0, 3},
			{0, 1, 4},
			{12, 4, 17},
		} {
			info, ok := toolAt(tc.x, tc.y)
			if !ok || info.Tool == nil || info.Tool.ID() != tools[tc.index].ID() {
				t.Errorf("at %d,%d: expected tool '%s', got %+v", tc.x, tc.y, tools[tc.index].ID(), info)
			}
		}
	})

	t.Run("empty cells and toggle", func(t *testing.T) {
		if info, _ := toolAt(25, 4); info.Tool != nil || info.Toggle {
			t.Errorf("expected nothing at empty cell, got %+v", info)
		}
		if info, _ := toolAt(w-1, h-1); !info.Toggle {
			t.Errorf("expected toggle, got %+v", info)
		}
	})

	t.Run("closed palette has only toggle", func(t *testing.T) {
		open = false
		defer func() { open = true }()
		if info, _ := toolAt(0, 0); info.Tool != nil {
			t.Errorf("expected no tool while closed, got '%s'", info.Tool.ID())
		}
		if info, _ := toolAt(w-2, h-1); !info.Toggle {
			t.Error("expected toggle while closed")
		}
	})

	if panes.ToolsPaneHeight(0) != 1 || panes.ToolsPaneHeight(4) != 1 || panes.ToolsPaneHeight(5) != 2 {
		t.Error("unexpected palette heights")
	}
}

func TestStatusPaneNotice(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	p := panes.NewStatusPane(
		&renderer{dims: dims(0, 9, 80, 1)},
		dims(0, 9, 80, 1),
		stylesheet(),
		func() panes.StatusInfo { return panes.StatusInfo{CurrentTool: model.DefaultTools()[0], FileName: "note.md"} },
		func() time.Time { return now },
	)

	if _, ok := p.Notice(); ok {
		t.Error("notice without notify")
	}

	p.Notify("copied")
	if notice, ok := p.Notice(); !ok || notice != "copied" {
		t.Errorf("expected notice 'copied', got '%s' (%t)", notice, ok)
	}

	now = now.Add(panes.NoticeDuration - time.Millisecond)
	if _, ok := p.Notice(); !ok {
		t.Error("notice expired early")
	}

	now = now.Add(time.Millisecond)
	if _, ok := p.Notice(); ok {
		t.Error("notice did not expire")
	}
}

type rootFixture struct {
	root    *panes.RootPane
	note    *panes.NotePane
	overlay *panes.OverlayPane
	screen  *screen
	showLog bool
}

func newRootFixture() *rootFixture {
	f := &rootFixture{screen: &screen{}}
	sheet := stylesheet()
	tools := model.DefaultTools()
	doc := editor.NewDocument("first line\nsecond line")
	wrangler := ui.NewCursorWrangler(f.screen)
	r := func(x, y, w, h int) *renderer { return &renderer{dims: dims(x, y, w, h)} }

	noteDims := dims(0, 0, 40, 9)
	f.note = panes.NewNotePane(r(0, 0, 40, 9), noteDims, sheet, doc, wrangler)
	f.overlay = panes.NewOverlayPane(noteDims)
	toolsPane := panes.NewToolsPane(
		r(37, 8, 3, 1), dims(37, 8, 3, 1), sheet,
		styling.NewToolStyling(tools, sheet.Tools),
		func() model.Tool { return tools[0] },
		func() bool { return false },
	)
	status := panes.NewStatusPane(r(0, 9, 40, 1), dims(0, 9, 40, 1), sheet,
		func() panes.StatusInfo { return panes.StatusInfo{} }, nil)
	logPane := panes.NewLogPane(r(0, 0, 40, 10), dims(0, 0, 40, 10), sheet,
		func() bool { return f.showLog }, func() string { return "LOG" }, potatolog.NewMemoryLogReaderWriter(10))
	helpPane := panes.NewHelpPane(r(0, 0, 40, 10), dims(0, 0, 40, 10), sheet,
		func() bool { return false }, func() input.Help { return input.Help{} }, nil)

	f.root = panes.NewRootPane(
		f.screen, wrangler, dims(0, 0, 40, 10),
		f.note,
		panes.NewScrollIndicatorPane(r(0, 0, 40, 9), sheet),
		f.overlay,
		toolsPane,
		status,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(input.EmptyTree()),
	)
	return f
}

func TestRootPaneHitTesting(t *testing.T) {

	t.Run("topmost pane wins", func(t *testing.T) {
		f := newRootFixture()
		if _, ok := f.root.GetPositionInfo(5, 5).(*ui.NotePanePositionInfo); !ok {
			t.Error("expected note at 5,5")
		}
		if _, ok := f.root.GetPositionInfo(38, 8).(*ui.ToolsPanePositionInfo); !ok {
			t.Error("expected toggle over note at 38,8")
		}
		if _, ok := f.root.GetPositionInfo(5, 9).(*ui.StatusPanePositionInfo); !ok {
			t.Error("expected status at 5,9")
		}
		if _, ok := f.root.GetPositionInfo(50, 50).(*ui.NoPanePositionInfo); !ok {
			t.Error("expected no pane off screen")
		}

		f.showLog = true
		if _, ok := f.root.GetPositionInfo(5, 5).(*ui.LogPanePositionInfo); !ok {
			t.Error("expected log over note")
		}
	})

	t.Run("overlay blocks note while hit-testable", func(t *testing.T) {
		f := newRootFixture()
		f.overlay.SetHitTestable(true)

		if _, ok := f.root.GetPositionInfo(5, 1).(*ui.OverlayPanePositionInfo); !ok {
			t.Error("expected overlay at 5,1")
		}
		if _, ok := f.root.CaretAt(5, 1); ok {
			t.Error("caret found through hit-testable overlay")
		}
		if _, ok := f.root.ScrollableAt(5, 1); ok {
			t.Error("scrollable found through hit-testable overlay")
		}

		ui.ThroughOverlay(f.overlay, func() {
			pos, ok := f.root.CaretAt(5, 1)
			if !ok || pos != (model.DocPos{Line: 1, Ch: 5}) {
				t.Errorf("expected 1:5 through overlay, got %s (%t)", pos.String(), ok)
			}
			if s, ok := f.root.ScrollableAt(5, 1); !ok || s != f.note {
				t.Error("expected note as scrollable through overlay")
			}
		})

		if !f.overlay.HitTestable() {
			t.Error("overlay not restored")
		}
	})

	t.Run("no caret outside note", func(t *testing.T) {
		f := newRootFixture()
		if _, ok := f.root.CaretAt(5, 9); ok {
			t.Error("caret found on status bar")
		}
	})
}

func TestRootPaneDraw(t *testing.T) {
	f := newRootFixture()
	f.root.Draw()

	if f.screen.cleared != 1 || f.screen.shown != 1 {
		t.Errorf("expected one clear and show, got %d, %d", f.screen.cleared, f.screen.shown)
	}
	if f.screen.cursor == nil || *f.screen.cursor != (ui.CursorLocation{X: 0, Y: 0}) {
		t.Errorf("expected cursor at document start, got %v", f.screen.cursor)
	}
	if f.root.Focusses() != f.note.Identify() {
		t.Error("expected note focussed")
	}

	f.showLog = true
	if f.root.Focusses() == f.note.Identify() {
		t.Error("expected log focussed while shown")
	}
}
