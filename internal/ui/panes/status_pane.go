package panes

import (
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

// NoticeDuration is how long a notice is shown in the status bar.
const NoticeDuration = 3 * time.Second

// StatusInfo is what the status bar shows.
type StatusInfo struct {
	Touch       bool
	Active      bool
	CurrentTool model.Tool
	FileName    string
	Dirty       bool
	Cursor      model.DocPos
}

// StatusPane is a status bar showing the input mode, whether annotating is
// active, the current tool, the note file, and the latest notice.
type StatusPane struct {
	ui.LeafPane

	info  func() StatusInfo
	now   func() time.Time
	marks *styling.MarkStyler

	mtx      sync.RWMutex
	notice   string
	noticeAt time.Time
}

// Notify shows the given notice for NoticeDuration.
func (p *StatusPane) Notify(msg string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.notice = msg
	p.noticeAt = p.now()
}

// Notice returns the notice currently shown, if any.
func (p *StatusPane) Notice() (string, bool) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	if p.notice == "" || p.now().Sub(p.noticeAt) >= NoticeDuration {
		return "", false
	}
	return p.notice, true
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	info := p.info()

	bgStyle := p.Stylesheet.Status
	emphStyle := bgStyle.DefaultEmphasized().Bolded()
	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	col := x
	draw := func(style styling.DrawStyling, text string) {
		width := runewidth.StringWidth(text)
		p.Renderer.DrawText(col, y, width, 1, style, text)
		col += width
	}

	mode := " POINTER "
	if info.Touch {
		mode = " TOUCH "
	}
	draw(emphStyle, mode)
	if info.Active {
		draw(p.Stylesheet.ToolToggleActive, " ANNOTATING ")
	}
	if info.CurrentTool != nil {
		toolStyle := bgStyle.Italicized()
		if hl, ok := info.CurrentTool.(model.HighlightTool); ok {
			toolStyle = p.marks.Style(hl.Color)
		}
		draw(bgStyle, " ")
		draw(toolStyle, " "+info.CurrentTool.Icon()+" "+info.CurrentTool.Label()+" ")
	}

	if notice, ok := p.Notice(); ok {
		draw(bgStyle, "  ")
		draw(emphStyle.Italicized(), notice)
	}

	right := info.FileName
	if info.Dirty {
		right += " [+]"
	}
	right += " " + info.Cursor.String() + " "
	if width := runewidth.StringWidth(right); x+w-width > col {
		p.Renderer.DrawText(x+w-width, y, width, 1, bgStyle.DefaultDimmed(), right)
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	info func() StatusInfo,
	now func() time.Time,
) *StatusPane {
	if now == nil {
		now = time.Now
	}
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		info:  info,
		now:   now,
		marks: styling.NewMarkStyler(stylesheet.Status),
	}
}
