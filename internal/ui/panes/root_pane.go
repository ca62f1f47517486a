package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/alight/internal/gesture"
	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, and hit-testing.
//
// Panes are stacked bottom to top as follows: note, scroll indicator, touch
// overlay, tools, status, log, help. Hit-tests go to the topmost visible pane
// containing the point; the scroll indicator never takes hits and the overlay
// only while it is hit-testable.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	note      *NotePane
	indicator *ScrollIndicatorPane
	overlay   *OverlayPane
	tools     *ToolsPane
	status    *StatusPane
	logPane   ui.Pane
	helpPane  ui.Pane

	drawMtx sync.Mutex

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// PaneAt returns the topmost pane taking hits at the given position.
func (p *RootPane) PaneAt(x, y int) (ui.Pane, bool) {
	hitTestable := p.hitTestablePanes()
	for i := len(hitTestable) - 1; i >= 0; i-- {
		pane := hitTestable[i]
		if !pane.IsVisible() {
			continue
		}
		px, py, pw, ph := pane.Dimensions()
		if ui.Contains(px, py, pw, ph, x, y) {
			return pane, true
		}
	}
	return nil, false
}

// GetPositionInfo returns information on a requested position, as provided by
// the topmost pane there.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	pane, ok := p.PaneAt(x, y)
	if !ok {
		return &ui.NoPanePositionInfo{}
	}
	return pane.GetPositionInfo(x, y)
}

// ScrollableAt returns the scrollable region hit at the given position, if
// any. The note is the only scrollable region.
func (p *RootPane) ScrollableAt(x, y int) (gesture.Scrollable, bool) {
	pane, ok := p.PaneAt(x, y)
	if !ok || pane != ui.Pane(p.note) {
		return nil, false
	}
	return p.note, true
}

// CaretAt returns the document position hit at the given position, if the
// note is hit there.
func (p *RootPane) CaretAt(x, y int) (model.DocPos, bool) {
	pane, ok := p.PaneAt(x, y)
	if !ok || pane != ui.Pane(p.note) {
		return model.DocPos{}, false
	}
	return p.note.PosAtCoords(x, y)
}

func (p *RootPane) hitTestablePanes() []ui.Pane {
	return []ui.Pane{p.note, p.overlay, p.tools, p.status, p.logPane, p.helpPane}
}

func (p *RootPane) drawOrder() []ui.Pane {
	return []ui.Pane{p.note, p.indicator, p.tools, p.status, p.logPane, p.helpPane}
}

// IsVisible returns true, the root is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.drawMtx.Lock()
	defer p.drawMtx.Unlock()

	p.renderer.Clear()

	for _, pane := range p.drawOrder() {
		if pane.IsVisible() {
			pane.Draw()
		}
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw clears the screen.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	for _, pane := range p.drawOrder() {
		pane.Undraw()
	}
	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {
	switch {
	case p.inputProcessor.CapturesInput():
		return p.inputProcessor.ProcessInput(key)
	case p.focussedPane().CapturesInput():
		return p.focussedPane().ProcessInput(key)
	default:
		if p.focussedPane().ProcessInput(key) {
			return true
		}
		return p.inputProcessor.ProcessInput(key)
	}
}

// Identify returns the root's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID { return p.focussedPane().Identify() }

// FocusPrev does nothing.
func (p *RootPane) FocusPrev() {}

// FocusNext does nothing.
func (p *RootPane) FocusNext() {}

func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return p.note
	}
}

// SetParent panics, the root has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}
	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}
	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	note *NotePane,
	indicator *ScrollIndicatorPane,
	overlay *OverlayPane,
	tools *ToolsPane,
	status *StatusPane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		note:           note,
		indicator:      indicator,
		overlay:        overlay,
		tools:          tools,
		status:         status,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	for _, pane := range []ui.Pane{note, indicator, overlay, tools, status, logPane, helpPane} {
		pane.SetParent(rootPane)
	}

	return rootPane
}
