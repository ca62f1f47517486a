package panes

import (
	"sync"

	"github.com/ja-he/alight/internal/gesture"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

// ScrollIndicatorPane shows a bar along the right edge of a region while it
// is scrolled by a touch gesture, marking the zone scroll gestures start in.
type ScrollIndicatorPane struct {
	ui.LeafPane

	mtx    sync.RWMutex
	region gesture.Scrollable
}

// ShowScrollIndicator shows the indicator for the given region.
func (p *ScrollIndicatorPane) ShowScrollIndicator(region gesture.Scrollable) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.region = region
}

// HideScrollIndicator hides the indicator.
func (p *ScrollIndicatorPane) HideScrollIndicator() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.region = nil
}

// IsVisible returns whether the indicator is shown.
func (p *ScrollIndicatorPane) IsVisible() bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.region != nil
}

// Dimensions returns the column two cells in from the region's right edge.
func (p *ScrollIndicatorPane) Dimensions() (x, y, w, h int) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	if p.region == nil {
		return 0, 0, 0, 0
	}
	rx, ry, rw, rh := p.region.Dimensions()
	x = rx + rw - 2
	if x < rx {
		x = rx
	}
	return x, ry, 1, rh
}

// Draw draws the indicator, if shown.
func (p *ScrollIndicatorPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.ScrollIndicator)
}

// Contains returns false; the indicator does not take part in hit-testing.
func (p *ScrollIndicatorPane) Contains(x, y int) bool { return false }

// NewScrollIndicatorPane constructs and returns a new, hidden
// ScrollIndicatorPane.
func NewScrollIndicatorPane(renderer ui.ConstrainedRenderer, stylesheet styling.Stylesheet) *ScrollIndicatorPane {
	p := &ScrollIndicatorPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Stylesheet: stylesheet,
		},
	}
	p.Dims = p.Dimensions
	return p
}
