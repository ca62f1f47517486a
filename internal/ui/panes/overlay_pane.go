package panes

import (
	"sync"

	"github.com/ja-he/alight/internal/ui"
)

// OverlayPane is an invisible pane over the note that captures touch input
// while annotating in touch mode, so that touches paint instead of moving the
// cursor.
//
// It only takes part in hit-testing while it is hit-testable.
type OverlayPane struct {
	ui.LeafPane

	mtx         sync.RWMutex
	hitTestable bool
}

// HitTestable returns whether the overlay currently captures hit-tests.
func (p *OverlayPane) HitTestable() bool {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.hitTestable
}

// SetHitTestable sets whether the overlay captures hit-tests.
func (p *OverlayPane) SetHitTestable(b bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.hitTestable = b
}

// IsVisible returns whether the overlay takes part in hit-testing.
// It never draws anything.
func (p *OverlayPane) IsVisible() bool { return p.HitTestable() }

// GetPositionInfo returns information on a requested position in this pane.
func (p *OverlayPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.OverlayPanePositionInfo{}
}

// NewOverlayPane constructs and returns a new, non-hit-testable OverlayPane.
func NewOverlayPane(dimensions func() (x, y, w, h int)) *OverlayPane {
	return &OverlayPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Dims: dimensions,
		},
	}
}
