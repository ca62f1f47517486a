package ui

import "sync"

// ScrollParams is the vertical scroll state of a pane, in rows.
//
// The offset is kept within [0, max], max being provided by the pane (e.g. the
// number of lines of content less the visible height).
type ScrollParams struct {
	mtx    sync.RWMutex
	offset int
	max    func() int
}

// NewScrollParams returns scroll params starting at the top.
func NewScrollParams(max func() int) *ScrollParams {
	return &ScrollParams{max: max}
}

// ScrollOffset returns the number of rows scrolled past.
func (p *ScrollParams) ScrollOffset() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.offset
}

// SetScrollOffset sets the offset, clamped to the valid range.
func (p *ScrollParams) SetScrollOffset(offset int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.offset = p.clamp(offset)
}

// ScrollBy scrolls by the given number of rows (negative is up).
func (p *ScrollParams) ScrollBy(rows int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.offset = p.clamp(p.offset + rows)
}

// EnsureVisible scrolls as little as possible such that the given row is
// within a viewport of the given height.
func (p *ScrollParams) EnsureVisible(row, height int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	switch {
	case row < p.offset:
		p.offset = p.clamp(row)
	case height > 0 && row >= p.offset+height:
		p.offset = p.clamp(row - height + 1)
	}
}

func (p *ScrollParams) clamp(offset int) int {
	max := 0
	if p.max != nil {
		max = p.max()
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
