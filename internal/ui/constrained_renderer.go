package ui

import "github.com/ja-he/alight/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying renderer within the set
// dimension constraint, which is re-evaluated on every draw call (panes move
// when the palette or log pane are toggled).
//
// Non-conforming rendering requests are corrected to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer constrained to the dimensions the
// given function returns.
func NewConstrainedRenderer(renderer Renderer, constraint func() (x, y, w, h int)) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, style)
}

// constrain intersects the requested box with the constraint.
// Note that text drawn into a box moved to the right is not shifted; callers
// are expected to only draw text starting within the bounds.
func (r *CR) constrain(x, y, w, h int) (int, int, int, int) {
	bx, by, bw, bh := r.constraint()

	if x < bx {
		w -= bx - x
		x = bx
	}
	if y < by {
		h -= by - y
		y = by
	}
	if maxW := bx + bw - x; w > maxW {
		w = maxW
	}
	if maxH := by + bh - y; h > maxH {
		h = maxH
	}

	return x, y, w, h
}
