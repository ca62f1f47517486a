// Package resolve turns two screen points into a document range.
package resolve

import (
	"errors"
	"fmt"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/ui"
)

// ErrNotFound is returned when a screen point does not map to a document
// position.
var ErrNotFound = errors.New("no document position at point")

// CaretLocator hit-tests a screen point and returns the document position of
// the caret there.
// The lookup is subject to whatever is on top, e.g. an overlay capturing the
// point makes it fail.
type CaretLocator interface {
	CaretAt(x, y int) (model.DocPos, bool)
}

// Selector can set the live document selection.
type Selector interface {
	SetSelection(model.DocRange)
}

// Resolver resolves pairs of screen points to document ranges.
type Resolver struct {
	locator CaretLocator
	overlay ui.HitTestable
}

// NewResolver returns a resolver performing its lookups with the given locator
// while the given overlay (which may be nil) is transparent.
func NewResolver(locator CaretLocator, overlay ui.HitTestable) *Resolver {
	return &Resolver{
		locator: locator,
		overlay: overlay,
	}
}

// Resolve returns the document range between the two screen points, in
// document order regardless of the order of the points.
// Returns ErrNotFound if either point does not map to a document position.
func (r *Resolver) Resolve(p1, p2 model.ScreenPoint) (model.DocRange, error) {
	from, err := r.caretAt(p1)
	if err != nil {
		return model.DocRange{}, err
	}
	to, err := r.caretAt(p2)
	if err != nil {
		return model.DocRange{}, err
	}

	return model.DocRange{From: from, To: to}.Normalized(), nil
}

// ResolveAndSelect resolves the range like Resolve and makes it the live
// document selection.
// On error the selection is left as it was.
func (r *Resolver) ResolveAndSelect(p1, p2 model.ScreenPoint, selector Selector) (model.DocRange, error) {
	result, err := r.Resolve(p1, p2)
	if err != nil {
		return model.DocRange{}, err
	}
	selector.SetSelection(result)
	return result, nil
}

func (r *Resolver) caretAt(p model.ScreenPoint) (model.DocPos, error) {
	var pos model.DocPos
	var ok bool
	ui.ThroughOverlay(r.overlay, func() {
		pos, ok = r.locator.CaretAt(p.X, p.Y)
	})
	if !ok {
		return model.DocPos{}, fmt.Errorf("at %s (%w)", p.String(), ErrNotFound)
	}
	return pos, nil
}
