package resolve_test

import (
	"errors"
	"testing"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/resolve"
)

// overlay captures all hit-tests while hit-testable.
type overlay struct {
	hitTestable bool
}

func (o *overlay) HitTestable() bool     { return o.hitTestable }
func (o *overlay) SetHitTestable(b bool) { o.hitTestable = b }

// grid maps screen point (x,y) to document position (y,x) for points within
// it, unless blocked by the overlay.
type grid struct {
	overlay *overlay
	w, h    int
	lookups int
}

func (g *grid) CaretAt(x, y int) (model.DocPos, bool) {
	g.lookups++
	if g.overlay != nil && g.overlay.hitTestable {
		return model.DocPos{}, false
	}
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return model.DocPos{}, false
	}
	return model.DocPos{Line: y, Ch: x}, true
}

type selector struct {
	selected *model.DocRange
}

func (s *selector) SetSelection(r model.DocRange) { s.selected = &r }

func TestResolve(t *testing.T) {
	o := &overlay{hitTestable: true}
	g := &grid{overlay: o, w: 80, h: 20}
	r := resolve.NewResolver(g, o)

	t.Run("through the overlay", func(t *testing.T) {
		result, err := r.Resolve(model.ScreenPoint{X: 3, Y: 1}, model.ScreenPoint{X: 10, Y: 4})
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		expected := model.DocRange{From: model.DocPos{Line: 1, Ch: 3}, To: model.DocPos{Line: 4, Ch: 10}}
		if result != expected {
			t.Error("unexpected range", result.String())
		}
		if !o.hitTestable {
			t.Error("overlay not restored")
		}
	})

	t.Run("swap", func(t *testing.T) {
		p1, p2 := model.ScreenPoint{X: 5, Y: 7}, model.ScreenPoint{X: 40, Y: 2}
		forwards, err1 := r.Resolve(p2, p1)
		backwards, err2 := r.Resolve(p1, p2)
		if err1 != nil || err2 != nil {
			t.Fatal("unexpected errors", err1, err2)
		}
		if forwards != backwards {
			t.Errorf("backwards resolution %s differs from %s", backwards.String(), forwards.String())
		}
		if backwards.To.Before(backwards.From) {
			t.Error("range is reversed")
		}
	})

	t.Run("same line backwards", func(t *testing.T) {
		result, _ := r.Resolve(model.ScreenPoint{X: 9, Y: 3}, model.ScreenPoint{X: 2, Y: 3})
		if result.From.Ch != 2 || result.To.Ch != 9 {
			t.Error("not swapped:", result.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		for name, points := range map[string][2]model.ScreenPoint{
			"first":  {{X: 200, Y: 1}, {X: 1, Y: 1}},
			"second": {{X: 1, Y: 1}, {X: 1, Y: 99}},
		} {
			t.Run(name, func(t *testing.T) {
				s := &selector{}
				_, err := r.ResolveAndSelect(points[0], points[1], s)
				if !errors.Is(err, resolve.ErrNotFound) {
					t.Error("expected ErrNotFound, got", err)
				}
				if s.selected != nil {
					t.Error("selection set despite failed lookup")
				}
				if !o.hitTestable {
					t.Error("overlay not restored after failed lookup")
				}
			})
		}
	})

	t.Run("overlay blocks without the scoped transparency", func(t *testing.T) {
		_, ok := g.CaretAt(1, 1)
		if ok {
			t.Error("grid lookup should be blocked by the overlay")
		}
	})

	t.Run("select", func(t *testing.T) {
		s := &selector{}
		result, err := r.ResolveAndSelect(model.ScreenPoint{X: 8, Y: 0}, model.ScreenPoint{X: 0, Y: 0}, s)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if s.selected == nil || *s.selected != result {
			t.Error("resolved range not selected")
		}
	})
}
