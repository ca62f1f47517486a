package model

import "fmt"

// DocPos is a position in a document, i.E. a (0-based) line and a (0-based)
// column within that line, counted in runes.
type DocPos struct {
	Line int
	Ch   int
}

// Before returns whether this position lies strictly before the other one in
// document order.
func (p DocPos) Before(other DocPos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Ch < other.Ch
}

// String returns a "line:ch" representation, e.g., for logging purposes.
func (p DocPos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Ch)
}

// DocRange is a range in a document from one position to another.
// A range does not need to be in document order; see Normalized.
type DocRange struct {
	From DocPos
	To   DocPos
}

// Normalized returns the range with its endpoints swapped if it is backwards,
// so that From never lies after To.
func (r DocRange) Normalized() DocRange {
	if r.To.Before(r.From) {
		return DocRange{From: r.To, To: r.From}
	}
	return r
}

// Empty returns whether the range covers no text.
func (r DocRange) Empty() bool {
	return r.From == r.To
}

// String returns a "from-to" representation, e.g., for logging purposes.
func (r DocRange) String() string {
	return r.From.String() + "-" + r.To.String()
}

// ScreenPoint is a point on the screen's x-y-plane, which has its origin 0,0
// in the top left.
type ScreenPoint struct {
	X, Y int
}

// Delta returns the absolute horizontal and vertical distances between two
// points.
func (p ScreenPoint) Delta(other ScreenPoint) (dx, dy int) {
	dx, dy = other.X-p.X, other.Y-p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}

// String returns a "x,y" representation, e.g., for logging purposes.
func (p ScreenPoint) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
