// Package edit holds the state of pointer interaction with the note.
package edit

// PointerState is the state of the (primary) pointer button as derived from
// the terminal's mouse events, which only report which buttons are held.
type PointerState int

const (
	_ PointerState = iota
	// PointerStateNone means the button is not held.
	PointerStateNone
	// PointerStatePressed means the button was pressed but not moved since.
	PointerStatePressed
	// PointerStateDragging means the button is held and was moved.
	PointerStateDragging
)

// ToString returns the name of the state, e.g. for logging purposes.
func (s PointerState) ToString() string {
	switch s {
	case PointerStateNone:
		return "none"
	case PointerStatePressed:
		return "pressed"
	case PointerStateDragging:
		return "dragging"
	}
	return "[unknown pointer state]"
}

// PointerTransition is what a mouse event means for the pointer button.
type PointerTransition int

const (
	_ PointerTransition = iota
	// PointerIdle is a movement without the button held (or no change).
	PointerIdle
	// PointerDown is the button being pressed.
	PointerDown
	// PointerMove is a movement with the button held.
	PointerMove
	// PointerUp is the button being released.
	PointerUp
)

// Next returns the state following this one given whether the button is held
// and whether the pointer is at a different position than in the previous
// event, along with the transition this constitutes.
func (s PointerState) Next(held, moved bool) (PointerState, PointerTransition) {
	switch {
	case !held && (s == PointerStatePressed || s == PointerStateDragging):
		return PointerStateNone, PointerUp
	case !held:
		return PointerStateNone, PointerIdle
	case s != PointerStatePressed && s != PointerStateDragging:
		return PointerStatePressed, PointerDown
	case moved:
		return PointerStateDragging, PointerMove
	default:
		return s, PointerIdle
	}
}
