package ui

// HitTestable is something on top of other panes that can be made transparent
// to hit-tests, so that they reach whatever is beneath it.
type HitTestable interface {
	HitTestable() bool
	SetHitTestable(bool)
}

// ThroughOverlay runs fn with the overlay transparent to hit-tests.
// The overlay's previous state is restored on every exit path, including a
// panic in fn. A nil overlay is fine, fn is simply run.
func ThroughOverlay(overlay HitTestable, fn func()) {
	if overlay == nil {
		fn()
		return
	}

	prev := overlay.HitTestable()
	overlay.SetHitTestable(false)
	defer overlay.SetHitTestable(prev)

	fn()
}
