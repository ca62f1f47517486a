package input

// CapturingOverlay is a wrapper over a SimpleInputProcessor that always claims
// to capture input, which is what modal overlays (e.g. the help) want.
type CapturingOverlay struct {
	Processor SimpleInputProcessor
}

// CapturesInput always returns true.
func (o *CapturingOverlay) CapturesInput() bool { return true }

// ProcessInput defers to the underlying processor.
func (o *CapturingOverlay) ProcessInput(k Key) bool { return o.Processor.ProcessInput(k) }

// GetHelp returns the input help map for this processor.
func (o *CapturingOverlay) GetHelp() Help { return o.Processor.GetHelp() }

// CapturingOverlayWrap returns a wrapper over the given SimpleInputProcessor
// that always captures all input.
func CapturingOverlayWrap(s SimpleInputProcessor) *CapturingOverlay {
	return &CapturingOverlay{Processor: s}
}
