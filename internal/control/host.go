package control

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/gesture"
)

// clipboardWrite writes to the system clipboard.
var clipboardWrite = clipboard.WriteAll

// SystemClipboard is the system clipboard.
// Writing fails where no clipboard utility (e.g. xclip, wl-copy, pbcopy) is
// available.
type SystemClipboard struct{}

// WriteText writes the text to the system clipboard.
func (SystemClipboard) WriteText(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("could not write clipboard (%w)", err)
	}
	return nil
}

// NewSettings returns the annotator settings for the given gesture
// configuration and mode.
func NewSettings(g config.Gesture, touch bool) (Settings, error) {
	pointerSettle, err := g.PointerSettleDuration()
	if err != nil {
		return Settings{}, fmt.Errorf("invalid pointer settle delay (%w)", err)
	}
	paintSettle, err := g.PaintSettleDuration()
	if err != nil {
		return Settings{}, fmt.Errorf("invalid paint settle delay (%w)", err)
	}

	gestureConfig := gesture.DefaultConfig()
	if g.EdgeZoneWidth != nil {
		gestureConfig.EdgeZoneWidth = *g.EdgeZoneWidth
	}
	if g.LandInset != nil {
		gestureConfig.LandInset = *g.LandInset
	}
	if g.DragThreshold != nil {
		gestureConfig.DragThreshold = *g.DragThreshold
	}

	return Settings{
		Touch:         touch,
		Gesture:       gestureConfig,
		PointerSettle: pointerSettle,
		PaintSettle:   paintSettle,
	}, nil
}
