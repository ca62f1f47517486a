// Package gesture classifies touch gestures as either scrolling or painting
// (selecting a range to apply the current tool to).
//
// A gesture starting close to the right edge of a scrollable region scrolls
// it, any other gesture on a scrollable region paints.
package gesture

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/ui"
)

// Mode is the mode of a gesture session.
type Mode int

const (
	// ModeNone is the mode of an inert (or no) session.
	ModeNone Mode = iota
	// ModeScroll is the mode of a session scrolling a region.
	ModeScroll
	// ModePaint is the mode of a session painting a range.
	ModePaint
)

// ToString returns the name of the mode, e.g. for logging purposes.
func (m Mode) ToString() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeScroll:
		return "scroll"
	case ModePaint:
		return "paint"
	}
	return "[unknown mode]"
}

// Config parameterizes the classification.
// All distances are in screen units (pixels or terminal cells).
type Config struct {
	// EdgeZoneWidth is the width of the zone along the right edge of a
	// scrollable region in which gestures scroll.
	EdgeZoneWidth int
	// LandInset is the distance from the left edge of a scrollable region at
	// which the cursor is landed after scrolling.
	LandInset int
	// DragThreshold is the distance (in either axis) a paint gesture has to
	// exceed to have an effect.
	DragThreshold int
}

// DefaultConfig returns the default configuration, in device-independent
// pixels.
func DefaultConfig() Config {
	return Config{
		EdgeZoneWidth: 70,
		LandInset:     50,
		DragThreshold: 5,
	}
}

// Scrollable is a vertically scrollable region.
type Scrollable interface {
	Dimensions() (x, y, w, h int)
	ScrollOffset() int
	SetScrollOffset(offset int)
}

// Surface is what gestures happen on.
type Surface interface {
	// ScrollableAt hit-tests the point and returns the scrollable region it is
	// in, if any.
	ScrollableAt(x, y int) (Scrollable, bool)
}

// Editor is the part of the host editor needed to land the cursor.
type Editor interface {
	PosAtCoords(x, y int) (model.DocPos, bool)
	SetCursor(model.DocPos)
}

// ScrollIndicator visualizes an ongoing scroll gesture.
type ScrollIndicator interface {
	ShowScrollIndicator(region Scrollable)
	HideScrollIndicator()
}

// Painter receives the start and end points of completed paint gestures.
type Painter interface {
	Paint(from, to model.ScreenPoint)
}

// Session is an ongoing gesture.
type Session struct {
	ID uuid.UUID

	Mode  Mode
	Start model.ScreenPoint

	Target            Scrollable
	StartScrollOffset int
}

// Classifier is the gesture state machine.
//
// It goes from idle to scrolling or painting on Start and back to idle on
// End; at most one session exists at a time.
type Classifier struct {
	cfg Config

	surface   Surface
	overlay   ui.HitTestable
	editor    Editor
	indicator ScrollIndicator
	painter   Painter

	session *Session

	log zerolog.Logger
}

// NewClassifier returns a new, idle classifier.
// The overlay (which may be nil) is made transparent for hit-tests on the
// surface.
func NewClassifier(
	cfg Config,
	surface Surface,
	overlay ui.HitTestable,
	editor Editor,
	indicator ScrollIndicator,
	painter Painter,
	logger zerolog.Logger,
) *Classifier {
	return &Classifier{
		cfg:       cfg,
		surface:   surface,
		overlay:   overlay,
		editor:    editor,
		indicator: indicator,
		painter:   painter,
		log:       logger.With().Str("component", "gesture").Logger(),
	}
}

// Mode returns the mode of the current session (ModeNone if idle).
func (c *Classifier) Mode() Mode {
	if c.session == nil {
		return ModeNone
	}
	return c.session.Mode
}

// Session returns a copy of the current session, if there is one.
func (c *Classifier) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Start starts a session at the given point and returns its mode.
// If the point is not on a scrollable region the classifier stays idle.
func (c *Classifier) Start(p model.ScreenPoint) Mode {
	if c.session != nil {
		c.log.Warn().Str("session", c.session.ID.String()).Msg("new gesture started while previous is active, dropping previous")
		c.reset()
	}

	var target Scrollable
	var found bool
	ui.ThroughOverlay(c.overlay, func() {
		target, found = c.surface.ScrollableAt(p.X, p.Y)
	})
	if !found {
		c.log.Debug().Str("at", p.String()).Msg("no scrollable region at gesture start, inert")
		return ModeNone
	}

	s := &Session{
		ID:     uuid.New(),
		Start:  p,
		Target: target,
	}

	x, _, w, _ := target.Dimensions()
	if rightEdge := x + w; rightEdge-p.X <= c.cfg.EdgeZoneWidth {
		s.Mode = ModeScroll
		s.StartScrollOffset = target.ScrollOffset()
		if c.indicator != nil {
			c.indicator.ShowScrollIndicator(target)
		}
	} else {
		s.Mode = ModePaint
	}

	c.session = s
	c.log.Debug().Str("session", s.ID.String()).Str("mode", s.Mode.ToString()).Str("at", p.String()).Msg("gesture started")
	return s.Mode
}

// Move processes movement of the ongoing gesture to the given point.
// Scrolling sessions scroll the region such that the content follows the
// movement; painting sessions have no live effect.
// Returns whether a session is active, in which case default handling of the
// movement (e.g. native scrolling) must be suppressed.
func (c *Classifier) Move(p model.ScreenPoint) bool {
	if c.session == nil {
		return false
	}

	if c.session.Mode == ModeScroll {
		dy := p.Y - c.session.Start.Y
		c.session.Target.SetScrollOffset(c.session.StartScrollOffset - dy)
	}
	return true
}

// End ends the ongoing gesture at the given point.
// Scrolling sessions land the cursor in the scrolled region, painting sessions
// that moved beyond the drag threshold are handed to the painter.
// The classifier is idle afterwards.
func (c *Classifier) End(p model.ScreenPoint) {
	if c.session == nil {
		return
	}
	defer c.reset()

	switch c.session.Mode {
	case ModeScroll:
		c.landCursor(c.session.Target)
	case ModePaint:
		dx, dy := c.session.Start.Delta(p)
		if dx <= c.cfg.DragThreshold && dy <= c.cfg.DragThreshold {
			c.log.Debug().Str("session", c.session.ID.String()).Msg("paint below drag threshold, ignoring")
			return
		}
		c.painter.Paint(c.session.Start, p)
	}
}

// Cancel abandons the ongoing gesture without any effect.
func (c *Classifier) Cancel() {
	if c.session != nil {
		c.reset()
	}
}

// landCursor puts the cursor at the start of the line shown at the vertical
// middle of the region.
func (c *Classifier) landCursor(region Scrollable) {
	x, y, _, h := region.Dimensions()
	midY := y + h/2
	pos, ok := c.editor.PosAtCoords(x+c.cfg.LandInset, midY)
	if !ok {
		c.log.Debug().Msg("no position to land cursor at")
		return
	}
	c.editor.SetCursor(model.DocPos{Line: pos.Line, Ch: 0})
}

func (c *Classifier) reset() {
	c.session = nil
	if c.indicator != nil {
		c.indicator.HideScrollIndicator()
	}
}
