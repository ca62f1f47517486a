package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// CallbackEvent is an event carrying a function to be run by whoever handles
// the event, i.E. on the event loop's goroutine.
type CallbackEvent struct {
	tcell.EventTime
	fn func()
}

// NewCallbackEvent returns a new callback event for the given function.
func NewCallbackEvent(fn func()) *CallbackEvent {
	ev := &CallbackEvent{fn: fn}
	ev.SetEventNow()
	return ev
}

// Run runs the event's function.
func (ev *CallbackEvent) Run() {
	if ev.fn != nil {
		ev.fn()
	}
}

// Deferrer defers functions to the event loop: after the delay, the function
// is posted as a CallbackEvent, which the event loop is expected to Run.
type Deferrer struct {
	poster EventPoster
	log    zerolog.Logger
}

// NewDeferrer returns a deferrer posting to the given event queue.
func NewDeferrer(poster EventPoster, logger zerolog.Logger) *Deferrer {
	return &Deferrer{
		poster: poster,
		log:    logger.With().Str("component", "deferrer").Logger(),
	}
}

// AfterFunc posts fn to the event loop after the given delay.
// If the event queue is full, fn is dropped (and a warning logged).
func (d *Deferrer) AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		if err := d.poster.PostEvent(NewCallbackEvent(fn)); err != nil {
			d.log.Warn().Err(err).Dur("delay", delay).Msg("could not post deferred callback, dropping it")
		}
	})
}
