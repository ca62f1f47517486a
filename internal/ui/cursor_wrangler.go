package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler handles requests to place a (text/terminal) cursor on the
// screen. The most recent request wins.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	desiredLocation *CursorLocation
	requester       string
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put requests the cursor to be placed at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation != nil && w.requester != requesterID {
		log.Trace().Msgf("'%s' overrides cursor placed by '%s' (%s -> %s)", requesterID, w.requester, w.desiredLocation.String(), l.String())
	}

	w.desiredLocation = &l
	w.requester = requesterID
}

// Delete removes the requester's cursor, if it is still the most recent
// request.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation == nil || w.requester != requesterID {
		return
	}

	w.desiredLocation = nil
	w.requester = ""
}

// Enact enacts the current cursor location request via the underlying
// cursor controller.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}
