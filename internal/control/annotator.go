package control

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/gesture"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/resolve"
	"github.com/ja-he/alight/internal/transform"
	"github.com/ja-he/alight/internal/ui"
)

// Deferrer runs functions after a delay.
// Implementations must run fn on the same goroutine that drives the
// Annotator.
type Deferrer interface {
	AfterFunc(d time.Duration, fn func())
}

// Document is the document the annotator operates on.
type Document interface {
	transform.Editor
	resolve.Selector
	SomethingSelected() bool
}

// Surface is what pointer and touch input happens on.
type Surface interface {
	gesture.Surface
	resolve.CaretLocator
}

// Notifier shows short notices to the user.
type Notifier interface {
	Notify(msg string)
}

// Host is everything the annotator needs from its host application.
type Host struct {
	Document  Document
	Clipboard transform.Clipboard
	Commands  transform.Commands

	Surface   Surface
	Editor    gesture.Editor
	Overlay   ui.HitTestable
	Indicator gesture.ScrollIndicator

	Notifier Notifier
	// Feedback acknowledges a tool selection, e.g. with a bell.
	Feedback func()
}

// Settings parameterize the annotator.
type Settings struct {
	// Touch selects touch mode (gestures on an overlay) over pointer mode
	// (applying the tool to the native selection on pointer release).
	Touch bool

	Gesture gesture.Config

	PointerSettle time.Duration
	PaintSettle   time.Duration
}

// Annotator is the annotation session controller.
//
// It holds the current tool and whether annotating is active, and applies the
// current tool to what the user selects, either with the pointer or by
// painting with touch gestures.
//
// All methods must be called from the same goroutine (the UI event loop).
type Annotator struct {
	registry *model.ToolRegistry
	host     Host
	settings Settings

	engine     *transform.Engine
	resolver   *resolve.Resolver
	classifier *gesture.Classifier
	deferrer   Deferrer

	mtx        sync.RWMutex
	current    model.Tool
	active     bool
	generation uuid.UUID

	log zerolog.Logger
}

// NewAnnotator returns a new, inactive annotator with the first tool of the
// registry selected.
func NewAnnotator(
	registry *model.ToolRegistry,
	host Host,
	settings Settings,
	deferrer Deferrer,
	logger zerolog.Logger,
) *Annotator {
	a := &Annotator{
		registry: registry,
		host:     host,
		settings: settings,
		deferrer: deferrer,
		log:      logger.With().Str("component", "annotator").Logger(),
	}
	if tools := registry.List(); len(tools) > 0 {
		a.current = tools[0]
	}

	a.engine = transform.NewEngine(host.Document, host.Clipboard, host.Commands, logger)
	a.resolver = resolve.NewResolver(host.Surface, host.Overlay)
	if settings.Touch {
		a.classifier = gesture.NewClassifier(settings.Gesture, host.Surface, host.Overlay, host.Editor, host.Indicator, a, logger)
	}
	a.syncOverlay()

	return a
}

// Tools returns the available tools in display order.
func (a *Annotator) Tools() []model.Tool { return a.registry.List() }

// CurrentTool returns the currently selected tool.
func (a *Annotator) CurrentTool() model.Tool {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return a.current
}

// Active returns whether annotating is active (the palette is open).
func (a *Annotator) Active() bool {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return a.active
}

// Touch returns whether the annotator is in touch mode.
func (a *Annotator) Touch() bool { return a.settings.Touch }

// GestureMode returns the mode of the ongoing touch gesture.
func (a *Annotator) GestureMode() gesture.Mode {
	if a.classifier == nil {
		return gesture.ModeNone
	}
	return a.classifier.Mode()
}

// Toggle activates or deactivates annotating.
// While active in touch mode, the overlay captures touch input.
func (a *Annotator) Toggle() {
	a.mtx.Lock()
	a.active = !a.active
	active := a.active
	a.mtx.Unlock()

	if !active {
		a.invalidate()
		if a.classifier != nil {
			a.classifier.Cancel()
		}
	}
	a.syncOverlay()

	a.log.Debug().Bool("active", active).Msg("toggled")
	if active {
		a.notify("enabled")
	}
}

// SelectTool makes the tool with the given ID the current tool.
// The undo tool is special: it is not selected but invokes undo right away.
func (a *Annotator) SelectTool(id model.ToolID) error {
	tool, err := a.registry.ByID(id)
	if err != nil {
		return err
	}

	if action, ok := tool.(model.ActionTool); ok && action.Op == model.ActionUndo {
		if err := a.host.Commands.Invoke(transform.CommandUndo); err != nil {
			a.log.Warn().Err(err).Msg("could not undo")
			return nil
		}
		a.notify("undone")
		return nil
	}

	a.mtx.Lock()
	a.current = tool
	a.mtx.Unlock()

	a.log.Debug().Str("tool", tool.ID()).Msg("selected tool")
	if a.host.Feedback != nil {
		a.host.Feedback()
	}
	return nil
}

// PointerPressed notes the start of a new pointer selection.
// Any application still pending from a previous release is dropped.
func (a *Annotator) PointerPressed() {
	a.invalidate()
}

// PointerReleased applies the current tool to the document's selection, once
// it had time to settle.
// Only has an effect while active in pointer mode.
func (a *Annotator) PointerReleased() {
	if !a.Active() || a.settings.Touch {
		return
	}

	a.deferApply(a.settings.PointerSettle, "pointer")
}

// TouchStart starts a touch gesture.
// Returns whether the touch is captured by the annotator (i.E. active in touch
// mode); uncaptured touches are to be handled by the host as usual.
func (a *Annotator) TouchStart(p model.ScreenPoint) bool {
	if !a.capturesTouch() {
		return false
	}
	a.invalidate()
	a.classifier.Start(p)
	return true
}

// TouchMove continues a touch gesture.
// Returns whether the host's default handling of the movement must be
// suppressed.
func (a *Annotator) TouchMove(p model.ScreenPoint) bool {
	if !a.capturesTouch() {
		return false
	}
	return a.classifier.Move(p)
}

// TouchEnd ends a touch gesture.
func (a *Annotator) TouchEnd(p model.ScreenPoint) {
	if !a.capturesTouch() {
		return
	}
	a.classifier.End(p)
}

// Paint applies the current tool to the range painted between the two points.
// It is called by the gesture classifier at the end of a paint gesture.
func (a *Annotator) Paint(from, to model.ScreenPoint) {
	r, err := a.resolver.ResolveAndSelect(from, to, a.host.Document)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) {
			a.log.Debug().Err(err).Msg("painted range not found")
		} else {
			a.log.Error().Err(err).Msg("could not resolve painted range")
		}
		return
	}
	a.log.Debug().Str("range", r.String()).Msg("selected painted range")

	a.deferApply(a.settings.PaintSettle, "paint")
}

// Apply applies the current tool to the document's selection right away.
func (a *Annotator) Apply() {
	a.apply(a.CurrentTool())
}

func (a *Annotator) capturesTouch() bool {
	return a.classifier != nil && a.Active()
}

// deferApply schedules applying the current tool after the given delay.
// The application is dropped if another one is scheduled or a new gesture
// starts in the meantime.
func (a *Annotator) deferApply(d time.Duration, trigger string) {
	token := uuid.New()
	a.mtx.Lock()
	a.generation = token
	a.mtx.Unlock()

	a.deferrer.AfterFunc(d, func() {
		if !a.isCurrent(token) {
			a.log.Debug().Str("trigger", trigger).Str("token", token.String()).Msg("dropping stale application")
			return
		}
		if !a.host.Document.SomethingSelected() {
			return
		}
		a.apply(a.CurrentTool())
	})
}

func (a *Annotator) apply(tool model.Tool) {
	if tool == nil {
		return
	}

	outcome, err := a.engine.Apply(tool)
	switch {
	case errors.Is(err, transform.ErrNoOp):
		a.log.Debug().Str("tool", tool.ID()).Msg("nothing to apply")
	case err != nil:
		a.log.Error().Err(err).Str("tool", tool.ID()).Msg("could not apply tool")
	default:
		switch outcome {
		case transform.OutcomeCopied:
			a.notify("copied")
		case transform.OutcomeUndone:
			a.notify("undone")
		}
	}
}

func (a *Annotator) invalidate() {
	a.mtx.Lock()
	a.generation = uuid.Nil
	a.mtx.Unlock()
}

func (a *Annotator) isCurrent(token uuid.UUID) bool {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return token != uuid.Nil && a.generation == token
}

func (a *Annotator) syncOverlay() {
	if a.host.Overlay == nil {
		return
	}
	a.host.Overlay.SetHitTestable(a.settings.Touch && a.Active())
}

func (a *Annotator) notify(msg string) {
	a.log.Info().Msg(msg)
	if a.host.Notifier != nil {
		a.host.Notifier.Notify(msg)
	}
}
