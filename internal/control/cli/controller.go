package cli

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/control"
	"github.com/ja-he/alight/internal/control/action"
	"github.com/ja-he/alight/internal/control/edit"
	"github.com/ja-he/alight/internal/editor"
	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/input/processors"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/potatolog"
	"github.com/ja-he/alight/internal/storage"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/tui"
	"github.com/ja-he/alight/internal/ui"
	"github.com/ja-he/alight/internal/ui/panes"
)

// wheelScrollRows is how many rows a mouse wheel step scrolls.
const wheelScrollRows = 3

type controllerEvent int

const (
	controllerEventRender controllerEvent = iota
	controllerEventExit
)

// pointerTarget is what a pointer press started on, and what receives the
// rest of the press until the button is released.
type pointerTarget int

const (
	pointerTargetNone pointerTarget = iota
	pointerTargetTools
	pointerTargetNote
	pointerTargetTouch
)

// Controller runs the terminal editor: it owns the document, the annotator and
// the panes, and routes terminal events to them.
type Controller struct {
	data     *control.ControlData
	doc      *editor.Document
	registry *model.ToolRegistry
	settings control.Settings

	annotatorMtx sync.RWMutex
	annotator    *control.Annotator

	fileHandler *storage.FileHandler
	watcher     *storage.Watcher

	rootPane    *panes.RootPane
	notePane    *panes.NotePane
	overlayPane *panes.OverlayPane
	indicator   *panes.ScrollIndicatorPane
	statusPane  *panes.StatusPane

	pointerTarget pointerTarget

	screen            *tui.ScreenHandler
	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
	deferrer          *tui.Deferrer

	controllerEvents chan controllerEvent

	log zerolog.Logger
}

// NewController sets up the screen and everything shown on it for editing the
// note.
func NewController(
	envData control.EnvData,
	configData config.Config,
	registry *model.ToolRegistry,
	stylesheet styling.Stylesheet,
	touch bool,
	logger zerolog.Logger,
) (_ *Controller, err error) {
	controller := Controller{
		data:     control.NewControlData(envData),
		registry: registry,
		log:      logger.With().Str("component", "controller").Logger(),
	}
	controller.data.PointerState = edit.PointerStateNone

	settings, err := control.NewSettings(configData.Gesture, touch)
	if err != nil {
		return nil, err
	}
	controller.settings = settings

	controller.fileHandler = storage.NewFileHandler(envData.NotePath)
	text, err := controller.fileHandler.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read note (%w)", err)
	}
	controller.doc = editor.NewDocument(text)

	// the key configuration can be invalid, check it while the terminal is
	// still usable for reporting that
	rootPaneInputTree, err := controller.rootInputTree(configData.Keys)
	if err != nil {
		return nil, err
	}

	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			renderer.Fini()
		}
	}()
	screenDimensions := renderer.Dimensions
	nTools := registry.Len()

	statusDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		return 0, screenHeight - 1, screenWidth, 1
	}
	toolsHeight := func(screenHeight int) int {
		h := panes.ToolsPaneHeight(nTools)
		if h > screenHeight-2 {
			h = screenHeight - 2
		}
		if h < 1 {
			h = 1
		}
		return h
	}
	toolsDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		if controller.paletteOpen() {
			th := toolsHeight(screenHeight)
			return 0, screenHeight - 1 - th, screenWidth, th
		}
		return screenWidth - panes.ToggleWidth, screenHeight - 2, panes.ToggleWidth, 1
	}
	noteDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		if controller.paletteOpen() {
			return 0, 0, screenWidth, screenHeight - 1 - toolsHeight(screenHeight)
		}
		return 0, 0, screenWidth, screenHeight - 1
	}
	helpDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		w, h = 64, 24
		if w > screenWidth {
			w = screenWidth
		}
		if h > screenHeight {
			h = screenHeight
		}
		return (screenWidth - w) / 2, (screenHeight - h) / 2, w, h
	}

	cursorWrangler := ui.NewCursorWrangler(renderer)

	controller.notePane = panes.NewNotePane(
		ui.NewConstrainedRenderer(renderer, noteDimensions),
		noteDimensions,
		stylesheet,
		controller.doc,
		cursorWrangler,
	)
	controller.overlayPane = panes.NewOverlayPane(noteDimensions)
	controller.indicator = panes.NewScrollIndicatorPane(
		ui.NewConstrainedRenderer(renderer, noteDimensions),
		stylesheet,
	)
	toolsPane := panes.NewToolsPane(
		ui.NewConstrainedRenderer(renderer, toolsDimensions),
		toolsDimensions,
		stylesheet,
		styling.NewToolStyling(registry.List(), stylesheet.Tools),
		func() model.Tool { return controller.getAnnotator().CurrentTool() },
		controller.paletteOpen,
	)
	controller.statusPane = panes.NewStatusPane(
		ui.NewConstrainedRenderer(renderer, statusDimensions),
		statusDimensions,
		stylesheet,
		controller.statusInfo,
		nil,
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, screenDimensions),
		screenDimensions,
		stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
	)
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(renderer, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return controller.data.ShowHelp },
		func() input.Help { return controller.rootPane.GetHelp() },
		[]string{
			"click + to open the tools, click a tool to select it",
			"pointer: select text, the tool applies on release",
			"touch: paint over text, swipe along the right edge to scroll",
		},
	)

	controller.rootPane = panes.NewRootPane(
		renderer,
		cursorWrangler,
		screenDimensions,
		controller.notePane,
		controller.indicator,
		controller.overlayPane,
		toolsPane,
		controller.statusPane,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(rootPaneInputTree),
	)

	controller.screen = renderer
	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer
	controller.deferrer = tui.NewDeferrer(renderer, logger)

	controller.setAnnotator(controller.newAnnotator(settings))

	watcher, err := storage.NewWatcher(envData.NotePath, logger)
	if err != nil {
		controller.log.Warn().Err(err).Msg("not watching note for changes")
	} else {
		controller.watcher = watcher
	}

	return &controller, nil
}

func (c *Controller) newAnnotator(settings control.Settings) *control.Annotator {
	return control.NewAnnotator(
		c.registry,
		control.Host{
			Document:  c.doc,
			Clipboard: control.SystemClipboard{},
			Commands:  c.doc,
			Surface:   c.rootPane,
			Editor:    c.notePane,
			Overlay:   c.overlayPane,
			Indicator: c.indicator,
			Notifier:  c,
			Feedback:  c.screen.Beep,
		},
		settings,
		c.deferrer,
		c.log,
	)
}

func (c *Controller) getAnnotator() *control.Annotator {
	c.annotatorMtx.RLock()
	defer c.annotatorMtx.RUnlock()
	return c.annotator
}

func (c *Controller) setAnnotator(a *control.Annotator) {
	c.annotatorMtx.Lock()
	defer c.annotatorMtx.Unlock()
	c.annotator = a
}

func (c *Controller) paletteOpen() bool {
	a := c.getAnnotator()
	return a != nil && a.Active()
}

func (c *Controller) statusInfo() panes.StatusInfo {
	a := c.getAnnotator()
	return panes.StatusInfo{
		Touch:       a.Touch(),
		Active:      a.Active(),
		CurrentTool: a.CurrentTool(),
		FileName:    filepath.Base(c.data.EnvData.NotePath),
		Dirty:       c.doc.Dirty(),
		Cursor:      c.doc.Cursor(),
	}
}

// Notify shows the notice in the status bar and logs it.
// A redraw is scheduled for when the notice expires.
func (c *Controller) Notify(msg string) {
	c.log.Info().Str("notice", msg).Msg("notice")
	c.statusPane.Notify(msg)
	c.deferrer.AfterFunc(panes.NoticeDuration, func() {})
}

// rootInputTree binds the configured keys to the controller's actions.
func (c *Controller) rootInputTree(keys map[string]string) (*input.Tree, error) {
	simple := func(explanation string, f func()) action.Action {
		return action.NewSimple(func() string { return explanation }, f)
	}
	actions := map[input.Actionspec]action.Action{
		"quit":             simple("quit", func() { c.controllerEvents <- controllerEventExit }),
		"save":             simple("save note", c.save),
		"scroll-down":      simple("scroll down", func() { c.notePane.ScrollBy(1) }),
		"scroll-up":        simple("scroll up", func() { c.notePane.ScrollBy(-1) }),
		"scroll-page-down": simple("scroll down a page", func() { c.notePane.ScrollBy(c.notePane.PageHeight()) }),
		"scroll-page-up":   simple("scroll up a page", func() { c.notePane.ScrollBy(-c.notePane.PageHeight()) }),
		"scroll-top":       simple("scroll to top", func() { c.notePane.ScrollToTop() }),
		"scroll-bottom":    simple("scroll to bottom", func() { c.notePane.ScrollToBottom() }),
		"toggle-palette":   simple("toggle tools (annotating)", func() { c.getAnnotator().Toggle() }),
		"toggle-log":       simple("toggle log", func() { c.data.ShowLog = !c.data.ShowLog }),
		"toggle-help":      simple("show help", c.showHelp),
		"clear-selection":  simple("clear selection", func() { c.doc.ClearSelection() }),
		"undo":             simple("undo", c.undo),
		"toggle-touch":     simple("switch pointer/touch mode", c.toggleTouch),
	}

	bindings := make(map[input.Keyspec]input.Actionspec, len(keys))
	for k, a := range keys {
		bindings[input.Keyspec(k)] = input.Actionspec(a)
	}
	bound, err := input.BindActions(bindings, actions)
	if err != nil {
		return nil, fmt.Errorf("invalid key configuration (%w)", err)
	}
	tree, err := input.ConstructInputTree(bound)
	if err != nil {
		return nil, fmt.Errorf("invalid key configuration (%w)", err)
	}
	return tree, nil
}

func (c *Controller) showHelp() {
	var index uint
	closeHelp := action.NewSimple(func() string { return "close help" }, func() {
		c.data.ShowHelp = false
		c.rootPane.PopModalOverlays(index)
	})
	helpTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"<esc>": closeHelp,
		"?":     closeHelp,
		"q":     closeHelp,
	})
	if err != nil {
		c.log.Error().Err(err).Msg("could not construct help input tree")
		return
	}
	index = c.rootPane.ApplyModalOverlay(input.CapturingOverlayWrap(helpTree))
	c.data.ShowHelp = true
}

func (c *Controller) save() {
	if err := c.fileHandler.Write(c.doc.Text()); err != nil {
		c.log.Error().Err(err).Str("file", c.fileHandler.Filename()).Msg("could not save note")
		c.Notify("could not save")
		return
	}
	c.doc.MarkClean()
	c.Notify("saved")
}

func (c *Controller) undo() {
	if !c.doc.Undo() {
		c.log.Debug().Msg("nothing to undo")
		return
	}
	c.Notify("undone")
}

// toggleTouch switches between pointer and touch mode, keeping the current
// tool and whether annotating is active.
func (c *Controller) toggleTouch() {
	old := c.getAnnotator()
	wasActive := old.Active()
	current := old.CurrentTool()
	if wasActive {
		old.Toggle()
	} else {
		// drops a pending application
		old.PointerPressed()
	}

	c.settings.Touch = !c.settings.Touch
	a := c.newAnnotator(c.settings)
	if current != nil {
		if err := a.SelectTool(current.ID()); err != nil {
			c.log.Warn().Err(err).Msg("could not keep current tool")
		}
	}
	if wasActive {
		a.Toggle()
	}
	c.setAnnotator(a)
	c.pointerTarget = pointerTargetNone
	c.Notify(modeName(c.settings.Touch) + " mode")
}

func modeName(touch bool) string {
	if touch {
		return "touch"
	}
	return "pointer"
}

// reloadIfClean takes over changes to the note made by others, unless there
// are unsaved changes.
func (c *Controller) reloadIfClean() {
	text, changed, err := c.fileHandler.Changed()
	if err != nil {
		c.log.Warn().Err(err).Msg("could not read changed note")
		return
	}
	if !changed {
		return
	}
	if c.doc.Dirty() {
		c.log.Warn().Str("file", c.fileHandler.Filename()).Msg("note changed on disk, keeping unsaved changes")
		c.Notify("changed on disk")
		return
	}
	c.getAnnotator().PointerPressed()
	c.doc.Reload(text)
	c.notePane.ScrollCursorIntoView()
	c.Notify("reloaded")
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	c.data.CursorPos.X, c.data.CursorPos.Y = x, y
	p := model.ScreenPoint{X: x, Y: y}

	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		c.scrollAt(x, y, -wheelScrollRows)
		return
	case buttons&tcell.WheelDown != 0:
		c.scrollAt(x, y, wheelScrollRows)
		return
	}

	held := buttons&tcell.Button1 != 0
	moved := p != c.data.LastPointer
	next, transition := c.data.PointerState.Next(held, moved)
	c.data.PointerState = next
	c.data.LastPointer = p

	switch transition {
	case edit.PointerDown:
		c.pointerDown(p)
	case edit.PointerMove:
		c.pointerMove(p)
	case edit.PointerUp:
		c.pointerUp(p)
	}
}

func (c *Controller) scrollAt(x, y int, rows int) {
	var scrollable bool
	ui.ThroughOverlay(c.overlayPane, func() {
		_, scrollable = c.rootPane.ScrollableAt(x, y)
	})
	if scrollable {
		c.notePane.ScrollBy(rows)
	}
}

func (c *Controller) pointerDown(p model.ScreenPoint) {
	a := c.getAnnotator()

	switch info := c.rootPane.GetPositionInfo(p.X, p.Y).(type) {
	case *ui.ToolsPanePositionInfo:
		c.pointerTarget = pointerTargetTools
		switch {
		case info.Toggle:
			a.Toggle()
		case info.Tool != nil:
			if err := a.SelectTool(info.Tool.ID()); err != nil {
				c.log.Error().Err(err).Str("tool", info.Tool.ID()).Msg("could not select tool")
			}
		}

	case *ui.OverlayPanePositionInfo:
		c.touchDown(a, p)

	case *ui.NotePanePositionInfo:
		if !info.InText {
			c.pointerTarget = pointerTargetNone
			return
		}
		c.pointerTarget = pointerTargetNote
		a.PointerPressed()
		c.doc.ClearSelection()
		c.doc.SetCursor(info.Pos)
		c.data.SelectionAnchor = c.doc.Cursor()

	default:
		c.pointerTarget = pointerTargetNone
	}
}

// touchDown starts a touch on the overlay.
// The anchor is kept for the drag to select from, should no gesture take the
// touch over.
func (c *Controller) touchDown(a *control.Annotator, p model.ScreenPoint) {
	if !a.TouchStart(p) {
		c.pointerTarget = pointerTargetNone
		return
	}
	c.pointerTarget = pointerTargetTouch
	if pos, ok := c.notePane.PosAtCoords(p.X, p.Y); ok {
		c.data.SelectionAnchor = pos
	} else {
		c.data.SelectionAnchor = c.doc.Cursor()
	}
}

func (c *Controller) pointerMove(p model.ScreenPoint) {
	switch c.pointerTarget {
	case pointerTargetTouch:
		if c.getAnnotator().TouchMove(p) {
			return
		}
		c.extendSelection(p)
	case pointerTargetNote:
		c.extendSelection(p)
	}
}

// extendSelection selects from the anchor to the position under the pointer.
func (c *Controller) extendSelection(p model.ScreenPoint) {
	pos, ok := c.notePane.PosAtCoords(p.X, p.Y)
	if !ok {
		return
	}
	c.doc.SetSelection(model.DocRange{From: c.data.SelectionAnchor, To: pos})
}

func (c *Controller) pointerUp(p model.ScreenPoint) {
	switch c.pointerTarget {
	case pointerTargetTouch:
		c.getAnnotator().TouchEnd(p)
	case pointerTargetNote:
		c.getAnnotator().PointerReleased()
	}
	c.pointerTarget = pointerTargetNone
}

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the editor until it is quit.
func (c *Controller) Run() {
	c.log.Info().Str("file", c.data.EnvData.NotePath).Msg("alight TUI started")
	c.Notify(modeName(c.settings.Touch) + " mode")

	c.controllerEvents = make(chan controllerEvent, 32)
	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				// exit if an exit event was coming up
				if exitEventEncounteredOnEmpty {
					return
				}
				c.rootPane.Draw()

			case controllerEventExit:
				return

			default:
				c.log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Forward changes to the note into the event loop.
	if c.watcher != nil {
		defer c.watcher.Close()
		go func() {
			for range c.watcher.Changes() {
				if err := c.screen.PostEvent(tui.NewCallbackEvent(c.reloadIfClean)); err != nil {
					c.log.Warn().Err(err).Msg("could not post note change")
				}
			}
		}()
	}

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		c.controllerEvents <- controllerEventRender
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				inputApplied := c.rootPane.ProcessInput(key)
				if !inputApplied {
					c.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventMouse:
				c.handleMouseEvent(e)

			case *tui.CallbackEvent:
				e.Run()

			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}

			c.controllerEvents <- controllerEventRender
		}
	}()

	wg.Wait()
}
