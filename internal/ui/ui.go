package ui

import (
	"fmt"

	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/styling"
)

// Pane is a UI pane.
//
// An InputProcessingPane can focus another InputProcessingPane, in fact one of
// any number of "child" InputProcessingPanes.
// Thus they can be structured as a tree and any node in this tree can be asked
// whether it HasFocus, and what it Focusses; generally, to answer whether a
// pane HasFocus, it would probably consult its parent whether the parent
// HasFocus and which pane it Focusses.
//
// In this tree of panes, a pane should generally have a parent, which can be
// set with SetParent; an exception would be the root pane of the tree.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneType is the type of the bottommost meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI Pane, perhaps in
	// padding space.
	NoPane
	// NotePaneType represents the pane showing the note text.
	NotePaneType
	// ToolsPaneType represents the annotation tools palette and its toggle.
	ToolsPaneType
	// OverlayPaneType represents the (invisible) touch capturing overlay.
	OverlayPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// LogPaneType represents a log pane.
	LogPaneType
	// HelpPaneType represents a help pane.
	HelpPaneType
)

// ToString returns the name of this pane type as a string, primarily for
// debugging and logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case NotePaneType:
		return "NotePaneType"
	case ToolsPaneType:
		return "ToolsPaneType"
	case OverlayPaneType:
		return "OverlayPaneType"
	case StatusPaneType:
		return "StatusPaneType"
	case LogPaneType:
		return "LogPaneType"
	case HelpPaneType:
		return "HelpPaneType"
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Renderer can draw boxes and text.
type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is the screen location of a text cursor.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}

// Contains returns whether the given point lies within the given dimensions.
func Contains(x, y, w, h int, px, py int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
