package ui

import (
	"github.com/ja-he/alight/internal/model"
)

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// NotePanePositionInfo provides information on a position in the note pane,
// importantly the document position under it, if any.
type NotePanePositionInfo struct {
	Pos    model.DocPos
	InText bool
}

// ToolsPanePositionInfo conveys information on a position in a tools pane,
// importantly the possible tool displayed at that position, or whether the
// position is on the palette toggle.
type ToolsPanePositionInfo struct {
	Tool   model.Tool
	Toggle bool
}

// OverlayPanePositionInfo provides information on a position captured by the
// touch overlay.
type OverlayPanePositionInfo struct{}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// LogPanePositionInfo provides information on a position in a log pane.
type LogPanePositionInfo struct{}

// HelpPanePositionInfo provides information on a position in a help pane.
type HelpPanePositionInfo struct{}
