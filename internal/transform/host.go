package transform

import "github.com/ja-he/alight/internal/model"

// Editor is the part of the host editor the engine operates on.
// The engine only ever operates on the editor's current selection.
type Editor interface {
	// Selection returns the currently selected text ("" if nothing is
	// selected).
	Selection() string
	// ReplaceSelection replaces the selected text, leaving the cursor after
	// the inserted text.
	ReplaceSelection(text string)
	// ClearSelection clears any leftover selection (highlight), without
	// changing text.
	ClearSelection()

	Cursor() model.DocPos
	SetCursor(model.DocPos)
	Line(n int) string
	LineCount() int
}

// Clipboard allows writing to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Commands allows invoking the host's named commands, e.g. "undo".
type Commands interface {
	Invoke(name string) error
}

// CommandUndo is the name of the host's undo command.
const CommandUndo = "undo"
