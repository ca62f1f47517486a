package control

import (
	"github.com/ja-he/alight/internal/control/edit"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/ui"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	NotePath    string
}

// ControlData is the state of the interactive host that is not owned by the
// annotator or the document.
type ControlData struct {
	CursorPos ui.MouseCursorPos

	EnvData EnvData

	ShowLog  bool
	ShowHelp bool

	// PointerState tracks the primary mouse button across mouse events.
	PointerState edit.PointerState
	// SelectionAnchor is where the current pointer selection started.
	SelectionAnchor model.DocPos
	// LastPointer is where the pointer was at the previous mouse event.
	LastPointer model.ScreenPoint
}

// NewControlData returns control data for the note at the given path.
func NewControlData(env EnvData) *ControlData {
	return &ControlData{
		EnvData: env,
	}
}
