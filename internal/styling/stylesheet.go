package styling

import (
	"github.com/ja-he/alight/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	NoteText       DrawStyling
	NoteSelection  DrawStyling
	NoteCursorLine DrawStyling

	Status DrawStyling

	Tools            DrawStyling
	ToolSelected     DrawStyling
	ToolToggle       DrawStyling
	ToolToggleActive DrawStyling

	ScrollIndicator DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.NoteText = StyleFromConfig(config.NoteText)
	stylesheet.NoteSelection = StyleFromConfig(config.NoteSelection)
	stylesheet.NoteCursorLine = StyleFromConfig(config.NoteCursorLine)
	stylesheet.Status = StyleFromConfig(config.Status)
	stylesheet.Tools = StyleFromConfig(config.Tools)
	stylesheet.ToolSelected = StyleFromConfig(config.ToolSelected)
	stylesheet.ToolToggle = StyleFromConfig(config.ToolToggle)
	stylesheet.ToolToggleActive = StyleFromConfig(config.ToolToggleActive)
	stylesheet.ScrollIndicator = StyleFromConfig(config.ScrollIndicator)
	stylesheet.LogDefault = StyleFromConfig(config.LogDefault)
	stylesheet.LogTitleBox = StyleFromConfig(config.LogTitleBox)
	stylesheet.LogEntryTypeError = StyleFromConfig(config.LogEntryTypeError)
	stylesheet.LogEntryTypeWarn = StyleFromConfig(config.LogEntryTypeWarn)
	stylesheet.LogEntryTypeInfo = StyleFromConfig(config.LogEntryTypeInfo)
	stylesheet.LogEntryTypeDebug = StyleFromConfig(config.LogEntryTypeDebug)
	stylesheet.LogEntryTypeTrace = StyleFromConfig(config.LogEntryTypeTrace)
	stylesheet.LogEntryLocation = StyleFromConfig(config.LogEntryLocation)
	stylesheet.LogEntryTime = StyleFromConfig(config.LogEntryTime)
	stylesheet.Help = StyleFromConfig(config.Help)

	return &stylesheet
}
