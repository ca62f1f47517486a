package model

// ToolID uniquely identifies a tool.
type ToolID = string

// ToolKind is the kind of a tool.
// The set of kinds is closed; every Tool is exactly one of these.
type ToolKind int

const (
	_ ToolKind = iota
	// ToolKindHighlight wraps the selection in a colored highlight.
	ToolKindHighlight
	// ToolKindTemplate substitutes the selection into a template.
	ToolKindTemplate
	// ToolKindAction performs a structural action (clear, copy, undo).
	ToolKindAction
)

// ToString returns the name of this tool kind as a string, primarily for
// debugging and logging purposes.
func (k ToolKind) ToString() string {
	switch k {
	case ToolKindHighlight:
		return "highlight"
	case ToolKindTemplate:
		return "template"
	case ToolKindAction:
		return "action"
	}
	return "[unknown tool kind]"
}

// ActionOp is the operation of an action tool.
type ActionOp int

const (
	_ ActionOp = iota
	// ActionClear strips markup from the selection.
	ActionClear
	// ActionCopy copies the selection to the clipboard.
	ActionCopy
	// ActionUndo invokes the host's undo.
	ActionUndo
)

// ToString returns the name of this action op.
func (o ActionOp) ToString() string {
	switch o {
	case ActionClear:
		return "clear"
	case ActionCopy:
		return "copy"
	case ActionUndo:
		return "undo"
	}
	return "[unknown action]"
}

// TemplatePlaceholder marks where the selected text is inserted into a
// template.
const TemplatePlaceholder = "$1"

// Tool is an annotation tool.
//
// Tools are immutable. The interface is sealed, the concrete tools are
// HighlightTool, TemplateTool and ActionTool; consumers are expected to switch
// exhaustively over them.
type Tool interface {
	ID() ToolID
	Kind() ToolKind
	Label() string
	Icon() string

	sealed()
}

// ToolInfo is the data every tool has regardless of its kind.
type ToolInfo struct {
	ToolID    ToolID
	ToolLabel string
	ToolIcon  string
}

// ID returns the tool's ID.
func (i ToolInfo) ID() ToolID { return i.ToolID }

// Label returns the tool's human-readable label.
func (i ToolInfo) Label() string { return i.ToolLabel }

// Icon returns the (short) icon the tool is displayed with.
func (i ToolInfo) Icon() string { return i.ToolIcon }

// HighlightTool wraps the selection in a highlight of the given color.
type HighlightTool struct {
	ToolInfo
	// Color is a CSS color value, e.g. '#b3ffb3a6'.
	Color string
}

// Kind returns ToolKindHighlight.
func (HighlightTool) Kind() ToolKind { return ToolKindHighlight }
func (HighlightTool) sealed()        {}

// TemplateTool substitutes the selection for the single placeholder in its
// pattern.
type TemplateTool struct {
	ToolInfo
	Pattern string
}

// Kind returns ToolKindTemplate.
func (TemplateTool) Kind() ToolKind { return ToolKindTemplate }
func (TemplateTool) sealed()        {}

// ActionTool performs a structural action.
type ActionTool struct {
	ToolInfo
	Op ActionOp
}

// Kind returns ToolKindAction.
func (ActionTool) Kind() ToolKind { return ToolKindAction }
func (ActionTool) sealed()        {}

// NewHighlight returns a new highlight tool.
func NewHighlight(id ToolID, color, label string) HighlightTool {
	return HighlightTool{ToolInfo: ToolInfo{ToolID: id, ToolLabel: label, ToolIcon: "●"}, Color: color}
}

// NewTemplate returns a new template tool.
func NewTemplate(id ToolID, pattern, icon, label string) TemplateTool {
	return TemplateTool{ToolInfo: ToolInfo{ToolID: id, ToolLabel: label, ToolIcon: icon}, Pattern: pattern}
}

// NewAction returns a new action tool.
func NewAction(id ToolID, op ActionOp, icon, label string) ActionTool {
	return ActionTool{ToolInfo: ToolInfo{ToolID: id, ToolLabel: label, ToolIcon: icon}, Op: op}
}
