package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ja-he/alight/internal/colors"
)

// ErrToolNotFound is returned when a tool is requested that is not in a
// registry.
var ErrToolNotFound = errors.New("tool not found")

// ToolRegistry is a fixed, ordered catalog of tools.
// The order is the display order.
type ToolRegistry struct {
	tools []Tool
	byID  map[ToolID]Tool
}

// NewToolRegistry constructs a registry of the given tools in the given order.
//
// It returns an error if IDs are empty or not unique, if a template does not
// contain the placeholder exactly once, or if a highlight color is invalid.
func NewToolRegistry(tools ...Tool) (*ToolRegistry, error) {
	r := ToolRegistry{
		tools: make([]Tool, 0, len(tools)),
		byID:  make(map[ToolID]Tool, len(tools)),
	}

	for _, tool := range tools {
		if tool.ID() == "" {
			return nil, fmt.Errorf("tool with empty ID (label '%s')", tool.Label())
		}
		if _, exists := r.byID[tool.ID()]; exists {
			return nil, fmt.Errorf("duplicate tool ID '%s'", tool.ID())
		}

		switch t := tool.(type) {
		case HighlightTool:
			if !colors.Valid(t.Color) {
				return nil, fmt.Errorf("highlight tool '%s' has invalid color '%s'", t.ID(), t.Color)
			}
		case TemplateTool:
			if n := strings.Count(t.Pattern, TemplatePlaceholder); n != 1 {
				return nil, fmt.Errorf("template tool '%s' has %d placeholders (want exactly 1)", t.ID(), n)
			}
		case ActionTool:
			if t.Op != ActionClear && t.Op != ActionCopy && t.Op != ActionUndo {
				return nil, fmt.Errorf("action tool '%s' has unknown op %d", t.ID(), t.Op)
			}
		default:
			return nil, fmt.Errorf("tool '%s' has unknown kind", tool.ID())
		}

		r.tools = append(r.tools, tool)
		r.byID[tool.ID()] = tool
	}

	return &r, nil
}

// List returns all tools in display order.
// The returned slice is a copy.
func (r *ToolRegistry) List() []Tool {
	result := make([]Tool, len(r.tools))
	copy(result, r.tools)
	return result
}

// ByID returns the tool with the given ID or ErrToolNotFound.
func (r *ToolRegistry) ByID(id ToolID) (Tool, error) {
	tool, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("no tool '%s' (%w)", id, ErrToolNotFound)
	}
	return tool, nil
}

// Len returns the number of tools in the registry.
func (r *ToolRegistry) Len() int { return len(r.tools) }

// DefaultTools returns the default tool catalog in display order: highlights,
// formats, insertions, actions.
func DefaultTools() []Tool {
	return []Tool{
		NewHighlight("hl-yellow", "#D2B3FFA6", "violet"),
		NewHighlight("hl-green", "#b3ffb3a6", "grass"),
		NewHighlight("hl-blue", "#b3d9ffa6", "sky"),
		NewHighlight("hl-red", "#ffb3b3a6", "crimson"),
		NewHighlight("hl-orange", "#ffdfb3a6", "sun"),

		NewTemplate("fmt-bold", "**$1**", "B", "bold"),
		NewTemplate("fmt-italic", "*$1*", "i", "italic"),
		NewTemplate("fmt-under", "<u>$1</u>", "U", "underline"),
		NewTemplate("fmt-strike", "~~$1~~", "S", "strike"),
		NewTemplate("fmt-red", `<span style="color:red">$1</span>`, "A", "red text"),

		NewTemplate("ins-slide", "\n\n---\n\n$1", "✂", "page break"),
		NewTemplate("fmt-box", `<span style="border:2px solid red;padding:2px">$1</span>`, "▢", "box"),
		NewTemplate("ins-warn", "❗ $1", "!", "important"),
		NewTemplate("ins-todo", "- [ ] $1", "☐", "todo"),
		NewTemplate("ins-quote", "> $1", "❝", "quote"),

		NewAction("act-clear", ActionClear, "⌫", "clear"),
		NewAction("act-copy", ActionCopy, "❐", "copy"),
		NewAction("act-undo", ActionUndo, "↶", "undo"),
	}
}
