package styling

import (
	"fmt"
	"sync"

	"github.com/ja-he/alight/internal/colors"
	"github.com/ja-he/alight/internal/model"
)

// StyledTool is a tool associated with a styling by which it should be
// rendered.
type StyledTool struct {
	Style DrawStyling
	Tool  model.Tool
}

// ToolStyling is a set of styled tools, in display order.
//
// Highlight tools are styled in their (blended) highlight color, all other
// tools in the base style.
type ToolStyling struct {
	styles []StyledTool
}

// NewToolStyling styles the given tools on top of the given base style.
func NewToolStyling(tools []model.Tool, base DrawStyling) *ToolStyling {
	ts := &ToolStyling{}
	for _, tool := range tools {
		style := base
		if h, ok := tool.(model.HighlightTool); ok {
			if blended, err := colors.BlendOver(h.Color, base.Background()); err == nil {
				style = base.WithBackground(blended)
			}
		}
		ts.styles = append(ts.styles, StyledTool{Style: style, Tool: tool})
	}
	return ts
}

// GetAll returns all styled tools in this styling.
func (ts *ToolStyling) GetAll() []StyledTool {
	return ts.styles
}

// GetStyle returns the styling for the requested tool.
//
// If no styling is present for the tool, it returns nil and an error.
func (ts *ToolStyling) GetStyle(id model.ToolID) (DrawStyling, error) {
	for _, styling := range ts.styles {
		if styling.Tool.ID() == id {
			return styling.Style, nil
		}
	}
	return nil, fmt.Errorf("style for tool '%s' not found", id)
}

// MarkStyler provides the styles highlight marks in the note are drawn in,
// i.E. the mark color blended over the note background.
// Results are cached per color, as the same few colors tend to repeat.
type MarkStyler struct {
	mtx   sync.Mutex
	base  DrawStyling
	cache map[string]DrawStyling
}

// NewMarkStyler returns a MarkStyler blending over the given base style.
func NewMarkStyler(base DrawStyling) *MarkStyler {
	return &MarkStyler{base: base, cache: map[string]DrawStyling{}}
}

// Style returns the style for a mark of the given color.
// Unparseable colors yield the base style.
func (m *MarkStyler) Style(color string) DrawStyling {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if s, ok := m.cache[color]; ok {
		return s
	}

	blended, err := colors.BlendOver(color, m.base.Background())
	style := m.base
	if err == nil {
		style = m.base.WithBackground(blended)
	}
	m.cache[color] = style
	return style
}
