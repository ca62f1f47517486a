package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

const (
	// ToolsColumns is the number of columns of the tool palette.
	ToolsColumns = 4
	// ToggleWidth is the width of the palette toggle button.
	ToggleWidth = 3
)

// ToolsPaneHeight returns the height the palette needs for the given number
// of tools.
func ToolsPaneHeight(nTools int) int {
	if nTools <= 0 {
		return 1
	}
	return (nTools + ToolsColumns - 1) / ToolsColumns
}

// ToolsPane shows the annotation tool palette and its toggle.
//
// While the palette is closed, only the toggle is shown; the pane is expected
// to be dimensioned accordingly.
type ToolsPane struct {
	ui.LeafPane

	tools   *styling.ToolStyling
	current func() model.Tool
	open    func() bool
}

type toolBox struct {
	x, y, w int
	tool    styling.StyledTool
}

// Draw draws this pane.
func (p *ToolsPane) Draw() {
	x, y, w, h := p.Dimensions()

	if p.open() {
		p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Tools)
		current := p.current()
		for _, box := range p.toolBoxes(x, y, w, h) {
			style := box.tool.Style
			if current != nil && box.tool.Tool.ID() == current.ID() {
				if _, isHighlight := box.tool.Tool.(model.HighlightTool); isHighlight {
					style = style.Bolded().Underlined()
				} else {
					style = p.Stylesheet.ToolSelected
				}
			}
			p.Renderer.DrawBox(box.x, box.y, box.w, 1, style)
			label := runewidth.Truncate(" "+box.tool.Tool.Icon()+" "+box.tool.Tool.Label(), box.w, "…")
			p.Renderer.DrawText(box.x, box.y, box.w, 1, style, label)
		}
	}

	tx, ty := p.toggleAt(x, y, w, h)
	toggleStyle, toggleText := p.Stylesheet.ToolToggle, " + "
	if p.open() {
		toggleStyle, toggleText = p.Stylesheet.ToolToggleActive, " × "
	}
	p.Renderer.DrawBox(tx, ty, ToggleWidth, 1, toggleStyle)
	p.Renderer.DrawText(tx, ty, ToggleWidth, 1, toggleStyle, toggleText)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *ToolsPane) GetPositionInfo(x, y int) ui.PositionInfo {
	px, py, w, h := p.Dimensions()

	tx, ty := p.toggleAt(px, py, w, h)
	if ui.Contains(tx, ty, ToggleWidth, 1, x, y) {
		return &ui.ToolsPanePositionInfo{Toggle: true}
	}
	if p.open() {
		for _, box := range p.toolBoxes(px, py, w, h) {
			if ui.Contains(box.x, box.y, box.w, 1, x, y) {
				return &ui.ToolsPanePositionInfo{Tool: box.tool.Tool}
			}
		}
	}
	return &ui.ToolsPanePositionInfo{}
}

// toggleAt returns the position of the toggle, the bottom right corner.
func (p *ToolsPane) toggleAt(x, y, w, h int) (int, int) {
	return x + w - ToggleWidth, y + h - 1
}

// toolBoxes lays out the tools in a grid of ToolsColumns columns left of the
// toggle, in display order, row by row.
func (p *ToolsPane) toolBoxes(x, y, w, h int) []toolBox {
	gridW := w - ToggleWidth
	colW := gridW / ToolsColumns
	if colW < 1 {
		return nil
	}

	boxes := []toolBox{}
	for i, tool := range p.tools.GetAll() {
		row, col := i/ToolsColumns, i%ToolsColumns
		if row >= h {
			break
		}
		boxes = append(boxes, toolBox{x: x + col*colW, y: y + row, w: colW, tool: tool})
	}
	return boxes
}

// NewToolsPane constructs and returns a new ToolsPane.
func NewToolsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	tools *styling.ToolStyling,
	current func() model.Tool,
	open func() bool,
) *ToolsPane {
	return &ToolsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		tools:   tools,
		current: current,
		open:    open,
	}
}
