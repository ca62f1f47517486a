package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

// A HelpPane is a pane that displays a help popup listing key mappings and
// their actions, followed by any extra lines (e.g. on mouse usage).
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
	extra   []string
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	row := y + border
	for _, m := range sortedByAction(p.content()) {
		if row >= y+h-border {
			return
		}
		keyW := runewidth.StringWidth(m.mapping)
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keyW, row, keyW, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), m.mapping)
		p.Renderer.DrawText(descriptionOffset, row, x+w-border-descriptionOffset, 1, p.Stylesheet.Help.Italicized(), m.action)
		row++
	}

	row++
	for _, line := range p.extra {
		if row >= y+h-border {
			return
		}
		p.Renderer.DrawText(keyOffset, row, w-2*border, 1, p.Stylesheet.Help, line)
		row++
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.HelpPanePositionInfo{}
}

type mappingAndAction struct {
	mapping string
	action  string
}

func sortedByAction(help input.Help) []mappingAndAction {
	result := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		result = append(result, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].action != result[j].action {
			return result[i].action < result[j].action
		}
		return result[i].mapping < result[j].mapping
	})
	return result
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
	extra []string,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		content: content,
		extra:   extra,
	}
}
