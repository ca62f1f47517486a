package panes

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/alight/internal/potatolog"
	"github.com/ja-he/alight/internal/styling"
	"github.com/ja-he/alight/internal/ui"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently visible.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)

	title := p.titleString()
	titleW := runewidth.StringWidth(title)
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-titleW/2), y, titleW, 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	const indent = levelLen + 1

	row := y + 2
	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]

		level := str(entry["level"])
		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), padCenter(level, levelLen))

		col := x + indent
		for _, part := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.LogDefault},
			{"component", p.Stylesheet.LogEntryLocation},
			{"caller", p.Stylesheet.LogEntryLocation},
			{"time", p.Stylesheet.LogEntryTime},
		} {
			text := str(entry[part.key])
			if text == "" {
				continue
			}
			p.Renderer.DrawText(col, row, x+w-col, 1, part.style, text)
			col += runewidth.StringWidth(text) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "level", "message", "component", "caller", "time":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= y+h {
				break
			}
			p.Renderer.DrawText(x+indent, row, w-indent, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(x+indent+len(k)+2, row, w-indent-len(k)-2, 1, p.Stylesheet.LogEntryLocation, str(entry[k]))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.LogPanePositionInfo{}
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// padCenter centers the string in the given width.
func padCenter(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return fmt.Sprintf("%*s%s%*s", pad/2, "", s, pad-pad/2, "")
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
