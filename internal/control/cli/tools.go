package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/alight/internal/colors"
	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/model"
)

// Flags for the `tools` command line command, for `go-flags` to parse command
// line args into.
type ToolsCommand struct {
	Theme string `short:"t" long:"theme" choice:"light" choice:"dark" description:"the theme highlight swatches are blended for"`
}

// Executes the tools command.
// (This gets called by `go-flags` when `tools` is provided on the command
// line)
func (command *ToolsCommand) Execute(args []string) error {
	theme := themeFromString(command.Theme)
	configData, err := readConfig(newEnvData(""), theme)
	if err != nil {
		return err
	}
	registry, err := newRegistry(configData)
	if err != nil {
		return err
	}

	background := colorful.Color{R: 0, G: 0, B: 0}
	if theme == config.Light {
		background = colorful.Color{R: 1, G: 1, B: 1}
	}
	return listTools(os.Stdout, registry.List(), background)
}

// listTools writes a table of the tools in display order.
func listTools(out io.Writer, tools []model.Tool, background colorful.Color) error {
	r := lipgloss.NewRenderer(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tICON\tLABEL\tDETAIL")
	for _, tool := range tools {
		var detail string
		switch t := tool.(type) {
		case model.HighlightTool:
			detail = t.Color
			if blended, err := colors.BlendOver(t.Color, background); err == nil {
				detail += " " + r.NewStyle().Background(lipgloss.Color(blended.Hex())).Render("   ")
			}
		case model.TemplateTool:
			detail = t.Pattern
		case model.ActionTool:
			detail = t.Op.ToString()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", tool.ID(), tool.Kind().ToString(), tool.Icon(), tool.Label(), detail)
	}
	return w.Flush()
}
