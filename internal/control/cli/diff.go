package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

type diffStyles struct {
	delLine lipgloss.Style
	addLine lipgloss.Style
	delChar lipgloss.Style
	addChar lipgloss.Style
	context lipgloss.Style
}

func newDiffStyles(out io.Writer) diffStyles {
	r := lipgloss.NewRenderer(out)
	del := lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	add := lipgloss.AdaptiveColor{Light: "28", Dark: "114"}
	return diffStyles{
		delLine: r.NewStyle().Foreground(del),
		addLine: r.NewStyle().Foreground(add),
		delChar: r.NewStyle().Foreground(del).Underline(true),
		addChar: r.NewStyle().Foreground(add).Underline(true),
		context: r.NewStyle().Faint(true),
	}
}

// renderDiff renders a line diff of before and after for the given output.
// Unchanged lines are only shown next to changes. Where a block of lines is
// replaced by as many lines, the changed characters are marked.
func renderDiff(out io.Writer, before, after string) string {
	if before == after {
		return "no changes\n"
	}
	styles := newDiffStyles(out)

	d := dmp.New()
	beforeChars, afterChars, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(beforeChars, afterChars, false), lines)

	var sb strings.Builder
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			eq := splitDiffLines(df.Text)
			for j, l := range eq {
				nearPrev := i > 0 && j == 0
				nearNext := i < len(diffs)-1 && j == len(eq)-1
				if nearPrev || nearNext {
					sb.WriteString("  " + styles.context.Render(l) + "\n")
				}
			}

		case dmp.DiffDelete:
			deleted := splitDiffLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				inserted := splitDiffLines(diffs[i+1].Text)
				if len(inserted) == len(deleted) {
					for j := range deleted {
						writeCharDiff(&sb, d, styles, deleted[j], inserted[j])
					}
					i++
					continue
				}
			}
			for _, l := range deleted {
				sb.WriteString(styles.delLine.Render("- "+l) + "\n")
			}

		case dmp.DiffInsert:
			for _, l := range splitDiffLines(df.Text) {
				sb.WriteString(styles.addLine.Render("+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

// writeCharDiff writes a changed line as removal and addition, marking the
// changed characters.
func writeCharDiff(sb *strings.Builder, d *dmp.DiffMatchPatch, styles diffStyles, before, after string) {
	diffs := d.DiffCleanupSemantic(d.DiffMain(before, after, false))

	sb.WriteString(styles.delLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(styles.delChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(styles.delLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(styles.addLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(styles.addChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(styles.addLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
}

// splitDiffLines splits the text of a line diff into its lines.
func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
