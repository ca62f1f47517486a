package transform_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/transform"
)

// fakeEditor is a single-selection editor over a slice of lines, just enough
// to observe what the engine does to it.
type fakeEditor struct {
	lines     []string
	selection string
	selected  bool
	cursor    model.DocPos

	// where the host places the cursor after a replacement
	cursorAfterReplace model.DocPos

	replaced []string
	cleared  int
}

func (e *fakeEditor) Selection() string {
	if !e.selected {
		return ""
	}
	return e.selection
}
func (e *fakeEditor) ReplaceSelection(text string) {
	e.replaced = append(e.replaced, text)
	e.cursor = e.cursorAfterReplace
	e.selected = false
}
func (e *fakeEditor) ClearSelection()            { e.cleared++; e.selected = false }
func (e *fakeEditor) Cursor() model.DocPos       { return e.cursor }
func (e *fakeEditor) SetCursor(pos model.DocPos) { e.cursor = pos }
func (e *fakeEditor) Line(n int) string {
	if n < 0 || n >= len(e.lines) {
		return ""
	}
	return e.lines[n]
}
func (e *fakeEditor) LineCount() int { return len(e.lines) }

type fakeClipboard struct {
	written []string
	err     error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

type fakeCommands struct {
	invoked []string
}

func (c *fakeCommands) Invoke(name string) error {
	c.invoked = append(c.invoked, name)
	return nil
}

func newEngine(selection string) (*transform.Engine, *fakeEditor, *fakeClipboard, *fakeCommands) {
	editor := &fakeEditor{
		lines:     []string{"some line of text that is long enough", "second", "third"},
		selection: selection,
		selected:  true,
	}
	clipboard := &fakeClipboard{}
	commands := &fakeCommands{}
	return transform.NewEngine(editor, clipboard, commands, zerolog.Nop()), editor, clipboard, commands
}

func TestCompute(t *testing.T) {

	t.Run("highlight wrap", func(t *testing.T) {
		r, err := transform.Compute("  hello  ", model.NewHighlight("h", "#ffff00", "yellow"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		expected := `  <mark style="background: #ffff00;">hello</mark>  `
		if r.Text != expected {
			t.Errorf("expected %q, got %q", expected, r.Text)
		}
		if r.CursorAdvance != 2 {
			t.Error("unexpected cursor advance", r.CursorAdvance)
		}
	})

	t.Run("template substitution is single-shot", func(t *testing.T) {
		r, err := transform.Compute("x$1y", model.NewTemplate("b", "**$1**", "B", "bold"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if r.Text != "**x$1y**" {
			t.Errorf("expected %q, got %q", "**x$1y**", r.Text)
		}
	})

	t.Run("template keeps outer whitespace outside", func(t *testing.T) {
		r, _ := transform.Compute("\n quote me \n", model.NewTemplate("q", "> $1", "❝", "quote"))
		if r.Text != "\n > quote me \n" {
			t.Errorf("got %q", r.Text)
		}
	})

	t.Run("clear strips markup class characters", func(t *testing.T) {
		r, err := transform.Compute("**a** <u>b</u>", model.NewAction("c", model.ActionClear, "⌫", "clear"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if r.Text != "a b" {
			t.Errorf("expected %q, got %q", "a b", r.Text)
		}
	})

	t.Run("clear is crude", func(t *testing.T) {
		r, _ := transform.Compute(" ~~x~~ = <mark style=\"background: #fff;\">y</mark> ", model.NewAction("c", model.ActionClear, "⌫", "clear"))
		if r.Text != " x  y " {
			t.Errorf("got %q", r.Text)
		}
	})

	t.Run("copy and undo have no replacement", func(t *testing.T) {
		for _, op := range []model.ActionOp{model.ActionCopy, model.ActionUndo} {
			_, err := transform.Compute("text", model.NewAction("a", op, "?", "a"))
			if !errors.Is(err, transform.ErrNoOp) {
				t.Errorf("expected ErrNoOp for %s, got %v", op.ToString(), err)
			}
		}
	})
}

func TestApply(t *testing.T) {

	allKinds := model.DefaultTools()

	t.Run("whitespace-only is a no-op for every tool", func(t *testing.T) {
		for _, ws := range []string{"", " ", "\n\t \n", " "} {
			for _, tool := range allKinds {
				engine, editor, clipboard, commands := newEngine(ws)
				_, err := engine.Apply(tool)
				if !errors.Is(err, transform.ErrNoOp) {
					t.Errorf("%s on %q: expected ErrNoOp, got %v", tool.ID(), ws, err)
				}
				if len(editor.replaced) != 0 || len(clipboard.written) != 0 || len(commands.invoked) != 0 {
					t.Errorf("%s on %q: host was touched", tool.ID(), ws)
				}
			}
		}
	})

	t.Run("replaces, advances, clears", func(t *testing.T) {
		engine, editor, _, _ := newEngine(" bold ")
		editor.cursorAfterReplace = model.DocPos{Line: 0, Ch: 10}

		outcome, err := engine.Apply(model.NewTemplate("b", "**$1**", "B", "bold"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if outcome != transform.OutcomeReplaced {
			t.Error("unexpected outcome", outcome.ToString())
		}
		if len(editor.replaced) != 1 || editor.replaced[0] != " **bold** " {
			t.Error("unexpected replacements:", editor.replaced)
		}
		if editor.cursor != (model.DocPos{Line: 0, Ch: 12}) {
			t.Error("cursor not advanced by 2:", editor.cursor.String())
		}
		if editor.cleared != 1 {
			t.Error("selection highlight not cleared")
		}
	})

	t.Run("copy writes untrimmed text without mutation", func(t *testing.T) {
		engine, editor, clipboard, _ := newEngine("  keep my spaces \n")
		outcome, err := engine.Apply(model.NewAction("cp", model.ActionCopy, "⎘", "copy"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if outcome != transform.OutcomeCopied {
			t.Error("unexpected outcome", outcome.ToString())
		}
		if len(clipboard.written) != 1 || clipboard.written[0] != "  keep my spaces \n" {
			t.Errorf("clipboard got %q", clipboard.written)
		}
		if len(editor.replaced) != 0 {
			t.Error("copy mutated the document")
		}
	})

	t.Run("copy failure is reported", func(t *testing.T) {
		engine, editor, clipboard, _ := newEngine("x")
		clipboard.err = fmt.Errorf("no clipboard utility")
		_, err := engine.Apply(model.NewAction("cp", model.ActionCopy, "⎘", "copy"))
		if err == nil || !strings.Contains(err.Error(), "no clipboard utility") {
			t.Error("expected wrapped clipboard error, got", err)
		}
		if len(editor.replaced) != 0 {
			t.Error("failed copy mutated the document")
		}
	})

	t.Run("undo invokes the host command", func(t *testing.T) {
		engine, editor, _, commands := newEngine("x")
		outcome, err := engine.Apply(model.NewAction("u", model.ActionUndo, "↶", "undo"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if outcome != transform.OutcomeUndone {
			t.Error("unexpected outcome", outcome.ToString())
		}
		if len(commands.invoked) != 1 || commands.invoked[0] != transform.CommandUndo {
			t.Error("unexpected commands:", commands.invoked)
		}
		if len(editor.replaced) != 0 {
			t.Error("undo replaced the selection")
		}
	})
}

func TestAdvanceCursor(t *testing.T) {
	lines := []string{"abcdef", "ghi", "jkl"}

	for _, tc := range []struct {
		name     string
		from     model.DocPos
		expected model.DocPos
	}{
		{"within line", model.DocPos{Line: 0, Ch: 2}, model.DocPos{Line: 0, Ch: 4}},
		{"exactly at end", model.DocPos{Line: 0, Ch: 4}, model.DocPos{Line: 0, Ch: 6}},
		{"wraps to next line", model.DocPos{Line: 0, Ch: 5}, model.DocPos{Line: 1, Ch: 0}},
		{"wraps from end of line", model.DocPos{Line: 1, Ch: 3}, model.DocPos{Line: 2, Ch: 0}},
		{"clamps on last line", model.DocPos{Line: 2, Ch: 2}, model.DocPos{Line: 2, Ch: 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			editor := &fakeEditor{lines: lines, cursor: tc.from}
			got := transform.AdvanceCursor(editor, 2)
			if got != tc.expected || editor.cursor != tc.expected {
				t.Errorf("expected %s, got %s (editor at %s)", tc.expected.String(), got.String(), editor.cursor.String())
			}
		})
	}

	t.Run("counts runes, not bytes", func(t *testing.T) {
		editor := &fakeEditor{lines: []string{"❗ äb", "x"}, cursor: model.DocPos{Line: 0, Ch: 2}}
		got := transform.AdvanceCursor(editor, 2)
		if got != (model.DocPos{Line: 0, Ch: 4}) {
			t.Error("expected to stay on the line, got", got.String())
		}
	})
}
