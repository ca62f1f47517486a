package editor_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/editor"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/transform"
)

func pos(line, ch int) model.DocPos { return model.DocPos{Line: line, Ch: ch} }

func TestSelection(t *testing.T) {
	d := editor.NewDocument("hello world\nsecond line\nthird")

	if d.SomethingSelected() || d.Selection() != "" {
		t.Error("fresh document has a selection")
	}

	t.Run("backwards selection reads in document order", func(t *testing.T) {
		d.SetSelection(model.DocRange{From: pos(1, 6), To: pos(0, 6)})
		if d.Selection() != "world\nsecond" {
			t.Errorf("got %q", d.Selection())
		}
		r, ok := d.SelectionRange()
		if !ok || r.From != pos(0, 6) || r.To != pos(1, 6) {
			t.Error("unexpected range", r.String())
		}
		if d.Cursor() != pos(0, 6) {
			t.Error("cursor not at head of selection:", d.Cursor().String())
		}
	})

	t.Run("clamps", func(t *testing.T) {
		d.SetSelection(model.DocRange{From: pos(2, 2), To: pos(99, 99)})
		if d.Selection() != "ird" {
			t.Errorf("got %q", d.Selection())
		}
	})

	t.Run("empty range clears", func(t *testing.T) {
		d.SetSelection(model.DocRange{From: pos(1, 1), To: pos(1, 1)})
		if d.SomethingSelected() {
			t.Error("empty range selected something")
		}
	})
}

func TestReplaceSelectionAndUndo(t *testing.T) {
	d := editor.NewDocument("one two\nthree")
	d.SetSelection(model.DocRange{From: pos(0, 4), To: pos(0, 7)})
	d.ReplaceSelection("**two**\nnew")

	if d.Text() != "one **two**\nnew\nthree" {
		t.Errorf("unexpected text %q", d.Text())
	}
	if d.Cursor() != pos(1, 3) {
		t.Error("cursor not after inserted text:", d.Cursor().String())
	}
	if d.SomethingSelected() {
		t.Error("selection survived replacement")
	}
	if !d.Dirty() {
		t.Error("not dirty after replacement")
	}
	if d.LineCount() != 3 || d.Line(1) != "new" || d.Line(7) != "" {
		t.Error("unexpected lines")
	}

	if err := d.Invoke(transform.CommandUndo); err != nil {
		t.Fatalf("undo failed: %s", err.Error())
	}
	if d.Text() != "one two\nthree" {
		t.Errorf("undo did not restore, got %q", d.Text())
	}
	if err := d.Invoke(transform.CommandUndo); err == nil {
		t.Error("expected error with empty history")
	}
	if err := d.Invoke("redo"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestReload(t *testing.T) {
	d := editor.NewDocument("a\nbbbb")
	d.SetCursor(pos(1, 4))
	d.ReplaceSelection("x")
	d.Reload("short")

	if d.Dirty() {
		t.Error("dirty after reload")
	}
	if d.Cursor() != pos(0, 5) {
		t.Error("cursor not clamped:", d.Cursor().String())
	}
	if d.Undo() {
		t.Error("history survived reload")
	}
}

func TestEngineOnDocument(t *testing.T) {
	d := editor.NewDocument("say hi\nnext")
	d.SetSelection(model.DocRange{From: pos(0, 3), To: pos(0, 6)})

	engine := transform.NewEngine(d, nil, d, zerolog.Nop())
	outcome, err := engine.Apply(model.NewTemplate("b", "**$1**", "B", "bold"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if outcome != transform.OutcomeReplaced {
		t.Error("unexpected outcome", outcome.ToString())
	}
	if d.Text() != "say **hi**\nnext" {
		t.Errorf("got %q", d.Text())
	}
	// cursor lands at end of line (10), +2 wraps to the next line
	if d.Cursor() != pos(1, 0) {
		t.Error("unexpected cursor", d.Cursor().String())
	}

	if _, err := engine.Apply(model.NewAction("u", model.ActionUndo, "↶", "undo")); err == nil {
		t.Error("undo without selection should be a no-op")
	}
}
