package model_test

import (
	"errors"
	"testing"

	"github.com/ja-he/alight/internal/model"
)

func TestSplitSelection(t *testing.T) {

	t.Run("round trip", func(t *testing.T) {
		inputs := []string{
			"",
			"x",
			"  hello  ",
			"\thello world\n",
			"   ",
			"\n\n",
			"a  b",
			"\u00a0 lead nbsp",
			"\ufeffbom",
			"multi\nline\n text \n",
			"ünïcödé ❗ ",
		}
		for _, input := range inputs {
			span := model.SplitSelection(input)
			if span.Prefix+span.Body+span.Suffix != input {
				t.Errorf("'%q' does not round-trip (got %q + %q + %q)", input, span.Prefix, span.Body, span.Suffix)
			}
			if span.String() != input {
				t.Errorf("span.String() for '%q' is %q", input, span.String())
			}
		}
	})

	t.Run("outer whitespace only", func(t *testing.T) {
		span := model.SplitSelection("  a  b \n")
		if span.Prefix != "  " {
			t.Errorf("prefix is %q", span.Prefix)
		}
		if span.Body != "a  b" {
			t.Errorf("body is %q", span.Body)
		}
		if span.Suffix != " \n" {
			t.Errorf("suffix is %q", span.Suffix)
		}
	})

	t.Run("whitespace only has empty body", func(t *testing.T) {
		for _, input := range []string{"", " ", "\t\n ", "\u00a0", "\ufeff"} {
			span := model.SplitSelection(input)
			if span.Body != "" {
				t.Errorf("body of %q is %q, expected empty", input, span.Body)
			}
		}
	})

	t.Run("next line control is not whitespace", func(t *testing.T) {
		span := model.SplitSelection("\u0085a\u0085")
		if span.Prefix != "" || span.Body != "\u0085a\u0085" || span.Suffix != "" {
			t.Errorf("unexpected split %q + %q + %q", span.Prefix, span.Body, span.Suffix)
		}
		if body := model.SplitSelection("\u0085").Body; body != "\u0085" {
			t.Errorf("body of NEL is %q", body)
		}
	})

	t.Run("join", func(t *testing.T) {
		span := model.SplitSelection(" x ")
		if span.Join("**x**") != " **x** " {
			t.Error("join did not restore outer whitespace:", span.Join("**x**"))
		}
	})
}

func TestToolRegistry(t *testing.T) {

	t.Run("defaults", func(t *testing.T) {
		r, err := model.NewToolRegistry(model.DefaultTools()...)
		if err != nil {
			t.Fatalf("default tools rejected: %s", err.Error())
		}
		if r.Len() != 18 {
			t.Errorf("expected 18 default tools, got %d", r.Len())
		}

		list := r.List()
		if list[0].ID() != "hl-yellow" || list[len(list)-1].ID() != "act-undo" {
			t.Error("default display order changed:", list[0].ID(), list[len(list)-1].ID())
		}
		kinds := map[model.ToolKind]int{}
		for _, tool := range list {
			kinds[tool.Kind()]++
		}
		if kinds[model.ToolKindHighlight] != 5 || kinds[model.ToolKindTemplate] != 10 || kinds[model.ToolKindAction] != 3 {
			t.Error("unexpected kind distribution:", kinds)
		}
	})

	t.Run("list is a copy", func(t *testing.T) {
		r, _ := model.NewToolRegistry(model.DefaultTools()...)
		list := r.List()
		list[0] = nil
		if r.List()[0] == nil {
			t.Error("registry mutated through List result")
		}
	})

	t.Run("ByID", func(t *testing.T) {
		r, _ := model.NewToolRegistry(model.DefaultTools()...)
		tool, err := r.ByID("fmt-bold")
		if err != nil {
			t.Fatalf("fmt-bold not found: %s", err.Error())
		}
		tmpl, ok := tool.(model.TemplateTool)
		if !ok {
			t.Fatalf("fmt-bold is not a template but %s", tool.Kind().ToString())
		}
		if tmpl.Pattern != "**$1**" {
			t.Error("unexpected bold pattern:", tmpl.Pattern)
		}

		_, err = r.ByID("nope")
		if !errors.Is(err, model.ErrToolNotFound) {
			t.Error("expected ErrToolNotFound, got", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		expectInvalid := func(name string, tools ...model.Tool) {
			t.Run(name, func(t *testing.T) {
				r, err := model.NewToolRegistry(tools...)
				if err == nil {
					t.Error("unexpectedly no error")
				}
				if r != nil {
					t.Error("unexpected registry on error")
				}
			})
		}

		expectInvalid("duplicate id",
			model.NewHighlight("x", "#ffffff", "a"),
			model.NewHighlight("x", "#000000", "b"),
		)
		expectInvalid("empty id", model.NewTemplate("", "*$1*", "i", "italic"))
		expectInvalid("no placeholder", model.NewTemplate("t", "**", "B", "bold"))
		expectInvalid("two placeholders", model.NewTemplate("t", "$1$1", "B", "twice"))
		expectInvalid("bad color", model.NewHighlight("h", "yellow", "yellow"))
		expectInvalid("bad alpha", model.NewHighlight("h", "#ffffffzz", "yellow"))
		expectInvalid("unknown op", model.NewAction("a", model.ActionOp(42), "?", "what"))
	})
}

func TestDocRange(t *testing.T) {
	a := model.DocPos{Line: 1, Ch: 5}
	b := model.DocPos{Line: 2, Ch: 0}

	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before is wrong")
	}

	backwards := model.DocRange{From: b, To: a}
	n := backwards.Normalized()
	if n.From != a || n.To != b {
		t.Error("backwards range not swapped:", n.String())
	}
	forwards := model.DocRange{From: a, To: b}
	if forwards.Normalized() != forwards {
		t.Error("forwards range changed on normalization")
	}
	if !(model.DocRange{From: a, To: a}).Empty() {
		t.Error("collapsed range not empty")
	}
}

func TestScreenPointDelta(t *testing.T) {
	dx, dy := model.ScreenPoint{X: 10, Y: 3}.Delta(model.ScreenPoint{X: 4, Y: 9})
	if dx != 6 || dy != 6 {
		t.Errorf("expected (6,6), got (%d,%d)", dx, dy)
	}
}
