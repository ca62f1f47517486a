package cli

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/transform"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

type fakeClipboard struct {
	written []string
}

func (c *fakeClipboard) WriteText(text string) error {
	c.written = append(c.written, text)
	return nil
}

type fakeStore struct {
	text   string
	writes int
}

func (s *fakeStore) Read() (string, error) { return s.text, nil }
func (s *fakeStore) Write(text string) error {
	s.text = text
	s.writes++
	return nil
}

func TestParseLineCol(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pos, err := parseLineCol("3:7")
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if pos != (model.DocPos{Line: 2, Ch: 6}) {
			t.Error("unexpected position", pos.String())
		}
	})

	for _, s := range []string{"", "3", "a:1", "1:b", "0:1", "1:0", "-1:2"} {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := parseLineCol(s); err == nil {
				t.Errorf("expected error for %q", s)
			}
		})
	}
}

func TestApplyTool(t *testing.T) {
	text := "hello world\nsecond line\n"
	word := model.DocRange{From: model.DocPos{Line: 0, Ch: 6}, To: model.DocPos{Line: 0, Ch: 11}}

	t.Run("template", func(t *testing.T) {
		after, outcome, err := applyTool(text, model.NewTemplate("b", "**$1**", "B", "bold"), word, &fakeClipboard{})
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if outcome != transform.OutcomeReplaced {
			t.Error("unexpected outcome", outcome.ToString())
		}
		if after != "hello **world**\nsecond line\n" {
			t.Errorf("unexpected result %q", after)
		}
	})

	t.Run("reversed range", func(t *testing.T) {
		reversed := model.DocRange{From: word.To, To: word.From}
		after, _, err := applyTool(text, model.NewTemplate("b", "**$1**", "B", "bold"), reversed, &fakeClipboard{})
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if after != "hello **world**\nsecond line\n" {
			t.Errorf("unexpected result %q", after)
		}
	})

	t.Run("copy leaves text", func(t *testing.T) {
		clipboard := &fakeClipboard{}
		after, outcome, err := applyTool(text, model.NewAction("c", model.ActionCopy, "C", "copy"), word, clipboard)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if outcome != transform.OutcomeCopied {
			t.Error("unexpected outcome", outcome.ToString())
		}
		if after != text {
			t.Errorf("expected text unchanged, got %q", after)
		}
		if len(clipboard.written) != 1 || clipboard.written[0] != "world" {
			t.Error("unexpected clipboard writes:", clipboard.written)
		}
	})

	t.Run("empty range", func(t *testing.T) {
		empty := model.DocRange{From: word.From, To: word.From}
		after, _, err := applyTool(text, model.NewTemplate("b", "**$1**", "B", "bold"), empty, &fakeClipboard{})
		if !errors.Is(err, transform.ErrNoOp) {
			t.Error("expected ErrNoOp, got", err)
		}
		if after != text {
			t.Errorf("expected text unchanged, got %q", after)
		}
	})
}

func TestRenderDiff(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		var out bytes.Buffer
		if got := renderDiff(&out, "a\n", "a\n"); got != "no changes\n" {
			t.Errorf("unexpected diff %q", got)
		}
	})

	t.Run("changed line with context", func(t *testing.T) {
		var out bytes.Buffer
		got := plain(renderDiff(&out, "a\nb\nc\nd\ne\n", "a\nb\nX\nd\ne\n"))
		expected := "  b\n- c\n+ X\n  d\n"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("inserted lines", func(t *testing.T) {
		var out bytes.Buffer
		got := plain(renderDiff(&out, "a\nb\n", "a\nnew\nlines\nb\n"))
		for _, l := range []string{"+ new\n", "+ lines\n"} {
			if !strings.Contains(got, l) {
				t.Errorf("expected %q in %q", l, got)
			}
		}
		if strings.Contains(got, "- ") {
			t.Errorf("unexpected removal in %q", got)
		}
	})
}

func TestApplyOutput(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		var out bytes.Buffer
		store := &fakeStore{text: "before"}
		command := &ApplyCommand{}
		if err := command.output(&out, store, "before", "after"); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if out.String() != "after" {
			t.Errorf("unexpected output %q", out.String())
		}
		if store.writes != 0 {
			t.Error("unexpected write")
		}
	})

	t.Run("write", func(t *testing.T) {
		var out bytes.Buffer
		store := &fakeStore{text: "before"}
		command := &ApplyCommand{Write: true}
		if err := command.output(&out, store, "before", "after"); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if out.Len() != 0 {
			t.Errorf("unexpected output %q", out.String())
		}
		if store.writes != 1 || store.text != "after" {
			t.Error("expected result written, got", store.text)
		}
	})
}

func TestListTools(t *testing.T) {
	var out bytes.Buffer
	tools := []model.Tool{
		model.NewHighlight("hl", "#ffff00", "yellow"),
		model.NewTemplate("b", "**$1**", "B", "bold"),
		model.NewAction("c", model.ActionCopy, "C", "copy"),
	}
	if err := listTools(&out, tools, colorful.Color{}); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	lines := strings.Split(strings.TrimSpace(plain(out.String())), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines: %q", len(lines), lines)
	}
	if fields := strings.Fields(lines[0]); len(fields) != 5 || fields[0] != "ID" {
		t.Error("unexpected header", lines[0])
	}
	for i, expected := range [][]string{
		{"hl", "highlight", "#ffff00"},
		{"b", "template", "**$1**"},
		{"c", "action", "copy"},
	} {
		fields := strings.Fields(lines[i+1])
		if fields[0] != expected[0] || fields[1] != expected[1] {
			t.Errorf("unexpected row %q", lines[i+1])
		}
		if !strings.Contains(lines[i+1], expected[2]) {
			t.Errorf("expected %q in row %q", expected[2], lines[i+1])
		}
	}
}
