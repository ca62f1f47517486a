package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/alight/internal/control/action"
	"github.com/ja-he/alight/internal/input"
	"github.com/ja-he/alight/internal/input/processors"
)

func tree(t *testing.T, spec map[input.Keyspec]action.Action) *input.Tree {
	tr, err := input.ConstructInputTree(spec)
	if err != nil {
		t.Fatalf("could not construct tree: %s", err.Error())
	}
	return tr
}

func simple(explanation string, f func()) action.Action {
	return action.NewSimple(func() string { return explanation }, f)
}

func TestModalInputProcessor(t *testing.T) {
	esc := input.Key{Key: tcell.KeyESC}
	j := input.Key{Key: tcell.KeyRune, Ch: 'j'}
	g := input.Key{Key: tcell.KeyRune, Ch: 'g'}
	help := input.Key{Key: tcell.KeyRune, Ch: '?'}

	scrolled := 0
	var m *processors.ModalInputProcessor
	var helpIndex uint
	helpOpen := false

	helpOverlay := input.CapturingOverlayWrap(tree(t, map[input.Keyspec]action.Action{
		"<esc>": simple("close help", func() { m.PopModalOverlays(helpIndex); helpOpen = false }),
	}))
	m = processors.NewModalInputProcessor(tree(t, map[input.Keyspec]action.Action{
		"j":  simple("scroll down", func() { scrolled++ }),
		"gg": simple("scroll to top", func() { scrolled = 0 }),
		"?":  simple("show help", func() { helpIndex = m.ApplyModalOverlay(helpOverlay); helpOpen = true }),
	}))

	t.Run("base", func(t *testing.T) {
		if m.CapturesInput() {
			t.Error("captures initially")
		}
		if !m.ProcessInput(j) || scrolled != 1 {
			t.Error("j not processed by base")
		}
		m.ProcessInput(g)
		if !m.CapturesInput() {
			t.Error("does not capture mid-sequence of base")
		}
		m.ProcessInput(g)
		if scrolled != 0 {
			t.Error("gg not processed by base")
		}
		if len(m.GetHelp()) != 3 {
			t.Error("unexpected base help", m.GetHelp())
		}
	})

	t.Run("overlay", func(t *testing.T) {
		m.ProcessInput(help)
		if !helpOpen || helpIndex != 0 {
			t.Fatal("help overlay not applied")
		}
		if !m.CapturesInput() {
			t.Error("does not capture with capturing overlay")
		}
		if m.ProcessInput(j) || scrolled != 0 {
			t.Error("base processed input beneath overlay")
		}
		if h := m.GetHelp(); len(h) != 1 || h["<esc>"] != "close help" {
			t.Error("unexpected overlay help", h)
		}
		if !m.ProcessInput(esc) || helpOpen {
			t.Error("overlay not closed")
		}
		if m.CapturesInput() || !m.ProcessInput(j) {
			t.Error("base not restored after popping overlay")
		}
	})

	t.Run("pop", func(t *testing.T) {
		if err := m.PopModalOverlay(); err == nil {
			t.Error("expected error popping from empty stack")
		}
		a := m.ApplyModalOverlay(input.EmptyTree())
		b := m.ApplyModalOverlay(input.EmptyTree())
		if a != 0 || b != 1 {
			t.Errorf("unexpected overlay indices %d, %d", a, b)
		}
		m.PopModalOverlays(a)
		if err := m.PopModalOverlay(); err == nil {
			t.Error("overlays left after popping down to the first")
		}
	})
}
