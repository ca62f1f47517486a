package action_test

import (
	"testing"

	"github.com/ja-he/alight/internal/control/action"
)

func TestSimple(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		open := false
		s := action.NewSimple(func() string { return "toggle palette" }, func() { open = !open })
		s.Do()
		if !open {
			t.Error("action was not executed")
		}
		s.Do()
		if open {
			t.Error("action was not executed again")
		}
	})

	t.Run("not undoable", func(t *testing.T) {
		calls := 0
		s := action.NewSimple(func() string { return "save" }, func() { calls++ })
		if s.Undoable() {
			t.Error("simple action claims to be undoable")
		}
		s.Undo()
		if calls != 0 {
			t.Error("undo did something")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		open := false
		s := action.NewSimple(
			func() string {
				if open {
					return "close palette"
				}
				return "open palette"
			},
			func() { open = !open },
		)
		if s.Explain() != "open palette" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		s.Do()
		if s.Explain() != "close palette" {
			t.Error("explanation did not follow state:", s.Explain())
		}
	})
}
