// Package action provides the actions key bindings are mapped to.
package action

// Action is something a user input can trigger.
type Action interface {
	Do()

	Undo()
	Undoable() bool

	Explain() string
}
