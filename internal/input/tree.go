package input

import (
	"fmt"

	"github.com/ja-he/alight/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> scroll-top       "gg"    -> scroll-top
//	G       -> scroll-bottom    "G"     -> scroll-bottom
//	<c-s>   -> save             "<c-s>" -> save
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		next.Action.Do()
		t.Current = t.Root
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
// A tree captures input while in the middle of a sequence (e.g. after the
// first 'g' of "gg").
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree constructs a Tree for the given mappings of input
// sequence strings to actions.
// Returns an error for invalid keyspecs and for sequences that are a prefix of
// another sequence (e.g. "g" and "gg"), as the longer one could never be
// entered.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for mapping, action := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec: '%s'", err.Error())
		}

		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec")
		}

		sequenceCurrent := root
		for i, key := range sequence {
			if sequenceCurrent.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends another mapped sequence", mapping)
			}
			sequenceNext, ok := sequenceCurrent.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					sequenceNext = NewLeaf(action)
				} else {
					sequenceNext = NewNode()
				}
				sequenceCurrent.Children[key] = sequenceNext
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' is a prefix of (or equal to) another mapped sequence", mapping)
			}
			sequenceCurrent = sequenceNext
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
