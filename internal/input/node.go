package input

import (
	"github.com/ja-he/alight/internal/control/action"
)

// Node is a node in a Tree.
// It has either child nodes or an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key, or nil if there is none.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// NewNode returns a pointer to a new intermediate node without an action.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a pointer to a new leaf node holding the given action.
func NewLeaf(action action.Action) *Node {
	return &Node{
		Action: action,
	}
}
