package catalog

import (
	"fmt"

	"lecturebot/internal/domain"
)

// Node is one reachable menu position. Non-leaf nodes render a keyboard
// built from their children; leaf nodes send their file references.
type Node struct {
	Label   domain.StateLabel
	Button  string // text on the parent's keyboard that leads here
	Prompt  string // message shown when this menu is rendered
	Back    string // back button text on this node's keyboard, empty for the root
	Columns int    // keyboard columns, defaults to 2

	Children []*Node

	// Leaf payload
	Files   []domain.FileRef
	Kind    domain.FileKind
	Caption string // optional caption sent with every file
	Intro   string // optional line sent before the batch
	Done    string // optional line sent after the batch

	parent *Node
}

// IsLeaf reports whether the node sends files instead of a keyboard
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Parent returns the node's parent, nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

// Child returns the child whose button text equals the given trigger
func (n *Node) Child(button string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Button == button {
			return c, true
		}
	}
	return nil, false
}

// Tree is a validated menu tree with an index from state label to node
type Tree struct {
	root  *Node
	index map[domain.StateLabel]*Node
}

// Build validates the tree rooted at root and derives parent pointers.
// Duplicate state labels and duplicate (state, button) pairs are
// registration errors, not runtime surprises.
func Build(root *Node) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("catalog: root is nil")
	}
	t := &Tree{
		root:  root,
		index: make(map[domain.StateLabel]*Node),
	}
	if err := t.walk(root, nil); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) walk(n *Node, parent *Node) error {
	if n.Label == "" {
		return fmt.Errorf("catalog: node with button %q has no label", n.Button)
	}
	if _, exists := t.index[n.Label]; exists {
		return fmt.Errorf("catalog: duplicate state label %q", n.Label)
	}
	t.index[n.Label] = n
	n.parent = parent

	if parent != nil && n.Button == "" {
		return fmt.Errorf("catalog: node %q is unreachable, it has no button", n.Label)
	}

	if n.IsLeaf() {
		if len(n.Files) == 0 {
			return fmt.Errorf("catalog: leaf %q has no files", n.Label)
		}
		if n.Kind == "" {
			return fmt.Errorf("catalog: leaf %q has no file kind", n.Label)
		}
		return nil
	}

	if n.Prompt == "" {
		return fmt.Errorf("catalog: menu %q has no prompt", n.Label)
	}

	seen := make(map[string]struct{}, len(n.Children)+1)
	if n.Back != "" {
		seen[n.Back] = struct{}{}
	}
	for _, c := range n.Children {
		if _, dup := seen[c.Button]; dup {
			return fmt.Errorf("catalog: state %q has duplicate trigger %q", n.Label, c.Button)
		}
		seen[c.Button] = struct{}{}
		if err := t.walk(c, n); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the tree's root node
func (t *Tree) Root() *Node {
	return t.root
}

// Node looks up a node by its state label
func (t *Tree) Node(label domain.StateLabel) (*Node, bool) {
	n, ok := t.index[label]
	return n, ok
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.index)
}
