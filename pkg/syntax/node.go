// Package syntax defines the syntax tree contract consumed by the lint
// engine: nodes with kind and position, parent/child/sibling navigation,
// and read-only access to the file's source lines.
//
// Trees are built once (by an external parser or the JSON codec) and are
// immutable for the duration of a file's analysis. Checks must never
// mutate a tree they are visiting.
package syntax

import (
	"strings"

	"github.com/javalint/javalint/pkg/token"
)

// Node is one construct or token of a parsed source file.
// A node is exclusively owned by its parent; the parent pointer is a
// navigation back-reference only. Sibling lookups are derived from the
// node's index in the parent's child slice, so sibling order always
// equals source textual order.
type Node struct {
	kind     Kind
	pos      token.Position
	text     string
	parent   *Node
	index    int
	children []*Node
}

// New creates a node with the given kind, 1-based position, and token text.
func New(kind Kind, line, column int, text string) *Node {
	return &Node{
		kind: kind,
		pos:  token.Position{Line: line, Column: column},
		text: text,
	}
}

// AddChild appends a child, taking ownership of it.
// Only the tree builder may call this; once a tree is handed to the
// walker it must not change.
func (n *Node) AddChild(child *Node) *Node {
	if child != nil {
		child.parent = n
		child.index = len(n.children)
		n.children = append(n.children, child)
	}
	return n
}

// Kind returns the node's construct kind.
func (n *Node) Kind() Kind { return n.kind }

// Line returns the 1-based line of the node's first character.
func (n *Node) Line() int { return n.pos.Line }

// Column returns the 1-based column of the node's first character.
func (n *Node) Column() int { return n.pos.Column }

// Pos returns the node's position.
func (n *Node) Pos() token.Position { return n.pos }

// Text returns the node's token text ("" for nodes without a token).
func (n *Node) Text() string { return n.text }

// Parent returns the owning node, or nil at the tree root.
func (n *Node) Parent() *Node { return n.parent }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// FirstChild returns the first direct child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last direct child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// FirstChildOfKind returns the first direct child with the given kind, or nil.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.children {
		if child.kind == kind {
			return child
		}
	}
	return nil
}

// NextSibling returns the node following this one under the same parent,
// or nil at the end of the sequence (and at the root).
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[n.index+1]
}

// PreviousSibling returns the node preceding this one under the same
// parent, or nil at the start of the sequence (and at the root).
func (n *Node) PreviousSibling() *Node {
	if n.parent == nil || n.index == 0 {
		return nil
	}
	return n.parent.children[n.index-1]
}

// Children returns the child slice in source order.
// Callers must treat the slice as read-only.
func (n *Node) Children() []*Node { return n.children }

// String returns an indented dump of the subtree, for debugging and
// test failure output.
func (n *Node) String() string {
	var b strings.Builder
	n.writeIndented(&b, 0)
	return b.String()
}

func (n *Node) writeIndented(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.kind.String())
	b.WriteString(" [")
	b.WriteString(n.pos.String())
	b.WriteString("]")
	if n.text != "" {
		b.WriteString(" ")
		b.WriteString(n.text)
	}
	b.WriteString("\n")
	for _, child := range n.children {
		child.writeIndented(b, depth+1)
	}
}
