package syntax

import (
	"encoding/json"
	"fmt"
)

// The tree JSON format is the wire contract between the external parser
// and this engine: a nested object per node with the kind name, 1-based
// position, optional token text, and children in source order.

type jsonNode struct {
	Kind     string      `json:"kind"`
	Pos      *jsonPos    `json:"pos,omitempty"`
	Token    string      `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// MarshalTree encodes the tree rooted at n as indented JSON.
func MarshalTree(n *Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(n), "", "  ")
}

// UnmarshalTree decodes a tree from its JSON form.
// An unknown kind name is an error: the kind set is closed and a new
// name means the parser and engine are out of sync. Every node must
// carry a valid 1-based position; checks report at node positions and a
// position-less node would yield line 0 coordinates.
func UnmarshalTree(data []byte) (*Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return nodeFromJSON(&jn)
}

func nodeToJSON(n *Node) *jsonNode {
	jn := &jsonNode{Kind: n.kind.String()}
	if n.pos.IsValid() {
		jn.Pos = &jsonPos{Line: n.pos.Line, Column: n.pos.Column}
	}
	jn.Token = n.text
	for _, child := range n.children {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}

func nodeFromJSON(jn *jsonNode) (*Node, error) {
	kind, ok := KindFromName(jn.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", jn.Kind)
	}
	if jn.Pos == nil || jn.Pos.Line < 1 || jn.Pos.Column < 1 {
		return nil, fmt.Errorf("node %s has no position", jn.Kind)
	}
	n := New(kind, jn.Pos.Line, jn.Pos.Column, jn.Token)
	for _, jc := range jn.Children {
		child, err := nodeFromJSON(jc)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}
