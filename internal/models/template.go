// Package models defines the template, node tree, segment and token types
// shared by every stage of the matching engine.
package models

// TemplateKind distinguishes license templates from exception templates.
type TemplateKind string

// Template kinds.
const (
	KindLicense   TemplateKind = "license"
	KindException TemplateKind = "exception"
	KindFragment  TemplateKind = "fragment"
)

// Template is a parsed license or exception definition.
// Segments and Tokens stay nil until the flatten and tokenize stages run.
type Template struct {
	Kind              TemplateKind `json:"kind"`
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	OSIApproved       bool         `json:"isOsiApproved"`
	VersionAdded      string       `json:"listVersionAdded"`
	VersionDeprecated string       `json:"deprecatedVersion,omitempty"`
	CrossRefs         []string     `json:"crossRefs"`
	Notes             string       `json:"notes,omitempty"`
	RawMarkup         string       `json:"-"`
	Root              *Node        `json:"text"`
	Segments          []Segment    `json:"segments,omitempty"`
	Tokens            []Token      `json:"tokens,omitempty"`

	nodes []*Node
}

// NewNode allocates a node owned by t and assigns its ID. The caller links it
// into the tree.
func (t *Template) NewNode(kind NodeKind, parent NodeID, line int) *Node {
	n := &Node{
		Kind:   kind,
		ID:     NodeID(len(t.nodes)),
		Parent: parent,
		Line:   line,
	}
	t.nodes = append(t.nodes, n)

	return n
}

// Node returns the node with the given ID, or nil.
func (t *Template) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}

	return t.nodes[id]
}

// Parent returns the parent of n, or nil for the root.
func (t *Template) Parent(n *Node) *Node {
	if n == nil || n.Parent == NoParent {
		return nil
	}

	return t.Node(n.Parent)
}

// NodeCount returns the number of nodes in the tree.
func (t *Template) NodeCount() int {
	return len(t.nodes)
}

// Flattened reports whether the flatten stage has populated Segments.
func (t *Template) Flattened() bool {
	return t.Segments != nil
}

// Walk visits every node depth-first in document order.
func (t *Template) Walk(fn func(n *Node, depth int)) {
	if t.Root == nil {
		return
	}

	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int)) {
	fn(n, depth)

	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}
