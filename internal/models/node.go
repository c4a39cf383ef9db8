package models

import "fmt"

// NodeKind identifies the variant of a parsed template node.
type NodeKind int

// Node variants. Whitespace and PlainText are synthesized from inline text.
const (
	KindInvalid NodeKind = iota
	KindTopText
	KindParagraph
	KindTitle
	KindCopyright
	KindList
	KindListItem
	KindBullet
	KindLineBreak
	KindOptional
	KindAlt
	KindStandardHeader
	KindWhitespace
	KindPlainText
)

var nodeKindNames = map[NodeKind]string{
	KindInvalid:        "invalid",
	KindTopText:        "text",
	KindParagraph:      "p",
	KindTitle:          "titleText",
	KindCopyright:      "copyrightText",
	KindList:           "list",
	KindListItem:       "item",
	KindBullet:         "bullet",
	KindLineBreak:      "br",
	KindOptional:       "optional",
	KindAlt:            "alt",
	KindStandardHeader: "standardLicenseHeader",
	KindWhitespace:     "whitespace",
	KindPlainText:      "plaintext",
}

// String returns the markup tag name for element kinds and a descriptive name
// for synthesized kinds.
func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindForTag maps a markup element name to its node kind.
func KindForTag(tag string) (NodeKind, bool) {
	for kind, name := range nodeKindNames {
		if kind == KindInvalid || kind == KindWhitespace || kind == KindPlainText {
			continue
		}

		if name == tag {
			return kind, true
		}
	}

	return KindInvalid, false
}

// HasSpacing reports whether nodes of this kind carry a spacing directive.
func (k NodeKind) HasSpacing() bool {
	return k == KindOptional || k == KindAlt
}

// Spacing is the whitespace directive of optional and alt elements.
type Spacing int

// Spacing values. SpacingNotApplicable is the zero value, carried by nodes and
// segments that take no directive. SpacingUnspecified means the attribute was
// absent; the flattening stage decides what that means.
const (
	SpacingNotApplicable Spacing = iota
	SpacingInvalid
	SpacingNone
	SpacingBefore
	SpacingAfter
	SpacingBoth
	SpacingUnspecified
)

// ParseSpacing maps an attribute value to a Spacing. Unknown values yield
// SpacingInvalid.
func ParseSpacing(s string) Spacing {
	switch s {
	case "none":
		return SpacingNone
	case "before":
		return SpacingBefore
	case "after":
		return SpacingAfter
	case "both":
		return SpacingBoth
	default:
		return SpacingInvalid
	}
}

func (s Spacing) String() string {
	switch s {
	case SpacingNone:
		return "none"
	case SpacingBefore:
		return "before"
	case SpacingAfter:
		return "after"
	case SpacingBoth:
		return "both"
	case SpacingUnspecified:
		return "unspecified"
	case SpacingNotApplicable:
		return "n/a"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Spacing) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// NodeID indexes a node within its owning Template.
type NodeID int

// NoParent is the parent of the root node.
const NoParent NodeID = -1

// Node is one element of the parsed template tree. Children are owned by the
// node; Parent is a lookup key into the owning Template and never used for
// traversal.
type Node struct {
	Kind       NodeKind `json:"kind"`
	ID         NodeID   `json:"id"`
	Parent     NodeID   `json:"parent"`
	Line       int      `json:"line"`
	Spacing    Spacing  `json:"spacing,omitempty"`
	SpacingRaw string   `json:"spacingRaw,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	MatchName  string   `json:"matchName,omitempty"`
	Text       string   `json:"text,omitempty"`
	Children   []*Node  `json:"children,omitempty"`
}

// IsLeaf reports whether the node kind never has children.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindWhitespace || n.Kind == KindPlainText
}
