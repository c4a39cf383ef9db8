package models

// SegmentKind identifies a flattened segment variant.
type SegmentKind int

// Segment variants.
const (
	SegmentWhitespace SegmentKind = iota
	SegmentText
	SegmentOptional
	SegmentRegex
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentWhitespace:
		return "whitespace"
	case SegmentText:
		return "text"
	case SegmentOptional:
		return "optional"
	case SegmentRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is one flattened unit of template content. Optional segments own
// their nested sequence; Spacing records the directive the segment was
// bracketed with so later stages can reason about it.
type Segment struct {
	Kind     SegmentKind `json:"kind"`
	Line     int         `json:"line"`
	Text     string      `json:"text,omitempty"`
	Pattern  string      `json:"pattern,omitempty"`
	Spacing  Spacing     `json:"spacing,omitempty"`
	Children []Segment   `json:"children,omitempty"`
}

// WhitespaceSegment returns a whitespace segment.
func WhitespaceSegment(line int) Segment {
	return Segment{Kind: SegmentWhitespace, Line: line}
}

// TextSegment returns a literal text segment.
func TextSegment(text string, line int) Segment {
	return Segment{Kind: SegmentText, Text: text, Line: line}
}

// RegexSegment returns a regular-expression segment.
func RegexSegment(pattern string, line int, spacing Spacing) Segment {
	return Segment{Kind: SegmentRegex, Pattern: pattern, Line: line, Spacing: spacing}
}

// OptionalSegment returns an optional segment owning children.
func OptionalSegment(children []Segment, line int, spacing Spacing) Segment {
	return Segment{Kind: SegmentOptional, Children: children, Line: line, Spacing: spacing}
}
