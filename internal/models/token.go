package models

// TokenKind identifies a token variant. It mirrors SegmentKind.
type TokenKind int

// Token variants.
const (
	TokenWhitespace TokenKind = iota
	TokenText
	TokenOptional
	TokenRegex
)

func (k TokenKind) String() string {
	switch k {
	case TokenWhitespace:
		return "whitespace"
	case TokenText:
		return "text"
	case TokenOptional:
		return "optional"
	case TokenRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is the unit handed to a matcher.
type Token struct {
	Kind     TokenKind `json:"kind"`
	Line     int       `json:"line"`
	Text     string    `json:"text,omitempty"`
	Pattern  string    `json:"pattern,omitempty"`
	Children []Token   `json:"children,omitempty"`
}
