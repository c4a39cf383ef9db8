// Package tokenizer converts a template's flattened segments into the token
// stream consumed by a matcher.
package tokenizer

import (
	"errors"
	"strings"
	"unicode"

	"spdxmatch/internal/models"
)

// ErrUnflattenedTemplate is returned when a template with content has not
// been flattened yet.
var ErrUnflattenedTemplate = errors.New("template has not been flattened")

// Options controls token placement.
type Options struct {
	// MergeWhitespace skips a whitespace token when the previous token at the
	// same nesting level is also whitespace.
	MergeWhitespace bool
	// SplitTextWhitespace emits the leading and trailing whitespace of a text
	// segment as separate whitespace tokens.
	SplitTextWhitespace bool
	// DropUnspacedWhitespace drops whitespace bordering an optional or regex
	// segment whose spacing directive is "none".
	DropUnspacedWhitespace bool
}

// DefaultOptions merges adjacent whitespace and leaves everything else as
// flattened.
func DefaultOptions() Options {
	return Options{MergeWhitespace: true}
}

// Tokenizer builds token streams.
type Tokenizer struct {
	opts Options
}

// NewTokenizer creates a tokenizer with the given options.
func NewTokenizer(opts Options) *Tokenizer {
	return &Tokenizer{opts: opts}
}

// Tokenize returns the token stream of a flattened template.
func (t *Tokenizer) Tokenize(tmpl *models.Template) ([]models.Token, error) {
	if !tmpl.Flattened() && tmpl.Root != nil && len(tmpl.Root.Children) > 0 {
		return nil, ErrUnflattenedTemplate
	}

	return t.Segments(tmpl.Segments), nil
}

// Segments tokenizes a segment sequence.
func (t *Tokenizer) Segments(segs []models.Segment) []models.Token {
	tokens := make([]models.Token, 0, len(segs))
	prevUnspaced := false

	for i, seg := range segs {
		switch seg.Kind {
		case models.SegmentWhitespace:
			if t.opts.DropUnspacedWhitespace && (prevUnspaced || unspaced(segs, i+1)) {
				continue
			}

			tokens = t.whitespace(tokens, seg.Line)
		case models.SegmentText:
			tokens = t.text(tokens, seg)
		case models.SegmentOptional:
			tokens = append(tokens, models.Token{
				Kind:     models.TokenOptional,
				Line:     seg.Line,
				Children: t.Segments(seg.Children),
			})
		case models.SegmentRegex:
			tokens = append(tokens, models.Token{
				Kind:    models.TokenRegex,
				Line:    seg.Line,
				Pattern: seg.Pattern,
			})
		}

		prevUnspaced = unspaced(segs, i)
	}

	return tokens
}

func (t *Tokenizer) whitespace(tokens []models.Token, line int) []models.Token {
	if t.opts.MergeWhitespace && len(tokens) > 0 && tokens[len(tokens)-1].Kind == models.TokenWhitespace {
		return tokens
	}

	return append(tokens, models.Token{Kind: models.TokenWhitespace, Line: line})
}

func (t *Tokenizer) text(tokens []models.Token, seg models.Segment) []models.Token {
	if !t.opts.SplitTextWhitespace {
		return append(tokens, models.Token{Kind: models.TokenText, Line: seg.Line, Text: seg.Text})
	}

	core := strings.TrimLeftFunc(seg.Text, unicode.IsSpace)
	if core != seg.Text {
		tokens = t.whitespace(tokens, seg.Line)
	}

	trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
	if trimmed != "" {
		tokens = append(tokens, models.Token{Kind: models.TokenText, Line: seg.Line, Text: trimmed})
	}

	if trimmed != core {
		tokens = t.whitespace(tokens, seg.Line)
	}

	return tokens
}

// unspaced reports whether segs[i] is an optional or regex segment whose
// directive forbids surrounding whitespace.
func unspaced(segs []models.Segment, i int) bool {
	if i < 0 || i >= len(segs) {
		return false
	}

	s := segs[i]

	return (s.Kind == models.SegmentOptional || s.Kind == models.SegmentRegex) && s.Spacing == models.SpacingNone
}
