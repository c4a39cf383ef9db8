// Package flatten derives the linear segment sequence of a template from its
// node tree.
package flatten

import (
	"errors"
	"fmt"

	"spdxmatch/internal/models"
)

// Placeholder patterns for elements whose content is matched loosely.
const (
	BulletPattern    = `\S{0,7}`
	CopyrightPattern = `.*`
)

// ErrNotTopText is returned when the template root is not a text node.
var ErrNotTopText = errors.New("template root is not a text node")

// StructuralError reports a node that may not appear where it was found.
type StructuralError struct {
	Kind models.NodeKind
	Line int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("unexpected %s node at line %d", e.Kind, e.Line)
}

// Options controls flattening policy.
type Options struct {
	// UnspecifiedSpacing is the directive applied to optional and alt
	// elements without a spacing attribute. SpacingNone is honored; any
	// other value means SpacingBefore.
	UnspecifiedSpacing models.Spacing
}

// DefaultOptions treats an absent spacing attribute as "before", the schema
// default.
func DefaultOptions() Options {
	return Options{UnspecifiedSpacing: models.SpacingBefore}
}

// Flattener walks node trees into segments.
type Flattener struct {
	opts Options
}

// NewFlattener creates a flattener with the given options.
func NewFlattener(opts Options) *Flattener {
	if opts.UnspecifiedSpacing != models.SpacingNone {
		opts.UnspecifiedSpacing = models.SpacingBefore
	}

	return &Flattener{opts: opts}
}

// Flatten flattens tmpl with the default options.
func Flatten(tmpl *models.Template) ([]models.Segment, error) {
	return NewFlattener(DefaultOptions()).Flatten(tmpl)
}

// Flatten returns the segments of tmpl in document order. It does not modify
// tmpl.
func (f *Flattener) Flatten(tmpl *models.Template) ([]models.Segment, error) {
	if tmpl.Root == nil || tmpl.Root.Kind != models.KindTopText {
		return nil, ErrNotTopText
	}

	segs := make([]models.Segment, 0, len(tmpl.Root.Children))

	return f.children(tmpl.Root, segs)
}

func (f *Flattener) children(n *models.Node, segs []models.Segment) ([]models.Segment, error) {
	var err error

	for _, c := range n.Children {
		switch c.Kind {
		case models.KindPlainText:
			segs = append(segs, models.TextSegment(c.Text, c.Line))
		case models.KindWhitespace:
			segs = append(segs, models.WhitespaceSegment(c.Line))
		case models.KindParagraph, models.KindList, models.KindListItem, models.KindStandardHeader:
			segs, err = f.children(c, segs)
			if err != nil {
				return nil, err
			}
		case models.KindLineBreak:
		case models.KindBullet:
			// Adjacent whitespace nodes already separate bullets from the text.
			segs = append(segs, models.RegexSegment(BulletPattern, c.Line, models.SpacingNotApplicable))
		case models.KindCopyright:
			segs = bracket(segs, models.RegexSegment(CopyrightPattern, c.Line, models.SpacingBoth))
		case models.KindAlt:
			spacing := f.effective(c.Spacing)
			segs = bracket(segs, models.RegexSegment(c.Pattern, c.Line, spacing))
		case models.KindTitle:
			segs, err = f.optional(c, models.SpacingBoth, segs)
			if err != nil {
				return nil, err
			}
		case models.KindOptional:
			segs, err = f.optional(c, f.effective(c.Spacing), segs)
			if err != nil {
				return nil, err
			}
		default:
			return nil, &StructuralError{Kind: c.Kind, Line: c.Line}
		}
	}

	return segs, nil
}

func (f *Flattener) optional(n *models.Node, spacing models.Spacing, segs []models.Segment) ([]models.Segment, error) {
	nested, err := f.children(n, make([]models.Segment, 0, len(n.Children)))
	if err != nil {
		return nil, err
	}

	return bracket(segs, models.OptionalSegment(nested, n.Line, spacing)), nil
}

func (f *Flattener) effective(s models.Spacing) models.Spacing {
	if s == models.SpacingUnspecified {
		return f.opts.UnspecifiedSpacing
	}

	return s
}

// bracket appends seg with the whitespace its spacing directive calls for.
// Invalid spacing brackets with nothing.
func bracket(segs []models.Segment, seg models.Segment) []models.Segment {
	if seg.Spacing == models.SpacingBefore || seg.Spacing == models.SpacingBoth {
		segs = append(segs, models.WhitespaceSegment(seg.Line))
	}

	segs = append(segs, seg)

	if seg.Spacing == models.SpacingAfter || seg.Spacing == models.SpacingBoth {
		segs = append(segs, models.WhitespaceSegment(seg.Line))
	}

	return segs
}
