// Package parser converts SPDX license template markup into a typed node tree.
package parser

import (
	"strings"

	"spdxmatch/internal/models"
)

// Namespace is the SPDX License List XML namespace.
const Namespace = "http://www.spdx.org/license"

// Element names outside the template text.
const (
	tagCollection = "SPDXLicenseCollection"
	tagLicense    = "license"
	tagException  = "exception"
	tagText       = "text"
	tagCrossRefs  = "crossRefs"
	tagNotes      = "notes"
)

// Parser builds Templates from markup. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	namespaces map[string]bool
}

// NewParser creates a parser accepting elements in the SPDX namespace or in
// no namespace.
func NewParser() *Parser {
	return &Parser{
		namespaces: map[string]bool{"": true, Namespace: true},
	}
}

// Parse parses markup with a default Parser.
func Parse(markup string) (*models.Template, error) {
	return NewParser().Parse(markup)
}

// Parse builds a Template from a complete markup document. The root may be an
// SPDXLicenseCollection wrapping a license or exception, a bare license or
// exception element, or a bare text element.
func (p *Parser) Parse(markup string) (*models.Template, error) {
	root, err := readDocument(markup)
	if err != nil {
		return nil, err
	}

	tmpl := &models.Template{RawMarkup: markup, CrossRefs: []string{}}

	textEl, err := p.locateText(root, tmpl)
	if err != nil {
		return nil, err
	}

	b := &builder{parser: p, tmpl: tmpl}

	top, err := b.node(textEl, models.NoParent)
	if err != nil {
		return nil, err
	}

	if textEl.tail != "" {
		top.Children = append(top.Children, b.textNode(textEl.tail, textEl.tailLine, top.ID))
	}

	tmpl.Root = top

	return tmpl, nil
}

func (p *Parser) known(el *element) bool {
	return p.namespaces[el.name.Space]
}

// locateText finds the template element, fills in metadata, and returns its
// text element.
func (p *Parser) locateText(root *element, tmpl *models.Template) (*element, error) {
	tmplEl := root

	switch root.name.Local {
	case tagText:
		tmpl.Kind = models.KindFragment
		return root, nil
	case tagCollection:
		tmplEl = nil

		for _, c := range root.children {
			if p.known(c) && (c.name.Local == tagLicense || c.name.Local == tagException) {
				tmplEl = c
				break
			}
		}

		if tmplEl == nil {
			return nil, &MalformedMarkupError{Line: root.line, Reason: "missing license element"}
		}
	case tagLicense, tagException:
	default:
		return nil, &MalformedMarkupError{
			Line:   root.line,
			Reason: "unexpected root element <" + root.name.Local + ">",
		}
	}

	readMetadata(tmplEl, tmpl)

	textEl := tmplEl.child(tagText)
	if textEl == nil || !p.known(textEl) {
		return nil, &MalformedMarkupError{Line: tmplEl.line, Reason: "missing text element"}
	}

	return textEl, nil
}

func readMetadata(el *element, tmpl *models.Template) {
	tmpl.Kind = models.KindLicense
	if el.name.Local == tagException {
		tmpl.Kind = models.KindException
	}

	tmpl.ID, _ = el.attr("licenseId")
	tmpl.Name, _ = el.attr("name")
	osi, _ := el.attr("isOsiApproved")
	tmpl.OSIApproved = osi == "true"
	tmpl.VersionAdded, _ = el.attr("listVersionAdded")
	tmpl.VersionDeprecated, _ = el.attr("deprecatedVersion")

	if refs := el.child(tagCrossRefs); refs != nil {
		for _, ref := range refs.children {
			tmpl.CrossRefs = append(tmpl.CrossRefs, strings.TrimSpace(ref.text))
		}
	}

	if notes := el.child(tagNotes); notes != nil {
		tmpl.Notes = notes.text
	}
}

type builder struct {
	parser *Parser
	tmpl   *models.Template
}

func (b *builder) node(el *element, parent models.NodeID) (*models.Node, error) {
	kind, ok := models.KindForTag(el.name.Local)
	if !ok || !b.parser.known(el) {
		return nil, &UnknownElementError{Tag: el.name.Local, Line: el.line}
	}

	n := b.tmpl.NewNode(kind, parent, el.line)

	if kind.HasSpacing() {
		if raw, present := el.attr("spacing"); present {
			n.Spacing = models.ParseSpacing(raw)
			n.SpacingRaw = raw
		} else {
			n.Spacing = models.SpacingUnspecified
		}
	}

	if kind == models.KindAlt {
		n.Pattern, _ = el.attr("match")
		n.MatchName, _ = el.attr("name")
	}

	// Children are read for every kind, including alt and bullet, so their
	// inline text is kept in the tree even where flattening ignores it.
	if el.text != "" {
		n.Children = append(n.Children, b.textNode(el.text, el.textLine, n.ID))
	}

	for _, c := range el.children {
		child, err := b.node(c, n.ID)
		if err != nil {
			return nil, err
		}

		n.Children = append(n.Children, child)

		if c.tail != "" {
			n.Children = append(n.Children, b.textNode(c.tail, c.tailLine, n.ID))
		}
	}

	return n, nil
}

// textNode synthesizes a Whitespace or PlainText node for inline text.
func (b *builder) textNode(s string, line int, parent models.NodeID) *models.Node {
	if strings.TrimSpace(s) == "" {
		return b.tmpl.NewNode(models.KindWhitespace, parent, line)
	}

	n := b.tmpl.NewNode(models.KindPlainText, parent, line+precedingBlankLines(s))
	n.Text = s

	return n
}

// precedingBlankLines counts the whitespace-only lines before the first line
// with content.
func precedingBlankLines(s string) int {
	count := 0

	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			return count
		}

		count++
	}

	return 0
}
