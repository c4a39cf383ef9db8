package parser

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// element is a minimal DOM node. text is the character data before the first
// child and tail the character data after the element's end tag, up to the
// next sibling or the parent's end tag.
type element struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*element
	text     string
	tail     string
	line     int
	textLine int
	tailLine int
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

func (e *element) child(local string) *element {
	for _, c := range e.children {
		if c.name.Local == local {
			return c
		}
	}

	return nil
}

// readDocument decodes markup into an element tree and returns the root.
func readDocument(markup string) (*element, error) {
	d := xml.NewDecoder(strings.NewReader(markup))

	var (
		root  *element
		stack []*element
	)

	for {
		line, _ := d.InputPos()

		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			errLine, _ := d.InputPos()
			return nil, &MalformedMarkupError{Line: errLine, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name, attrs: t.Copy().Attr, line: line}

			if len(stack) == 0 {
				if root != nil {
					return nil, &MalformedMarkupError{Line: line, Reason: "multiple root elements"}
				}

				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}

			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				// Text after the root's end tag becomes the root's tail.
				if root != nil {
					appendText(&root.tail, &root.tailLine, string(t), line)
				}

				continue
			}

			top := stack[len(stack)-1]
			if len(top.children) == 0 {
				appendText(&top.text, &top.textLine, string(t), line)
			} else {
				last := top.children[len(top.children)-1]
				appendText(&last.tail, &last.tailLine, string(t), line)
			}
		}
	}

	if root == nil {
		return nil, &MalformedMarkupError{Reason: "no root element"}
	}

	return root, nil
}

func appendText(dst *string, dstLine *int, s string, line int) {
	if *dst == "" {
		*dstLine = line
	}

	*dst += s
}
