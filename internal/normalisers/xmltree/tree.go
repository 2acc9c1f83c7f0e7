// Package xmltree parses XML documents into a minimal element tree.
//
// The tree keeps element names, attributes, child elements in document
// order and the character data directly inside each element. Comments,
// processing instructions and directives are dropped; CDATA counts as text.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// Element is one parsed XML element.
type Element struct {
	// Name is the local name, or "{namespace}local" for namespaced elements.
	Name string

	// Attrs are the element's attributes in document order.
	Attrs []Attr

	// Children are the child elements in document order.
	Children []*Element

	// Text is the concatenated character data directly inside the element.
	Text string

	// HasText is false when the element contains no character data at all,
	// as for <a/> or <a></a>.
	HasText bool
}

// Attr is one attribute.
type Attr struct {
	Name  string
	Value string
}

// Parse reads one XML document and returns its root element.
// Failures wrap domain.ErrParse.
func Parse(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: elementName(t.Name), Attrs: attrsOf(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: junk after document element <%s>", domain.ErrParse, root.Name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("%w: text outside document element", domain.ErrParse)
				}
				continue
			}
			el := stack[len(stack)-1]
			el.Text += string(t)
			el.HasText = true
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, domain.ErrEmptyDocument)
	}
	return root, nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(content []byte) (*Element, error) {
	return Parse(bytes.NewReader(content))
}

// Child returns the first immediate child named name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Iter returns every element named name in the subtree rooted at e,
// e included, in document order.
func (e *Element) Iter(name string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if el.Name == name {
			out = append(out, el)
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(e)
	return out
}

func elementName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

func attrsOf(in []xml.Attr) []Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(in))
	for _, a := range in {
		out = append(out, Attr{Name: attrName(a.Name), Value: a.Value})
	}
	return out
}

// attrName keeps namespace declarations in their source form.
func attrName(n xml.Name) string {
	switch {
	case n.Space == "" && n.Local == "xmlns":
		return "xmlns"
	case n.Space == "xmlns":
		return "xmlns:" + n.Local
	default:
		return elementName(n)
	}
}
