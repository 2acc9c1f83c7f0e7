// Package trial flattens clinical trial XML records into tag set records.
package trial

import (
	"context"
	"fmt"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/xmltree"
)

// textblockTag wraps free text one level below the element that owns it.
const textblockTag = "textblock"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser extracts a fixed tag set from each document.
type Normaliser struct {
	tags domain.TagSet
}

// New creates a tag set normaliser. An empty tag set selects the default one.
func New(tags domain.TagSet) *Normaliser {
	if len(tags) == 0 {
		tags = domain.DefaultTagSet()
	}
	return &Normaliser{tags: tags}
}

// Mode returns the conversion mode this normaliser implements.
func (n *Normaliser) Mode() domain.ConvertMode {
	return domain.ModeTagged
}

// Tags returns the tag set extracted from each document.
func (n *Normaliser) Tags() domain.TagSet {
	return n.tags
}

// Normalise parses raw and extracts one field per tag.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Record, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	root, err := xmltree.ParseBytes(raw.Content)
	if err != nil {
		return nil, err
	}

	return n.Extract(raw.URI, root), nil
}

// Extract builds the record for an already parsed document.
func (n *Normaliser) Extract(uri string, root *xmltree.Element) *domain.Record {
	rec := &domain.Record{
		URI:    uri,
		Fields: make([]domain.FieldResult, 0, len(n.tags)),
	}

	for _, tag := range n.tags {
		field := ExtractField(root, tag)
		if field.Status == domain.FieldMalformed {
			logger.Debug("%s: field %s suppressed: %v", uri, tag, field.Err)
		}
		rec.Fields = append(rec.Fields, field)
	}

	return rec
}

// ExtractField finds every element named tag anywhere under root, root
// included. No match is absent, one match yields its content, several
// matches yield their contents in document order. If any match fails the
// whole field is malformed.
func ExtractField(root *xmltree.Element, tag string) domain.FieldResult {
	matches := root.Iter(tag)
	if len(matches) == 0 {
		return domain.Absent(tag)
	}

	values := make([]any, 0, len(matches))
	for _, el := range matches {
		v, err := ExtractContent(el)
		if err != nil {
			return domain.Malformed(tag, err)
		}
		values = append(values, v)
	}

	if len(values) == 1 {
		return domain.Present(tag, values[0])
	}
	return domain.Present(tag, values)
}

// ExtractContent converts one element into a string or a *domain.Mapping.
//
// An element with children becomes a mapping of child name to content; a
// repeated child name keeps its first position and its last value. A mapping
// holding a textblock key is replaced by that key's value. A leaf becomes its
// normalised text; a leaf without any text is an error.
func ExtractContent(el *xmltree.Element) (any, error) {
	if len(el.Children) > 0 {
		content := domain.NewMapping()
		for _, child := range el.Children {
			v, err := ExtractContent(child)
			if err != nil {
				return nil, fmt.Errorf("%s/%w", el.Name, err)
			}
			content.Set(child.Name, v)
		}
		if v, ok := content.Get(textblockTag); ok {
			return v, nil
		}
		return content, nil
	}

	if !el.HasText {
		return nil, fmt.Errorf("%s: %w", el.Name, domain.ErrEmptyLeaf)
	}
	return NormaliseText(el.Text), nil
}
