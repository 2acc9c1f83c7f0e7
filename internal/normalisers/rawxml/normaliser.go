// Package rawxml converts whole XML documents into nested mappings.
//
// Full dumps use the common XML-to-dict layout: attributes become "@name"
// keys, repeated child names become sequences, text next to attributes or
// children is stored under "#text", text-only elements become their trimmed
// text and empty elements become null.
package rawxml

import (
	"context"
	"strings"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/xmltree"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser converts every document in full.
type Normaliser struct{}

// New creates a raw XML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Mode returns the conversion mode this normaliser implements.
func (n *Normaliser) Mode() domain.ConvertMode {
	return domain.ModeRaw
}

// Normalise converts raw into a record with a single field named after
// the root element.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Record, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	root, err := xmltree.ParseBytes(raw.Content)
	if err != nil {
		return nil, err
	}

	return &domain.Record{
		URI:    raw.URI,
		Fields: []domain.FieldResult{domain.Present(root.Name, Convert(root))},
	}, nil
}

// Convert returns the value of one element: nil, a string or a *domain.Mapping.
func Convert(el *xmltree.Element) any {
	var item *domain.Mapping
	if len(el.Attrs) > 0 || len(el.Children) > 0 {
		item = domain.NewMapping()
		for _, a := range el.Attrs {
			item.Set(attrPrefix+a.Name, a.Value)
		}
		for _, c := range el.Children {
			push(item, c.Name, Convert(c))
		}
	}

	data := strings.TrimSpace(el.Text)
	if item == nil {
		if data == "" {
			return nil
		}
		return data
	}
	if data != "" {
		item.Set(textKey, data)
	}
	return item
}

// push adds a child value, turning a repeated name into a sequence.
func push(m *domain.Mapping, key string, value any) {
	existing, ok := m.Get(key)
	if !ok {
		m.Set(key, value)
		return
	}
	if list, isList := existing.([]any); isList {
		m.Set(key, append(list, value))
		return
	}
	m.Set(key, []any{existing, value})
}
