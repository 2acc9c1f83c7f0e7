package xmltree

import (
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.DocumentInspector = (*Inspector)(nil)

// Inspector answers structural questions by parsing the document.
type Inspector struct{}

// NewInspector creates a new inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// HasRootChild reports whether the document root has an immediate child named name.
func (i *Inspector) HasRootChild(raw *domain.RawDocument, name string) (bool, error) {
	if raw == nil {
		return false, domain.ErrInvalidInput
	}
	root, err := ParseBytes(raw.Content)
	if err != nil {
		return false, err
	}
	return root.Child(name) != nil, nil
}
