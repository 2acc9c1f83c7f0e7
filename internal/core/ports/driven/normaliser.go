package driven

import (
	"context"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// Normaliser transforms one raw XML document into a record.
// Each normaliser implements one conversion mode.
type Normaliser interface {
	// Mode returns the conversion mode this normaliser implements.
	Mode() domain.ConvertMode

	// Normalise parses raw and extracts its record.
	// A document that is not well-formed returns an error wrapping domain.ErrParse.
	// Field-level failures are reported in the record, not as an error.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Record, error)
}

// DocumentInspector answers structural questions about a document.
type DocumentInspector interface {
	// HasRootChild reports whether the root element has an immediate child
	// element with the given name. Deeper descendants do not count.
	HasRootChild(raw *domain.RawDocument, name string) (bool, error)
}
