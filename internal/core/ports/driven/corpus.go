package driven

import (
	"context"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// CorpusSource discovers document files in a corpus directory tree.
type CorpusSource interface {
	// Walk lists every file at root/<split>/<bucket>/<file>.
	// Paths are returned in lexicographic order of their components.
	Walk(ctx context.Context, root string) (*Listing, error)

	// WalkSplit lists every file at split/<bucket>/<file>.
	WalkSplit(ctx context.Context, split string) (*Listing, error)
}

// Listing is the result of a corpus walk.
type Listing struct {
	// Paths are the discovered files in walk order.
	Paths []string

	// Failures are directories that could not be listed and were skipped.
	Failures []domain.FileFailure
}

// CorpusWatcher reports changes to a corpus tree.
type CorpusWatcher interface {
	// Watch sends a value each time files under root change.
	// Bursts of events are coalesced. The channel closes when ctx is done.
	Watch(ctx context.Context, root string) (<-chan struct{}, error)
}
