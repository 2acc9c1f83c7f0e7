package driven

import (
	"context"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// RunStore persists conversion run reports.
type RunStore interface {
	// Save stores a run report and its failures.
	Save(ctx context.Context, report *domain.RunReport) error

	// Get retrieves a run report by ID.
	Get(ctx context.Context, id string) (*domain.RunReport, error)

	// List returns the most recent reports, newest first.
	// A limit of zero or less returns every report.
	List(ctx context.Context, limit int) ([]domain.RunReport, error)
}
