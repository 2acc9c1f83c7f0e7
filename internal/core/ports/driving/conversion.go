package driving

import (
	"context"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// ProgressFunc is called after each file is processed.
type ProgressFunc func(done, total int)

// ConvertRequest describes one corpus conversion.
type ConvertRequest struct {
	// Mode selects tagged extraction or full raw conversion.
	Mode domain.ConvertMode

	// Root is the corpus root (tagged) or a single split directory (raw).
	Root string

	// Output is the JSON file to write.
	Output string

	// IDs restricts the conversion to files named after these NCT IDs.
	IDs []string

	// Columns restricts the written table to these columns.
	Columns []string

	// Progress is optional.
	Progress ProgressFunc
}

// ConversionService converts a corpus of trial XML files into one JSON table.
type ConversionService interface {
	// Convert walks the corpus, flattens every file and writes the table.
	// File-level failures are recorded in the report and never abort the run.
	Convert(ctx context.Context, req ConvertRequest) (*domain.RunReport, error)
}

// EligibilityReport is the result of the eligibility diagnostic.
type EligibilityReport struct {
	// Checked is the number of files parsed.
	Checked int

	// Missing lists files whose root has no immediate eligibility child, sorted.
	Missing []string

	// Failures lists files that could not be read or parsed.
	Failures []domain.FileFailure
}

// DiagnosticService runs read-only data-quality checks over a corpus.
type DiagnosticService interface {
	// MissingEligibility finds files whose root lacks an immediate eligibility element.
	MissingEligibility(ctx context.Context, root string) (*EligibilityReport, error)

	// PathsForIDs returns the corpus files named after the given NCT IDs.
	PathsForIDs(ctx context.Context, root string, ids []string) ([]string, error)
}

// RunService reads back the run history.
type RunService interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.RunReport, error)

	// Get returns one run by ID.
	Get(ctx context.Context, id string) (*domain.RunReport, error)
}
