package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

// eligibilityTag is the element every trial record is expected to carry
// directly under its root.
const eligibilityTag = "eligibility"

// Ensure DiagnosticService implements the interface.
var _ driving.DiagnosticService = (*DiagnosticService)(nil)

// DiagnosticService runs read-only checks over a corpus.
type DiagnosticService struct {
	source    driven.CorpusSource
	inspector driven.DocumentInspector
}

// NewDiagnosticService creates a diagnostic service.
func NewDiagnosticService(source driven.CorpusSource, inspector driven.DocumentInspector) *DiagnosticService {
	return &DiagnosticService{
		source:    source,
		inspector: inspector,
	}
}

// MissingEligibility lists the files whose root has no immediate
// eligibility child. Files that cannot be read or parsed are reported as
// failures, not as missing.
func (s *DiagnosticService) MissingEligibility(ctx context.Context, root string) (*driving.EligibilityReport, error) {
	listing, err := s.source.Walk(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}

	report := &driving.EligibilityReport{
		Failures: append([]domain.FileFailure(nil), listing.Failures...),
	}

	for _, path := range listing.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, kind, err := readDocument(path)
		if err != nil {
			report.Failures = append(report.Failures, domain.FileFailure{Path: path, Kind: kind, Message: err.Error()})
			continue
		}

		ok, err := s.inspector.HasRootChild(raw, eligibilityTag)
		if err != nil {
			report.Failures = append(report.Failures, domain.FileFailure{
				Path:    path,
				Kind:    domain.FailureParse,
				Message: err.Error(),
			})
			continue
		}

		report.Checked++
		if !ok {
			logger.Debug("no %s element: %s", eligibilityTag, path)
			report.Missing = append(report.Missing, path)
		}
	}

	sort.Strings(report.Missing)
	return report, nil
}

// PathsForIDs returns the corpus files named after ids, in walk order.
func (s *DiagnosticService) PathsForIDs(ctx context.Context, root string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one NCT ID is required", domain.ErrInvalidInput)
	}

	listing, err := s.source.Walk(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}
	for _, f := range listing.Failures {
		logger.Warn("Skipped %s: %s", f.Path, f.Message)
	}

	return domain.FilterByIDs(listing.Paths, ids), nil
}
