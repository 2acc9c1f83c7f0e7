package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.RunReport
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.RunReport),
	}
}

// Save stores or replaces a run report.
func (s *RunStore) Save(_ context.Context, report *domain.RunReport) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: run report needs an ID", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[report.ID] = copyReport(*report)
	return nil
}

// Get retrieves a run report by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyReport(report)
	return &out, nil
}

// List returns the most recent reports, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]domain.RunReport, 0, len(s.runs))
	for _, r := range s.runs {
		reports = append(reports, copyReport(r))
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].StartedAt.Equal(reports[j].StartedAt) {
			return reports[i].ID < reports[j].ID
		}
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func copyReport(r domain.RunReport) domain.RunReport {
	r.Failures = append([]domain.FileFailure(nil), r.Failures...)
	return r
}
