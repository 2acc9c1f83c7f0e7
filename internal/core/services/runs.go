package services

import (
	"context"
	"fmt"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// RunService reads back recorded conversion runs.
type RunService struct {
	store driven.RunStore
}

// NewRunService creates a run service. A nil store means history is disabled.
func NewRunService(store driven.RunStore) *RunService {
	return &RunService{store: store}
}

// List returns the most recent runs, newest first.
func (s *RunService) List(ctx context.Context, limit int) ([]domain.RunReport, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

// Get returns one run by ID.
func (s *RunService) Get(ctx context.Context, id string) (*domain.RunReport, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: run ID is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, fmt.Errorf("get run %s: %w", id, domain.ErrNotFound)
	}
	return s.store.Get(ctx, id)
}
