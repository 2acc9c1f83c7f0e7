package services

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
	"github.com/Hazot/trec-clinical-trials-2023/internal/corpus"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService turns a corpus of XML files into one JSON table.
type ConversionService struct {
	source      driven.CorpusSource
	runStore    driven.RunStore
	normalisers map[domain.ConvertMode]driven.Normaliser
	now         func() time.Time
}

// NewConversionService creates a conversion service.
// runStore is optional - if nil, runs are not recorded.
func NewConversionService(
	source driven.CorpusSource,
	runStore driven.RunStore,
	normalisers ...driven.Normaliser,
) *ConversionService {
	byMode := make(map[domain.ConvertMode]driven.Normaliser, len(normalisers))
	for _, n := range normalisers {
		byMode[n.Mode()] = n
	}
	return &ConversionService{
		source:      source,
		runStore:    runStore,
		normalisers: byMode,
		now:         time.Now,
	}
}

// Convert walks the corpus, flattens every file and writes the table once.
//
//nolint:gocyclo // Sequential pipeline steps
func (s *ConversionService) Convert(ctx context.Context, req driving.ConvertRequest) (*domain.RunReport, error) {
	if req.Mode == "" {
		req.Mode = domain.ModeTagged
	}
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, req.Mode)
	}
	if req.Root == "" {
		return nil, fmt.Errorf("%w: corpus root is required", domain.ErrInvalidInput)
	}
	if req.Output == "" {
		return nil, fmt.Errorf("%w: output path is required", domain.ErrInvalidInput)
	}

	normaliser, ok := s.normalisers[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for mode %s", domain.ErrUnsupportedType, req.Mode)
	}

	report := &domain.RunReport{
		ID:        uuid.New().String(),
		Mode:      req.Mode,
		Root:      req.Root,
		Output:    req.Output,
		StartedAt: s.now(),
	}

	// 1. Discover files
	var listing *driven.Listing
	var err error
	if req.Mode == domain.ModeRaw {
		listing, err = s.source.WalkSplit(ctx, req.Root)
	} else {
		listing, err = s.source.Walk(ctx, req.Root)
	}
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}
	report.Failures = append(report.Failures, listing.Failures...)

	paths := listing.Paths
	if len(req.IDs) > 0 {
		paths = domain.FilterByIDs(paths, req.IDs)
		logger.Info("Selected %d of %d files by NCT ID", len(paths), len(listing.Paths))
	}
	report.FilesSeen = len(paths)

	// 2. Flatten each file in walk order
	table := corpus.NewTable()
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rec := s.flatten(ctx, normaliser, path, report); rec != nil {
			report.MalformedFields += len(rec.MalformedTags())
			table.AppendRecord(rec)
		}

		if req.Progress != nil {
			req.Progress(i+1, len(paths))
		}
	}

	// 3. Narrow to the requested columns
	if len(req.Columns) > 0 {
		table, err = table.Project(req.Columns...)
		if err != nil {
			return nil, err
		}
	}

	// 4. Write the table
	if err := writeTable(req.Output, table); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	report.Records = table.Len()
	report.FinishedAt = s.now()

	logger.Info("Wrote %d records to %s (%d failures, %d malformed fields)",
		report.Records, report.Output, len(report.Failures), report.MalformedFields)

	// 5. Record the run
	if s.runStore != nil {
		if err := s.runStore.Save(ctx, report); err != nil {
			logger.Warn("Failed to record run %s: %v", report.ID, err)
		}
	}

	return report, nil
}

// flatten loads and normalises one file. Failures are added to report and
// yield a nil record.
func (s *ConversionService) flatten(
	ctx context.Context,
	normaliser driven.Normaliser,
	path string,
	report *domain.RunReport,
) *domain.Record {
	raw, kind, err := readDocument(path)
	if err != nil {
		logger.Warn("Skipping %s: %v", path, err)
		report.AddFailure(path, kind, err)
		return nil
	}

	rec, err := normaliser.Normalise(ctx, raw)
	if err != nil {
		logger.Warn("Skipping %s: %v", path, err)
		report.AddFailure(path, domain.FailureParse, err)
		return nil
	}

	return rec
}

// writeTable writes table to path, creating parent directories.
func writeTable(path string, table *corpus.Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := table.WriteJSON(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
