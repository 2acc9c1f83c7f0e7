package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

const selectRun = `
	SELECT id, mode, root, output, started_at, finished_at, files_seen, records, malformed_fields
	FROM runs`

// Save stores or replaces a run report and its failures.
// Times are stored in UTC so that started_at sorts chronologically.
func (s *runStore) Save(ctx context.Context, report *domain.RunReport) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: run report needs an ID", domain.ErrInvalidInput)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var finishedAt sql.NullTime
	if !report.FinishedAt.IsZero() {
		finishedAt = sql.NullTime{Time: report.FinishedAt.UTC(), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, mode, root, output, started_at, finished_at, files_seen, records, malformed_fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mode = excluded.mode,
			root = excluded.root,
			output = excluded.output,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			files_seen = excluded.files_seen,
			records = excluded.records,
			malformed_fields = excluded.malformed_fields
	`, report.ID, string(report.Mode), report.Root, report.Output, report.StartedAt.UTC(), finishedAt,
		report.FilesSeen, report.Records, report.MalformedFields)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_failures WHERE run_id = ?", report.ID); err != nil {
		return fmt.Errorf("clearing run failures: %w", err)
	}

	for i, f := range report.Failures {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_failures (run_id, seq, path, kind, message) VALUES (?, ?, ?, ?, ?)
		`, report.ID, i, f.Path, string(f.Kind), f.Message)
		if err != nil {
			return fmt.Errorf("saving run failure: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run report by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.RunReport, error) {
	row := s.store.db.QueryRowContext(ctx, selectRun+" WHERE id = ?", id)

	report, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	if err := s.loadFailures(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List returns the most recent run reports, newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.RunReport, error) {
	query := selectRun + " ORDER BY started_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var reports []domain.RunReport //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range reports {
		if err := s.loadFailures(ctx, &reports[i]); err != nil {
			return nil, err
		}
	}

	return reports, nil
}

func (s *runStore) loadFailures(ctx context.Context, report *domain.RunReport) error {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT path, kind, message FROM run_failures WHERE run_id = ? ORDER BY seq
	`, report.ID)
	if err != nil {
		return fmt.Errorf("querying run failures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.FileFailure
		var kind string
		if err := rows.Scan(&f.Path, &kind, &f.Message); err != nil {
			return fmt.Errorf("scanning run failure: %w", err)
		}
		f.Kind = domain.FailureKind(kind)
		report.Failures = append(report.Failures, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating run failures: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.RunReport, error) {
	var report domain.RunReport
	var mode string
	var startedAt, finishedAt sql.NullTime

	err := row.Scan(&report.ID, &mode, &report.Root, &report.Output, &startedAt, &finishedAt,
		&report.FilesSeen, &report.Records, &report.MalformedFields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	report.Mode = domain.ConvertMode(mode)
	if startedAt.Valid {
		report.StartedAt = startedAt.Time
	}
	if finishedAt.Valid {
		report.FinishedAt = finishedAt.Time
	}
	return &report, nil
}
