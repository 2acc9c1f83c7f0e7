package sqlite

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testReport(id string, started time.Time) *domain.RunReport {
	return &domain.RunReport{
		ID:              id,
		Mode:            domain.ModeTagged,
		Root:            "data/raw",
		Output:          "data/processed/data.json",
		StartedAt:       started,
		FinishedAt:      started.Add(3 * time.Second),
		FilesSeen:       4,
		Records:         3,
		MalformedFields: 2,
		Failures: []domain.FileFailure{
			{Path: "data/raw/t0/b/NCT1.xml", Kind: domain.FailureParse, Message: "unexpected EOF"},
			{Path: "data/raw/t0/locked", Kind: domain.FailureWalk, Message: "permission denied"},
		},
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Contains(t, store.Path(), dir)
	assert.FileExists(t, store.Path())
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.RunStore().Save(ctx, testReport("run-1", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.RunStore().Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Records)
}

func TestStore_Migrate_RecordsVersion(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	// A second pass applies nothing.
	require.NoError(t, store.migrate(fstest.MapFS{
		"001_runs.up.sql": &fstest.MapFile{Data: []byte("this is not sql")},
	}))
}

func TestStore_Migrate_AppliesNewVersion(t *testing.T) {
	store := setupTestStore(t)

	err := store.migrate(fstest.MapFS{
		"002_notes.up.sql":   &fstest.MapFile{Data: []byte("CREATE TABLE notes (id TEXT PRIMARY KEY);")},
		"002_notes.down.sql": &fstest.MapFile{Data: []byte("DROP TABLE notes;")},
		"README.md":          &fstest.MapFile{Data: []byte("ignored")},
	})
	require.NoError(t, err)

	_, err = store.db.Exec("INSERT INTO notes (id) VALUES ('a')")
	assert.NoError(t, err)
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	started := time.Now()

	require.NoError(t, runs.Save(ctx, testReport("run-1", started)))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, domain.ModeTagged, got.Mode)
	assert.Equal(t, "data/raw", got.Root)
	assert.Equal(t, "data/processed/data.json", got.Output)
	assert.Equal(t, started.Unix(), got.StartedAt.Unix())
	assert.Equal(t, started.Add(3*time.Second).Unix(), got.FinishedAt.Unix())
	assert.Equal(t, 4, got.FilesSeen)
	assert.Equal(t, 3, got.Records)
	assert.Equal(t, 2, got.MalformedFields)

	require.Len(t, got.Failures, 2)
	assert.Equal(t, domain.FailureParse, got.Failures[0].Kind)
	assert.Equal(t, "unexpected EOF", got.Failures[0].Message)
	assert.Equal(t, domain.FailureWalk, got.Failures[1].Kind)
}

func TestRunStore_Save_Replaces(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()

	report := testReport("run-1", time.Now())
	require.NoError(t, runs.Save(ctx, report))

	report.Records = 10
	report.Failures = report.Failures[:1]
	require.NoError(t, runs.Save(ctx, report))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Records)
	assert.Len(t, got.Failures, 1)
}

func TestRunStore_Save_Unfinished(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()

	report := testReport("run-1", time.Now())
	report.FinishedAt = time.Time{}
	report.Failures = nil
	require.NoError(t, runs.Save(ctx, report))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.True(t, got.FinishedAt.IsZero())
	assert.Empty(t, got.Failures)
}

func TestRunStore_Save_RequiresID(t *testing.T) {
	store := setupTestStore(t)
	err := store.RunStore().Save(context.Background(), &domain.RunReport{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.RunStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_List(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, runs.Save(ctx, testReport("old", base.Add(-2*time.Hour))))
	require.NoError(t, runs.Save(ctx, testReport("new", base)))
	require.NoError(t, runs.Save(ctx, testReport("mid", base.Add(-time.Hour))))

	all, err := runs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)
	assert.Len(t, all[0].Failures, 2)

	limited, err := runs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "new", limited[0].ID)
}

func TestRunStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)
	runs, err := store.RunStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
