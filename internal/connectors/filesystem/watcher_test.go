package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsNewFile(t *testing.T) {
	root := makeCorpus(t, "trials0/NCT0000xxxx/NCT00000102.xml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewWatcher(20*time.Millisecond).Watch(ctx, root)
	require.NoError(t, err)

	path := filepath.Join(root, "trials0", "NCT0000xxxx", "NCT00000103.xml")
	require.NoError(t, os.WriteFile(path, []byte("<clinical_study/>"), 0644))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_NewBucket(t *testing.T) {
	root := makeCorpus(t, "trials0/NCT0000xxxx/NCT00000102.xml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewWatcher(20*time.Millisecond).Watch(ctx, root)
	require.NoError(t, err)

	bucket := filepath.Join(root, "trials0", "NCT0001xxxx")
	require.NoError(t, os.Mkdir(bucket, 0755))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for new bucket")
	}

	require.NoError(t, os.WriteFile(filepath.Join(bucket, "NCT00010001.xml"), []byte("<x/>"), 0644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported inside new bucket")
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := NewWatcher(0).Watch(ctx, root)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	_, err := NewWatcher(0).Watch(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
