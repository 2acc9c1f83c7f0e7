package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

// DefaultDebounce is the quiet period before a burst of events is reported.
const DefaultDebounce = 500 * time.Millisecond

// Ensure Watcher implements the interface.
var _ driven.CorpusWatcher = (*Watcher)(nil)

// Watcher reports changes to a corpus tree using fsnotify.
type Watcher struct {
	debounce time.Duration
}

// NewWatcher creates a watcher. A non-positive debounce uses DefaultDebounce.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch registers root and its split and bucket directories.
// Directories created later are registered as they appear.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := addTree(fw, root, corpusDepth-1); err != nil {
		_ = fw.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(fw, ev.Name, 1); err != nil {
						logger.Warn("Cannot watch %s: %v", ev.Name, err)
					}
				}
			}
			logger.Debug("watch event: %s", ev)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)

		case <-timer.C:
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
}

// addTree watches dir and its subdirectories down to depth levels.
func addTree(fw *fsnotify.Watcher, dir string, depth int) error {
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if depth == 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if err := addTree(fw, filepath.Join(dir, entry.Name()), depth-1); err != nil {
			return err
		}
	}
	return nil
}
