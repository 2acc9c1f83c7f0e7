// Package filesystem discovers trial documents in a local corpus tree.
//
// A corpus is laid out as root/<split>/<bucket>/<file>, for example
// ClinicalTrials.2023-05-08.trials0/NCT0000xxxx/NCT00000102.xml under the
// root. Entries are visited in lexicographic order at every level so row
// order is reproducible across runs and platforms.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

// Directory levels above the files.
const (
	corpusDepth = 3
	splitDepth  = 2
)

// Ensure Walker implements the interface.
var _ driven.CorpusSource = (*Walker)(nil)

// Walker lists corpus files.
type Walker struct {
	includeHidden bool
	exclude       *ignore.GitIgnore
}

// Option configures a Walker.
type Option func(*Walker)

// WithHidden keeps entries whose name starts with a dot.
func WithHidden(include bool) Option {
	return func(w *Walker) {
		w.includeHidden = include
	}
}

// WithExclude skips entries matching gitignore-style patterns, evaluated
// against the slash-separated path relative to the walk root.
func WithExclude(patterns ...string) Option {
	return func(w *Walker) {
		if len(patterns) == 0 {
			w.exclude = nil
			return
		}
		w.exclude = ignore.CompileIgnoreLines(patterns...)
	}
}

// New creates a corpus walker.
func New(opts ...Option) *Walker {
	w := &Walker{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk lists every file at root/<split>/<bucket>/<file>.
func (w *Walker) Walk(ctx context.Context, root string) (*driven.Listing, error) {
	return w.walk(ctx, root, corpusDepth)
}

// WalkSplit lists every file at split/<bucket>/<file>.
func (w *Walker) WalkSplit(ctx context.Context, split string) (*driven.Listing, error) {
	return w.walk(ctx, split, splitDepth)
}

func (w *Walker) walk(ctx context.Context, root string, depth int) (*driven.Listing, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, root)
	}

	listing := &driven.Listing{}
	if err := w.descend(ctx, root, "", depth, listing); err != nil {
		return nil, err
	}

	logger.Info("Discovered %d files under %s", len(listing.Paths), root)
	return listing, nil
}

// descend lists dir. With remaining > 1 it recurses into subdirectories,
// otherwise it collects regular files.
func (w *Walker) descend(ctx context.Context, dir, rel string, remaining int, listing *driven.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if rel == "" {
			return fmt.Errorf("reading corpus root: %w", err)
		}
		logger.Warn("Skipping unreadable directory %s: %v", dir, err)
		listing.Failures = append(listing.Failures, domain.FileFailure{
			Path:    dir,
			Kind:    domain.FailureWalk,
			Message: err.Error(),
		})
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if !w.includeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)
		childRel := path.Join(rel, name)
		isDir, isFile := classify(full, entry)

		if remaining > 1 {
			if !isDir || w.excluded(childRel+"/") {
				continue
			}
			if err := w.descend(ctx, full, childRel, remaining-1, listing); err != nil {
				return err
			}
			continue
		}

		if !isFile || w.excluded(childRel) {
			continue
		}
		listing.Paths = append(listing.Paths, full)
	}

	return nil
}

func (w *Walker) excluded(rel string) bool {
	return w.exclude != nil && w.exclude.MatchesPath(rel)
}

// classify reports whether entry is a directory or a regular file,
// following symbolic links.
func classify(full string, entry fs.DirEntry) (isDir, isFile bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(full)
		if err != nil {
			return false, false
		}
		return info.IsDir(), info.Mode().IsRegular()
	}
	return entry.IsDir(), entry.Type().IsRegular()
}
