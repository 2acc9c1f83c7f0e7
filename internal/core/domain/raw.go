package domain

import (
	"path/filepath"
	"strings"
)

// RawDocument represents the bytes of one corpus file.
// It is the walker's output before flattening.
type RawDocument struct {
	// URI is the file path the bytes were read from.
	URI string

	// Content is the raw XML.
	Content []byte
}

// NCTID returns the trial identifier encoded in the file name,
// e.g. "NCT00000102" for ".../NCT0000xxxx/NCT00000102.xml".
func (r RawDocument) NCTID() string {
	return StemOf(r.URI)
}

// StemOf returns the base name of path without its extension.
func StemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FilterByIDs keeps the paths whose file stem is one of ids, in their
// original order. Surrounding whitespace in ids is ignored.
func FilterByIDs(paths, ids []string) []string {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = struct{}{}
		}
	}

	var out []string
	for _, p := range paths {
		if _, ok := wanted[StemOf(p)]; ok {
			out = append(out, p)
		}
	}
	return out
}
