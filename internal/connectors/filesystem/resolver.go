package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath converts a user-supplied location to a local path.
// Handles file:// URIs and a leading "~/".
func ResolvePath(uri string) string {
	p := strings.TrimPrefix(uri, "file://")

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	return p
}
