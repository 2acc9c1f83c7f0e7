package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func trialXML(id string, extra string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<clinical_study>
  <id_info><nct_id>` + id + `</nct_id></id_info>
  <brief_title>Trial ` + id + `</brief_title>
  ` + extra + `
</clinical_study>`
}

const eligibilityXML = `<eligibility>
    <criteria><textblock>Inclusion Criteria: - adults</textblock></criteria>
    <gender>All</gender>
  </eligibility>`

// writeCorpus creates files (slash-separated path -> content) under a temp root.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}
