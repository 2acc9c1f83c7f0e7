package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/xmltree"
)

func newDiagnosticService() *DiagnosticService {
	return NewDiagnosticService(filesystem.New(), xmltree.NewInspector())
}

func TestDiagnosticService_MissingEligibility(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"trials0/NCT0000xxxx/NCT00000102.xml": trialXML("NCT00000102", eligibilityXML),
		"trials0/NCT0000xxxx/NCT00000103.xml": trialXML("NCT00000103", ""),
		"trials0/NCT0000xxxx/NCT00000104.xml": trialXML("NCT00000104", "<wrapper>"+eligibilityXML+"</wrapper>"),
		"trials1/NCT0001xxxx/NCT00010001.xml": "<clinical_study>",
	})

	report, err := newDiagnosticService().MissingEligibility(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, []string{
		filepath.Join(root, "trials0", "NCT0000xxxx", "NCT00000103.xml"),
		filepath.Join(root, "trials0", "NCT0000xxxx", "NCT00000104.xml"),
	}, report.Missing)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, domain.FailureParse, report.Failures[0].Kind)
	assert.Equal(t, filepath.Join(root, "trials1", "NCT0001xxxx", "NCT00010001.xml"), report.Failures[0].Path)
}

func TestDiagnosticService_MissingEligibility_NoneMissing(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"trials0/NCT0000xxxx/NCT00000102.xml": trialXML("NCT00000102", eligibilityXML),
	})

	report, err := newDiagnosticService().MissingEligibility(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Failures)
}

func TestDiagnosticService_MissingEligibility_MissingRoot(t *testing.T) {
	_, err := newDiagnosticService().MissingEligibility(context.Background(), filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}

func TestDiagnosticService_PathsForIDs(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"trials0/NCT0000xxxx/NCT00000102.xml": "",
		"trials0/NCT0000xxxx/NCT00000103.xml": "",
		"trials1/NCT0001xxxx/NCT00010001.xml": "",
	})

	paths, err := newDiagnosticService().PathsForIDs(context.Background(), root, []string{"NCT00010001", "NCT00000102", "NCT99999999"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "trials0", "NCT0000xxxx", "NCT00000102.xml"),
		filepath.Join(root, "trials1", "NCT0001xxxx", "NCT00010001.xml"),
	}, paths)
}

func TestDiagnosticService_PathsForIDs_RequiresIDs(t *testing.T) {
	_, err := newDiagnosticService().PathsForIDs(context.Background(), t.TempDir(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
