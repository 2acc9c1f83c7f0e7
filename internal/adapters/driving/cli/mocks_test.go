package cli

import (
	"context"
	"errors"
	"time"

	"github.com/Hazot/trec-clinical-trials-2023/internal/adapters/driven/storage/memory"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/services"
)

var errMock = errors.New("mock failure")

// mockConversionService records requests and returns a fixed report.
type mockConversionService struct {
	requests []driving.ConvertRequest
	err      error
}

func (m *mockConversionService) Convert(_ context.Context, req driving.ConvertRequest) (*domain.RunReport, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if req.Progress != nil {
		req.Progress(1, 1)
	}
	started := time.Date(2023, 5, 8, 12, 0, 0, 0, time.UTC)
	return &domain.RunReport{
		ID:              "run-1",
		Mode:            req.Mode,
		Root:            req.Root,
		Output:          req.Output,
		StartedAt:       started,
		FinishedAt:      started.Add(2 * time.Second),
		FilesSeen:       3,
		Records:         2,
		MalformedFields: 1,
		Failures: []domain.FileFailure{
			{Path: "bad.xml", Kind: domain.FailureParse, Message: "unexpected EOF"},
		},
	}, nil
}

// mockDiagnosticService returns fixed results.
type mockDiagnosticService struct {
	roots []string
	ids   []string
	err   error
}

func (m *mockDiagnosticService) MissingEligibility(_ context.Context, root string) (*driving.EligibilityReport, error) {
	m.roots = append(m.roots, root)
	if m.err != nil {
		return nil, m.err
	}
	return &driving.EligibilityReport{
		Checked: 2,
		Missing: []string{"/c/t0/b/NCT2.xml"},
		Failures: []domain.FileFailure{
			{Path: "/c/t0/b/NCT3.xml", Kind: domain.FailureParse, Message: "syntax error"},
		},
	}, nil
}

func (m *mockDiagnosticService) PathsForIDs(_ context.Context, root string, ids []string) ([]string, error) {
	m.roots = append(m.roots, root)
	m.ids = ids
	if m.err != nil {
		return nil, m.err
	}
	return []string{"/c/t0/b/" + ids[0] + ".xml"}, nil
}

// testServices holds the services installed by setupTestServices.
type testServices struct {
	conversion *mockConversionService
	diagnostic *mockDiagnosticService
	runs       *memory.RunStore
	config     *memory.ConfigStore
}

// setupTestServices installs mock and in-memory services and returns a
// cleanup function restoring the previous ones and flag values.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		conversion: &mockConversionService{},
		diagnostic: &mockDiagnosticService{},
		runs:       memory.NewRunStore(),
		config:     memory.NewConfigStore(),
	}

	origConversion := conversionService
	origDiagnostic := diagnosticService
	origRuns := runService
	origSettings := settingsService
	origWatcher := corpusWatcher

	conversionService = ts.conversion
	diagnosticService = ts.diagnostic
	runService = services.NewRunService(ts.runs)
	settingsService = services.NewSettingsService(ts.config)
	corpusWatcher = nil

	return ts, func() {
		conversionService = origConversion
		diagnosticService = origDiagnostic
		runService = origRuns
		settingsService = origSettings
		corpusWatcher = origWatcher
		resetFlags()
	}
}

func resetFlags() {
	convertOutput = ""
	convertIDs = nil
	convertIDsFile = ""
	convertColumns = nil
	convertWatch = false
	rawOutput = ""
	pathsIDs = nil
	pathsIDsFile = ""
	runsLimit = 20
	verbosity = 0
	configDir = ""
}
