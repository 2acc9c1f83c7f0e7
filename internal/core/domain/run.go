package domain

import "time"

// ConvertMode selects how corpus documents are turned into table rows.
type ConvertMode string

// Available conversion modes.
const (
	// ModeTagged extracts the configured tag set from every document.
	ModeTagged ConvertMode = "tagged"

	// ModeRaw converts every document in full, attributes included.
	ModeRaw ConvertMode = "raw"
)

// IsValid returns true if the mode is recognised.
func (m ConvertMode) IsValid() bool {
	return m == ModeTagged || m == ModeRaw
}

// String returns the string representation.
func (m ConvertMode) String() string {
	return string(m)
}

// FailureKind classifies a file-level failure.
type FailureKind string

// File-level failure kinds.
const (
	// FailureWalk indicates a corpus directory could not be listed.
	FailureWalk FailureKind = "walk"

	// FailureOpen indicates a file could not be opened.
	FailureOpen FailureKind = "open"

	// FailureRead indicates a file could not be read.
	FailureRead FailureKind = "read"

	// FailureParse indicates a file is not well-formed XML.
	FailureParse FailureKind = "parse"
)

// FileFailure records one file excluded from a run.
type FileFailure struct {
	Path    string
	Kind    FailureKind
	Message string
}

// RunReport is the outcome of one corpus conversion.
type RunReport struct {
	// ID is the unique identifier for the run.
	ID string

	// Mode is the conversion mode used.
	Mode ConvertMode

	// Root is the corpus directory that was walked.
	Root string

	// Output is the JSON file written, empty for diagnostics.
	Output string

	StartedAt  time.Time
	FinishedAt time.Time

	// FilesSeen is the number of files discovered by the walk.
	FilesSeen int

	// Records is the number of rows written to the output.
	Records int

	// MalformedFields is the number of fields suppressed to null.
	MalformedFields int

	// Failures lists every file excluded from the output.
	Failures []FileFailure
}

// Duration returns how long the run took.
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// FailureCount returns the number of failures of the given kind.
func (r *RunReport) FailureCount(kind FailureKind) int {
	n := 0
	for _, f := range r.Failures {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// AddFailure records a file-level failure.
func (r *RunReport) AddFailure(path string, kind FailureKind, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	r.Failures = append(r.Failures, FileFailure{Path: path, Kind: kind, Message: msg})
}
