package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// Colour palette for terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED") // Purple
	colourMuted   = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess = lipgloss.Color("#A6E3A1") // Green
	colourWarning = lipgloss.Color("#F9E2AF") // Yellow
	colourError   = lipgloss.Color("#F38BA8") // Red
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	labelStyle   = lipgloss.NewStyle().Foreground(colourMuted).Width(12)
	successStyle = lipgloss.NewStyle().Foreground(colourSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colourWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colourError)
)

// maxListedFailures caps the failures printed under a run summary.
const maxListedFailures = 10

// failureKinds is the order failure counts are listed in.
var failureKinds = []domain.FailureKind{
	domain.FailureWalk,
	domain.FailureOpen,
	domain.FailureRead,
	domain.FailureParse,
}

func field(label, value string) string {
	return "  " + labelStyle.Render(label+":") + " " + value + "\n"
}

// renderReport formats a run summary. With all set every failure is listed.
func renderReport(title string, report *domain.RunReport, all bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(field("Run", report.ID))
	b.WriteString(field("Mode", report.Mode.String()))
	b.WriteString(field("Root", report.Root))
	if report.Output != "" {
		b.WriteString(field("Output", report.Output))
	}
	b.WriteString(field("Started", report.StartedAt.Format("2006-01-02 15:04:05")))
	if d := report.Duration(); d > 0 {
		b.WriteString(field("Duration", d.Round(10*time.Millisecond).String()))
	}
	b.WriteString(field("Files", fmt.Sprintf("%d", report.FilesSeen)))
	b.WriteString(field("Records", successStyle.Render(fmt.Sprintf("%d", report.Records))))

	malformed := fmt.Sprintf("%d fields", report.MalformedFields)
	if report.MalformedFields > 0 {
		malformed = warningStyle.Render(malformed)
	}
	b.WriteString(field("Malformed", malformed))

	b.WriteString(field("Failures", failureSummary(report)))

	limit := maxListedFailures
	if all {
		limit = len(report.Failures)
	}
	for i, f := range report.Failures {
		if i == limit {
			b.WriteString(fmt.Sprintf("    ... and %d more (trecct runs show %s)\n", len(report.Failures)-limit, report.ID))
			break
		}
		b.WriteString(fmt.Sprintf("    %s %s: %s\n", errorStyle.Render("["+string(f.Kind)+"]"), f.Path, f.Message))
	}

	return b.String()
}

func failureSummary(report *domain.RunReport) string {
	if len(report.Failures) == 0 {
		return "0"
	}
	var parts []string
	for _, kind := range failureKinds {
		if n := report.FailureCount(kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", kind, n))
		}
	}
	return errorStyle.Render(fmt.Sprintf("%d", len(report.Failures))) + " (" + strings.Join(parts, ", ") + ")"
}
