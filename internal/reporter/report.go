package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"squall/pkg/squall/core"
)

// Report is the structured export of one suite run, suitable for archiving
// next to CI logs.
type Report struct {
	RunID       string           `json:"runId"`
	Suite       string           `json:"suite"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Scenarios   []ScenarioReport `json:"scenarios"`
	Totals      ReportTotals     `json:"totals"`
}

type ScenarioReport struct {
	Name       string       `json:"name"`
	Status     string       `json:"status"`
	DurationMs float64      `json:"durationMs"`
	Total      int          `json:"total"`
	Passed     []CaseReport `json:"passed,omitempty"`
	Failed     []CaseReport `json:"failed,omitempty"`
	Errored    []CaseReport `json:"errored,omitempty"`
	Skipped    []CaseReport `json:"skipped,omitempty"`
}

type CaseReport struct {
	Label      string  `json:"label"`
	DurationMs float64 `json:"durationMs"`
	Message    string  `json:"message,omitempty"`
}

type ReportTotals struct {
	Scenarios int `json:"scenarios"`
	Cases     int `json:"cases"`
	Passed    int `json:"passed"`
	Failed    int `json:"failed"`
	Errored   int `json:"errored"`
	Skipped   int `json:"skipped"`
}

// ResultSource is the slice of the suite surface the report needs: a name
// and the read-only per-scenario results.
type ResultSource interface {
	core.Named
	Results(name string) core.ScenarioResult
}

// BuildReport assembles the report for the given scenarios from the suite's
// read-only result API.
func BuildReport(source ResultSource, scenarios []string) *Report {
	report := &Report{
		RunID:       uuid.NewString(),
		Suite:       source.Name(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, name := range scenarios {
		res := source.Results(name)
		scenario := ScenarioReport{
			Name:       name,
			Status:     StatusOf(res).String(),
			DurationMs: durationMs(res.TotalDuration()),
			Total:      res.TotalCount(),
			Passed:     caseReports(res.Passed()),
			Failed:     caseReports(res.Failed()),
			Errored:    caseReports(res.Errored()),
			Skipped:    caseReports(res.Skipped()),
		}

		report.Scenarios = append(report.Scenarios, scenario)
		report.Totals.Scenarios++
		report.Totals.Cases += res.TotalCount()
		report.Totals.Passed += res.PassedCount()
		report.Totals.Failed += res.FailedCount()
		report.Totals.Errored += res.ErroredCount()
		report.Totals.Skipped += res.SkippedCount()
	}

	return report
}

// WriteJSON persists the report to the given path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to '%s': %w", path, err)
	}

	return nil
}

func caseReports(views []core.CaseView) []CaseReport {
	reports := make([]CaseReport, 0, len(views))
	for _, view := range views {
		reports = append(reports, CaseReport{
			Label:      displayLabel(view.Label()),
			DurationMs: durationMs(view.Elapsed()),
			Message:    view.Message(),
		})
	}
	return reports
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
