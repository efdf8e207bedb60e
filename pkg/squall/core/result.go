package core

import "time"

// ScenarioResult is the read-only query surface of one scenario run. Every
// accessor returns a zero value until the run has completed, regardless of how
// many cases are registered; afterwards the four buckets partition exactly the
// set of executed cases, in execution order.
type ScenarioResult interface {
	// Returns whether the scenario run has finished.
	Completed() bool

	// Returns the number of registered cases, 0 before completion.
	TotalCount() int

	// Returns the summed procedure time of all cases, 0 before completion.
	TotalDuration() time.Duration

	PassedCount() int
	Passed() []CaseView

	FailedCount() int
	Failed() []CaseView

	ErroredCount() int
	Errored() []CaseView

	SkippedCount() int
	Skipped() []CaseView
}
