package reporter

import (
	"time"

	"squall/pkg/squall/core"
)

// fakeCase is a canned core.CaseView with fixed durations, so rendering tests
// are deterministic.
type fakeCase struct {
	label   string
	outcome core.Outcome
	elapsed time.Duration
	message string
}

func (c fakeCase) Label() string         { return c.label }
func (c fakeCase) Outcome() core.Outcome { return c.outcome }
func (c fakeCase) Elapsed() time.Duration {
	return c.elapsed
}
func (c fakeCase) Message() string { return c.message }

type fakeResult struct {
	completed bool
	total     time.Duration
	passed    []core.CaseView
	failed    []core.CaseView
	errored   []core.CaseView
	skipped   []core.CaseView
}

func (r fakeResult) Completed() bool { return r.completed }
func (r fakeResult) TotalCount() int {
	return len(r.passed) + len(r.failed) + len(r.errored) + len(r.skipped)
}
func (r fakeResult) TotalDuration() time.Duration { return r.total }
func (r fakeResult) PassedCount() int             { return len(r.passed) }
func (r fakeResult) Passed() []core.CaseView      { return r.passed }
func (r fakeResult) FailedCount() int             { return len(r.failed) }
func (r fakeResult) Failed() []core.CaseView      { return r.failed }
func (r fakeResult) ErroredCount() int            { return len(r.errored) }
func (r fakeResult) Errored() []core.CaseView     { return r.errored }
func (r fakeResult) SkippedCount() int            { return len(r.skipped) }
func (r fakeResult) Skipped() []core.CaseView     { return r.skipped }

func mixedResult() fakeResult {
	return fakeResult{
		completed: true,
		total:     3500 * time.Microsecond,
		passed: []core.CaseView{
			fakeCase{label: "adds", outcome: core.OutcomePassed, elapsed: 1200 * time.Microsecond},
			fakeCase{label: "", outcome: core.OutcomePassed, elapsed: 300 * time.Microsecond},
		},
		failed: []core.CaseView{
			fakeCase{
				label:   "compares",
				outcome: core.OutcomeFailed,
				elapsed: 1500 * time.Microsecond,
				message: "case matters (demo_test.go:12)\n\t[REACHED] abc\n\t[EXPECTED EQUAL TO] ABC\n",
			},
		},
		errored: []core.CaseView{
			fakeCase{
				label:   "boom",
				outcome: core.OutcomeErrored,
				elapsed: 500 * time.Microsecond,
				message: "connection refused",
			},
		},
		skipped: []core.CaseView{
			fakeCase{
				label:   "later",
				outcome: core.OutcomeSkipped,
				message: "waiting",
			},
		},
	}
}
