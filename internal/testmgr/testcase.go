// Package testmgr holds the test case representation and its execution
// boundary: every raised condition inside a procedure is classified into
// exactly one terminal outcome before Run returns.
package testmgr

import (
	"runtime/debug"
	"time"

	"squall/internal/panicerr"
	"squall/pkg/squall/assert"
	"squall/pkg/squall/core"
)

const unknownErrorMessage = "unknown error"

// TestCase is one deferred unit of test logic plus its captured outcome.
// Created NotRun at registration time and mutated exactly once, by Run. The
// skipped variant is fixed at construction and never invokes its procedure.
type TestCase struct {
	label   string
	proc    core.TestProc
	skipped bool

	outcome core.Outcome
	elapsed time.Duration
	message string
}

func NewTestCase(label string, proc core.TestProc) *TestCase {
	return &TestCase{
		label: label,
		proc:  proc,
	}
}

func NewSkippedTestCase(reason string, label string, proc core.TestProc) *TestCase {
	return &TestCase{
		label:   label,
		proc:    proc,
		skipped: true,
		message: reason,
	}
}

func (tc *TestCase) Label() string {
	return tc.label
}

func (tc *TestCase) Outcome() core.Outcome {
	return tc.outcome
}

func (tc *TestCase) Elapsed() time.Duration {
	return tc.elapsed
}

func (tc *TestCase) Message() string {
	return tc.message
}

// Run executes the procedure exactly once inside the failure boundary. The
// runner guarantees at-most-once invocation; calling Run on an already
// terminal case is a no-op.
func (tc *TestCase) Run() {
	if tc.outcome.Terminal() {
		return
	}

	if tc.skipped {
		tc.outcome = core.OutcomeSkipped
		return
	}

	tc.execute()
}

// execute brackets the procedure call with the wall clock. The clock stops in
// the first deferred frame, so classification and any observer work stay
// outside the measured window.
func (tc *TestCase) execute() {
	start := time.Now()
	defer func() {
		tc.elapsed = time.Since(start)

		switch recovered := recover().(type) {
		case nil:
			tc.outcome = core.OutcomePassed
		case *assert.Failure:
			tc.outcome = core.OutcomeFailed
			tc.message = recovered.Error()
		default:
			tc.outcome = core.OutcomeErrored
			tc.message = describeRecovered(recovered)
		}
	}()

	tc.proc()
}

func describeRecovered(recovered any) string {
	var message string
	if err, ok := recovered.(error); ok {
		message = err.Error()
	} else {
		message = panicerr.NewPanicError(recovered, debug.Stack()).Error()
	}

	if message == "" {
		return unknownErrorMessage
	}

	return message
}
