package core

import "time"

// TestProc is the deferred unit of work of a test case. It signals failure
// exclusively by panicking (normally via the assert package); a normal return
// means the case passed.
type TestProc = func()

type TestRegistrar interface {
	// Append a test case with the given label. The label may be empty for an
	// anonymous case. Cases run in the order they were added.
	AddTest(label string, proc TestProc)

	// Append a test case that will never execute its procedure. The case is
	// reported as skipped with the given reason.
	SkipTest(reason string, label string, proc TestProc)
}

// CaseView is the read-only view of a finished test case handed to observers
// and reporting code. Implementations must not be mutated through it.
type CaseView interface {
	// Returns the label of the test case, possibly empty.
	Label() string

	// Returns the terminal outcome of the case, OutcomeNotRun before it ran.
	Outcome() Outcome

	// Returns the wall-clock time spent in the procedure call.
	Elapsed() time.Duration

	// Returns the outcome-dependent message: failure text, error text or
	// skip reason. Empty for passed cases.
	Message() string
}

// Observer is notified with a read-only view of each test case right after it
// finishes, including skipped ones. Attachment is keyed by handle identity, so
// the same instance may observe several scenarios.
type Observer interface {
	Update(view CaseView)
}
