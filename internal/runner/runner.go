// Package runner executes the test cases of one scenario in declaration
// order, classifies each outcome into a bucket and notifies attached
// observers after each finished case.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"squall/internal/registry"
	"squall/pkg/squall/core"
)

// ErrCompleted is returned when Run is called on a scenario that already
// completed. Re-querying results is idempotent; re-running is not supported.
var ErrCompleted = errors.New("scenario already completed")

// ScenarioRunner drives one scenario from pending to completed. It is not
// reentrant and performs no internal parallelism; a case's failure never
// aborts the remaining cases, and the runner itself never panics.
type ScenarioRunner struct {
	name     string
	registry *registry.Registry
	log      *logrus.Logger

	observers map[core.Observer]struct{}

	completed bool
	executed  int
	total     time.Duration
	passed    []core.CaseView
	failed    []core.CaseView
	errored   []core.CaseView
	skipped   []core.CaseView
}

func NewScenarioRunner(name string, reg *registry.Registry, log *logrus.Logger) *ScenarioRunner {
	return &ScenarioRunner{
		name:      name,
		registry:  reg,
		log:       log,
		observers: make(map[core.Observer]struct{}),
	}
}

func (r *ScenarioRunner) Name() string {
	return r.name
}

// Attach adds an observer to the de-duplicating set keyed by handle identity.
// Attaching the same handle twice is a no-op. Mutating the set concurrently
// with Run is the caller's responsibility to avoid.
func (r *ScenarioRunner) Attach(obs core.Observer) {
	r.observers[obs] = struct{}{}
}

// Detach removes an observer by the same identity.
func (r *ScenarioRunner) Detach(obs core.Observer) {
	delete(r.observers, obs)
}

// Run executes every registered case of the scenario in declaration order.
// Each case is run inside its own failure boundary, its duration added to the
// scenario total, every attached observer notified with the finished case,
// and the case filed into exactly one outcome bucket.
func (r *ScenarioRunner) Run() error {
	if r.completed {
		return fmt.Errorf("scenario '%s': %w", r.name, ErrCompleted)
	}

	for _, tc := range r.registry.Cases(r.name) {
		r.log.Debugf("%s/%s (started)", r.name, tc.Label())

		tc.Run()
		r.executed++
		r.total += tc.Elapsed()
		r.notify(tc)

		switch tc.Outcome() {
		case core.OutcomePassed:
			r.passed = append(r.passed, tc)
		case core.OutcomeFailed:
			r.failed = append(r.failed, tc)
		case core.OutcomeErrored:
			r.errored = append(r.errored, tc)
		case core.OutcomeSkipped:
			r.skipped = append(r.skipped, tc)
		default:
			// A case that is still NotRun after Run is a defect in the
			// boundary; it is never filed into a bucket.
			r.log.Errorf("test case '%s' has no outcome after running", tc.Label())
		}

		r.log.Debugf("%s/%s %s", r.name, tc.Label(), tc.Outcome().ColorString())
	}

	r.completed = true
	return nil
}

func (r *ScenarioRunner) notify(view core.CaseView) {
	for obs := range r.observers {
		obs.Update(view)
	}
}

// Completed reports whether the scenario run has finished. Until then every
// count below reads as zero and every list as empty, regardless of how many
// cases are registered.
func (r *ScenarioRunner) Completed() bool {
	return r.completed
}

// TotalCount reports how many cases the run actually executed; cases
// appended to the registry afterwards never show up here.
func (r *ScenarioRunner) TotalCount() int {
	if !r.completed {
		return 0
	}
	return r.executed
}

func (r *ScenarioRunner) TotalDuration() time.Duration {
	if !r.completed {
		return 0
	}
	return r.total
}

func (r *ScenarioRunner) PassedCount() int {
	if !r.completed {
		return 0
	}
	return len(r.passed)
}

func (r *ScenarioRunner) Passed() []core.CaseView {
	if !r.completed {
		return nil
	}
	return r.passed
}

func (r *ScenarioRunner) FailedCount() int {
	if !r.completed {
		return 0
	}
	return len(r.failed)
}

func (r *ScenarioRunner) Failed() []core.CaseView {
	if !r.completed {
		return nil
	}
	return r.failed
}

func (r *ScenarioRunner) ErroredCount() int {
	if !r.completed {
		return 0
	}
	return len(r.errored)
}

func (r *ScenarioRunner) Errored() []core.CaseView {
	if !r.completed {
		return nil
	}
	return r.errored
}

func (r *ScenarioRunner) SkippedCount() int {
	if !r.completed {
		return 0
	}
	return len(r.skipped)
}

func (r *ScenarioRunner) Skipped() []core.CaseView {
	if !r.completed {
		return nil
	}
	return r.skipped
}
