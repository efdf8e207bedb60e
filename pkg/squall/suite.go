// Package squall is the public facade of the framework: a Suite owns the
// scenario registry and one runner per scenario, and exposes the
// registration, execution, query and observer surfaces.
package squall

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"squall/internal/registry"
	"squall/internal/runner"
	"squall/internal/testmgr"
	"squall/pkg/squall/core"
)

// Suite is the explicit composition root: the registry and the runners are
// constructed once here and live for the process lifetime. Scenarios are
// identified by programmer-chosen string names.
type Suite struct {
	name        string
	log         *logrus.Logger
	registry    *registry.Registry
	runners     map[string]*runner.ScenarioRunner
	azureDevops bool
}

// SuiteOption adjusts a Suite at construction time.
type SuiteOption func(*Suite)

// WithLogger replaces the default suite logger.
func WithLogger(log *logrus.Logger) SuiteOption {
	return func(s *Suite) {
		s.log = log
	}
}

// NewSuite creates a suite with the given name. The typical lifecycle is
// Declare everything first, then run; the suite binary hands control to Main.
func NewSuite(name string, opts ...SuiteOption) *Suite {
	s := &Suite{
		name:     fmt.Sprintf("squall-%s", name),
		registry: registry.NewRegistry(),
		runners:  make(map[string]*runner.ScenarioRunner),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logrus.New()
		s.log.SetFormatter(&logrus.TextFormatter{
			ForceColors: true,
		})
	}

	return s
}

// Declare creates or extends the named scenario: feed appends test cases
// through the registrar, in call order. Declaring the same name again keeps
// appending, so registration may be spread over several call sites.
func (s *Suite) Declare(name string, feed func(core.TestRegistrar)) {
	s.log.Debugf("Declaring scenario '%s'", name)
	s.registry.Register(name)
	feed(&suiteRegistrar{scenario: name, suite: s})
}

// RunScenario runs all test cases of the named scenario in registration
// order. An unknown name runs an empty sequence and completes with zero
// counts.
func (s *Suite) RunScenario(name string) error {
	return s.scenarioRunner(name).Run()
}

// Results returns the read-only run result for a scenario. Before the
// scenario has run, all counts report zero regardless of registry contents.
func (s *Suite) Results(name string) core.ScenarioResult {
	return s.scenarioRunner(name)
}

// AttachObserver subscribes an observer to the named scenario. Attaching the
// same handle twice is a no-op.
func (s *Suite) AttachObserver(name string, obs core.Observer) {
	s.scenarioRunner(name).Attach(obs)
}

// DetachObserver removes a previously attached observer by handle identity.
func (s *Suite) DetachObserver(name string, obs core.Observer) {
	s.scenarioRunner(name).Detach(obs)
}

// ScenarioNames returns all declared scenario names in declaration order.
func (s *Suite) ScenarioNames() []string {
	return s.registry.Keys()
}

// CaseCount returns the number of test cases registered for a scenario.
func (s *Suite) CaseCount(name string) int {
	return s.registry.Len(name)
}

// Returns the name of the suite
func (s *Suite) Name() string {
	return s.name
}

func (s *Suite) Logger() *logrus.Logger {
	return s.log
}

// Returns whether the suite has Azure DevOps integration enabled
func (s *Suite) AzureDevops() bool {
	return s.azureDevops
}

func (s *Suite) scenarioRunner(name string) *runner.ScenarioRunner {
	if r, ok := s.runners[name]; ok {
		return r
	}

	r := runner.NewScenarioRunner(name, s.registry, s.log)
	s.runners[name] = r
	return r
}

// suiteRegistrar appends owned test cases to one scenario's registry entry.
type suiteRegistrar struct {
	scenario string
	suite    *Suite
}

func (r *suiteRegistrar) AddTest(label string, proc core.TestProc) {
	r.suite.log.Debugf("Registering test case '%s' in scenario '%s'", label, r.scenario)
	r.suite.registry.Append(r.scenario, testmgr.NewTestCase(label, proc))
}

func (r *suiteRegistrar) SkipTest(reason string, label string, proc core.TestProc) {
	r.suite.log.Debugf("Registering skipped test case '%s' in scenario '%s'", label, r.scenario)
	r.suite.registry.Append(r.scenario, testmgr.NewSkippedTestCase(reason, label, proc))
}
