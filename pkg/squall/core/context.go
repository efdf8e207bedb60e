package core

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns the names of all declared scenarios, in declaration order.
	ScenarioNames() []string

	// Returns the number of test cases registered for a scenario. Unknown
	// names count as zero.
	CaseCount(name string) int

	// Runs all test cases of the named scenario in registration order.
	// Running an unknown name executes an empty sequence and completes with
	// zero counts. Running a completed scenario again is an error.
	RunScenario(name string) error

	// Returns the read-only run result for a scenario.
	Results(name string) ScenarioResult

	// Attaches an observer to the named scenario. Attaching the same handle
	// twice is a no-op.
	AttachObserver(name string, obs Observer)

	// Detaches a previously attached observer.
	DetachObserver(name string, obs Observer)

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool
}
