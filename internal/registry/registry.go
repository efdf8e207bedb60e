// Package registry implements the process-lifetime scenario store: an ordered
// mapping from scenario name to the owned test cases declared for it.
package registry

import (
	"squall/internal/testmgr"
)

// Registry maps scenario names to their ordered test cases. Insertion order
// within a scenario is preserved and is the execution order. The store is
// append-only for the process lifetime; there is no removal operation.
//
// Registration is expected to happen before any scenario runs. Concurrent
// mutation is not supported.
type Registry struct {
	order     []string
	scenarios map[string][]*testmgr.TestCase
}

func NewRegistry() *Registry {
	return &Registry{
		scenarios: make(map[string][]*testmgr.TestCase),
	}
}

// Register creates the entry for the given scenario name if absent and
// returns its current test case sequence.
func (r *Registry) Register(name string) []*testmgr.TestCase {
	if _, ok := r.scenarios[name]; !ok {
		r.order = append(r.order, name)
		r.scenarios[name] = make([]*testmgr.TestCase, 0)
	}

	return r.scenarios[name]
}

// Append takes ownership of the test case and appends it to the scenario's
// sequence, preserving call order.
func (r *Registry) Append(name string, tc *testmgr.TestCase) {
	r.Register(name)
	r.scenarios[name] = append(r.scenarios[name], tc)
}

// Cases returns the ordered test case sequence for a scenario. A name that
// was never registered reads as an empty sequence; callers treat "zero tests"
// and "never registered" identically.
func (r *Registry) Cases(name string) []*testmgr.TestCase {
	return r.scenarios[name]
}

// Keys returns the scenario names in first-registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

func (r *Registry) Len(name string) int {
	return len(r.scenarios[name])
}
