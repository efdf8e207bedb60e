// Package demo declares demonstration scenarios covering each outcome the
// framework classifies: pass, fail, error and skip.
package demo

import (
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"

	"squall/pkg/squall"
	"squall/pkg/squall/assert"
)

// Declare registers the demonstration scenarios on the given suite.
func Declare(s *squall.Suite) {
	s.Declare("math", func(r squall.TestRegistrar) {
		r.AddTest("adds", func() {
			assert.That(2 + 2).IsEqualTo(4)
		})

		r.AddTest("stays-within-tolerance", func() {
			assert.That(0.1 + 0.2).IsEqualTo(0.3, assert.Within(1e-9))
		})

		r.AddTest("chains-checks", func() {
			chain := assert.That(3 * 3).IsEqualTo(9)
			assert.AndThat(chain, 10/2).IsNotEqualTo(4)
		})
	})

	s.Declare("strings", func(r squall.TestRegistrar) {
		r.AddTest("folds-case", func() {
			assert.That("abc").IsEqualTo("ABC", assert.IgnoreCase())
		})

		r.AddTest("parses-numbers", func() {
			value, err := strconv.Atoi("42")
			assert.That(err).IsNil()
			assert.That(value).IsEqualTo(42)
		})
	})

	s.Declare("showcase", func(r squall.TestRegistrar) {
		r.AddTest("a-deliberate-failure", func() {
			logrus.Info("This test case demonstrates a failed assertion.")
			assert.That("abc").IsEqualTo("ABC", assert.Msgf("case matters here"))
		})

		r.AddTest("a-deliberate-error", func() {
			// A raised value that is not an assertion failure classifies the
			// case as errored, not failed.
			panic(errors.New("the test code itself is broken"))
		})

		r.AddTest("expects-a-panic", func() {
			assert.ExpectPanic[*strconv.NumError](func() {
				if _, err := strconv.Atoi("not-a-number"); err != nil {
					panic(err)
				}
			})
		})

		r.SkipTest("waiting on upstream fix", "a-skipped-case", func() {
			logrus.Info("This procedure never runs.")
		})
	})
}
