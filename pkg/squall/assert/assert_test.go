package assert_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"squall/pkg/squall/assert"
)

// catchSignal runs fn and returns whatever it panics with, or nil when it
// returns normally.
func catchSignal(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()

	fn()
	return nil
}

func requireFailure(t *testing.T, fn func()) *assert.Failure {
	t.Helper()

	recovered := catchSignal(fn)
	require.NotNil(t, recovered, "expected a failure signal")

	failure, ok := recovered.(*assert.Failure)
	require.True(t, ok, "expected *assert.Failure, got %T", recovered)
	return failure
}

func requireMisuse(t *testing.T, fn func()) *assert.Misuse {
	t.Helper()

	recovered := catchSignal(fn)
	require.NotNil(t, recovered, "expected a misuse signal")

	misuse, ok := recovered.(*assert.Misuse)
	require.True(t, ok, "expected *assert.Misuse, got %T", recovered)
	return misuse
}

func TestIsEqualTo(t *testing.T) {
	t.Run("holds", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(2 + 2).IsEqualTo(4)
		}))
	})

	t.Run("fails with both values rendered", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(5).IsEqualTo(4)
		})

		require.Equal(t, assert.KindEqual, failure.Kind)
		require.True(t, failure.HasValues)
		require.Equal(t, "5", failure.Reached)
		require.Equal(t, "4", failure.Expected)
		require.Contains(t, failure.Error(), "[REACHED] 5")
		require.Contains(t, failure.Error(), "[EXPECTED EQUAL TO] 4")
	})

	t.Run("captures the call site", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(1).IsEqualTo(2)
		})

		require.True(t, failure.Site.IsSet())
		require.Contains(t, failure.Site.String(), "assert_test.go")
		require.Contains(t, failure.Error(), "assert_test.go")
	})

	t.Run("message is carried into the rendering", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(1).IsEqualTo(2, assert.Msgf("expected %d widgets", 2))
		})

		require.Contains(t, failure.Error(), "expected 2 widgets")
	})

	t.Run("deep equality covers composite values", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That([]int{1, 2, 3}).IsEqualTo([]int{1, 2, 3})
		}))
	})
}

func TestIsNotEqualTo(t *testing.T) {
	t.Run("holds", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(5).IsNotEqualTo(4)
		}))
	})

	t.Run("fails with different classification", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(4).IsNotEqualTo(4)
		})

		require.Equal(t, assert.KindDifferent, failure.Kind)
		require.Contains(t, failure.Error(), "[EXPECTED DIFFERENT FROM] 4")
	})
}

func TestIgnoreCase(t *testing.T) {
	t.Run("case sensitive comparison fails", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That("abc").IsEqualTo("ABC")
		})
		require.Equal(t, assert.KindEqual, failure.Kind)
	})

	t.Run("case folded comparison holds", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That("abc").IsEqualTo("ABC", assert.IgnoreCase())
		}))
	})

	t.Run("both sides fold through the same normalization", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That("Straße").IsEqualTo("STRASSE", assert.IgnoreCase())
		}))
	})

	t.Run("on non-string values is misuse", func(t *testing.T) {
		requireMisuse(t, func() {
			assert.That(1).IsEqualTo(1, assert.IgnoreCase())
		})
	})
}

func TestWithin(t *testing.T) {
	t.Run("inside the band holds", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(0.1 + 0.2).IsEqualTo(0.3, assert.Within(1e-9))
		}))
	})

	t.Run("outside the band fails", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(1.0).IsEqualTo(1.5, assert.Within(0.1))
		})
		require.Equal(t, assert.KindEqual, failure.Kind)
	})

	t.Run("negative tolerance is misuse, not failure", func(t *testing.T) {
		misuse := requireMisuse(t, func() {
			assert.That(1.0).IsEqualTo(1.0, assert.Within(-0.1))
		})
		require.Contains(t, misuse.Error(), "tolerance")
	})

	t.Run("inverted band on IsNotEqualTo", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(1.0).IsNotEqualTo(2.0, assert.Within(0.5))
		}))

		requireFailure(t, func() {
			assert.That(1.0).IsNotEqualTo(1.04, assert.Within(0.1))
		})
	})

	t.Run("on non-numeric values is misuse", func(t *testing.T) {
		requireMisuse(t, func() {
			assert.That("a").IsEqualTo("a", assert.Within(0.1))
		})
	})
}

func TestBoolChecks(t *testing.T) {
	t.Run("IsTrue", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(1 < 2).IsTrue()
		}))

		requireFailure(t, func() {
			assert.That(2 < 1).IsTrue()
		})
	})

	t.Run("IsFalse", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(2 < 1).IsFalse()
		}))

		requireFailure(t, func() {
			assert.That(1 < 2).IsFalse()
		})
	})

	t.Run("IsTrue on a non-bool is misuse", func(t *testing.T) {
		requireMisuse(t, func() {
			assert.That(1).IsTrue()
		})
	})
}

func TestIdentity(t *testing.T) {
	t.Run("same pointer holds", func(t *testing.T) {
		value := new(int)
		require.Nil(t, catchSignal(func() {
			assert.That(value).IsSameAs(value)
		}))
	})

	t.Run("distinct pointers fail IsSameAs", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.That(new(int)).IsSameAs(new(int))
		})
		require.Equal(t, assert.KindEqual, failure.Kind)
	})

	t.Run("distinct pointers hold IsNotSameAs", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(new(int)).IsNotSameAs(new(int))
		}))
	})

	t.Run("identity on value kinds is misuse", func(t *testing.T) {
		requireMisuse(t, func() {
			assert.That(1).IsSameAs(1)
		})
	})
}

func TestNilChecks(t *testing.T) {
	t.Run("IsNil", func(t *testing.T) {
		var p *int
		require.Nil(t, catchSignal(func() {
			assert.That(p).IsNil()
		}))

		requireFailure(t, func() {
			assert.That(new(int)).IsNil()
		})
	})

	t.Run("IsNotNil", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.That(new(int)).IsNotNil()
		}))

		var err error
		requireFailure(t, func() {
			assert.That(err).IsNotNil()
		})
	})

	t.Run("nil error holds IsNil", func(t *testing.T) {
		_, err := strconv.Atoi("42")
		require.Nil(t, catchSignal(func() {
			assert.That(err).IsNil()
		}))
	})

	t.Run("on non-nilable kinds is misuse", func(t *testing.T) {
		requireMisuse(t, func() {
			assert.That(1).IsNil()
		})
	})
}

func TestExpectPanic(t *testing.T) {
	t.Run("matching panic type holds", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.ExpectPanic[*strconv.NumError](func() {
				_, err := strconv.Atoi("no")
				panic(err)
			})
		}))
	})

	t.Run("interface type matches implementations", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			assert.ExpectPanic[error](func() {
				panic(errors.New("boom"))
			})
		}))
	})

	t.Run("no panic fails", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.ExpectPanic[error](func() {})
		})

		require.Equal(t, assert.KindPanic, failure.Kind)
		require.Contains(t, failure.Error(), "[EXPECTED PANIC] error")
	})

	t.Run("wrong panic type fails", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.ExpectPanic[*strconv.NumError](func() {
				panic("a string, not a NumError")
			})
		})

		require.Equal(t, assert.KindPanic, failure.Kind)
		require.True(t, failure.HasValues)
		require.Contains(t, failure.Reached, "a string, not a NumError")
	})
}

func TestFail(t *testing.T) {
	t.Run("carries only the message and call site", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.Fail(assert.Msgf("unreachable branch taken"))
		})

		require.Equal(t, assert.KindForced, failure.Kind)
		require.Contains(t, failure.Error(), "unreachable branch taken")
		require.NotContains(t, failure.Error(), "[REACHED]")
		require.NotContains(t, failure.Error(), "[EXPECTED")
	})

	t.Run("defaults the message", func(t *testing.T) {
		failure := requireFailure(t, func() {
			assert.Fail()
		})

		require.Contains(t, failure.Error(), "forced failure")
		require.NotContains(t, failure.Error(), "[REACHED]")
	})
}

func TestChaining(t *testing.T) {
	t.Run("each check evaluates independently", func(t *testing.T) {
		require.Nil(t, catchSignal(func() {
			chain := assert.That(4).IsEqualTo(4)
			chain = assert.AndThat(chain, "a").IsNotEqualTo("b")
			assert.AndThat(chain, true).IsTrue()
		}))
	})

	t.Run("a later link can still fail", func(t *testing.T) {
		failure := requireFailure(t, func() {
			chain := assert.That(4).IsEqualTo(4)
			assert.AndThat(chain, 5).IsEqualTo(6)
		})

		require.Equal(t, "5", failure.Reached)
	})
}

func TestUndisplayableValues(t *testing.T) {
	// Func kinds have no textual display, so the failure falls back to the
	// generic phrasing instead of rendering the values.
	failure := requireFailure(t, func() {
		assert.That(func() {}).IsNil()
	})

	require.False(t, failure.HasValues)
	require.Contains(t, failure.Error(), "[REACHED] is different from [EXPECTED]")
}
