package assert

import (
	"math"
	"reflect"

	"golang.org/x/text/cases"
)

// Chain is the neutral "nothing asserted yet" state returned between checks.
// Sequencing through AndThat only reads better at the call site; every check
// evaluates independently and order has no effect.
type Chain struct{}

// Expr holds one captured expression value awaiting a check.
type Expr[T any] struct {
	value T
}

// That captures an expression value to assert on.
func That[T any](value T) Expr[T] {
	return Expr[T]{value: value}
}

// AndThat captures the next expression value of an assertion chain.
func AndThat[T any](_ Chain, value T) Expr[T] {
	return Expr[T]{value: value}
}

// IsTrue requires the captured value to be the boolean true.
func (e Expr[T]) IsTrue(opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	b, ok := any(e.value).(bool)
	if !ok {
		panic(&Misuse{Reason: "IsTrue requires a bool expression", Site: site})
	}

	failTest(b, e.value, true, KindEqual, st, site)
	return Chain{}
}

// IsFalse requires the captured value to be the boolean false.
func (e Expr[T]) IsFalse(opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	b, ok := any(e.value).(bool)
	if !ok {
		panic(&Misuse{Reason: "IsFalse requires a bool expression", Site: site})
	}

	failTest(!b, e.value, false, KindEqual, st, site)
	return Chain{}
}

// IsEqualTo requires the captured value to equal expected. Plain calls use
// deep equality; Within switches to a numeric tolerance band and IgnoreCase
// to case-folded string comparison.
func (e Expr[T]) IsEqualTo(expected T, opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	failTest(equalUnder(e.value, expected, st, site), e.value, expected, KindEqual, st, site)
	return Chain{}
}

// IsNotEqualTo requires the captured value to differ from notExpected, under
// the same comparison modes as IsEqualTo.
func (e Expr[T]) IsNotEqualTo(notExpected T, opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	failTest(!equalUnder(e.value, notExpected, st, site), e.value, notExpected, KindDifferent, st, site)
	return Chain{}
}

// IsSameAs requires the captured value and other to reference the same
// object. Only reference kinds (pointers, maps, slices, channels, funcs)
// carry identity; value kinds are misuse.
func (e Expr[T]) IsSameAs(other T, opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	failTest(sameReferent(e.value, other, site), e.value, other, KindEqual, st, site)
	return Chain{}
}

// IsNotSameAs requires the captured value and other to reference distinct
// objects.
func (e Expr[T]) IsNotSameAs(other T, opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	failTest(!sameReferent(e.value, other, site), e.value, other, KindDifferent, st, site)
	return Chain{}
}

// IsNil requires the captured value to be nil.
func (e Expr[T]) IsNil(opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	isNil, ok := isNilValue(any(e.value))
	if !ok {
		panic(&Misuse{Reason: "IsNil requires a nilable kind", Site: site})
	}

	failTest(isNil, e.value, nil, KindEqual, st, site)
	return Chain{}
}

// IsNotNil requires the captured value to be non-nil.
func (e Expr[T]) IsNotNil(opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	isNil, ok := isNilValue(any(e.value))
	if !ok {
		panic(&Misuse{Reason: "IsNotNil requires a nilable kind", Site: site})
	}

	failTest(!isNil, e.value, nil, KindDifferent, st, site)
	return Chain{}
}

// Fail raises an unconditional failure.
func Fail(opts ...Option) {
	st := applyOptions(opts)
	site := callSite(1)

	if st.message == "" {
		st.message = "forced failure"
	}

	panic(&Failure{Message: st.message, Kind: KindForced, Site: site})
}

// equalUnder evaluates equality under the comparison mode selected by the
// options: tolerance band, case-folded, or deep equality.
func equalUnder(reached, expected any, st settings, site Site) bool {
	if st.tolerance != nil {
		tolerance := *st.tolerance
		if tolerance < 0 {
			panic(&Misuse{Reason: "negative tolerance can never hold", Site: site})
		}

		a, aok := toFloat(reached)
		b, bok := toFloat(expected)
		if !aok || !bok {
			panic(&Misuse{Reason: "Within requires numeric values", Site: site})
		}

		return math.Abs(a-b) <= tolerance
	}

	if st.ignoreCase {
		a, aok := toString(reached)
		b, bok := toString(expected)
		if !aok || !bok {
			panic(&Misuse{Reason: "IgnoreCase requires string values", Site: site})
		}

		folder := cases.Fold()
		return folder.String(a) == folder.String(b)
	}

	return reflect.DeepEqual(reached, expected)
}

func sameReferent(a, b any, site Site) bool {
	pa, aok := identityPointer(a)
	pb, bok := identityPointer(b)
	if !aok || !bok {
		panic(&Misuse{Reason: "identity comparison requires a reference kind", Site: site})
	}

	return pa == pb
}

func failTest(condition bool, reached, expected any, kind Kind, st settings, site Site) {
	if condition {
		return
	}

	f := &Failure{Message: st.message, Kind: kind, Site: site}

	reachedText, rok := displayValue(reached)
	expectedText, eok := displayValue(expected)
	if rok && eok {
		f.Reached = reachedText
		f.Expected = expectedText
		f.HasValues = true
	}

	panic(f)
}
