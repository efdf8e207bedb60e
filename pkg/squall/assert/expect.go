package assert

import "reflect"

// ExpectPanic runs fn and succeeds iff it panics with a value of type E (or,
// when E is an interface type, a value implementing E). Any other panic value,
// or a normal return, is a failure.
func ExpectPanic[E any](fn func(), opts ...Option) Chain {
	st := applyOptions(opts)
	site := callSite(1)

	panicked, value := capturePanic(fn)
	if !panicked {
		panic(&Failure{
			Message:   st.message,
			Kind:      KindPanic,
			Site:      site,
			PanicType: typeName[E](),
		})
	}

	if _, ok := value.(E); !ok {
		f := &Failure{
			Message:   st.message,
			Kind:      KindPanic,
			Site:      site,
			PanicType: typeName[E](),
		}
		if reached, rok := displayValue(value); rok {
			f.Reached = reached
			f.HasValues = true
		}
		panic(f)
	}

	return Chain{}
}

func capturePanic(fn func()) (panicked bool, value any) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			value = r
		}
	}()

	fn()
	return false, nil
}

func typeName[E any]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}
