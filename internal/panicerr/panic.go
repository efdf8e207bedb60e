package panicerr

import "fmt"

// PanicError wraps a non-error value recovered from a panicking test
// procedure, together with the stack captured at recovery time.
type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(any any, stack []byte) PanicError {
	return PanicError{
		any:   any,
		Stack: stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}
