package raiser

import (
	"errors"
	"fmt"
)

// ErrArgumentMismatch indicates a raise call whose arguments do not match
// the declared parameter descriptors of the event. The descriptors are
// documentation: the mismatch is reported as a notice and dispatch still
// proceeds. Use errors.Is to detect it in a Diagnostics implementation.
var ErrArgumentMismatch = errors.New("argument mismatch")

// PanicError wraps a value recovered from a panicking callback. It is
// delivered to the Diagnostics sink like any other callback fault.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("callback panic: %v", e.Value)
}

// AsPanic extracts a PanicError from err.
func AsPanic(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
