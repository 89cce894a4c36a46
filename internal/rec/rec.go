// Package rec turns panics into errors at command boundaries.
package rec

import (
	"fmt"
	"runtime/debug"
)

// PanicError is a recovered panic together with the stack it unwound.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v\n%s", e.Value, e.Stack)
}

// Unwrap exposes the panic value when it was an error itself.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func recovered(r any) error {
	if r == nil {
		return nil
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}

// Error recovers a panic and assigns it to *err.
// It must be deferred directly.
func Error(err *error) {
	if r := recovered(recover()); r != nil {
		*err = r
	}
}

// Wrap recovers a panic, or takes the error already in *err, and wraps it
// with format and a. The error is appended to the end of the arguments,
// so format should end in %w.
func Wrap(err *error, format string, a ...any) {
	if r := recovered(recover()); r != nil {
		*err = fmt.Errorf(format, append(a, r)...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
