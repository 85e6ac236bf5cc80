package errkind

import (
	"fmt"
	"runtime"
	"strings"
)

// UnclassifiedError stands in for a fault that has no native counterpart.
// It keeps the verbatim type name and message of the original.
type UnclassifiedError struct {
	TypeName string
	Message  string
}

func (e *UnclassifiedError) Error() string { return e.Message }

// PanicError carries a value recovered from a panic together with the stack
// of the goroutine at the point of recovery.
type PanicError struct {
	base
	Value any
}

// Recovered wraps a recovered panic value. It must be called from the
// deferred function that called recover so the stack still includes the
// panicking frames.
func Recovered(v any) *PanicError {
	return &PanicError{base: base{stack: trimPanic(Callers(1))}, Value: v}
}

// trimPanic drops the recovering frames and the runtime panic machinery so the
// stack starts at the frame that panicked.
func trimPanic(s Stack) Stack {
	last := -1
	for i, pc := range s {
		fn := runtime.FuncForPC(pc - 1)
		if fn == nil {
			continue
		}
		if strings.HasPrefix(fn.Name(), "runtime.") {
			last = i
		} else if last >= 0 {
			break
		}
	}
	if last < 0 || last+1 >= len(s) {
		return s
	}
	return s[last+1:]
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panic value that is itself an error, including runtime.Error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RuntimeError returns the runtime error that caused the panic, if any.
func (e *PanicError) RuntimeError() (runtime.Error, bool) {
	re, ok := e.Value.(runtime.Error)
	return re, ok
}
