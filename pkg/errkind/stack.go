package errkind

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackDepth = 48

// Stack is a captured call stack, most recent call first.
type Stack []uintptr

// StackTracer is implemented by faults that carry a captured stack.
type StackTracer interface {
	StackTrace() Stack
}

// Callers captures the stack of its caller, skipping skip additional frames.
func Callers(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	// +2: runtime.Callers and Callers itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return Stack(pcs[:n])
}

// Frames resolves the stack into runtime frames.
func (s Stack) Frames() []runtime.Frame {
	if len(s) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(s)
	out := make([]runtime.Frame, 0, len(s))
	for {
		fr, more := frames.Next()
		out = append(out, fr)
		if !more {
			break
		}
	}
	return out
}

// Origin returns the package path and function name of the innermost frame.
func (s Stack) Origin() (pkg, fn string) {
	frames := s.Frames()
	if len(frames) == 0 {
		return "", ""
	}
	return SplitFunction(frames[0].Function)
}

// String renders one "function\n\tfile:line" pair per frame.
func (s Stack) String() string {
	var sb strings.Builder
	for i, fr := range s.Frames() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

// SplitFunction splits a fully qualified runtime function name such as
// "github.com/a/b/pkg.(*T).Method" into "github.com/a/b/pkg" and "(*T).Method".
func SplitFunction(qualified string) (pkg, fn string) {
	slash := strings.LastIndex(qualified, "/")
	dot := strings.Index(qualified[slash+1:], ".")
	if dot < 0 {
		return "", qualified
	}
	dot += slash + 1
	return qualified[:dot], qualified[dot+1:]
}

type base struct {
	stack Stack
}

// StackTrace returns the stack captured by the constructor, if any.
func (b base) StackTrace() Stack { return b.stack }

func capture() base {
	// skip capture and the exported constructor.
	return base{stack: Callers(2)}
}
