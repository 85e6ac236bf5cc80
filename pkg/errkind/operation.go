package errkind

import "errors"

// InvalidOperationError reports a call that is invalid for the receiver's current state.
type InvalidOperationError struct {
	base
	Message string
	Err     error
}

// NewInvalidOperation returns an *InvalidOperationError.
func NewInvalidOperation(msg string) *InvalidOperationError {
	return &InvalidOperationError{base: capture(), Message: msg}
}

func (e *InvalidOperationError) Error() string {
	return messageOr(e.Message, "operation is not valid due to the current state of the object")
}

func (e *InvalidOperationError) Unwrap() error { return e.Err }

func (e *InvalidOperationError) Is(target error) bool { return target == ErrInvalidOperation }

// ObjectDisposedError reports use of an object after it was closed.
type ObjectDisposedError struct {
	InvalidOperationError
	ObjectName string
}

// NewObjectDisposed returns an *ObjectDisposedError for the named object.
func NewObjectDisposed(objectName, msg string) *ObjectDisposedError {
	return &ObjectDisposedError{
		InvalidOperationError: InvalidOperationError{base: capture(), Message: msg},
		ObjectName:            objectName,
	}
}

func (e *ObjectDisposedError) Error() string {
	return messageOr(e.Message, "cannot access a closed object")
}

func (e *ObjectDisposedError) Is(target error) bool {
	return target == ErrObjectDisposed || target == ErrInvalidOperation
}

// NotSupportedError reports an operation the receiver does not support.
// It also matches errors.ErrUnsupported.
type NotSupportedError struct {
	base
	Message string
	Err     error
}

// NewNotSupported returns a *NotSupportedError.
func NewNotSupported(msg string) *NotSupportedError {
	return &NotSupportedError{base: capture(), Message: msg}
}

func (e *NotSupportedError) Error() string {
	return messageOr(e.Message, "specified method is not supported")
}

func (e *NotSupportedError) Unwrap() error { return e.Err }

func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported || target == errors.ErrUnsupported
}

// PlatformNotSupportedError reports a feature unavailable on the running platform.
type PlatformNotSupportedError struct {
	NotSupportedError
}

// NewPlatformNotSupported returns a *PlatformNotSupportedError.
func NewPlatformNotSupported(msg string) *PlatformNotSupportedError {
	return &PlatformNotSupportedError{NotSupportedError{base: capture(), Message: msg}}
}

func (e *PlatformNotSupportedError) Error() string {
	return messageOr(e.Message, "operation is not supported on this platform")
}

func (e *PlatformNotSupportedError) Is(target error) bool {
	return target == ErrPlatformNotSupported || target == ErrNotSupported || target == errors.ErrUnsupported
}

// NotImplementedError reports a method or operation that has no implementation yet.
type NotImplementedError struct {
	base
	Message string
	Err     error
}

// NewNotImplemented returns a *NotImplementedError.
func NewNotImplemented(msg string) *NotImplementedError {
	return &NotImplementedError{base: capture(), Message: msg}
}

func (e *NotImplementedError) Error() string {
	return messageOr(e.Message, "the method or operation is not implemented")
}

func (e *NotImplementedError) Unwrap() error { return e.Err }

func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

// TimeoutError reports an operation that ran past its allotted time.
type TimeoutError struct {
	base
	Message string
	Err     error
}

// NewTimeout returns a *TimeoutError.
func NewTimeout(msg string) *TimeoutError {
	return &TimeoutError{base: capture(), Message: msg}
}

func (e *TimeoutError) Error() string {
	return messageOr(e.Message, "the operation has timed out")
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Timeout implements the net.Error convention.
func (e *TimeoutError) Timeout() bool { return true }

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }
