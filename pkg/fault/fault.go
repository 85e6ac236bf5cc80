// Package fault turns arbitrary Go errors into structured service faults and back.
//
// Classify maps an error onto the codes taxonomy through an ordered rule
// table; Reconstruct rebuilds a best-effort native error from a fault. Both
// are pure and safe for concurrent use.
package fault

import (
	"maps"

	"github.com/Goden-Gun/service-lib/pkg/codes"
)

// ServiceFault is the error propagated across a fault boundary. It owns a
// ServiceError and keeps a reference to the error that caused it for local
// diagnostics only; the cause is never serialized.
type ServiceFault struct {
	err   ServiceError
	cause error
}

// Option configures a fault built with New.
type Option func(*ServiceFault)

// WithDetails attaches details. The map is copied.
func WithDetails(details map[string]string) Option {
	return func(f *ServiceFault) {
		if len(details) == 0 {
			return
		}
		if f.err.details == nil {
			f.err.details = make(map[string]string, len(details))
		}
		maps.Copy(f.err.details, details)
	}
}

// WithDetail attaches one detail.
func WithDetail(key, value string) Option {
	return WithDetails(map[string]string{key: value})
}

// WithCause records the underlying error.
func WithCause(err error) Option {
	return func(f *ServiceFault) { f.cause = err }
}

// WithCorrelationID attaches a correlation identifier.
func WithCorrelationID(id string) Option {
	return func(f *ServiceFault) { f.err.correlationID = id }
}

// New builds a fault for code. Application code uses it to raise a
// structured fault up front instead of relying on classification.
func New(code codes.ErrorCode, message string, opts ...Option) *ServiceFault {
	f := &ServiceFault{err: ServiceError{code: code, message: message}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromServiceError wraps an existing ServiceError.
func FromServiceError(se ServiceError, cause error) *ServiceFault {
	return &ServiceFault{err: se, cause: cause}
}

func (f *ServiceFault) Error() string {
	if f.err.message == "" {
		return f.err.CodeName()
	}
	return f.err.CodeName() + ": " + f.err.message
}

// Unwrap returns the cause so errors.Is and errors.As keep working locally.
func (f *ServiceFault) Unwrap() error { return f.cause }

// ServiceError returns the serializable error.
func (f *ServiceFault) ServiceError() ServiceError { return f.err }

// Code is shorthand for ServiceError().Code().
func (f *ServiceFault) Code() codes.ErrorCode { return f.err.code }

// Cause returns the underlying error, possibly nil.
func (f *ServiceFault) Cause() error { return f.cause }

// WithoutDetails returns a copy whose ServiceError carries no details.
// Boundaries use it in production before serializing.
func (f *ServiceFault) WithoutDetails() *ServiceFault {
	return &ServiceFault{err: f.err.WithoutDetails(), cause: f.cause}
}
