// Package errkind provides the native fault kinds this library knows how to
// classify and rebuild.
//
// Go has no exception hierarchy, so the "is-a" relation between kinds is
// expressed with kind sentinels and errors.Is: an *ArgumentOutOfRangeError is
// both ErrArgumentOutOfRange and ErrArgument, exactly like a value that is out
// of range is also an invalid argument.
//
//	ErrArgument
//	├── ErrArgumentNull
//	└── ErrArgumentOutOfRange
//	ErrArithmetic
//	├── ErrDivideByZero
//	├── ErrOverflow
//	└── ErrNotFiniteNumber
//	ErrInvalidOperation
//	└── ErrObjectDisposed
//	ErrNotSupported (also errors.ErrUnsupported)
//	└── ErrPlatformNotSupported
//	ErrDbUpdate
//	└── ErrDbUpdateConcurrency
//	ErrNotImplemented, ErrKeyNotFound, ErrTimeout, ErrFormat, ErrValidation
//
// Constructors capture the caller's stack; literal values carry none.
//
//	if n < 0 {
//	    return errkind.NewArgumentOutOfRange("n", n, "n must not be negative")
//	}
package errkind

// kind is a comparable sentinel naming a node of the hierarchy.
type kind string

func (k kind) Error() string { return string(k) }

// Kind sentinels, usable with errors.Is.
const (
	ErrArgument           = kind("invalid argument")
	ErrArgumentNull       = kind("argument is nil")
	ErrArgumentOutOfRange = kind("argument out of range")

	ErrArithmetic      = kind("arithmetic failure")
	ErrDivideByZero    = kind("divide by zero")
	ErrOverflow        = kind("arithmetic overflow")
	ErrNotFiniteNumber = kind("number is not finite")

	ErrInvalidOperation = kind("invalid operation")
	ErrObjectDisposed   = kind("object disposed")

	ErrNotSupported         = kind("not supported")
	ErrPlatformNotSupported = kind("platform not supported")
	ErrNotImplemented       = kind("not implemented")

	ErrKeyNotFound = kind("key not found")
	ErrTimeout     = kind("operation timed out")
	ErrFormat      = kind("invalid format")
	ErrValidation  = kind("validation failed")

	ErrDbUpdate            = kind("database update failed")
	ErrDbUpdateConcurrency = kind("database update concurrency conflict")
)

func messageOr(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
