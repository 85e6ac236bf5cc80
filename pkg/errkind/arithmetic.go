package errkind

import "strconv"

// ArithmeticError reports a failed arithmetic, casting or conversion operation.
type ArithmeticError struct {
	base
	Message string
	Err     error
}

// NewArithmetic returns an *ArithmeticError.
func NewArithmetic(msg string) *ArithmeticError {
	return &ArithmeticError{base: capture(), Message: msg}
}

func (e *ArithmeticError) Error() string {
	return messageOr(e.Message, "arithmetic operation failed")
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

func (e *ArithmeticError) Is(target error) bool { return target == ErrArithmetic }

// DivideByZeroError reports an integral or decimal division by zero.
type DivideByZeroError struct {
	ArithmeticError
}

// NewDivideByZero returns a *DivideByZeroError.
func NewDivideByZero(msg string) *DivideByZeroError {
	return &DivideByZeroError{ArithmeticError{base: capture(), Message: msg}}
}

func (e *DivideByZeroError) Error() string {
	return messageOr(e.Message, "attempted to divide by zero")
}

func (e *DivideByZeroError) Is(target error) bool {
	return target == ErrDivideByZero || target == ErrArithmetic
}

// OverflowError reports an overflow in an arithmetic or conversion operation.
type OverflowError struct {
	ArithmeticError
}

// NewOverflow returns an *OverflowError.
func NewOverflow(msg string) *OverflowError {
	return &OverflowError{ArithmeticError{base: capture(), Message: msg}}
}

func (e *OverflowError) Error() string {
	return messageOr(e.Message, "arithmetic operation resulted in an overflow")
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow || target == ErrArithmetic
}

// NotFiniteNumberError reports a NaN or infinite value where a finite one is required.
type NotFiniteNumberError struct {
	ArithmeticError
	Number float64
}

// NewNotFiniteNumber returns a *NotFiniteNumberError for number.
func NewNotFiniteNumber(number float64, msg string) *NotFiniteNumberError {
	return &NotFiniteNumberError{ArithmeticError: ArithmeticError{base: capture(), Message: msg}, Number: number}
}

func (e *NotFiniteNumberError) Error() string {
	return messageOr(e.Message, "number encountered was not a finite quantity")
}

// OffendingNumber renders Number the way it is carried in fault details.
func (e *NotFiniteNumberError) OffendingNumber() string {
	return strconv.FormatFloat(e.Number, 'g', -1, 64)
}

func (e *NotFiniteNumberError) Is(target error) bool {
	return target == ErrNotFiniteNumber || target == ErrArithmetic
}
