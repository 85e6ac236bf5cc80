package errkind

// ArgumentError reports an argument that is not valid for the called function.
type ArgumentError struct {
	base
	Message   string
	ParamName string
	Err       error
}

// NewArgument returns an *ArgumentError for param.
func NewArgument(param, msg string) *ArgumentError {
	return &ArgumentError{base: capture(), Message: msg, ParamName: param}
}

func (e *ArgumentError) Error() string {
	return messageOr(e.Message, "value does not fall within the expected range")
}

// Param returns the name of the offending parameter.
func (e *ArgumentError) Param() string { return e.ParamName }

func (e *ArgumentError) Unwrap() error { return e.Err }

func (e *ArgumentError) Is(target error) bool { return target == ErrArgument }

// ArgumentNullError reports a nil value passed where one is required.
type ArgumentNullError struct {
	ArgumentError
}

// NewArgumentNull returns an *ArgumentNullError for param.
func NewArgumentNull(param, msg string) *ArgumentNullError {
	return &ArgumentNullError{ArgumentError{base: capture(), Message: msg, ParamName: param}}
}

func (e *ArgumentNullError) Error() string {
	return messageOr(e.Message, "value cannot be nil")
}

func (e *ArgumentNullError) Is(target error) bool {
	return target == ErrArgumentNull || target == ErrArgument
}

// ArgumentOutOfRangeError reports an argument outside the allowed range.
type ArgumentOutOfRangeError struct {
	ArgumentError
	ActualValue any
}

// NewArgumentOutOfRange returns an *ArgumentOutOfRangeError for param holding value.
func NewArgumentOutOfRange(param string, value any, msg string) *ArgumentOutOfRangeError {
	return &ArgumentOutOfRangeError{
		ArgumentError: ArgumentError{base: capture(), Message: msg, ParamName: param},
		ActualValue:   value,
	}
}

func (e *ArgumentOutOfRangeError) Error() string {
	return messageOr(e.Message, "specified argument was out of the range of valid values")
}

func (e *ArgumentOutOfRangeError) Is(target error) bool {
	return target == ErrArgumentOutOfRange || target == ErrArgument
}
