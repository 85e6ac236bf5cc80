package fault

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"syscall"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/errkind"
)

// Reconstruction is the result of rebuilding a native error from a fault.
// Exact is true when Err has the Go type and kind-specific fields the
// classifier would have started from; otherwise Err is an approximation.
type Reconstruction struct {
	Err   error
	Exact bool
}

// rebuild turns a ServiceError back into a native error. The bool reports
// whether every kind-specific detail needed for an exact rebuild was present.
type rebuild func(se ServiceError) (error, bool)

// rebuilders covers the round-trip-safe tags. Tags missing here are lossy.
var rebuilders = map[codes.ErrorCode]rebuild{
	codes.ArgumentNull: func(se ServiceError) (error, bool) {
		param, ok := se.Detail(DetailParamName)
		return &errkind.ArgumentNullError{ArgumentError: errkind.ArgumentError{Message: se.Message(), ParamName: param}}, ok
	},
	codes.ArgumentOutOfRange: func(se ServiceError) (error, bool) {
		param, okParam := se.Detail(DetailParamName)
		value, okValue := rebuildValue(se)
		e := &errkind.ArgumentOutOfRangeError{ArgumentError: errkind.ArgumentError{Message: se.Message(), ParamName: param}, ActualValue: value}
		return e, okParam && okValue
	},
	codes.ArgumentInvalid: func(se ServiceError) (error, bool) {
		param, ok := se.Detail(DetailParamName)
		return &errkind.ArgumentError{Message: se.Message(), ParamName: param}, ok
	},

	codes.DivideByZero: func(se ServiceError) (error, bool) {
		return &errkind.DivideByZeroError{ArithmeticError: errkind.ArithmeticError{Message: se.Message()}}, true
	},
	codes.OverflowFailure: func(se ServiceError) (error, bool) {
		return &errkind.OverflowError{ArithmeticError: errkind.ArithmeticError{Message: se.Message()}}, true
	},
	codes.NotFiniteNumber: func(se ServiceError) (error, bool) {
		raw, ok := se.Detail(DetailOffendingNumber)
		n, err := strconv.ParseFloat(raw, 64)
		e := &errkind.NotFiniteNumberError{ArithmeticError: errkind.ArithmeticError{Message: se.Message()}, Number: n}
		return e, ok && err == nil
	},
	codes.ArithmeticInvalid: func(se ServiceError) (error, bool) {
		return &errkind.ArithmeticError{Message: se.Message()}, true
	},

	codes.FileNotFound:        pathRebuild(fs.ErrNotExist),
	codes.PathTooLongFileName: pathRebuild(syscall.ENAMETOOLONG),
	codes.UnauthorizedAccess:  pathRebuild(fs.ErrPermission),

	codes.FormatInvalid: func(se ServiceError) (error, bool) {
		value, okValue := se.Detail(DetailValue)
		layout, okLayout := se.Detail(DetailLayout)
		return &errkind.FormatError{Message: se.Message(), Value: value, Layout: layout}, okValue && okLayout
	},
	codes.KeyNotFound: func(se ServiceError) (error, bool) {
		key, ok := se.Detail(DetailKey)
		return &errkind.KeyNotFoundError{Message: se.Message(), Key: key}, ok
	},
	codes.ValidationFailure: func(se ServiceError) (error, bool) {
		value, okValue := rebuildValue(se)
		attr, okAttr := se.Detail(DetailAttributeErrorMessage)
		members, okMembers := se.Detail(DetailResultMemberNames)
		e := &errkind.ValidationError{Message: se.Message(), Value: value, Attribute: attr}
		if members != "" {
			e.MemberNames = strings.Split(members, ", ")
		}
		return e, okValue && okAttr && okMembers
	},
	codes.DbUpdateFailure: func(se ServiceError) (error, bool) {
		entity, ok := se.Detail(DetailEntity)
		return &errkind.DbUpdateError{Message: se.Message(), Entity: entity}, ok
	},
	codes.DbUpdateConcurrency: func(se ServiceError) (error, bool) {
		entity, ok := se.Detail(DetailEntity)
		return &errkind.DbUpdateConcurrencyError{DbUpdateError: errkind.DbUpdateError{Message: se.Message(), Entity: entity}}, ok
	},

	codes.InvalidOperation: func(se ServiceError) (error, bool) {
		return &errkind.InvalidOperationError{Message: se.Message()}, true
	},
	codes.ObjectDisposed: func(se ServiceError) (error, bool) {
		name, ok := se.Detail(DetailObjectName)
		return &errkind.ObjectDisposedError{InvalidOperationError: errkind.InvalidOperationError{Message: se.Message()}, ObjectName: name}, ok
	},
	codes.NotSupported: func(se ServiceError) (error, bool) {
		return &errkind.NotSupportedError{Message: se.Message()}, true
	},
	codes.PlatformNotSupported: func(se ServiceError) (error, bool) {
		return &errkind.PlatformNotSupportedError{NotSupportedError: errkind.NotSupportedError{Message: se.Message()}}, true
	},
	codes.NotImplemented: func(se ServiceError) (error, bool) {
		return &errkind.NotImplementedError{Message: se.Message()}, true
	},
	codes.Timeout: func(se ServiceError) (error, bool) {
		return &errkind.TimeoutError{Message: se.Message()}, true
	},
	codes.OperationCanceled: func(ServiceError) (error, bool) {
		return context.Canceled, true
	},
	codes.EndOfStream: func(se ServiceError) (error, bool) {
		if se.Message() == io.ErrUnexpectedEOF.Error() {
			return io.ErrUnexpectedEOF, true
		}
		return io.EOF, true
	},
}

// rebuildValue restores a Value detail with the type recorded under
// ValueType. Types other than strings, bools and the basic numerics come back
// as their rendered string and are reported as not exact.
func rebuildValue(se ServiceError) (any, bool) {
	raw, okRaw := se.Detail(DetailValue)
	typ, okType := se.Detail(DetailValueType)
	if !okRaw || !okType {
		if raw == "" {
			return nil, false
		}
		return raw, false
	}

	var (
		v   any
		err error
	)
	switch typ {
	case "":
		return nil, raw == ""
	case "string":
		return raw, true
	case "bool":
		v, err = strconv.ParseBool(raw)
	case "int":
		v, err = strconv.Atoi(raw)
	case "int64":
		v, err = strconv.ParseInt(raw, 10, 64)
	case "int32":
		var n int64
		n, err = strconv.ParseInt(raw, 10, 32)
		v = int32(n)
	case "uint":
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 0)
		v = uint(n)
	case "uint64":
		v, err = strconv.ParseUint(raw, 10, 64)
	case "float64":
		v, err = strconv.ParseFloat(raw, 64)
	default:
		return raw, false
	}
	if err != nil {
		return raw, false
	}
	return v, true
}

// sameType reports whether rebuilt has the Go type the fault was classified
// from. Faults built with New carry no Type detail and never match.
func sameType(se ServiceError, rebuilt error) bool {
	typeName, ok := se.Detail(DetailType)
	return ok && typeName != "" && typeName == TypeName(rebuilt)
}

func pathRebuild(sentinel error) rebuild {
	return func(se ServiceError) (error, bool) {
		name, okName := se.Detail(DetailFileName)
		op, okOp := se.Detail(DetailOperation)
		return &fs.PathError{Op: op, Path: name, Err: sentinel}, okName && okOp
	}
}

// RoundTripSafe reports whether faults tagged code can be rebuilt exactly,
// given their details were not stripped.
func RoundTripSafe(code codes.ErrorCode) bool {
	if code == codes.BadRequest || code.IsProtocolViolation() {
		return true
	}
	_, ok := rebuilders[code]
	return ok
}

// Reconstruct rebuilds the native error a fault most likely came from, using
// only the data carried by its ServiceError; the local cause is ignored so
// the result is the same on both sides of a process boundary.
//
// The library's own faults (BadRequest and the header violations) rebuild
// as the *ServiceFault itself. Tags with no native counterpart rebuild as
// *errkind.UnclassifiedError. For the other round-trip-safe tags Exact is
// set only when the rebuilt error has the recorded Type and every kind
// field came back with its original type, so a fault classified from
// redis.Nil or a *strconv.NumError rebuilds as an errkind approximation
// with Exact false.
func Reconstruct(f *ServiceFault) Reconstruction {
	if f == nil {
		return Reconstruction{}
	}
	se := f.err
	code := se.Code()
	switch {
	case code == codes.BadRequest || code.IsProtocolViolation():
		return Reconstruction{Err: FromServiceError(se, nil), Exact: true}
	case code == codes.AggregateFailure:
		return Reconstruction{Err: rebuildAggregate(se)}
	case code == codes.HttpIOFailure:
		op, _ := se.Detail(DetailOperation)
		u, _ := se.Detail(DetailURL)
		return Reconstruction{Err: &url.Error{Op: op, URL: u, Err: errors.New(se.Message())}}
	case code == codes.UriFormatException:
		u, _ := se.Detail(DetailURL)
		return Reconstruction{Err: &url.Error{Op: "parse", URL: u, Err: errors.New(se.Message())}}
	}
	if fn, ok := rebuilders[code]; ok {
		err, exact := fn(se)
		return Reconstruction{Err: err, Exact: exact && sameType(se, err)}
	}
	return Reconstruction{Err: unclassified(se)}
}

func rebuildAggregate(se ServiceError) error {
	names, _ := se.Detail(DetailExceptions)
	if names == "" {
		return errors.Join(unclassified(se))
	}
	var inner []error
	for _, name := range strings.Split(names, ", ") {
		inner = append(inner, &errkind.UnclassifiedError{TypeName: name})
	}
	return errors.Join(inner...)
}

func unclassified(se ServiceError) *errkind.UnclassifiedError {
	typeName, _ := se.Detail(DetailType)
	if typeName == "" {
		typeName = se.CodeName()
	}
	return &errkind.UnclassifiedError{TypeName: typeName, Message: se.Message()}
}
