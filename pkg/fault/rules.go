package fault

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"net"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/errkind"
)

// rules is evaluated top to bottom and the first match wins. errkind
// subtypes also match their parents' sentinels, so every subtype rule sits
// above its parent:
//
//   - ArgumentNull, ArgumentOutOfRange above ArgumentInvalid
//   - DivideByZero, NotFiniteNumber, OverflowFailure above ArithmeticInvalid
//   - DbUpdateConcurrency above DbUpdateFailure
//   - ObjectDisposed above InvalidOperation
//   - PlatformNotSupported above NotSupported
//
// Transport errors nest: a *url.Error may wrap a cancellation, a deadline or
// an EOF, so OperationCanceled and Timeout come first, then
// UriFormatException, then HttpIOFailure, and EndOfStream after those.
// gRPC status errors are matched last. Statuses no rule maps (Internal,
// AlreadyExists, ResourceExhausted, ...) fall through to None and keep their
// GrpcCode.
var rules = []rule{
	{code: codes.AggregateFailure, match: isAggregate, extract: aggregateDetails},

	{code: codes.ArgumentNull, match: is(errkind.ErrArgumentNull), extract: paramDetails},
	{code: codes.ArgumentOutOfRange, match: is(errkind.ErrArgumentOutOfRange), extract: outOfRangeDetails},
	{code: codes.ArgumentInvalid, match: is(errkind.ErrArgument), extract: paramDetails},

	{code: codes.DivideByZero, match: anyOf(is(errkind.ErrDivideByZero), runtimeMessage("integer divide by zero"))},
	{code: codes.NotFiniteNumber, match: is(errkind.ErrNotFiniteNumber), extract: notFiniteDetails},
	{code: codes.OverflowFailure, match: anyOf(is(errkind.ErrOverflow), numError(strconv.ErrRange))},
	{code: codes.ArithmeticInvalid, match: is(errkind.ErrArithmetic)},

	{code: codes.IndexOutOfRange, match: runtimeMessage("index out of range", "slice bounds out of range")},
	{code: codes.NullReference, match: runtimeMessage("nil pointer dereference", "invalid memory address", "assignment to entry in nil map")},
	{code: codes.InvalidCast, match: anyOf(has[*runtime.TypeAssertionError], has[*json.UnmarshalTypeError]), extract: castDetails},

	{code: codes.DbUpdateConcurrency, match: is(errkind.ErrDbUpdateConcurrency, redis.TxFailedErr), extract: entityDetails},
	{code: codes.DbUpdateFailure, match: is(errkind.ErrDbUpdate, gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated, gorm.ErrCheckConstraintViolated), extract: entityDetails},
	{code: codes.KeyNotFound, match: is(errkind.ErrKeyNotFound, redis.Nil, sql.ErrNoRows, gorm.ErrRecordNotFound), extract: keyDetails},
	{code: codes.ValidationFailure, match: anyOf(is(errkind.ErrValidation), has[validator.ValidationErrors]), extract: validationDetails},

	{code: codes.OperationCanceled, match: is(context.Canceled)},
	{code: codes.Timeout, match: anyOf(is(errkind.ErrTimeout, context.DeadlineExceeded, os.ErrDeadlineExceeded, http.ErrHandlerTimeout), isNetTimeout)},
	{code: codes.UriFormatException, match: isURLFormat, extract: urlFormatDetails},
	{code: codes.HttpIOFailure, match: has[*url.Error], extract: httpDetails},

	{code: codes.PathTooLongFileName, match: is(syscall.ENAMETOOLONG), extract: pathDetails},
	{code: codes.FileNotFound, match: is(fs.ErrNotExist), extract: pathDetails},
	{code: codes.UnauthorizedAccess, match: is(fs.ErrPermission), extract: pathDetails},
	{code: codes.EndOfStream, match: is(io.EOF, io.ErrUnexpectedEOF)},

	{code: codes.FormatInvalid, match: anyOf(is(errkind.ErrFormat), numError(strconv.ErrSyntax), has[*time.ParseError]), extract: formatDetails},
	{code: codes.InvalidData, match: anyOf(has[*json.SyntaxError], is(gorm.ErrInvalidData)), extract: dataDetails},

	{code: codes.ObjectDisposed, match: is(errkind.ErrObjectDisposed, net.ErrClosed, os.ErrClosed, http.ErrServerClosed, redis.ErrClosed), extract: disposedDetails},
	{code: codes.InvalidOperation, match: is(errkind.ErrInvalidOperation, gorm.ErrInvalidTransaction, gorm.ErrMissingWhereClause)},
	{code: codes.PlatformNotSupported, match: is(errkind.ErrPlatformNotSupported)},
	{code: codes.NotSupported, match: is(errkind.ErrNotSupported, errors.ErrUnsupported, gorm.ErrUnsupportedDriver)},
	{code: codes.NotImplemented, match: is(errkind.ErrNotImplemented, gorm.ErrNotImplemented)},

	{code: codes.ArgumentInvalid, match: grpcStatus(grpccodes.InvalidArgument), extract: withGrpc(paramDetails)},
	{code: codes.ArgumentOutOfRange, match: grpcStatus(grpccodes.OutOfRange), extract: withGrpc(outOfRangeDetails)},
	{code: codes.KeyNotFound, match: grpcStatus(grpccodes.NotFound), extract: withGrpc(keyDetails)},
	{code: codes.Timeout, match: grpcStatus(grpccodes.DeadlineExceeded), extract: grpcDetails},
	{code: codes.OperationCanceled, match: grpcStatus(grpccodes.Canceled), extract: grpcDetails},
	{code: codes.UnauthorizedAccess, match: grpcStatus(grpccodes.PermissionDenied), extract: withGrpc(pathDetails)},
	{code: codes.NotImplemented, match: grpcStatus(grpccodes.Unimplemented), extract: grpcDetails},
	{code: codes.InvalidOperation, match: grpcStatus(grpccodes.FailedPrecondition), extract: grpcDetails},
	{code: codes.HttpIOFailure, match: grpcStatus(grpccodes.Unavailable), extract: withGrpc(httpDetails)},
	{code: codes.DbUpdateConcurrency, match: grpcStatus(grpccodes.Aborted), extract: withGrpc(entityDetails)},
}

// multiError is implemented by errors.Join and fmt.Errorf with several %w verbs.
type multiError interface {
	error
	Unwrap() []error
}

// matchers

func is(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}
}

func anyOf(ms ...func(error) bool) func(error) bool {
	return func(err error) bool {
		for _, m := range ms {
			if m(err) {
				return true
			}
		}
		return false
	}
}

func has[T error](err error) bool {
	_, ok := find[T](err)
	return ok
}

func find[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}

func runtimeMessage(fragments ...string) func(error) bool {
	return func(err error) bool {
		re, ok := find[runtime.Error](err)
		if !ok {
			return false
		}
		msg := re.Error()
		for _, f := range fragments {
			if strings.Contains(msg, f) {
				return true
			}
		}
		return false
	}
}

func numError(cause error) func(error) bool {
	return func(err error) bool {
		ne, ok := find[*strconv.NumError](err)
		return ok && errors.Is(ne.Err, cause)
	}
}

func isAggregate(err error) bool {
	_, ok := find[multiError](err)
	return ok
}

func isNetTimeout(err error) bool {
	ne, ok := find[net.Error](err)
	return ok && ne.Timeout()
}

func isURLFormat(err error) bool {
	if ue, ok := find[*url.Error](err); ok && ue.Op == "parse" {
		return true
	}
	return has[url.EscapeError](err) || has[url.InvalidHostError](err)
}

func grpcStatus(c grpccodes.Code) func(error) bool {
	return func(err error) bool {
		st, ok := status.FromError(err)
		return ok && st.Code() == c
	}
}

// extractors. Every key of a kind is always present; a source field that
// does not exist on the matched error becomes "".

func aggregateDetails(err error) map[string]string {
	multi, _ := find[multiError](err)
	var names []string
	if multi != nil {
		for _, inner := range multi.Unwrap() {
			names = append(names, shortTypeName(inner))
		}
	}
	return map[string]string{DetailExceptions: strings.Join(names, ", ")}
}

func paramDetails(err error) map[string]string {
	d := map[string]string{DetailParamName: ""}
	if p, ok := find[interface {
		error
		Param() string
	}](err); ok {
		d[DetailParamName] = p.Param()
	}
	return d
}

func outOfRangeDetails(err error) map[string]string {
	d := paramDetails(err)
	d[DetailValue], d[DetailValueType] = "", ""
	if e, ok := find[*errkind.ArgumentOutOfRangeError](err); ok {
		d[DetailValue], d[DetailValueType] = renderValue(e.ActualValue)
	}
	return d
}

// renderValue returns v and its %T, or two empty strings for nil.
func renderValue(v any) (string, string) {
	if v == nil {
		return "", ""
	}
	return fmt.Sprint(v), fmt.Sprintf("%T", v)
}

func notFiniteDetails(err error) map[string]string {
	d := map[string]string{DetailOffendingNumber: ""}
	if e, ok := find[*errkind.NotFiniteNumberError](err); ok {
		d[DetailOffendingNumber] = e.OffendingNumber()
	}
	return d
}

func castDetails(err error) map[string]string {
	d := map[string]string{DetailValue: "", DetailTargetType: ""}
	if e, ok := find[*json.UnmarshalTypeError](err); ok {
		d[DetailValue] = e.Value
		if e.Type != nil {
			d[DetailTargetType] = e.Type.String()
		}
	}
	return d
}

func entityDetails(err error) map[string]string {
	d := map[string]string{DetailEntity: ""}
	if e, ok := find[*errkind.DbUpdateError](err); ok {
		d[DetailEntity] = e.Entity
	} else if e, ok := find[*errkind.DbUpdateConcurrencyError](err); ok {
		d[DetailEntity] = e.Entity
	}
	return d
}

func keyDetails(err error) map[string]string {
	d := map[string]string{DetailKey: ""}
	if e, ok := find[*errkind.KeyNotFoundError](err); ok {
		d[DetailKey] = e.Key
	}
	return d
}

func validationDetails(err error) map[string]string {
	d := map[string]string{DetailValue: "", DetailValueType: "", DetailAttributeErrorMessage: "", DetailResultMemberNames: ""}
	if e, ok := find[*errkind.ValidationError](err); ok {
		d[DetailValue], d[DetailValueType] = renderValue(e.Value)
		d[DetailAttributeErrorMessage] = e.Attribute
		d[DetailResultMemberNames] = strings.Join(e.MemberNames, ", ")
		return d
	}
	if ves, ok := find[validator.ValidationErrors](err); ok && len(ves) > 0 {
		first := ves[0]
		d[DetailValue], d[DetailValueType] = renderValue(first.Value())
		d[DetailAttributeErrorMessage] = first.Tag()
		if first.Param() != "" {
			d[DetailAttributeErrorMessage] += "=" + first.Param()
		}
		members := make([]string, 0, len(ves))
		for _, fe := range ves {
			members = append(members, fe.Namespace())
		}
		d[DetailResultMemberNames] = strings.Join(members, ", ")
	}
	return d
}

func urlFormatDetails(err error) map[string]string {
	d := map[string]string{DetailURL: ""}
	if ue, ok := find[*url.Error](err); ok {
		d[DetailURL] = ue.URL
	} else if ee, ok := find[url.EscapeError](err); ok {
		d[DetailURL] = string(ee)
	} else if he, ok := find[url.InvalidHostError](err); ok {
		d[DetailURL] = string(he)
	}
	return d
}

func httpDetails(err error) map[string]string {
	d := map[string]string{DetailOperation: "", DetailURL: ""}
	if ue, ok := find[*url.Error](err); ok {
		d[DetailOperation] = ue.Op
		d[DetailURL] = ue.URL
	}
	return d
}

func pathDetails(err error) map[string]string {
	d := map[string]string{DetailFileName: "", DetailOperation: ""}
	if pe, ok := find[*fs.PathError](err); ok {
		d[DetailFileName] = pe.Path
		d[DetailOperation] = pe.Op
	}
	return d
}

func formatDetails(err error) map[string]string {
	d := map[string]string{DetailValue: "", DetailLayout: ""}
	if e, ok := find[*errkind.FormatError](err); ok {
		d[DetailValue] = e.Value
		d[DetailLayout] = e.Layout
	} else if e, ok := find[*time.ParseError](err); ok {
		d[DetailValue] = e.Value
		d[DetailLayout] = e.Layout
	} else if e, ok := find[*strconv.NumError](err); ok {
		d[DetailValue] = e.Num
		d[DetailLayout] = e.Func
	}
	return d
}

func dataDetails(err error) map[string]string {
	d := map[string]string{DetailOffset: ""}
	if e, ok := find[*json.SyntaxError](err); ok {
		d[DetailOffset] = strconv.FormatInt(e.Offset, 10)
	}
	return d
}

func disposedDetails(err error) map[string]string {
	d := map[string]string{DetailObjectName: ""}
	if e, ok := find[*errkind.ObjectDisposedError](err); ok {
		d[DetailObjectName] = e.ObjectName
	}
	return d
}

func grpcDetails(err error) map[string]string {
	st, _ := status.FromError(err)
	return map[string]string{DetailGrpcCode: st.Code().String()}
}

// withGrpc adds GrpcCode to the keys of the kind the status was mapped to.
func withGrpc(kind func(error) map[string]string) func(error) map[string]string {
	return func(err error) map[string]string {
		d := kind(err)
		maps.Copy(d, grpcDetails(err))
		return d
	}
}

// statusCodeDetails runs on the catch-all path: a gRPC status keeps its code.
func statusCodeDetails(err error) map[string]string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	return map[string]string{DetailGrpcCode: st.Code().String()}
}
