package fault

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/errkind"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil, "tx"))
}

func TestClassify_Tags(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.ErrorCode
	}{
		{"argument null", errkind.NewArgumentNull("id", ""), codes.ArgumentNull},
		{"argument out of range", errkind.NewArgumentOutOfRange("n", 5, ""), codes.ArgumentOutOfRange},
		{"argument", errkind.NewArgument("id", "bad id"), codes.ArgumentInvalid},
		{"wrapped argument out of range", fmt.Errorf("svc: %w", errkind.NewArgumentOutOfRange("n", 5, "")), codes.ArgumentOutOfRange},
		{"divide by zero", errkind.NewDivideByZero(""), codes.DivideByZero},
		{"not finite", errkind.NewNotFiniteNumber(math.Inf(1), ""), codes.NotFiniteNumber},
		{"overflow", errkind.NewOverflow(""), codes.OverflowFailure},
		{"arithmetic", errkind.NewArithmetic(""), codes.ArithmeticInvalid},
		{"db concurrency", errkind.NewDbUpdateConcurrency("order", ""), codes.DbUpdateConcurrency},
		{"db update", errkind.NewDbUpdate("order", errors.New("constraint"), ""), codes.DbUpdateFailure},
		{"key not found", errkind.NewKeyNotFound("k", ""), codes.KeyNotFound},
		{"validation", errkind.NewValidation("", "x", "email", "Email"), codes.ValidationFailure},
		{"format", errkind.NewFormat("x", "yyyy", ""), codes.FormatInvalid},
		{"object disposed", errkind.NewObjectDisposed("pool", ""), codes.ObjectDisposed},
		{"invalid operation", errkind.NewInvalidOperation(""), codes.InvalidOperation},
		{"platform not supported", errkind.NewPlatformNotSupported(""), codes.PlatformNotSupported},
		{"not supported", errkind.NewNotSupported(""), codes.NotSupported},
		{"not implemented", errkind.NewNotImplemented(""), codes.NotImplemented},
		{"timeout", errkind.NewTimeout(""), codes.Timeout},

		{"errors.ErrUnsupported", errors.ErrUnsupported, codes.NotSupported},
		{"context canceled", context.Canceled, codes.OperationCanceled},
		{"context deadline", context.DeadlineExceeded, codes.Timeout},
		{"os deadline", fmt.Errorf("read: %w", os.ErrDeadlineExceeded), codes.Timeout},
		{"eof", io.EOF, codes.EndOfStream},
		{"unexpected eof", io.ErrUnexpectedEOF, codes.EndOfStream},
		{"net closed", net.ErrClosed, codes.ObjectDisposed},
		{"server closed", http.ErrServerClosed, codes.ObjectDisposed},
		{"sql no rows", sql.ErrNoRows, codes.KeyNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/etc/shadow", Err: fs.ErrPermission}, codes.UnauthorizedAccess},
		{"name too long", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENAMETOOLONG}, codes.PathTooLongFileName},

		{"redis nil", redis.Nil, codes.KeyNotFound},
		{"redis closed", redis.ErrClosed, codes.ObjectDisposed},
		{"redis tx failed", redis.TxFailedErr, codes.DbUpdateConcurrency},
		{"gorm not found", fmt.Errorf("load user: %w", gorm.ErrRecordNotFound), codes.KeyNotFound},
		{"gorm duplicated", gorm.ErrDuplicatedKey, codes.DbUpdateFailure},
		{"gorm invalid transaction", gorm.ErrInvalidTransaction, codes.InvalidOperation},

		{"url canceled", &url.Error{Op: "Get", URL: "http://svc", Err: context.Canceled}, codes.OperationCanceled},
		{"url timeout", &url.Error{Op: "Get", URL: "http://svc", Err: context.DeadlineExceeded}, codes.Timeout},
		{"url eof", &url.Error{Op: "Get", URL: "http://svc", Err: io.EOF}, codes.HttpIOFailure},
		{"url escape", url.EscapeError("%zz"), codes.UriFormatException},

		{"grpc not found", status.Error(grpccodes.NotFound, "nf"), codes.KeyNotFound},
		{"grpc invalid", status.Error(grpccodes.InvalidArgument, "bad"), codes.ArgumentInvalid},
		{"grpc internal", status.Error(grpccodes.Internal, "boom"), codes.None},

		{"plain", errors.New("boom"), codes.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.err, "")
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Code(), "got %s", f.Code())
			assert.Equal(t, tt.err.Error(), f.ServiceError().Message())
			assert.Equal(t, tt.err, f.Cause())
		})
	}
}

func TestClassify_SubtypeWinsOverParent(t *testing.T) {
	f := Classify(errkind.NewArgumentOutOfRange("n", 5, "n too large"), "")

	assert.Equal(t, codes.ArgumentOutOfRange, f.Code())
	se := f.ServiceError()
	assert.Equal(t, "n too large", se.Message())
	param, _ := se.Detail(DetailParamName)
	value, _ := se.Detail(DetailValue)
	assert.Equal(t, "n", param)
	assert.Equal(t, "5", value)
}

func TestClassify_Idempotent(t *testing.T) {
	first := Classify(errkind.NewTimeout("slow"), "c1")

	assert.Same(t, first, Classify(first, "c2"))
	assert.Same(t, first, Classify(fmt.Errorf("handler: %w", first), "c2"))
	assert.Equal(t, "c1", Classify(first, "c2").ServiceError().CorrelationID())
}

func TestClassify_JoinedFaultIsAggregate(t *testing.T) {
	bad := New(codes.BadRequest, "bad")
	joined := errors.Join(bad, io.EOF)

	for _, err := range []error{joined, fmt.Errorf("batch: %w", joined)} {
		f := Classify(err, "tx")
		require.NotSame(t, bad, f)
		assert.Equal(t, codes.AggregateFailure, f.Code())
		names, ok := f.ServiceError().Detail(DetailExceptions)
		assert.True(t, ok)
		assert.Equal(t, "*fault.ServiceFault, *errors.errorString", names)
		assert.Equal(t, "tx", f.ServiceError().CorrelationID())
	}
}

func TestClassify_CorrelationIDVerbatim(t *testing.T) {
	assert.Equal(t, "tx-42", Classify(io.EOF, "tx-42").ServiceError().CorrelationID())
	assert.Empty(t, Classify(io.EOF, "").ServiceError().CorrelationID())
}

func TestClassify_CatchAll(t *testing.T) {
	f := Classify(errors.New("boom"), "")
	se := f.ServiceError()

	assert.Equal(t, codes.None, se.Code())
	assert.Equal(t, "boom", se.Message())
	typ, _ := se.Detail(DetailType)
	assert.Equal(t, "*errors.errorString", typ)
	base, _ := se.Detail(DetailBaseMessage)
	assert.Equal(t, "boom", base)
}

func TestClassify_GenericDetails(t *testing.T) {
	err := fmt.Errorf("outer: %w", errkind.NewInvalidOperation("inner"))
	se := Classify(err, "").ServiceError()

	typ, _ := se.Detail(DetailType)
	assert.Equal(t, "*fmt.wrapError", typ)
	base, _ := se.Detail(DetailBaseMessage)
	assert.Equal(t, "inner", base)

	source, _ := se.Detail(DetailSource)
	method, _ := se.Detail(DetailMethod)
	assert.True(t, strings.HasSuffix(source, "pkg/fault"), source)
	assert.Equal(t, "TestClassify_GenericDetails", method)

	trace, _ := se.Detail(DetailStackTrace)
	assert.Contains(t, trace, "classify_test.go")

	link, ok := se.Detail(DetailHelpLink)
	assert.True(t, ok)
	assert.Empty(t, link)
}

func TestClassify_PkgErrorsStack(t *testing.T) {
	se := Classify(pkgerrors.New("legacy"), "").ServiceError()

	method, _ := se.Detail(DetailMethod)
	assert.Equal(t, "TestClassify_PkgErrorsStack", method)
	trace, _ := se.Detail(DetailStackTrace)
	assert.Contains(t, trace, "classify_test.go")
}

type linkedError struct{}

func (linkedError) Error() string    { return "see docs" }
func (linkedError) HelpLink() string { return "https://example.com/errors/42" }

func TestClassify_HelpLink(t *testing.T) {
	link, _ := Classify(linkedError{}, "").ServiceError().Detail(DetailHelpLink)
	assert.Equal(t, "https://example.com/errors/42", link)
}

func TestClassify_RecoveredRuntimePanics(t *testing.T) {
	divide := func(a, b int) int { return a / b }
	tests := []struct {
		name string
		fn   func()
		want codes.ErrorCode
	}{
		{"divide", func() { _ = divide(1, 0) }, codes.DivideByZero},
		{"index", func() {
			s := []int{}
			i := 3
			_ = s[i]
		}, codes.IndexOutOfRange},
		{"nil pointer", func() {
			var p *struct{ X int }
			_ = p.X
		}, codes.NullReference},
		{"type assertion", func() {
			var v any = "str"
			_ = v.(int)
		}, codes.InvalidCast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := capturePanic(tt.fn)
			require.Error(t, err)
			f := Classify(err, "")
			assert.Equal(t, tt.want, f.Code())

			typ, _ := f.ServiceError().Detail(DetailType)
			assert.True(t, strings.HasPrefix(typ, "runtime.") || strings.HasPrefix(typ, "*runtime."), typ)
			trace, _ := f.ServiceError().Detail(DetailStackTrace)
			assert.Contains(t, trace, "classify_test.go")
		})
	}
}

func capturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errkind.Recovered(r)
		}
	}()
	fn()
	return nil
}

func TestClassify_KindDetails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, openErr := os.Open(missing)

	_, atoiErr := strconv.Atoi("abc")
	_, timeErr := time.Parse("2006-01-02", "nope")
	_, urlErr := url.Parse(":")

	var target struct {
		N int `json:"n"`
	}
	castErr := json.Unmarshal([]byte(`{"n":"x"}`), &target)

	type signup struct {
		Email string `validate:"required,email"`
		Age   int    `validate:"max=10"`
	}
	validationErr := validator.New().Struct(signup{Email: "x", Age: 20})

	tests := []struct {
		name string
		err  error
		want codes.ErrorCode
		keys map[string]string
	}{
		{"file not found", openErr, codes.FileNotFound, map[string]string{DetailFileName: missing, DetailOperation: "open"}},
		{"bare not exist", fs.ErrNotExist, codes.FileNotFound, map[string]string{DetailFileName: "", DetailOperation: ""}},
		{"atoi", atoiErr, codes.FormatInvalid, map[string]string{DetailValue: "abc", DetailLayout: "Atoi"}},
		{"time", timeErr, codes.FormatInvalid, map[string]string{DetailValue: "nope", DetailLayout: "2006-01-02"}},
		{"url parse", urlErr, codes.UriFormatException, map[string]string{DetailURL: ":"}},
		{"json cast", castErr, codes.InvalidCast, map[string]string{DetailValue: "string", DetailTargetType: "int"}},
		{"validator", validationErr, codes.ValidationFailure, map[string]string{
			DetailValue:                 "x",
			DetailAttributeErrorMessage: "email",
			DetailResultMemberNames:     "signup.Email, signup.Age",
		}},
		{"http io", &url.Error{Op: "Post", URL: "http://svc/a", Err: io.ErrUnexpectedEOF}, codes.HttpIOFailure,
			map[string]string{DetailOperation: "Post", DetailURL: "http://svc/a"}},
		{"not finite", errkind.NewNotFiniteNumber(math.Inf(1), ""), codes.NotFiniteNumber, map[string]string{DetailOffendingNumber: "+Inf"}},
		{"object disposed", errkind.NewObjectDisposed("pool", ""), codes.ObjectDisposed, map[string]string{DetailObjectName: "pool"}},
		{"object disposed from net", net.ErrClosed, codes.ObjectDisposed, map[string]string{DetailObjectName: ""}},
		{"db concurrency", errkind.NewDbUpdateConcurrency("order", ""), codes.DbUpdateConcurrency, map[string]string{DetailEntity: "order"}},
		{"key", errkind.NewKeyNotFound("user:1", ""), codes.KeyNotFound, map[string]string{DetailKey: "user:1"}},
		{"redis key", redis.Nil, codes.KeyNotFound, map[string]string{DetailKey: ""}},
		{"grpc", status.Error(grpccodes.PermissionDenied, "no"), codes.UnauthorizedAccess, map[string]string{DetailGrpcCode: "PermissionDenied"}},
		{"aggregate", errors.Join(errkind.NewArgument("a", ""), io.EOF), codes.AggregateFailure,
			map[string]string{DetailExceptions: "*errkind.ArgumentError, *errors.errorString"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			se := Classify(tt.err, "").ServiceError()
			require.Equal(t, tt.want, se.Code(), "got %s", se.Code())
			for k, want := range tt.keys {
				got, ok := se.Detail(k)
				assert.True(t, ok, "missing detail %s", k)
				assert.Equal(t, want, got, k)
			}
		})
	}
}

func TestClassify_InvalidDataOffset(t *testing.T) {
	var v []int
	err := json.Unmarshal([]byte(`[1,2`), &v)
	se := Classify(err, "").ServiceError()

	assert.Equal(t, codes.InvalidData, se.Code())
	offset, ok := se.Detail(DetailOffset)
	assert.True(t, ok)
	assert.NotEmpty(t, offset)
}

func TestClassify_NumericOverflow(t *testing.T) {
	_, err := strconv.ParseInt("99999999999999999999", 10, 64)
	assert.Equal(t, codes.OverflowFailure, Classify(err, "").Code())
}

type panickyParam struct{}

func (panickyParam) Error() string        { return "bad param" }
func (panickyParam) Is(target error) bool { return target == errkind.ErrArgument }
func (panickyParam) Param() string        { panic("accessor exploded") }
func (panickyParam) HelpLink() string     { panic("accessor exploded") }

func TestClassify_PanickingExtractorIsOmitted(t *testing.T) {
	var f *ServiceFault
	require.NotPanics(t, func() { f = Classify(panickyParam{}, "") })

	se := f.ServiceError()
	assert.Equal(t, codes.ArgumentInvalid, se.Code())
	assert.Equal(t, "bad param", se.Message())
	_, ok := se.Detail(DetailParamName)
	assert.False(t, ok)
	typ, _ := se.Detail(DetailType)
	assert.Contains(t, typ, "panickyParam")
	link, _ := se.Detail(DetailHelpLink)
	assert.Empty(t, link)
}

type panickyIs struct{}

func (panickyIs) Error() string        { return "odd" }
func (panickyIs) Is(target error) bool { panic("is exploded") }

type panickyMessage struct{}

func (panickyMessage) Error() string { panic("error exploded") }

func TestClassify_NeverPanics(t *testing.T) {
	var f *ServiceFault
	require.NotPanics(t, func() { f = Classify(panickyIs{}, "tx") })
	assert.Equal(t, codes.None, f.Code())
	assert.Equal(t, "odd", f.ServiceError().Message())

	require.NotPanics(t, func() { f = Classify(panickyMessage{}, "tx") })
	assert.Equal(t, codes.None, f.Code())
	assert.Empty(t, f.ServiceError().Message())
	assert.Equal(t, "tx", f.ServiceError().CorrelationID())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "", TypeName(nil))
	assert.Equal(t, "*io/fs.PathError", TypeName(&fs.PathError{}))
	assert.Equal(t, "syscall.Errno", TypeName(syscall.ENOENT))
	assert.Equal(t, "*github.com/Goden-Gun/service-lib/pkg/errkind.ArgumentError", TypeName(errkind.NewArgument("a", "")))
}
