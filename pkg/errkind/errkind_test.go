package errkind

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		is      []error
		isNot   []error
		message string
	}{
		{
			name:    "argument",
			err:     NewArgument("id", ""),
			is:      []error{ErrArgument},
			isNot:   []error{ErrArgumentNull, ErrArgumentOutOfRange},
			message: "value does not fall within the expected range",
		},
		{
			name:    "argument null",
			err:     NewArgumentNull("id", ""),
			is:      []error{ErrArgument, ErrArgumentNull},
			isNot:   []error{ErrArgumentOutOfRange},
			message: "value cannot be nil",
		},
		{
			name:    "argument out of range",
			err:     NewArgumentOutOfRange("n", -1, "n must be positive"),
			is:      []error{ErrArgument, ErrArgumentOutOfRange},
			isNot:   []error{ErrArgumentNull},
			message: "n must be positive",
		},
		{
			name:  "divide by zero",
			err:   NewDivideByZero(""),
			is:    []error{ErrArithmetic, ErrDivideByZero},
			isNot: []error{ErrOverflow},
		},
		{
			name:  "overflow",
			err:   NewOverflow(""),
			is:    []error{ErrArithmetic, ErrOverflow},
			isNot: []error{ErrDivideByZero},
		},
		{
			name: "not finite",
			err:  NewNotFiniteNumber(math.NaN(), ""),
			is:   []error{ErrArithmetic, ErrNotFiniteNumber},
		},
		{
			name:  "object disposed",
			err:   NewObjectDisposed("pool", ""),
			is:    []error{ErrInvalidOperation, ErrObjectDisposed},
			isNot: []error{ErrNotSupported},
		},
		{
			name: "platform not supported",
			err:  NewPlatformNotSupported(""),
			is:   []error{ErrNotSupported, ErrPlatformNotSupported, errors.ErrUnsupported},
		},
		{
			name:  "not supported",
			err:   NewNotSupported(""),
			is:    []error{ErrNotSupported, errors.ErrUnsupported},
			isNot: []error{ErrPlatformNotSupported},
		},
		{
			name:  "db concurrency",
			err:   NewDbUpdateConcurrency("orders", ""),
			is:    []error{ErrDbUpdate, ErrDbUpdateConcurrency},
			isNot: []error{ErrKeyNotFound},
		},
		{
			name:    "key not found",
			err:     NewKeyNotFound("user:1", ""),
			is:      []error{ErrKeyNotFound},
			message: "the given key 'user:1' was not present",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			for _, target := range tt.is {
				assert.ErrorIs(t, wrapped, target)
			}
			for _, target := range tt.isNot {
				assert.NotErrorIs(t, wrapped, target)
			}
			if tt.message != "" {
				assert.Equal(t, tt.message, tt.err.Error())
			}
		})
	}
}

func TestArgumentFamily_ParamPromoted(t *testing.T) {
	var arg interface{ Param() string }
	err := fmt.Errorf("wrap: %w", NewArgumentOutOfRange("limit", 500, ""))
	require.True(t, errors.As(err, &arg))
	assert.Equal(t, "limit", arg.Param())
}

func TestConstructors_CaptureCaller(t *testing.T) {
	err := NewInvalidOperation("boom")
	pkg, fn := err.StackTrace().Origin()
	assert.True(t, strings.HasSuffix(pkg, "pkg/errkind"), pkg)
	assert.Equal(t, "TestConstructors_CaptureCaller", fn)
	assert.Contains(t, err.StackTrace().String(), "errkind_test.go")
}

func TestLiteral_HasNoStack(t *testing.T) {
	err := &TimeoutError{}
	assert.Nil(t, err.StackTrace())
	pkg, fn := err.StackTrace().Origin()
	assert.Empty(t, pkg)
	assert.Empty(t, fn)
	assert.Empty(t, err.StackTrace().String())
	assert.True(t, err.Timeout())
}

func TestSplitFunction(t *testing.T) {
	tests := []struct {
		in, pkg, fn string
	}{
		{"github.com/a/b/pkg.(*T).Method", "github.com/a/b/pkg", "(*T).Method"},
		{"main.main", "main", "main"},
		{"github.com/a/b.Func.func1", "github.com/a/b", "Func.func1"},
		{"nodot", "", "nodot"},
	}
	for _, tt := range tests {
		pkg, fn := SplitFunction(tt.in)
		assert.Equal(t, tt.pkg, pkg, tt.in)
		assert.Equal(t, tt.fn, fn, tt.in)
	}
}

func TestRecovered_RuntimeError(t *testing.T) {
	var perr *PanicError
	func() {
		defer func() {
			perr = Recovered(recover())
		}()
		var m map[string]int
		m["x"] = 1 // assignment to nil map panics with a runtime.Error
	}()
	require.NotNil(t, perr)

	re, ok := perr.RuntimeError()
	require.True(t, ok)
	var target runtime.Error
	assert.ErrorAs(t, perr, &target)
	assert.Equal(t, re.Error(), perr.Error())
	assert.NotEmpty(t, perr.StackTrace())
}

func TestRecovered_PlainValue(t *testing.T) {
	perr := Recovered("bad state")
	assert.Equal(t, "panic: bad state", perr.Error())
	assert.Nil(t, perr.Unwrap())
	_, ok := perr.RuntimeError()
	assert.False(t, ok)
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidation("", "x", "email", "User.Email")
	assert.Equal(t, "validation failed for User.Email", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
