package fault

import (
	"errors"
	"reflect"

	pkgerrors "github.com/pkg/errors"

	"github.com/Goden-Gun/service-lib/pkg/errkind"
)

// Generic detail keys, present on every classified fault.
const (
	DetailType        = "Type"
	DetailBaseMessage = "BaseMessage"
	DetailSource      = "Source"
	DetailMethod      = "Method"
	DetailStackTrace  = "StackTrace"
	DetailHelpLink    = "HelpLink"
)

// Kind-specific detail keys.
const (
	DetailExceptions            = "Exceptions"
	DetailParamName             = "ParamName"
	DetailValue                 = "Value"
	DetailValueType             = "ValueType"
	DetailOffendingNumber       = "OffendingNumber"
	DetailFileName              = "FileName"
	DetailOperation             = "Operation"
	DetailLayout                = "Layout"
	DetailTargetType            = "TargetType"
	DetailOffset                = "Offset"
	DetailKey                   = "Key"
	DetailObjectName            = "ObjectName"
	DetailURL                   = "URL"
	DetailAttributeErrorMessage = "AttributeErrorMessage"
	DetailResultMemberNames     = "ResultMemberNames"
	DetailEntity                = "Entity"
	DetailGrpcCode              = "GrpcCode"
)

// pkgStackTracer is implemented by errors created with github.com/pkg/errors.
type pkgStackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

type helpLinker interface {
	HelpLink() string
}

// genericDetails snapshots the diagnostic fields shared by every kind.
// Each field is computed independently so one failing accessor cannot
// take the others down.
func genericDetails(err error) map[string]string {
	d := make(map[string]string, 8)
	d[DetailType] = guard(func() string {
		// a recovered panic reports the type of what was thrown
		var pe *errkind.PanicError
		if errors.As(err, &pe) && pe.Unwrap() != nil {
			return TypeName(pe.Unwrap())
		}
		return TypeName(err)
	})
	d[DetailBaseMessage] = guard(func() string { return baseError(err).Error() })
	d[DetailHelpLink] = guard(func() string {
		var hl helpLinker
		if errors.As(err, &hl) {
			return hl.HelpLink()
		}
		return ""
	})

	stack := guardStack(func() errkind.Stack { return stackOf(err) })
	d[DetailSource], d[DetailMethod] = stack.Origin()
	d[DetailStackTrace] = stack.String()
	return d
}

// TypeName renders the dynamic type of err with its full import path,
// e.g. "*github.com/Goden-Gun/service-lib/pkg/errkind.ArgumentError".
func TypeName(err error) string {
	if err == nil {
		return ""
	}
	t := reflect.TypeOf(err)
	prefix := ""
	for t.Kind() == reflect.Pointer {
		prefix += "*"
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return prefix + t.String()
	}
	return prefix + t.PkgPath() + "." + t.Name()
}

// shortTypeName renders the type the way fmt's %T does, e.g. "*fs.PathError".
func shortTypeName(err error) string {
	if err == nil {
		return "<nil>"
	}
	return reflect.TypeOf(err).String()
}

// baseError follows the single-unwrap chain to its innermost error.
func baseError(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// stackOf returns the outermost stack found on the chain, preferring the
// library's own kinds over github.com/pkg/errors.
func stackOf(err error) errkind.Stack {
	var st errkind.StackTracer
	if errors.As(err, &st) {
		if s := st.StackTrace(); len(s) > 0 {
			return s
		}
	}
	var pst pkgStackTracer
	if errors.As(err, &pst) {
		frames := pst.StackTrace()
		s := make(errkind.Stack, len(frames))
		for i, f := range frames {
			s[i] = uintptr(f)
		}
		return s
	}
	return nil
}

func guard(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return fn()
}

func guardStack(fn func() errkind.Stack) (s errkind.Stack) {
	defer func() {
		if recover() != nil {
			s = nil
		}
	}()
	return fn()
}
