package fault

import (
	"errors"
	"maps"

	"github.com/Goden-Gun/service-lib/pkg/codes"
)

// rule maps one family of native errors onto a tag. match must search the
// whole wrap chain; extract returns the kind-specific details and may be nil.
type rule struct {
	code    codes.ErrorCode
	match   func(error) bool
	extract func(error) map[string]string
}

// Classify maps err onto the taxonomy.
//
// If the single-unwrap chain already holds a *ServiceFault, that fault is
// returned unchanged. A fault joined with other errors does not short-cut:
// the join classifies as AggregateFailure. Otherwise the first matching rule decides the tag; errors no
// rule recognizes become codes.None carrying err.Error() as the message.
// correlationID is attached verbatim. Classify never panics and returns nil
// only for a nil err.
func Classify(err error, correlationID string) *ServiceFault {
	if err == nil {
		return nil
	}
	var existing *ServiceFault
	if asFault(err, &existing) {
		return existing
	}

	code := codes.None
	var extract func(error) map[string]string
	for _, r := range rules {
		if matches(r, err) {
			code, extract = r.code, r.extract
			break
		}
	}

	if code == codes.None {
		extract = statusCodeDetails
	}

	details := genericDetails(err)
	if extract != nil {
		if kind, ok := safeExtract(extract, err); ok {
			maps.Copy(details, kind)
		}
	}
	return &ServiceFault{
		err: ServiceError{
			code:          code,
			message:       guard(err.Error),
			details:       details,
			correlationID: correlationID,
		},
		cause: err,
	}
}

// asFault walks err through errors.Unwrap only, so the branches of a
// multi-error are never searched.
func asFault(err error, target **ServiceFault) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	for ; err != nil; err = errors.Unwrap(err) {
		if sf, is := err.(*ServiceFault); is && sf != nil {
			*target = sf
			return true
		}
	}
	return false
}

// matches runs r.match, treating a panicking Is/As implementation on the
// chain as no match.
func matches(r rule, err error) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return r.match(err)
}

func safeExtract(fn func(error) map[string]string, err error) (d map[string]string, ok bool) {
	defer func() {
		if recover() != nil {
			d, ok = nil, false
		}
	}()
	return fn(err), true
}
