package fault

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Goden-Gun/service-lib/pkg/codes"
)

// ServiceError is the serializable half of a fault: what the caller sees.
// It is immutable; the With* methods return modified copies.
type ServiceError struct {
	code          codes.ErrorCode
	message       string
	details       map[string]string
	correlationID string
}

// NewServiceError builds a ServiceError. details is copied.
func NewServiceError(code codes.ErrorCode, message string, details map[string]string, correlationID string) ServiceError {
	return ServiceError{
		code:          code,
		message:       message,
		details:       cloneDetails(details),
		correlationID: correlationID,
	}
}

// Code returns the taxonomy tag.
func (e ServiceError) Code() codes.ErrorCode { return e.code }

// CodeName returns the tag name derived from Code.
func (e ServiceError) CodeName() string { return e.code.String() }

// Message returns the human readable message, possibly empty.
func (e ServiceError) Message() string { return e.message }

// CorrelationID returns the caller supplied correlation identifier, possibly empty.
func (e ServiceError) CorrelationID() string { return e.correlationID }

// Details returns a copy of the detail map, nil when there are none.
func (e ServiceError) Details() map[string]string { return cloneDetails(e.details) }

// Detail returns a single detail value.
func (e ServiceError) Detail(key string) (string, bool) {
	v, ok := e.details[key]
	return v, ok
}

// HasDetails reports whether any detail is attached.
func (e ServiceError) HasDetails() bool { return len(e.details) > 0 }

// WithoutDetails returns a copy with the detail map cleared.
func (e ServiceError) WithoutDetails() ServiceError {
	e.details = nil
	return e
}

// WithCorrelationID returns a copy carrying id.
func (e ServiceError) WithCorrelationID(id string) ServiceError {
	e.correlationID = id
	return e
}

// Equal reports whether both errors carry the same code, message, details
// and correlation id.
func (e ServiceError) Equal(o ServiceError) bool {
	return e.code == o.code &&
		e.message == o.message &&
		e.correlationID == o.correlationID &&
		maps.Equal(e.details, o.details)
}

// String renders the error for logs, one field per line, details sorted by key.
func (e ServiceError) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error Code:%d\n", int32(e.code))
	fmt.Fprintf(&sb, "Error Code Name:%s\n", e.CodeName())
	fmt.Fprintf(&sb, "Message:%s\n", e.message)
	fmt.Fprintf(&sb, "Error Details:%d\n", len(e.details))
	for _, k := range slices.Sorted(maps.Keys(e.details)) {
		fmt.Fprintf(&sb, "%s: %s\n", k, e.details[k])
	}
	fmt.Fprintf(&sb, "Correlation Id:%s\n", e.correlationID)
	return sb.String()
}

// wireError is the JSON body written by fault boundaries.
type wireError struct {
	Code          *int32            `json:"code"`
	CodeName      string            `json:"codeName"`
	Message       string            `json:"message,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty"`
}

var errMissingCode = errors.New("service error: code is required")

// MarshalJSON writes code and codeName always, other fields only when set.
func (e ServiceError) MarshalJSON() ([]byte, error) {
	code := int32(e.code)
	return json.Marshal(wireError{
		Code:          &code,
		CodeName:      e.CodeName(),
		Message:       e.message,
		Details:       e.details,
		CorrelationID: e.correlationID,
	})
}

// UnmarshalJSON reads the wire shape. codeName is ignored and re-derived from code.
func (e *ServiceError) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Code == nil {
		return errMissingCode
	}
	*e = NewServiceError(codes.ErrorCode(*w.Code), w.Message, w.Details, w.CorrelationID)
	return nil
}

func cloneDetails(d map[string]string) map[string]string {
	if len(d) == 0 {
		return nil
	}
	return maps.Clone(d)
}
