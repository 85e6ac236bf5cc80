package errkind

import "strings"

// KeyNotFoundError reports a lookup with a key absent from the collection or store.
type KeyNotFoundError struct {
	base
	Message string
	Key     string
	Err     error
}

// NewKeyNotFound returns a *KeyNotFoundError for key.
func NewKeyNotFound(key, msg string) *KeyNotFoundError {
	return &KeyNotFoundError{base: capture(), Message: msg, Key: key}
}

func (e *KeyNotFoundError) Error() string {
	if e.Message == "" && e.Key != "" {
		return "the given key '" + e.Key + "' was not present"
	}
	return messageOr(e.Message, "the given key was not present")
}

func (e *KeyNotFoundError) Unwrap() error { return e.Err }

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// FormatError reports a value that does not match the expected format.
type FormatError struct {
	base
	Message string
	Value   string
	Layout  string
	Err     error
}

// NewFormat returns a *FormatError for value, expected to match layout.
func NewFormat(value, layout, msg string) *FormatError {
	return &FormatError{base: capture(), Message: msg, Value: value, Layout: layout}
}

func (e *FormatError) Error() string {
	return messageOr(e.Message, "input string was not in a correct format")
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ValidationError reports a value rejected by a validation rule.
type ValidationError struct {
	base
	Message string
	// Value is the rejected value.
	Value any
	// Attribute names the rule that failed, e.g. "required" or "max=10".
	Attribute string
	// MemberNames lists the fields the failure applies to.
	MemberNames []string
}

// NewValidation returns a *ValidationError.
func NewValidation(msg string, value any, attribute string, members ...string) *ValidationError {
	return &ValidationError{base: capture(), Message: msg, Value: value, Attribute: attribute, MemberNames: members}
}

func (e *ValidationError) Error() string {
	if e.Message == "" && len(e.MemberNames) > 0 {
		return "validation failed for " + strings.Join(e.MemberNames, ", ")
	}
	return messageOr(e.Message, "validation failed")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DbUpdateError reports a failure while saving to the database.
type DbUpdateError struct {
	base
	Message string
	Entity  string
	Err     error
}

// NewDbUpdate returns a *DbUpdateError for entity wrapping err.
func NewDbUpdate(entity string, err error, msg string) *DbUpdateError {
	return &DbUpdateError{base: capture(), Message: msg, Entity: entity, Err: err}
}

func (e *DbUpdateError) Error() string {
	if e.Message == "" && e.Err != nil {
		return "an error occurred while saving: " + e.Err.Error()
	}
	return messageOr(e.Message, "an error occurred while saving")
}

func (e *DbUpdateError) Unwrap() error { return e.Err }

func (e *DbUpdateError) Is(target error) bool { return target == ErrDbUpdate }

// DbUpdateConcurrencyError reports a save that affected an unexpected number of
// rows, usually because the row changed since it was read.
type DbUpdateConcurrencyError struct {
	DbUpdateError
}

// NewDbUpdateConcurrency returns a *DbUpdateConcurrencyError for entity.
func NewDbUpdateConcurrency(entity, msg string) *DbUpdateConcurrencyError {
	return &DbUpdateConcurrencyError{DbUpdateError{base: capture(), Message: msg, Entity: entity}}
}

func (e *DbUpdateConcurrencyError) Error() string {
	return messageOr(e.Message, "the row was modified since it was loaded")
}

func (e *DbUpdateConcurrencyError) Is(target error) bool {
	return target == ErrDbUpdateConcurrency || target == ErrDbUpdate
}
