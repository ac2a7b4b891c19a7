// Package errors defines the error taxonomy shared by the entity services.
// Callers match error kinds with errors.Is against the sentinel values and
// recover the offending field through AsFieldError.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the requested identifier does not exist in the store.
	ErrNotFound = fmt.Errorf("not found")
	// ErrMissingReference means a required foreign-key field was absent.
	ErrMissingReference = fmt.Errorf("missing reference")
	// ErrInvalidReference means a supplied foreign-key id does not resolve.
	ErrInvalidReference = fmt.Errorf("invalid reference")
	// ErrDuplicateValue means a uniqueness-constrained field collides with
	// a record other than the one being updated.
	ErrDuplicateValue = fmt.Errorf("duplicate value")
	// ErrValidation means a scalar field failed a format, presence or
	// enum-membership check.
	ErrValidation = fmt.Errorf("validation failed")
)

// FieldError is a caller error tied to a single field of the request.
type FieldError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Field names the offending request field.
	Field string
	// Message describes what was wrong with it.
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Validation reports that field failed a scalar check.
func Validation(field, message string) error {
	return &FieldError{Kind: ErrValidation, Field: field, Message: message}
}

// MissingReference reports that a required reference field was absent.
func MissingReference(field string) error {
	return &FieldError{Kind: ErrMissingReference, Field: field, Message: "is required"}
}

// InvalidReference reports that the id supplied for field does not resolve.
func InvalidReference(field string, id uuid.UUID) error {
	return &FieldError{Kind: ErrInvalidReference, Field: field, Message: fmt.Sprintf("no record with id %s", id)}
}

// Duplicate reports that value collides on a uniqueness-constrained field.
func Duplicate(field, value string) error {
	return &FieldError{Kind: ErrDuplicateValue, Field: field, Message: fmt.Sprintf("%q already exists", value)}
}

// AsFieldError extracts the FieldError from err's chain, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if stderrors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
