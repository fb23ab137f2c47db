package services

import (
	"errors"
	"sort"
	"strings"

	"marhaba_app_echo/internal/store"
)

var (
	ErrNotFound             = store.ErrNotFound
	ErrAuthRequired         = errors.New("authentication required")
	ErrForbidden            = errors.New("forbidden")
	ErrEmailExists          = errors.New("email already registered")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrAlreadyAnswered      = errors.New("inquiry already answered")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// FieldErrors maps a form field to the i18n key of its error message
type FieldErrors map[string]string

// ValidationError is returned when user input fails validation. It is never
// fatal; handlers render the field keys in the request language.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func newValidationError(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
