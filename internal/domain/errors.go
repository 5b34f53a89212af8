package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrValidation marks malformed or incomplete input, whether caught by
	// schema validation before execution or by the provider afterwards.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateAction is returned when the same (domain, action) pair is
	// registered twice. Registration happens at startup, so hitting this is
	// a programming error and fatal.
	ErrDuplicateAction = errors.New("duplicate action registration")

	// ErrUnknownAction is returned when dispatch targets an unregistered
	// (domain, action) pair.
	ErrUnknownAction = errors.New("unknown action")
)

// ProviderError is the structured error surface of the external
// content-management API. Adapters that talk to the provider translate HTTP
// failures into this type so classification can prefer the status code over
// brittle message matching.
type ProviderError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// FieldError describes a single offending field in a validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level failure from one validation
// pass. Use errors.Is(err, ErrValidation) for simple checks, or errors.As
// to access the individual fields.
type ValidationError struct {
	Fields []FieldError
}

// Error highlights the first offending field and reports the total count so
// an automated caller can decide whether to fetch the full field list.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	first := e.Fields[0]
	head := first.Message
	if first.Path != "" {
		head = first.Path + ": " + first.Message
	}
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s", head)
	}
	return fmt.Sprintf("validation failed on %d fields: %s (and %d more)",
		len(e.Fields), head, len(e.Fields)-1)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
