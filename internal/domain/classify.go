package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Kind categorizes a failed action for the caller. Values are stable and
// appear verbatim in response envelopes.
type Kind string

const (
	KindAuthorization   Kind = "authorization"
	KindNotFound        Kind = "not_found"
	KindValidation      Kind = "validation"
	KindVersionConflict Kind = "version_conflict"
	KindUnknown         Kind = "unknown"
)

// Classify maps an error raised by the external provider (or a handler) to a
// Kind. A structured *ProviderError status code takes precedence; message
// substring matching is kept only as a fallback for providers that surface
// plain-text errors.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		if kind, ok := classifyStatus(pe.StatusCode); ok {
			return kind
		}
	}

	if errors.Is(err, ErrValidation) {
		return KindValidation
	}

	return classifyMessage(err.Error())
}

// classifyStatus maps provider HTTP status codes to kinds. Unrecognized
// codes fall through to message matching.
func classifyStatus(status int) (Kind, bool) {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthorization, true
	case http.StatusNotFound:
		return KindNotFound, true
	case http.StatusUnprocessableEntity:
		return KindValidation, true
	case http.StatusConflict, http.StatusPreconditionFailed:
		return KindVersionConflict, true
	default:
		return KindUnknown, false
	}
}

// classifyMessage matches case-insensitive substrings of the error text.
func classifyMessage(msg string) Kind {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "401"), strings.Contains(m, "unauthorized"):
		return KindAuthorization
	case strings.Contains(m, "404"), strings.Contains(m, "not found"):
		return KindNotFound
	case strings.Contains(m, "422"), strings.Contains(m, "validation"):
		return KindValidation
	case strings.Contains(m, "version") && strings.Contains(m, "conflict"):
		return KindVersionConflict
	default:
		return KindUnknown
	}
}
