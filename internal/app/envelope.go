package app

import (
	"encoding/json"
	"strings"

	debugctx "github.com/cmsbridge/cmsbridge/internal/app/debug"
	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// localeGuidance is appended to locale-related validation failures. The
// provider rejects partial updates of localized fields, and an automated
// caller is far more likely to self-correct when told the rule outright
// than when left to infer it from the provider's terse message.
const localeGuidance = " Note: when updating a localized field, provide a value for every locale configured on the field, not only the locale being changed."

// BuildSuccessEnvelope wraps data in a success envelope. Debug diagnostics
// are attached only when the request's context is debug-enabled.
func BuildSuccessEnvelope(data any, dc *debugctx.Context) *domain.Envelope {
	dc.Finish()
	env := &domain.Envelope{Success: true, Data: data}
	if dc.Enabled() {
		env.Debug = dc.Snapshot()
	}
	return env
}

// BuildErrorEnvelope wraps a classified failure in an error envelope.
// Provider detail is included only for debug-enabled requests; otherwise it
// is stripped entirely rather than hidden. dc may be nil for failures that
// occur before a request context exists (unknown action).
func BuildErrorEnvelope(kind domain.Kind, message string, dc *debugctx.Context, detail string) *domain.Envelope {
	dc.Finish()

	if kind == domain.KindValidation && mentionsLocale(message, detail) {
		message += localeGuidance
	}

	desc := &domain.ErrorDescriptor{Kind: kind, Message: message}
	env := &domain.Envelope{Success: false, Error: desc}

	if dc.Enabled() {
		desc.ProviderDetail = detail
		env.Debug = dc.Snapshot()
	}
	return env
}

func mentionsLocale(message, detail string) bool {
	return strings.Contains(strings.ToLower(message), "locale") ||
		strings.Contains(strings.ToLower(detail), "locale")
}

// fieldErrorDetail renders a validation error's full field list as JSON for
// the debug payload, where the envelope message only highlights the first.
func fieldErrorDetail(verr *domain.ValidationError) string {
	b, err := json.Marshal(verr.Fields)
	if err != nil {
		return verr.Error()
	}
	return string(b)
}
