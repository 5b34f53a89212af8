// Package dto provides HTTP response writing for the inbound HTTP adapter
// layer. Action responses always carry HTTP 200 with the outcome expressed
// inside the envelope body; only transport-level failures (unroutable paths,
// malformed request bodies, panics) use non-200 status codes.
package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmsbridge/cmsbridge/internal/domain"
	"github.com/cmsbridge/cmsbridge/internal/ports"
)

// CatalogResponse lists the registered actions for one domain.
type CatalogResponse struct {
	Domain  string             `json:"domain"`
	Actions []ports.ActionInfo `json:"actions"`
	Count   int                `json:"count"`
}

// DomainListResponse lists all registered domains.
type DomainListResponse struct {
	Domains []string `json:"domains"`
}

// WriteEnvelope writes an action envelope with HTTP 200. The envelope itself
// says whether the action succeeded; transport status stays uniform so
// callers never have to branch on both.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, env *domain.Envelope) {
	WriteJSON(w, r, http.StatusOK, env)
}

// WriteErrorEnvelope writes a failure envelope with the given transport
// status code. Used for conditions detected before an action is dispatched,
// such as an unreadable request body.
func WriteErrorEnvelope(w http.ResponseWriter, r *http.Request, status int, kind domain.Kind, message string) {
	env := &domain.Envelope{
		Success: false,
		Error: &domain.ErrorDescriptor{
			Kind:    kind,
			Message: message,
		},
	}
	WriteJSON(w, r, status, env)
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
