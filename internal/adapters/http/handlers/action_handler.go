// Package handlers contains the inbound HTTP handlers. Action invocations
// are decoded into plain argument bags and handed to the dispatcher; the
// handlers never interpret action semantics themselves.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/cmsbridge/cmsbridge/internal/adapters/http/dto"
	"github.com/cmsbridge/cmsbridge/internal/domain"
	"github.com/cmsbridge/cmsbridge/internal/ports"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// ActionHandler exposes the action pipeline over HTTP.
type ActionHandler struct {
	dispatcher ports.Dispatcher
}

// NewActionHandler creates an ActionHandler backed by the given dispatcher.
func NewActionHandler(dispatcher ports.Dispatcher) *ActionHandler {
	return &ActionHandler{dispatcher: dispatcher}
}

// Invoke handles POST /api/v1/actions/{domain}/{action}. The request body is
// a JSON object of action arguments; an empty body is treated as an empty
// argument bag. The response is always an envelope: action failures are
// reported inside it with HTTP 200, and only an unreadable body produces a
// transport-level 400.
func (h *ActionHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	domainName := chi.URLParam(r, "domain")
	action := chi.URLParam(r, "action")

	args, err := decodeArgs(w, r)
	if err != nil {
		dto.WriteErrorEnvelope(w, r, http.StatusBadRequest, domain.KindValidation,
			"request body must be a JSON object")
		return
	}

	env := h.dispatcher.Dispatch(r.Context(), domainName, action, args)
	dto.WriteEnvelope(w, r, env)
}

// Catalog handles GET /api/v1/actions/{domain}. It returns the registered
// actions for the domain, or a 404 envelope when the domain is unknown.
func (h *ActionHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	domainName := chi.URLParam(r, "domain")

	if !slices.Contains(h.dispatcher.Domains(), domainName) {
		dto.WriteErrorEnvelope(w, r, http.StatusNotFound, domain.KindNotFound,
			"unknown domain: "+domainName)
		return
	}

	actions := h.dispatcher.Actions(domainName)
	dto.WriteJSON(w, r, http.StatusOK, dto.CatalogResponse{
		Domain:  domainName,
		Actions: actions,
		Count:   len(actions),
	})
}

// Domains handles GET /api/v1/actions. It lists all registered domains.
func (h *ActionHandler) Domains(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.DomainListResponse{
		Domains: h.dispatcher.Domains(),
	})
}

// decodeArgs reads the request body as a JSON object. A missing or empty
// body yields an empty argument bag rather than an error.
func decodeArgs(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	args := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return args, nil
}
