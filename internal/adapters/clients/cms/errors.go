// Package cms implements the outbound adapter for the content-management
// API. It translates provider responses into plain field maps and provider
// failures into *domain.ProviderError values the pipeline can classify.
package cms

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// providerErrorBody is the provider's JSON error shape. The provider nests
// the message under "error" on newer endpoints and flattens it on older
// ones, so both layouts are accepted.
type providerErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   *struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"error"`
}

// translateHTTPError maps a non-success HTTP response to a
// *domain.ProviderError carrying the provider status code and parsed
// message. The caller remains responsible for closing resp.Body.
func translateHTTPError(resp *http.Response) error {
	message, detail := parseErrorBody(resp)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &domain.ProviderError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Detail:     detail,
	}
}

// parseErrorBody attempts to read and parse a JSON error body from the
// response. Returns empty strings if the body is absent or unparseable.
func parseErrorBody(resp *http.Response) (message, detail string) {
	if resp.Body == nil {
		return "", ""
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		return "", ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return "", ""
	}

	var pb providerErrorBody
	if err := json.Unmarshal(body, &pb); err != nil {
		return "", ""
	}

	if pb.Error != nil {
		return pb.Error.Message, pb.Error.Detail
	}
	return pb.Message, pb.Detail
}
