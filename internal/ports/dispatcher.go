package ports

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// Dispatcher is the inbound surface of the action pipeline, consumed by the
// HTTP and MCP transports. Implementations are safe for concurrent use once
// registration has finished.
type Dispatcher interface {
	// Dispatch runs one action end-to-end and always returns an envelope;
	// no error or panic crosses this boundary.
	Dispatch(ctx context.Context, domainName, action string, rawArgs map[string]any) *domain.Envelope

	// Actions returns the catalog of registered actions for a domain,
	// sorted by name. Empty when the domain is unknown.
	Actions(domainName string) []ActionInfo

	// Domains returns all registered domain names, sorted.
	Domains() []string
}

// ActionInfo describes one registered action for catalog listings and
// transport-level tool registration.
type ActionInfo struct {
	Domain      string             `json:"domain"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ReadOnly    bool               `json:"read_only"`
	Schema      *jsonschema.Schema `json:"schema,omitempty"`
}
