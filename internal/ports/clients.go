package ports

import "context"

// ContentClient is the outbound port to the external content-management
// API. Domain handler packages depend on this interface, not on the HTTP
// client, so handlers stay testable with in-memory fakes.
//
// Every method returns the provider's decoded JSON payload. Failures are
// reported as errors wrapping *domain.ProviderError so the pipeline's
// classifier can inspect the provider status code.
type ContentClient interface {
	// GetItem fetches a single record by ID.
	GetItem(ctx context.Context, itemID string) (map[string]any, error)

	// ListItems returns records matching the given query parameters along
	// with the provider-reported total count.
	ListItems(ctx context.Context, query map[string]any) ([]map[string]any, int, error)

	// CreateItem creates a record of the given type and returns it with
	// server-assigned fields.
	CreateItem(ctx context.Context, itemType string, fields map[string]any) (map[string]any, error)

	// UpdateItem applies a partial update. A non-empty currentVersion is
	// sent as an optimistic-concurrency precondition.
	UpdateItem(ctx context.Context, itemID, currentVersion string, fields map[string]any) (map[string]any, error)

	// DeleteItem deletes a record and returns its last state.
	DeleteItem(ctx context.Context, itemID string) (map[string]any, error)

	// DuplicateItem clones a record and returns the copy.
	DuplicateItem(ctx context.Context, itemID string) (map[string]any, error)
}
