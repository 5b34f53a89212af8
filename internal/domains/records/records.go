// Package records registers the content-record actions. It is the exemplar
// domain package: a declarative table of (name, schema, handler, meta)
// entries delegating to the content API client. Further domains register
// the same way against the same dispatcher.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/cmsbridge/cmsbridge/internal/app"
	"github.com/cmsbridge/cmsbridge/internal/app/debug"
	"github.com/cmsbridge/cmsbridge/internal/ports"
)

// Domain is the name this package registers its actions under.
const Domain = "records"

// defaultPageLimit bounds list responses when the caller does not ask for a
// specific page size.
const defaultPageLimit = 30

// Register adds every records action to the dispatcher. Call once during
// startup; duplicate registration is a fatal wiring error.
func Register(d *app.Dispatcher, client ports.ContentClient) error {
	h := &handlers{client: client}

	entries := []struct {
		name    string
		schema  *jsonschema.Schema
		handler app.Handler
		meta    app.Meta
	}{
		{
			name:    "get",
			schema:  getSchema(),
			handler: h.get,
			meta: app.Meta{
				Description: "Fetch a single content record by its identifier.",
				Shape:       app.ShapeGet,
			},
		},
		{
			name:    "list",
			schema:  listSchema(),
			handler: h.list,
			meta: app.Meta{
				Description: "List content records, optionally filtered by type, status, or search term.",
				Shape:       app.ShapeList,
			},
		},
		{
			name:    "create",
			schema:  createSchema(),
			handler: h.create,
			meta: app.Meta{
				Description: "Create a content record of the given type with the given field values.",
				Shape:       app.ShapeCreate,
			},
		},
		{
			name:    "update",
			schema:  updateSchema(),
			handler: h.update,
			meta: app.Meta{
				Description: "Apply a partial update to a content record. Localized fields must be updated across all locales at once.",
				Shape:       app.ShapeUpdate,
			},
		},
		{
			name:    "delete",
			schema:  idOnlySchema("Identifier of the record to delete."),
			handler: h.del,
			meta: app.Meta{
				Description: "Delete a content record. Requires explicit confirmation.",
				Shape:       app.ShapeDelete,
			},
		},
		{
			name:    "duplicate",
			schema:  idOnlySchema("Identifier of the record to duplicate."),
			handler: h.duplicate,
			meta: app.Meta{
				Description: "Clone an existing content record and return the copy.",
				Shape:       app.ShapeDuplicate,
			},
		},
	}

	for _, e := range entries {
		if err := d.Register(Domain, e.name, e.schema, e.handler, e.meta); err != nil {
			return fmt.Errorf("records: %w", err)
		}
	}
	return nil
}

// handlers holds the shared collaborator for all records actions.
type handlers struct {
	client ports.ContentClient
}

func (h *handlers) get(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	itemID, _ := args["item_id"].(string)

	dc.AddTracef("fetching record %s", itemID)
	item, err := h.client.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &app.HandlerResult{Entity: item}, nil
}

func (h *handlers) list(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	query := make(map[string]any, len(args))
	for _, key := range []string{"type", "status", "search", "page_limit", "page_offset"} {
		if v, ok := args[key]; ok {
			query[key] = v
		}
	}

	items, total, err := h.client.ListItems(ctx, query)
	if err != nil {
		return nil, err
	}
	dc.AddTracef("provider returned %d of %d records", len(items), total)

	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return &app.HandlerResult{Items: out, Total: total}, nil
}

func (h *handlers) create(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	itemType, _ := args["type"].(string)
	fields, _ := args["fields"].(map[string]any)

	dc.AddTracef("creating %s record", itemType)
	item, err := h.client.CreateItem(ctx, itemType, fields)
	if err != nil {
		return nil, err
	}

	return &app.HandlerResult{Entity: item}, nil
}

func (h *handlers) update(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	itemID, _ := args["item_id"].(string)
	fields, _ := args["fields"].(map[string]any)
	currentVersion, _ := args["current_version"].(string)

	dc.AddTracef("updating record %s", itemID)
	item, err := h.client.UpdateItem(ctx, itemID, currentVersion, fields)
	if err != nil {
		return nil, err
	}

	return &app.HandlerResult{Entity: item}, nil
}

func (h *handlers) del(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	itemID, _ := args["item_id"].(string)

	dc.AddTracef("deleting record %s", itemID)
	item, err := h.client.DeleteItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &app.HandlerResult{Entity: item}, nil
}

func (h *handlers) duplicate(ctx context.Context, args map[string]any, dc *debug.Context) (*app.HandlerResult, error) {
	itemID, _ := args["item_id"].(string)

	dc.AddTracef("duplicating record %s", itemID)
	item, err := h.client.DuplicateItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &app.HandlerResult{Entity: item}, nil
}

// --- argument schemas ---

func getSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"item_id"},
		Properties: map[string]*jsonschema.Schema{
			"item_id": {
				Type:        "string",
				Description: "Identifier of the record to fetch.",
			},
		},
	}
}

func listSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type:        "string",
				Description: "Restrict results to records of this content type.",
			},
			"status": {
				Type:        "string",
				Enum:        []any{"draft", "published", "archived"},
				Description: "Restrict results to records in this workflow status.",
			},
			"search": {
				Type:        "string",
				Description: "Free-text search over record fields.",
			},
			"page_limit": {
				Type:        "integer",
				Default:     json.RawMessage(strconv.Itoa(defaultPageLimit)),
				Description: "Maximum number of records to return.",
			},
			"page_offset": {
				Type:        "integer",
				Default:     json.RawMessage(`0`),
				Description: "Number of records to skip before the first result.",
			},
		},
	}
}

func createSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"type", "fields"},
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type:        "string",
				Description: "Content type of the new record.",
			},
			"fields": {
				Type:        "object",
				Description: "Field values for the new record. Localized fields take a map of locale code to value.",
			},
		},
	}
}

func updateSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"item_id", "fields"},
		Properties: map[string]*jsonschema.Schema{
			"item_id": {
				Type:        "string",
				Description: "Identifier of the record to update.",
			},
			"fields": {
				Type:        "object",
				Description: "Field values to change. When updating a localized field, provide values for every locale of that field.",
			},
			"current_version": {
				Type:        "string",
				Description: "Version the caller last read. When set, the update is rejected if the record has changed since.",
			},
		},
	}
}

func idOnlySchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"item_id"},
		Properties: map[string]*jsonschema.Schema{
			"item_id": {
				Type:        "string",
				Description: description,
			},
		},
	}
}
