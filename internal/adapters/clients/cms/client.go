package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmsbridge/cmsbridge/internal/platform/httpclient"
	"github.com/cmsbridge/cmsbridge/internal/ports"
)

const itemsPath = "/api/v1/items"

// Client talks to the content-management API over the resilient HTTP
// client. It implements ports.ContentClient.
type Client struct {
	http *httpclient.Client
}

// Compile-time check that Client satisfies the outbound port.
var _ ports.ContentClient = (*Client)(nil)

// New creates a content API client on top of the given HTTP client.
func New(httpClient *httpclient.Client) *Client {
	return &Client{http: httpClient}
}

// itemEnvelope is the provider's single-record response shape.
type itemEnvelope struct {
	Item map[string]any `json:"item"`
}

// listEnvelope is the provider's collection response shape.
type listEnvelope struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
}

func (c *Client) GetItem(ctx context.Context, itemID string) (map[string]any, error) {
	var env itemEnvelope
	err := c.do(ctx, http.MethodGet, itemPath(itemID), nil, nil, http.StatusOK, &env)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return env.Item, nil
}

func (c *Client) ListItems(ctx context.Context, query map[string]any) ([]map[string]any, int, error) {
	var env listEnvelope
	err := c.do(ctx, http.MethodGet, itemsPath, encodeQuery(query), nil, http.StatusOK, &env)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return env.Items, env.Total, nil
}

func (c *Client) CreateItem(ctx context.Context, itemType string, fields map[string]any) (map[string]any, error) {
	body := map[string]any{
		"type":   itemType,
		"fields": fields,
	}

	var env itemEnvelope
	err := c.do(ctx, http.MethodPost, itemsPath, nil, body, http.StatusCreated, &env)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return env.Item, nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID, currentVersion string, fields map[string]any) (map[string]any, error) {
	body := map[string]any{
		"fields": fields,
	}
	if currentVersion != "" {
		// Optimistic-concurrency precondition. The provider rejects the
		// update with 409/412 when the stored version no longer matches.
		body["current_version"] = currentVersion
	}

	var env itemEnvelope
	err := c.do(ctx, http.MethodPatch, itemPath(itemID), nil, body, http.StatusOK, &env)
	if err != nil {
		return nil, fmt.Errorf("update item %s: %w", itemID, err)
	}
	return env.Item, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) (map[string]any, error) {
	var env itemEnvelope
	err := c.do(ctx, http.MethodDelete, itemPath(itemID), nil, nil, http.StatusOK, &env)
	if err != nil {
		return nil, fmt.Errorf("delete item %s: %w", itemID, err)
	}
	return env.Item, nil
}

func (c *Client) DuplicateItem(ctx context.Context, itemID string) (map[string]any, error) {
	var env itemEnvelope
	err := c.do(ctx, http.MethodPost, itemPath(itemID)+"/duplicate", nil, nil, http.StatusCreated, &env)
	if err != nil {
		return nil, fmt.Errorf("duplicate item %s: %w", itemID, err)
	}
	return env.Item, nil
}

// do builds and executes a single provider request, translating non-success
// responses into *domain.ProviderError and decoding the body into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody any, wantStatus int, out any) error {
	u := c.http.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader *bytes.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		// When retries are exhausted the client returns the last response
		// alongside the error; prefer the provider's own failure details.
		if resp != nil {
			defer closeBody(resp)
			return translateHTTPError(resp)
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != wantStatus {
		return translateHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// itemPath builds the escaped resource path for a single record.
func itemPath(itemID string) string {
	return itemsPath + "/" + url.PathEscape(itemID)
}

// encodeQuery flattens a loosely-typed query bag into URL parameters. Nil
// values are dropped; everything else is rendered with its default string
// form.
func encodeQuery(query map[string]any) url.Values {
	if len(query) == 0 {
		return nil
	}
	values := make(url.Values, len(query))
	for key, val := range query {
		if val == nil {
			continue
		}
		values.Set(key, fmt.Sprint(val))
	}
	return values
}

// closeBody drains and closes a response body so the underlying connection
// can be reused.
func closeBody(resp *http.Response) {
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
}
