// Package client is the consumer side of the items API: a typed HTTP client
// and a Manager holding the list/search/create/edit/delete state that a UI or
// CLI renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// DefaultBaseURL is where the items API listens by default.
const DefaultBaseURL = "http://localhost:3000"

// ErrNotFound matches an *APIError with status 404 via errors.Is.
var ErrNotFound = errors.New("not found")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Title      string // "error" in enveloped bodies
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	var b strings.Builder
	switch {
	case e.Title != "" && e.Message != "" && e.Title != e.Message:
		fmt.Fprintf(&b, "%s: %s", e.Title, e.Message)
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Title != "":
		b.WriteString(e.Title)
	default:
		fmt.Fprintf(&b, "request failed: status %d", e.StatusCode)
	}
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Details, "; "))
	}
	return b.String()
}

// Is makes errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ExternalItem is one entry of the read-only /external-items collection.
type ExternalItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Client is an HTTP client for the items API. It accepts both the enveloped
// and the plain response style.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL. Requests carry W3C trace
// headers through an otelhttp transport.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns every item.
func (c *Client) List(ctx context.Context) ([]models.Item, error) {
	items, err := doJSON[[]models.Item](ctx, c, http.MethodGet, "/items", nil)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Get returns one item.
func (c *Client) Get(ctx context.Context, id models.ItemID) (models.Item, error) {
	item, err := doJSON[models.Item](ctx, c, http.MethodGet, "/items/"+id.String(), nil)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return item, nil
}

// Create submits a new item.
func (c *Client) Create(ctx context.Context, fields models.ItemFields) (models.Item, error) {
	item, err := doJSON[models.Item](ctx, c, http.MethodPost, "/items", fields)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update replaces the fields of an existing item.
func (c *Client) Update(ctx context.Context, id models.ItemID, fields models.ItemFields) (models.Item, error) {
	item, err := doJSON[models.Item](ctx, c, http.MethodPut, "/items/"+id.String(), fields)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %s: %w", id, err)
	}
	return item, nil
}

// Delete removes an item and returns it.
func (c *Client) Delete(ctx context.Context, id models.ItemID) (models.Item, error) {
	item, err := doJSON[models.Item](ctx, c, http.MethodDelete, "/items/"+id.String(), nil)
	if err != nil {
		return models.Item{}, fmt.Errorf("delete item %s: %w", id, err)
	}
	return item, nil
}

// ExternalItems fetches the read-only /external-items collection.
func (c *Client) ExternalItems(ctx context.Context) ([]ExternalItem, error) {
	items, err := doJSON[[]ExternalItem](ctx, c, http.MethodGet, "/external-items", nil)
	if err != nil {
		return nil, fmt.Errorf("list external items: %w", err)
	}
	if items == nil {
		items = []ExternalItem{}
	}
	return items, nil
}

func doJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reader io.Reader = http.NoBody
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return zero, err
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, parseError(resp.StatusCode, raw)
	}

	var out T
	if err := decodeData(raw, &out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// decodeData unwraps {"success": true, "data": ...} when present and decodes
// the bare body otherwise.
func decodeData(raw []byte, v any) error {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil {
		if len(env.Data) == 0 {
			return errors.New("envelope has no data")
		}
		return json.Unmarshal(env.Data, v)
	}
	return json.Unmarshal(raw, v)
}

func parseError(status int, raw []byte) error {
	var body struct {
		Error   string   `json:"error"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}
	apiErr := &APIError{StatusCode: status}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Title = body.Error
		apiErr.Message = body.Message
		apiErr.Details = body.Details
	}
	return apiErr
}
