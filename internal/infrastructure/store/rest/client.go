// Package rest implements the repository ports against the remote JSON
// document store: a key-addressed collection store exposing per-resource
// CRUD over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/furnishop/storefront/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client is the shared HTTP client for one document store instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the store at baseURL. A default timeout is
// applied when none is provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Ping verifies the store is reachable by reading the product collection.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/"+productCollection, url.Values{"_limit": {"1"}}, nil, nil)
}

// do performs one request against the store. A 404 maps to
// domain.ErrNotFound; other non-2xx statuses become opaque errors. When out
// is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("store: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("store: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("store: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}
