package rankcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout and per-run request ids.
type HTTPClient struct {
	client   *http.Client
	baseURL  string
	runID    string
	requests atomic.Int64
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(baseURL string, timeout time.Duration, runID string) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		runID:   runID,
	}
}

// Get performs a GET request against path. The X-Request-ID header ties
// every request to the run in server logs.
func (c *HTTPClient) Get(ctx context.Context, path string) (*http.Response, error) {
	n := c.requests.Add(1)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", fmt.Sprintf("%s-%d", c.runID, n))
	return c.client.Do(req)
}

// getJSON fetches path and decodes a 200 response into v.
func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("GET %s: read body: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: status %d: %s", ErrBadResponse, path, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrBadResponse, path, err)
	}
	return nil
}
