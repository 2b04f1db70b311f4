package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mhuels/depscout/pkg/httputil"
	"github.com/mhuels/depscout/pkg/observability"
)

// Client provides shared HTTP functionality for all registry API clients.
// It handles retry logic and common request headers. Responses are never
// cached: every run queries the registry fresh so that results reflect the
// registry's current state.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Transient failures (network errors, 5xx) are retried with backoff;
// a 404 returns [ErrNotFound] immediately.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return httputil.RetryWithBackoff(ctx, func() error {
		body, err := c.doRequest(ctx, url)
		if err != nil {
			return err
		}
		defer body.Close()
		return json.NewDecoder(body).Decode(v)
	})
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
