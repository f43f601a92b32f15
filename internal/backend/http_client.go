package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// HTTPClient is the thin transport shared by every backend call.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	name    string // client name for logging and the user agent
}

// NewHTTPClient creates a client with the given timeout (30s when zero).
func NewHTTPClient(name, baseURL string, timeoutSec int) *HTTPClient {
	if timeoutSec == 0 {
		timeoutSec = 30
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		baseURL: baseURL,
		name:    name,
	}
}

// BaseURL returns the backend base URL.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// Get makes a GET request. endpoint includes the query string, if any.
func (c *HTTPClient) Get(ctx context.Context, endpoint string) (*HTTPResponse, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// Delete makes a DELETE request.
func (c *HTTPClient) Delete(ctx context.Context, endpoint string) (*HTTPResponse, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

// PostJSON makes a POST request with a JSON payload.
func (c *HTTPClient) PostJSON(ctx context.Context, endpoint string, payload any) (*HTTPResponse, error) {
	return c.sendJSON(ctx, http.MethodPost, endpoint, payload)
}

// PutJSON makes a PUT request with a JSON payload.
func (c *HTTPClient) PutJSON(ctx context.Context, endpoint string, payload any) (*HTTPResponse, error) {
	return c.sendJSON(ctx, http.MethodPut, endpoint, payload)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, endpoint string, payload any) (*HTTPResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
	}
	return c.do(ctx, method, endpoint, body)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body []byte) (*HTTPResponse, error) {
	url := c.baseURL + endpoint

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("ShopConsole/%s", c.name))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().
		Str("client", c.name).
		Str("method", method).
		Str("url", url).
		Msg("making HTTP request")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().
			Str("client", c.name).
			Str("method", method).
			Str("url", url).
			Err(err).
			Msg("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return c.handleResponse(resp)
}

func (c *HTTPClient) handleResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("client", c.name).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("received HTTP response")

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// HTTPResponse is a fully read HTTP response.
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess checks for a 2xx status code.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON decodes the body into v.
func (r *HTTPResponse) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (r *HTTPResponse) String() string {
	return string(r.Body)
}
