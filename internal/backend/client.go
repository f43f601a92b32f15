package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Client talks to the shop REST backend. Calls are never retried.
type Client struct {
	http *HTTPClient
}

// New creates a backend client for baseURL.
func New(baseURL string, timeoutSec int) *Client {
	return &Client{http: NewHTTPClient("backend", baseURL, timeoutSec)}
}

// NewWithHTTP wraps an existing transport.
func NewWithHTTP(h *HTTPClient) *Client {
	return &Client{http: h}
}

func getJSON[T any](ctx context.Context, c *Client, op, endpoint string) (*T, error) {
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return decode[T](op, resp)
}

func sendJSON[T any](ctx context.Context, c *Client, op, method, endpoint string, payload any) (*T, error) {
	var (
		resp *HTTPResponse
		err  error
	)
	switch method {
	case http.MethodPut:
		resp, err = c.http.PutJSON(ctx, endpoint, payload)
	default:
		resp, err = c.http.PostJSON(ctx, endpoint, payload)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return decode[T](op, resp)
}

func decode[T any](op string, resp *HTTPResponse) (*T, error) {
	if !resp.IsSuccess() {
		return nil, newAPIError(op, resp)
	}
	var out T
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, fmt.Errorf("%s: failed to parse response: %w", op, err)
	}
	return &out, nil
}

func (c *Client) delete(ctx context.Context, op, endpoint string) error {
	resp, err := c.http.Delete(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsSuccess() {
		return newAPIError(op, resp)
	}
	return nil
}
