package backend

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// ErrNotFound matches APIErrors carrying a 404.
var ErrNotFound = errors.New("backend: resource not found")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("backend %s: status %d", e.Op, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

const maxErrorBody = 512

func newAPIError(op string, resp *HTTPResponse) *APIError {
	body := resp.String()
	if len(body) > maxErrorBody {
		n := maxErrorBody
		for n > 0 && !utf8.RuneStart(body[n]) {
			n--
		}
		body = body[:n]
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode, Body: body}
}
