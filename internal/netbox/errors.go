package netbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from NetBox.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Detail is the "detail" message of the response, or the raw body when
	// NetBox returned field validation errors.
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("netbox %s %s: %d %s: %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	detail := strings.TrimSpace(string(body))
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		detail = parsed.Detail
	}
	return &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Detail:     truncate(detail, 500),
	}
}

// conflictMarkers are fragments of NetBox validation messages that mean the
// object already exists.
var conflictMarkers = []string{
	"already exists",
	"must be unique",
	"duplicate",
	"unique constraint",
}

func apiStatus(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound checks if an error indicates the record does not exist.
func IsNotFound(err error) bool {
	apiErr, ok := apiStatus(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict checks if an error indicates a create collided with an existing
// record. NetBox reports uniqueness violations as 400 validation errors.
func IsConflict(err error) bool {
	apiErr, ok := apiStatus(err)
	if !ok {
		return false
	}
	if apiErr.StatusCode == http.StatusConflict {
		return true
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		return false
	}
	detail := strings.ToLower(apiErr.Detail)
	for _, marker := range conflictMarkers {
		if strings.Contains(detail, marker) {
			return true
		}
	}
	return false
}

// IsUnauthorized checks if an error indicates a missing or rejected token.
func IsUnauthorized(err error) bool {
	apiErr, ok := apiStatus(err)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// IsRetryable checks if an error is transient: rate limiting, a 5xx gateway
// or availability error, or a network failure.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if apiErr, ok := apiStatus(err); ok {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// IsRetryableWrite is IsRetryable for requests that are not idempotent, such
// as creates and IP allocations. Only answers that mean nothing was written
// and connections that were never established are retried; anything else may
// have been committed and is left to a lookup on the next reconcile.
func IsRetryableWrite(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if apiErr, ok := apiStatus(err); ok {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode == http.StatusServiceUnavailable
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
