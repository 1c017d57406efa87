// Package netbox is a small REST client for the NetBox inventory API.
//
// It speaks the generic shape shared by every NetBox endpoint: records are
// JSON objects with an id and url, list endpoints are paginated with
// count/next/previous/results, and updates are partial PATCH requests. The
// client authenticates with a static API token, retries transient failures
// (rate limiting, 5xx, dropped connections) with exponential backoff, and
// reports errors as *APIError so callers can branch with [IsNotFound],
// [IsConflict], [IsUnauthorized] and [IsRetryable].
package netbox
