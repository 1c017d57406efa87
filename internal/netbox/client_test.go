package netbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]ClientOption{WithRetry(2, time.Millisecond)}, opts...)
	c, err := NewClient(srv.URL, "secret", opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("ftp://netbox", "t")
	assert.Error(t, err)

	_, err = NewClient("http://", "t")
	assert.Error(t, err)

	c, err := NewClient("http://netbox.netbox:80/", "t")
	require.NoError(t, err)
	assert.Equal(t, "http://netbox.netbox:80", c.BaseURL())
}

func TestClient_Get(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dcim/sites/3/", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id":     3,
			"url":    "http://netbox/api/dcim/sites/3/",
			"name":   "dc1",
			"status": map[string]any{"value": "active", "label": "Active"},
			"tenant": map[string]any{"id": 9, "name": "acme"},
		})
	})

	rec, err := c.Get(context.Background(), Sites, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.ID)
	assert.Equal(t, "http://netbox/api/dcim/sites/3/", rec.URL)
	assert.Equal(t, "dc1", rec.String("name"))
	assert.Equal(t, "active", rec.Choice("status"))

	tenant, ok := rec.RefID("tenant")
	assert.True(t, ok)
	assert.Equal(t, int64(9), tenant)
}

func TestClient_GetNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "No Site matches the given query."})
	})

	_, err := c.Get(context.Background(), Sites, 3)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "404 Not Found: No Site matches the given query.")
	assert.Contains(t, err.Error(), "dcim/sites/3")
}

func TestClient_QueryPagination(t *testing.T) {
	var srvURL string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dc", r.URL.Query().Get("name__ic"))
		switch r.URL.Query().Get("offset") {
		case "":
			next := srvURL + "/api/dcim/sites/?limit=2&name__ic=dc&offset=2"
			writeJSON(w, http.StatusOK, map[string]any{
				"count":   3,
				"next":    next,
				"results": []map[string]any{{"id": 1}, {"id": 2}},
			})
		case "2":
			writeJSON(w, http.StatusOK, map[string]any{
				"count":   3,
				"next":    nil,
				"results": []map[string]any{{"id": 3}},
			})
		}
	}, WithPageSize(2))
	srvURL = c.BaseURL()

	first, err := c.Query(context.Background(), Sites, url.Values{"name__ic": {"dc"}}, false)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	all, err := c.Query(context.Background(), Sites, url.Values{"name__ic": {"dc"}}, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestClient_CreateConflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"slug": []string{"site with this slug already exists."},
		})
	})

	_, err := c.Create(context.Background(), Sites, map[string]any{"name": "dc1", "slug": "dc1"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestClient_UpdateSendsPatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/ipam/prefixes/5/", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"description": "new"}, body)
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "description": "new"})
	})

	rec, err := c.Update(context.Background(), Prefixes, 5, map[string]any{"description": "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", rec.String("description"))
}

func TestClient_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	var observed atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"detail": "maintenance"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 1})
	}, WithObserver(func(_, _ string, _ time.Duration) { observed.Add(1) }))

	rec, err := c.Get(context.Background(), Tags, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, int32(3), observed.Load())
}

func TestClient_RetryExhausted(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusTooManyRequests, map[string]any{"detail": "slow down"})
	})

	_, err := c.Get(context.Background(), Tags, 1)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	// Initial attempt plus two retries.
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Invalid token"})
	})

	_, err := c.Get(context.Background(), Tags, 1)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "403 Forbidden: Invalid token")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_AllocateIsNotReplayedAfterAmbiguousFailure(t *testing.T) {
	var allocations atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// The address is committed before the gateway gives up.
		if allocations.Add(1) == 1 {
			writeJSON(w, http.StatusGatewayTimeout, map[string]any{"detail": "upstream timed out"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": 9, "address": "10.0.0.2/24"})
	})

	_, err := c.AllocateIP(context.Background(), 5, map[string]any{"description": "IPClaim: default/a"})
	require.Error(t, err)
	assert.True(t, IsRetryable(err), "the next reconcile may still retry")
	assert.Equal(t, int32(1), allocations.Load())
}

func TestClient_CreateRetriesWhenNothingWasWritten(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"detail": "maintenance"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": 3, "name": "dc1"})
	})

	rec, err := c.Create(context.Background(), Sites, map[string]any{"name": "dc1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_CreateRetriesRefusedConnections(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	var attempts atomic.Int32
	c, err := NewClient(target, "secret", WithRetry(2, time.Millisecond),
		WithObserver(func(_, _ string, _ time.Duration) { attempts.Add(1) }))
	require.NoError(t, err)

	_, err = c.Create(context.Background(), Sites, map[string]any{"name": "dc1"})
	require.Error(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestIsRetryableWrite(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", &APIError{StatusCode: http.StatusTooManyRequests}, true},
		{"unavailable", &APIError{StatusCode: http.StatusServiceUnavailable}, true},
		{"gateway timeout", &APIError{StatusCode: http.StatusGatewayTimeout}, false},
		{"bad gateway", &APIError{StatusCode: http.StatusBadGateway}, false},
		{"server error", &APIError{StatusCode: http.StatusInternalServerError}, false},
		{"refused dial", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"reset while reading", &net.OpError{Op: "read", Err: errors.New("connection reset")}, false},
		{"cancelled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableWrite(tt.err))
		})
	}
}

func TestClient_AvailableIPsAndAllocate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ipam/prefixes/7/available-ips/", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, []map[string]any{
				{"family": 4, "address": "10.0.0.1/24"},
				{"family": 4, "address": "10.0.0.2/24"},
			})
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, map[string]any{"id": 40, "address": "10.0.0.1/24"})
		}
	})

	ips, err := c.AvailableIPs(context.Background(), 7, 2)
	require.NoError(t, err)
	require.Len(t, ips, 2)
	assert.Equal(t, "10.0.0.2/24", ips[1].Address)

	rec, err := c.AllocateIP(context.Background(), 7, map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1/24", rec.String("address"))
}

func TestClient_ServerVersion(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/status/", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"netbox-version": "4.2.1-Docker-3.2.0"})
	})

	v, err := c.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.2.1", v.String())
	assert.True(t, SupportsMACAddressObjects(v))

	_, err = c.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSupportsMACAddressObjects(t *testing.T) {
	for raw, want := range map[string]bool{"4.1.11": false, "4.2.0": true, "4.3.2": true, "3.7.8": false} {
		t.Run(raw, func(t *testing.T) {
			v, err := ServerStatus{NetBoxVersion: raw}.Version()
			require.NoError(t, err)
			assert.Equal(t, want, SupportsMACAddressObjects(v))
			assert.Equal(t, want, SupportsPrefixScope(v))
		})
	}
}

func TestClient_ValidateToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Invalid token"})
	})

	err := c.ValidateToken(context.Background())
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "NETBOX_TOKEN environment variable is set correctly")
	assert.Contains(t, msg, "The token is valid in NetBox")
	assert.Contains(t, msg, fmt.Sprintf("NetBox is reachable at %s", c.BaseURL()))
	assert.True(t, IsUnauthorized(err))
}

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"409", &APIError{StatusCode: 409}, true},
		{"400 unique", &APIError{StatusCode: 400, Detail: `{"prefix":["Duplicate prefix found"]}`}, true},
		{"400 other", &APIError{StatusCode: 400, Detail: `{"name":["This field is required."]}`}, false},
		{"500", &APIError{StatusCode: 500, Detail: "already exists"}, false},
		{"plain", fmt.Errorf("already exists"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConflict(tt.err))
		})
	}
}
