package netbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/microscaler/netbox-operator/internal/util/retry"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 100
)

// Observer receives one call per HTTP round trip, for metrics.
type Observer func(operation, result string, latency time.Duration)

// Client talks to the NetBox REST API.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	pageSize   int
	retryOpts  []retry.Option
	observer   Observer
	log        logr.Logger

	versionMu sync.Mutex
	version   *semver.Version
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRetry sets how transient failures are retried.
func WithRetry(maxRetries int, initialDelay time.Duration) ClientOption {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, retry.WithMaxRetries(maxRetries), retry.WithInitialDelay(initialDelay))
	}
}

// WithPageSize sets the page size used for list requests.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithObserver registers a per-request observer.
func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// WithLogger sets the logger used for retry messages.
func WithLogger(l logr.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Client for the NetBox instance at baseURL, e.g.
// http://netbox.netbox:80. The API prefix /api/ is added by the client.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid NetBox URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid NetBox URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid NetBox URL %q: missing host", baseURL)
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = defaultTimeout

	c := &Client{
		baseURL:    u,
		token:      token,
		httpClient: hc,
		pageSize:   defaultPageSize,
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured NetBox URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpointURL(ep Endpoint, id int64, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/api/" + string(ep) + "/"
	if id > 0 {
		u.Path += strconv.FormatInt(id, 10) + "/"
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Get fetches one record by id.
func (c *Client) Get(ctx context.Context, ep Endpoint, id int64) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, string(ep), c.endpointURL(ep, id, nil), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

type page struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []Record `json:"results"`
}

// Query lists records matching filters. Without fetchAll only the first page
// is returned; with fetchAll every continuation page is followed.
func (c *Client) Query(ctx context.Context, ep Endpoint, filters url.Values, fetchAll bool) ([]Record, error) {
	q := url.Values{}
	for k, v := range filters {
		q[k] = append([]string(nil), v...)
	}
	if q.Get("limit") == "" {
		q.Set("limit", strconv.Itoa(c.pageSize))
	}

	next := c.endpointURL(ep, 0, q)
	var out []Record
	for next != "" {
		var p page
		if err := c.do(ctx, http.MethodGet, string(ep), next, nil, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Results...)
		if !fetchAll || p.Next == nil {
			break
		}
		next = *p.Next
	}
	return out, nil
}

// Create posts a new record.
func (c *Client) Create(ctx context.Context, ep Endpoint, body map[string]any) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodPost, string(ep), c.endpointURL(ep, 0, nil), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update patches the given fields of a record.
func (c *Client) Update(ctx context.Context, ep Endpoint, id int64, fields map[string]any) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodPatch, string(ep), c.endpointURL(ep, id, nil), fields, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// AvailableIP is one free address reported by a prefix.
type AvailableIP struct {
	Family  int    `json:"family"`
	Address string `json:"address"`
}

// AvailableIPs lists up to limit free addresses of a prefix (0 means the
// NetBox default).
func (c *Client) AvailableIPs(ctx context.Context, prefixID int64, limit int) ([]AvailableIP, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	target := strings.TrimSuffix(c.endpointURL(Prefixes, prefixID, nil), "/") + "/available-ips/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	var ips []AvailableIP
	if err := c.do(ctx, http.MethodGet, string(Prefixes)+"/available-ips", target, nil, &ips); err != nil {
		return nil, err
	}
	return ips, nil
}

// AllocateIP creates the next free address of a prefix.
func (c *Client) AllocateIP(ctx context.Context, prefixID int64, body map[string]any) (*Record, error) {
	target := strings.TrimSuffix(c.endpointURL(Prefixes, prefixID, nil), "/") + "/available-ips/"
	var rec Record
	if err := c.do(ctx, http.MethodPost, string(Prefixes)+"/available-ips", target, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) do(ctx context.Context, method, operation, target string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, operation, err)
		}
	}

	retryIf := IsRetryable
	if method == http.MethodPost {
		retryIf = IsRetryableWrite
	}
	opts := append([]retry.Option{
		retry.WithRetryIf(retryIf),
		retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			c.log.V(1).Info("retrying NetBox request", "method", method, "endpoint", operation,
				"attempt", attempt, "delay", delay.String(), "error", err.Error())
		}),
	}, c.retryOpts...)

	return retry.Do(ctx, func(ctx context.Context) error {
		start := time.Now()
		err := c.roundTrip(ctx, method, operation, target, payload, out)
		if c.observer != nil {
			result := "success"
			if err != nil {
				result = "error"
			}
			c.observer(method+" "+operation, result, time.Since(start))
		}
		return err
	}, opts...)
}

func (c *Client) roundTrip(ctx context.Context, method, operation, target string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return retry.Fatal(err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, pathOf(target, c.baseURL), resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return retry.Fatal(fmt.Errorf("decode %s %s response: %w", method, operation, err))
	}
	return nil
}

// pathOf strips the base URL and /api/ prefix so errors stay short.
func pathOf(target string, base *url.URL) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	p := strings.TrimPrefix(u.Path, strings.TrimRight(base.Path, "/"))
	return strings.Trim(strings.TrimPrefix(p, "/api/"), "/")
}
