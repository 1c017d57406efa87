package netbox

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// macAddressObjectsSince is the first NetBox release with the dcim/mac-addresses
// endpoint.
var macAddressObjectsSince = semver.MustParse("4.2.0")

// ServerStatus is the response of /api/status/.
type ServerStatus struct {
	NetBoxVersion string         `json:"netbox-version"`
	PythonVersion string         `json:"python-version"`
	Plugins       map[string]any `json:"plugins"`
}

// Version parses NetBoxVersion, dropping distribution suffixes such as
// "4.2.1-Docker-3.2.0".
func (s ServerStatus) Version() (*semver.Version, error) {
	v, err := semver.NewVersion(s.NetBoxVersion)
	if err != nil {
		return nil, fmt.Errorf("unparsable NetBox version %q: %w", s.NetBoxVersion, err)
	}
	core, err := v.SetPrerelease("")
	if err != nil {
		return nil, err
	}
	core, err = core.SetMetadata("")
	if err != nil {
		return nil, err
	}
	return &core, nil
}

// SupportsMACAddressObjects reports whether v serves dcim/mac-addresses.
func SupportsMACAddressObjects(v *semver.Version) bool {
	return v != nil && !v.LessThan(macAddressObjectsSince)
}

// SupportsPrefixScope reports whether prefixes of v are bound to a site
// through scope_type/scope_id instead of the site field. Both changes
// shipped in 4.2.
func SupportsPrefixScope(v *semver.Version) bool {
	return SupportsMACAddressObjects(v)
}

// Status fetches /api/status/.
func (c *Client) Status(ctx context.Context) (*ServerStatus, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/api/status/"
	var status ServerStatus
	if err := c.do(ctx, http.MethodGet, "status", u.String(), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ServerVersion returns the NetBox version, querying it once and caching the
// first successful answer.
func (c *Client) ServerVersion(ctx context.Context) (*semver.Version, error) {
	c.versionMu.Lock()
	defer c.versionMu.Unlock()
	if c.version != nil {
		return c.version, nil
	}
	status, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	v, err := status.Version()
	if err != nil {
		return nil, err
	}
	c.version = v
	return v, nil
}

// ValidateToken performs one authenticated request. The error names the
// likely causes so it can be shown to an operator as is.
func (c *Client) ValidateToken(ctx context.Context) error {
	_, err := c.Query(ctx, Sites, url.Values{"limit": []string{"1"}}, false)
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to validate NetBox token: %w\n"+
		"Please check:\n"+
		"  1. NETBOX_TOKEN environment variable is set correctly\n"+
		"  2. The token is valid in NetBox\n"+
		"  3. NetBox is reachable at %s", err, c.baseURL.String())
}
