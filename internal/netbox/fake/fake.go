// Package fake provides an in-memory NetBox for tests.
//
// It implements the same methods as netbox.Client over a map of records and
// mimics the parts of NetBox behavior the operator relies on: nested
// references and choice fields are rendered as objects, list filters match
// exact values (with the _id suffix matching a nested reference id and
// "parent" matching CIDR containment), and uniqueness violations are reported
// as 400 validation errors.
package fake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/microscaler/netbox-operator/internal/netbox"
)

// BaseURL is the URL prefix of every record served by the fake.
const BaseURL = "http://netbox.test"

// Fields rendered as nested {"id": n} references.
var refFields = map[string]bool{
	"site": true, "tenant": true, "region": true, "group": true, "parent": true,
	"manufacturer": true, "device_type": true, "role": true, "platform": true,
	"location": true, "device": true, "interface": true, "vlan": true, "rir": true,
	"primary_ip4": true, "primary_ip6": true, "assigned_object": true,
}

// Fields rendered as {"value": v, "label": v} choices.
var choiceFields = map[string]bool{"status": true, "type": true}

// DefaultUnique lists the field sets NetBox enforces uniqueness on.
var DefaultUnique = map[netbox.Endpoint][][]string{
	netbox.Sites:         {{"slug"}, {"name"}},
	netbox.Regions:       {{"slug"}, {"name"}},
	netbox.SiteGroups:    {{"slug"}, {"name"}},
	netbox.DeviceRoles:   {{"slug"}, {"name"}},
	netbox.Manufacturers: {{"slug"}, {"name"}},
	netbox.Platforms:     {{"slug"}, {"name"}},
	netbox.Tenants:       {{"slug"}, {"name"}},
	netbox.TenantGroups:  {{"slug"}, {"name"}},
	netbox.Roles:         {{"slug"}, {"name"}},
	netbox.RIRs:          {{"slug"}, {"name"}},
	netbox.Tags:          {{"slug"}, {"name"}},
	netbox.Locations:     {{"site", "slug"}},
	netbox.DeviceTypes:   {{"manufacturer", "model"}, {"manufacturer", "slug"}},
	netbox.Devices:       {{"site", "name"}},
	netbox.Interfaces:    {{"device", "name"}},
	netbox.MACAddresses:  {{"mac_address"}},
	netbox.VLANs:         {{"site", "vid"}},
	netbox.Prefixes:      {{"prefix"}},
	netbox.Aggregates:    {{"prefix"}},
	netbox.IPAddresses:   {{"address"}},
}

// NetBox is an in-memory NetBox. The zero value is not usable; call New.
type NetBox struct {
	mu      sync.Mutex
	records map[netbox.Endpoint]map[int64]map[string]any
	nextID  int64
	unique  map[netbox.Endpoint][][]string
	version *semver.Version
	calls   map[string]int

	// BeforeCreate runs before a create is applied. A non-nil error is
	// returned from Create as is. The hook may call Seed to simulate a
	// concurrent writer.
	BeforeCreate func(ep netbox.Endpoint, body map[string]any) error

	// GetErr, when set, is consulted before every Get.
	GetErr func(ep netbox.Endpoint, id int64) error
}

// New returns an empty NetBox reporting version 4.2.0.
func New() *NetBox {
	return &NetBox{
		records: make(map[netbox.Endpoint]map[int64]map[string]any),
		unique:  DefaultUnique,
		version: semver.MustParse("4.2.0"),
		calls:   make(map[string]int),
	}
}

// SetVersion changes the version returned by ServerVersion.
func (f *NetBox) SetVersion(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.version = semver.MustParse(v)
}

// Calls returns how often method was called for ep, e.g. Calls("POST", netbox.Sites).
func (f *NetBox) Calls(method string, ep netbox.Endpoint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method+" "+string(ep)]
}

// Writes returns the number of create and update calls across all endpoints.
func (f *NetBox) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k, v := range f.calls {
		if strings.HasPrefix(k, http.MethodPost+" ") || strings.HasPrefix(k, http.MethodPatch+" ") {
			n += v
		}
	}
	return n
}

// ResetCalls clears the call counters.
func (f *NetBox) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
}

// Seed stores a record directly, bypassing uniqueness checks and counters,
// and returns its id.
func (f *NetBox) Seed(ep netbox.Endpoint, fields map[string]any) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(ep, fields)
}

// Delete removes a record, simulating an out-of-band deletion.
func (f *NetBox) Delete(ep netbox.Endpoint, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records[ep], id)
}

// Len returns the number of records stored for ep.
func (f *NetBox) Len(ep netbox.Endpoint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records[ep])
}

// Lookup returns the rendered record, or nil when it does not exist.
func (f *NetBox) Lookup(ep netbox.Endpoint, id int64) *netbox.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.records[ep][id]
	if !ok {
		return nil
	}
	return render(raw)
}

// Get implements netbox.Client.Get.
func (f *NetBox) Get(_ context.Context, ep netbox.Endpoint, id int64) (*netbox.Record, error) {
	if f.GetErr != nil {
		if err := f.GetErr(ep, id); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[http.MethodGet+" "+string(ep)]++

	raw, ok := f.records[ep][id]
	if !ok {
		return nil, apiError(http.MethodGet, fmt.Sprintf("%s/%d", ep, id), http.StatusNotFound,
			"No object matches the given query.")
	}
	return render(raw), nil
}

// Query implements netbox.Client.Query. Pagination is ignored; every match
// is returned.
func (f *NetBox) Query(_ context.Context, ep netbox.Endpoint, filters url.Values, _ bool) ([]netbox.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["LIST "+string(ep)]++

	var out []netbox.Record
	for _, id := range f.sortedIDs(ep) {
		raw := f.records[ep][id]
		if matches(raw, filters) {
			out = append(out, *render(raw))
		}
	}
	return out, nil
}

// Create implements netbox.Client.Create.
func (f *NetBox) Create(_ context.Context, ep netbox.Endpoint, body map[string]any) (*netbox.Record, error) {
	if f.BeforeCreate != nil {
		if err := f.BeforeCreate(ep, body); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[http.MethodPost+" "+string(ep)]++

	fields := normalize(body)
	if err := f.checkUnique(ep, 0, fields); err != nil {
		return nil, err
	}
	id := f.insert(ep, fields)
	return render(f.records[ep][id]), nil
}

// Update implements netbox.Client.Update.
func (f *NetBox) Update(_ context.Context, ep netbox.Endpoint, id int64, changes map[string]any) (*netbox.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[http.MethodPatch+" "+string(ep)]++

	raw, ok := f.records[ep][id]
	if !ok {
		return nil, apiError(http.MethodPatch, fmt.Sprintf("%s/%d", ep, id), http.StatusNotFound,
			"No object matches the given query.")
	}
	merged := make(map[string]any, len(raw))
	for k, v := range raw {
		merged[k] = v
	}
	for k, v := range normalize(changes) {
		merged[k] = v
	}
	if err := f.checkUnique(ep, id, merged); err != nil {
		return nil, err
	}
	f.records[ep][id] = merged
	return render(merged), nil
}

// AvailableIPs implements netbox.Client.AvailableIPs.
func (f *NetBox) AvailableIPs(_ context.Context, prefixID int64, limit int) ([]netbox.AvailableIP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[http.MethodGet+" "+string(netbox.Prefixes)+"/available-ips"]++
	return f.available(prefixID, limit)
}

// AllocateIP implements netbox.Client.AllocateIP.
func (f *NetBox) AllocateIP(_ context.Context, prefixID int64, body map[string]any) (*netbox.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[http.MethodPost+" "+string(netbox.Prefixes)+"/available-ips"]++

	free, err := f.available(prefixID, 1)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		return nil, apiError(http.MethodPost, fmt.Sprintf("%s/%d/available-ips", netbox.Prefixes, prefixID),
			http.StatusConflict, "Insufficient space is available to accommodate the requested number of IPs")
	}
	fields := normalize(body)
	fields["address"] = free[0].Address
	id := f.insert(netbox.IPAddresses, fields)
	return render(f.records[netbox.IPAddresses][id]), nil
}

// ServerVersion implements netbox.Client.ServerVersion.
func (f *NetBox) ServerVersion(context.Context) (*semver.Version, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version, nil
}

func (f *NetBox) insert(ep netbox.Endpoint, fields map[string]any) int64 {
	f.nextID++
	id := f.nextID
	stored := normalize(fields)
	stored["id"] = float64(id)
	stored["url"] = fmt.Sprintf("%s/api/%s/%d/", BaseURL, ep, id)
	if f.records[ep] == nil {
		f.records[ep] = make(map[int64]map[string]any)
	}
	f.records[ep][id] = stored
	return id
}

func (f *NetBox) sortedIDs(ep netbox.Endpoint) []int64 {
	ids := make([]int64, 0, len(f.records[ep]))
	for id := range f.records[ep] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *NetBox) checkUnique(ep netbox.Endpoint, self int64, fields map[string]any) error {
	for _, set := range f.unique[ep] {
		want, ok := tuple(fields, set)
		if !ok {
			continue
		}
		for id, other := range f.records[ep] {
			if id == self {
				continue
			}
			if got, ok := tuple(other, set); ok && got == want {
				detail, _ := json.Marshal(map[string][]string{
					set[len(set)-1]: {fmt.Sprintf("%s with this %s already exists.", ep, strings.Join(set, " and "))},
				})
				return apiError(http.MethodPost, string(ep), http.StatusBadRequest, string(detail))
			}
		}
	}
	return nil
}

func (f *NetBox) available(prefixID int64, limit int) ([]netbox.AvailableIP, error) {
	raw, ok := f.records[netbox.Prefixes][prefixID]
	if !ok {
		return nil, apiError(http.MethodGet, fmt.Sprintf("%s/%d/available-ips", netbox.Prefixes, prefixID),
			http.StatusNotFound, "No Prefix matches the given query.")
	}
	cidr, _ := raw["prefix"].(string)
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return nil, apiError(http.MethodGet, fmt.Sprintf("%s/%d/available-ips", netbox.Prefixes, prefixID),
			http.StatusBadRequest, err.Error())
	}
	prefix = prefix.Masked()

	used := make(map[netip.Addr]bool)
	for _, ip := range f.records[netbox.IPAddresses] {
		if addr, ok := hostAddr(ip["address"]); ok {
			used[addr] = true
		}
	}

	family := 4
	if prefix.Addr().Is6() {
		family = 6
	}
	last := lastAddr(prefix)
	skipEdges := prefix.Addr().Is4() && prefix.Bits() < 31

	var out []netbox.AvailableIP
	for addr := prefix.Addr(); prefix.Contains(addr); addr = addr.Next() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if skipEdges && (addr == prefix.Addr() || addr == last) {
			continue
		}
		if !used[addr] {
			out = append(out, netbox.AvailableIP{
				Family:  family,
				Address: fmt.Sprintf("%s/%d", addr, prefix.Bits()),
			})
		}
		// Large IPv6 prefixes are not enumerated in full.
		if len(out) >= 1024 {
			break
		}
	}
	return out, nil
}

func lastAddr(p netip.Prefix) netip.Addr {
	b := p.Addr().AsSlice()
	for i := p.Bits(); i < len(b)*8; i++ {
		b[i/8] |= 1 << (7 - uint(i%8))
	}
	addr, _ := netip.AddrFromSlice(b)
	return addr
}

func hostAddr(v any) (netip.Addr, bool) {
	s, _ := v.(string)
	if p, err := netip.ParsePrefix(s); err == nil {
		return p.Addr(), true
	}
	if a, err := netip.ParseAddr(s); err == nil {
		return a, true
	}
	return netip.Addr{}, false
}

func matches(raw map[string]any, filters url.Values) bool {
	for key, values := range filters {
		if key == "limit" || key == "offset" || len(values) == 0 {
			continue
		}
		if !matchesAny(raw, key, values) {
			return false
		}
	}
	return true
}

func matchesAny(raw map[string]any, key string, values []string) bool {
	for _, want := range values {
		switch {
		case key == "parent":
			parent, err := netip.ParsePrefix(want)
			if err != nil {
				if scalar(raw[key]) == want {
					return true
				}
				continue
			}
			field := raw["address"]
			if field == nil {
				field = raw["prefix"]
			}
			if addr, ok := hostAddr(field); ok && parent.Contains(addr) {
				return true
			}
		case strings.HasSuffix(key, "_id"):
			if scalar(raw[strings.TrimSuffix(key, "_id")]) == want {
				return true
			}
		default:
			if scalar(raw[key]) == want {
				return true
			}
		}
	}
	return false
}

// tuple renders the values of fields as one comparable key.
func tuple(raw map[string]any, fields []string) (string, bool) {
	parts := make([]string, len(fields))
	for i, field := range fields {
		v, ok := raw[field]
		if !ok || v == nil {
			return "", false
		}
		parts[i] = strings.ToLower(scalar(v))
	}
	return strings.Join(parts, "\x00"), true
}

// scalar renders a stored value the way NetBox filters compare it.
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		if id, ok := t["id"]; ok {
			return scalar(id)
		}
		if value, ok := t["value"]; ok {
			return scalar(value)
		}
		return scalar(t["slug"])
	}
	return fmt.Sprint(v)
}

// normalize round-trips through JSON so numbers are float64 as on the wire.
func normalize(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	data, err := json.Marshal(in)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func render(raw map[string]any) *netbox.Record {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		switch {
		case refFields[k]:
			if _, isNum := v.(float64); isNum {
				out[k] = map[string]any{"id": v}
				continue
			}
		case choiceFields[k]:
			if s, isStr := v.(string); isStr {
				out[k] = map[string]any{"value": s, "label": s}
				continue
			}
		case k == "tags":
			if items, isList := v.([]any); isList {
				tags := make([]any, 0, len(items))
				for _, item := range items {
					if _, isNum := item.(float64); isNum {
						tags = append(tags, map[string]any{"id": item})
						continue
					}
					tags = append(tags, item)
				}
				out[k] = tags
				continue
			}
		}
		out[k] = v
	}
	data, _ := json.Marshal(out)
	var rec netbox.Record
	_ = json.Unmarshal(data, &rec)
	return &rec
}

func apiError(method, path string, status int, detail string) *netbox.APIError {
	return &netbox.APIError{StatusCode: status, Method: method, Path: path, Detail: detail}
}
