package netbox

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a NetBox object as returned by the REST API. Fields holds the
// complete decoded object, including id and url.
type Record struct {
	ID      int64
	URL     string
	Display string
	Fields  map[string]any
}

// UnmarshalJSON decodes any NetBox object.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	id, ok := asInt(fields["id"])
	if !ok {
		return fmt.Errorf("netbox record without numeric id: %s", truncate(string(data), 200))
	}
	r.ID = id
	r.URL, _ = fields["url"].(string)
	r.Display, _ = fields["display"].(string)
	r.Fields = fields
	return nil
}

// MarshalJSON encodes the record's fields.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}

// String returns a top-level string field, or "" when absent.
func (r *Record) String(key string) string {
	s, _ := r.Fields[key].(string)
	return s
}

// RefID returns the id of a nested reference field such as "site", which NetBox
// renders as {"id": 3, "url": ..., "name": ...}. Plain numbers are accepted too.
func (r *Record) RefID(key string) (int64, bool) {
	switch v := r.Fields[key].(type) {
	case map[string]any:
		return asInt(v["id"])
	default:
		return asInt(v)
	}
}

// Choice returns the value of a choice field such as "status", which NetBox
// renders as {"value": "active", "label": "Active"}.
func (r *Record) Choice(key string) string {
	switch v := r.Fields[key].(type) {
	case map[string]any:
		s, _ := v["value"].(string)
		return s
	case string:
		return v
	}
	return ""
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), n == float64(int64(n))
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
