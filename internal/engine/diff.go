package engine

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/microscaler/netbox-operator/internal/netbox"
)

var diffOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.SortSlices(func(a, b any) bool { return fmt.Sprint(a) < fmt.Sprint(b) }),
}

// Diff returns the subset of desired whose value differs from the live
// record. Nested references are compared by id and choice fields by value,
// so {"id": 3, "url": ..., "name": ...} equals a desired 3.
func Diff(live *netbox.Record, desired map[string]any) map[string]any {
	changed := make(map[string]any)
	for key, want := range desired {
		if !cmp.Equal(normalizeValue(live.Fields[key]), normalizeValue(want), diffOptions...) {
			changed[key] = want
		}
	}
	return changed
}

// ChangedKeys returns the keys of a diff in a stable order for logging.
func ChangedKeys(changed map[string]any) []string {
	keys := make([]string, 0, len(changed))
	for k := range changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := t["id"]; ok {
			return normalizeValue(id)
		}
		if value, ok := t["value"]; ok {
			return normalizeValue(value)
		}
		if slug, ok := t["slug"]; ok {
			return slug
		}
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = normalizeValue(inner)
		}
		return out
	case []int64:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = float64(inner)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = inner
		}
		return out
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case *int64:
		if t == nil {
			return nil
		}
		return float64(*t)
	case float32:
		return float64(t)
	}
	return v
}
