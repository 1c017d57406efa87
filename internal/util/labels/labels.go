// Package labels provides the NetBox tags the operator stamps on records it
// allocates itself.
//
// Tags mark ownership so that operators of the NetBox instance can tell which
// records were created by a controller and which one. NetBox accepts a tag
// either as a numeric id or as a dictionary naming its slug; the id form is
// used whenever the tag already exists.
package labels

import "slices"

// Standard tag slugs.
const (
	// TagManagedBy marks every record created by the operator.
	TagManagedBy = "managed-by-dcops"

	// TagOwnerIPClaim marks addresses allocated for an IPClaim.
	TagOwnerIPClaim = "owner-ip-claim-controller"
)

// TagResolver looks up the id of an existing tag by slug.
type TagResolver func(slug string) (int64, bool)

// TagBuilder collects tag slugs in insertion order.
type TagBuilder struct {
	slugs []string
}

// NewTagBuilder creates a builder with the managed-by tag pre-set.
func NewTagBuilder() *TagBuilder {
	return &TagBuilder{slugs: []string{TagManagedBy}}
}

// WithOwner adds the tag of the controller owning the record.
func (tb *TagBuilder) WithOwner(owner string) *TagBuilder {
	return tb.Merge(owner)
}

// Merge adds slugs that are not present yet.
func (tb *TagBuilder) Merge(slugs ...string) *TagBuilder {
	for _, s := range slugs {
		if s != "" && !slices.Contains(tb.slugs, s) {
			tb.slugs = append(tb.slugs, s)
		}
	}
	return tb
}

// Slugs returns a copy of the collected slugs.
func (tb *TagBuilder) Slugs() []string {
	return slices.Clone(tb.slugs)
}

// Build renders the tags for a NetBox request body. Tags known to resolve
// are sent by id, the rest by slug. A nil resolve sends every tag by slug.
func (tb *TagBuilder) Build(resolve TagResolver) []any {
	out := make([]any, 0, len(tb.slugs))
	for _, s := range tb.slugs {
		if resolve != nil {
			if id, ok := resolve(s); ok {
				out = append(out, id)
				continue
			}
		}
		out = append(out, map[string]any{"slug": s})
	}
	return out
}
