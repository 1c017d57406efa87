package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// maxSlugLength is the NetBox limit on slug fields.
const maxSlugLength = 100

// Slugify turns a display name into a NetBox slug: lowercase ASCII letters,
// digits, dashes and underscores, with runs of anything else collapsed into a
// single dash.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// SlugOr returns slug when set and the slug of name otherwise.
func SlugOr(slug, name string) string {
	if slug != "" {
		return slug
	}
	return Slugify(name)
}

// ObjectKey formats a namespaced object name.
func ObjectKey(namespace, name string) string {
	return fmt.Sprintf("%s/%s", namespace, name)
}

// ClaimDescription is the description written on addresses allocated for an
// IPClaim. It identifies the claim that owns the address.
func ClaimDescription(namespace, name string) string {
	return "IPClaim: " + ObjectKey(namespace, name)
}
