package controller

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
)

// planner holds what every mapper needs to build plans.
type planner struct {
	resolver *engine.Resolver
	nb       NetBox
}

// Mappers returns the mappers of every reconciled kind.
func Mappers(reader client.Reader, scheme *runtime.Scheme, nb NetBox) []Mapper {
	p := planner{resolver: engine.NewResolver(reader, scheme), nb: nb}
	return []Mapper{
		&siteMapper{p},
		&locationMapper{p},
		&regionMapper{p},
		&siteGroupMapper{p},
		&deviceRoleMapper{p},
		&manufacturerMapper{p},
		&platformMapper{p},
		&deviceTypeMapper{p},
		&deviceMapper{p},
		&interfaceMapper{p},
		&macAddressMapper{p},
		&tenantMapper{p},
		&vlanMapper{p},
		&prefixMapper{p},
		&aggregateMapper{p},
		&roleMapper{p},
		&tagMapper{p},
		&ipPoolMapper{p},
		&ipClaimMapper{p},
	}
}

// as narrows obj to the concrete type a mapper works on.
func as[T dcopsv1alpha1.NetBoxObject](obj dcopsv1alpha1.NetBoxObject) (T, error) {
	t, ok := obj.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected object type %T", obj)
	}
	return t, nil
}

// ref resolves a typed reference of owner.
func (p planner) ref(ctx context.Context, owner client.Object, ref *dcopsv1alpha1.ResourceReference,
	kind string, strength engine.Strength) (*int64, error) {
	return p.resolver.Resolve(ctx, owner, ref, kind, strength)
}

// version returns the NetBox version. Failing to learn it is retryable.
func (p planner) version(ctx context.Context) (*semver.Version, error) {
	v, err := p.nb.ServerVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine NetBox version: %w", err)
	}
	return v, nil
}

// fields builds the desired attributes of a record. Empty values are left
// out so NetBox keeps its defaults and attributes set elsewhere.
type fields map[string]any

func (f fields) str(key, value string) fields {
	if value != "" {
		f[key] = value
	}
	return f
}

func (f fields) id(key string, id *int64) fields {
	if id != nil {
		f[key] = *id
	}
	return f
}

func (f fields) int32(key string, v *int32) fields {
	if v != nil {
		f[key] = int64(*v)
	}
	return f
}

// float parses value as a decimal. A malformed value is a configuration
// error naming the spec field.
func (f fields) float(key, field, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return engine.Configurationf("invalid %s %q: not a number", field, value)
	}
	f[key] = n
	return nil
}

// slugLookups finds records of organizational kinds by slug, then by name.
func slugLookups(slug, name string) []engine.Lookup {
	return []engine.Lookup{
		{Name: "slug", Filters: url.Values{"slug": {slug}}},
		{Name: "name", Filters: url.Values{"name": {name}}},
	}
}

// slugOrName matches records with the given slug or name.
func slugOrName(slug, name string) func(netbox.Record) bool {
	return func(rec netbox.Record) bool {
		return rec.String("slug") == slug || rec.String("name") == name
	}
}

// refEquals reports whether the nested reference key of rec points at id.
// A nil id matches records without the reference.
func refEquals(rec netbox.Record, key string, id *int64) bool {
	got, ok := rec.RefID(key)
	if id == nil {
		return !ok
	}
	return ok && got == *id
}

// color normalizes a color to the six hex digits NetBox stores.
func color(c string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c), "#"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func idFilter(id int64) string {
	return strconv.FormatInt(id, 10)
}

func describe(kind, name string) string {
	return fmt.Sprintf("%s %q", kind, name)
}

// debugRef logs a resolved reference.
func debugRef(ctx context.Context, field string, id *int64) {
	if id != nil {
		log.FromContext(ctx).V(1).Info("resolved reference", "field", field, "netboxId", *id)
	}
}
