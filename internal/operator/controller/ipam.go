package controller

import (
	"context"
	"fmt"
	"net/netip"
	"net/url"
	"strconv"

	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

// Kinds referenced by VLANs and tenants that this operator does not manage.
// References to them resolve like any soft reference that is never ready.
const (
	kindVLANGroup   = "NetBoxVLANGroup"
	kindTenantGroup = "NetBoxTenantGroup"
)

// defaultRIR is used by aggregates that do not name one.
const defaultRIR = "RFC1918"

type vlanMapper struct{ planner }

func (m *vlanMapper) Kind() string                    { return dcopsv1alpha1.KindVLAN }
func (m *vlanMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxVLAN{} }

func (m *vlanMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	vlan, err := as[*dcopsv1alpha1.NetBoxVLAN](obj)
	if err != nil {
		return nil, err
	}
	spec := vlan.Spec
	if spec.VID < 1 || spec.VID > 4094 {
		return nil, engine.Configurationf("invalid VLAN id %d, must be between 1 and 4094", spec.VID)
	}

	site, err := m.ref(ctx, vlan, spec.Site, dcopsv1alpha1.KindSite, engine.Soft)
	if err != nil {
		return nil, err
	}
	group, err := m.ref(ctx, vlan, spec.Group, kindVLANGroup, engine.Soft)
	if err != nil {
		return nil, err
	}
	tenant, err := m.ref(ctx, vlan, spec.Tenant, dcopsv1alpha1.KindTenant, engine.Soft)
	if err != nil {
		return nil, err
	}
	role, err := m.ref(ctx, vlan, spec.Role, dcopsv1alpha1.KindRole, engine.Soft)
	if err != nil {
		return nil, err
	}

	vid := int64(spec.VID)
	desired := fields{
		"vid":    vid,
		"name":   spec.Name,
		"status": orDefault(string(spec.Status), "active"),
	}
	desired.id("site", site).
		id("group", group).
		id("tenant", tenant).
		id("role", role).
		str("description", spec.Description).
		str("comments", spec.Comments)

	byVID := url.Values{"vid": {strconv.FormatInt(vid, 10)}}
	if site != nil {
		byVID.Set("site_id", idFilter(*site))
	}
	return &engine.Plan{
		Endpoint: netbox.VLANs,
		Describe: fmt.Sprintf("VLAN %d (%s)", vid, spec.Name),
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "vid and site", Filters: byVID},
			{Name: "name", Filters: url.Values{"name": {spec.Name}}},
		},
		Match: func(rec netbox.Record) bool {
			got, _ := rec.RefID("vid")
			return (got == vid || rec.String("name") == spec.Name) && refEquals(rec, "site", site)
		},
	}, nil
}

type prefixMapper struct{ planner }

func (m *prefixMapper) Kind() string                    { return dcopsv1alpha1.KindPrefix }
func (m *prefixMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxPrefix{} }

func (m *prefixMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	prefix, err := as[*dcopsv1alpha1.NetBoxPrefix](obj)
	if err != nil {
		return nil, err
	}
	spec := prefix.Spec
	cidr, err := canonicalPrefix(spec.Prefix)
	if err != nil {
		return nil, err
	}

	site, err := m.ref(ctx, prefix, spec.Site, dcopsv1alpha1.KindSite, engine.Soft)
	if err != nil {
		return nil, err
	}
	tenant, err := m.ref(ctx, prefix, spec.Tenant, dcopsv1alpha1.KindTenant, engine.Soft)
	if err != nil {
		return nil, err
	}
	// NetBox derives the aggregate from the prefix itself; the reference is
	// only checked.
	if _, err := m.ref(ctx, prefix, spec.Aggregate, dcopsv1alpha1.KindAggregate, engine.Soft); err != nil {
		return nil, err
	}
	vlan, err := m.ref(ctx, prefix, spec.VLAN, dcopsv1alpha1.KindVLAN, engine.Soft)
	if err != nil {
		return nil, err
	}
	role, err := m.ref(ctx, prefix, spec.Role, dcopsv1alpha1.KindRole, engine.Soft)
	if err != nil {
		return nil, err
	}
	tags, err := m.tags(ctx, prefix)
	if err != nil {
		return nil, err
	}

	desired := fields{
		"prefix": cidr,
		"status": orDefault(string(spec.Status), "active"),
	}
	desired.id("tenant", tenant).
		id("vlan", vlan).
		id("role", role).
		str("description", spec.Description).
		str("comments", spec.Comments)
	if len(tags) > 0 {
		desired["tags"] = tags
	}
	if site != nil {
		v, err := m.version(ctx)
		if err != nil {
			return nil, err
		}
		if netbox.SupportsPrefixScope(v) {
			desired["scope_type"] = "dcim.site"
			desired["scope_id"] = *site
		} else {
			desired["site"] = *site
		}
	}

	return &engine.Plan{
		Endpoint: netbox.Prefixes,
		Describe: "prefix " + cidr,
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "prefix", Filters: url.Values{"prefix": {cidr}}},
		},
		Match: func(rec netbox.Record) bool {
			return rec.String("prefix") == cidr
		},
	}, nil
}

// tags resolves the tag references of a prefix. Tags that are not Created
// yet are left out until a later attempt.
func (m *prefixMapper) tags(ctx context.Context, prefix *dcopsv1alpha1.NetBoxPrefix) ([]any, error) {
	var ids []any
	for i := range prefix.Spec.Tags {
		id, err := m.ref(ctx, prefix, &prefix.Spec.Tags[i], dcopsv1alpha1.KindTag, engine.Soft)
		if err != nil {
			return nil, err
		}
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids, nil
}

// canonicalPrefix validates a CIDR and returns it in the form NetBox stores.
func canonicalPrefix(cidr string) (string, error) {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return "", engine.Configurationf("invalid prefix %q: %v", cidr, err)
	}
	return p.Masked().String(), nil
}

type aggregateMapper struct{ planner }

func (m *aggregateMapper) Kind() string                    { return dcopsv1alpha1.KindAggregate }
func (m *aggregateMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxAggregate{} }

func (m *aggregateMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	agg, err := as[*dcopsv1alpha1.NetBoxAggregate](obj)
	if err != nil {
		return nil, err
	}
	spec := agg.Spec
	cidr, err := canonicalPrefix(spec.Prefix)
	if err != nil {
		return nil, err
	}
	rir, err := m.rir(ctx, orDefault(spec.RIR, defaultRIR))
	if err != nil {
		return nil, err
	}

	desired := fields{"prefix": cidr, "rir": rir}
	desired.str("date_added", spec.DateAllocated).
		str("description", spec.Description).
		str("comments", spec.Comments)
	return &engine.Plan{
		Endpoint: netbox.Aggregates,
		Describe: "aggregate " + cidr,
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "prefix", Filters: url.Values{"prefix": {cidr}}},
		},
		Match: func(rec netbox.Record) bool {
			return rec.String("prefix") == cidr
		},
	}, nil
}

// rir finds the RIR by slug or name and creates it when missing. It runs the
// sync engine on a plan of its own so concurrent aggregates naming the same
// new RIR converge on one record.
func (m *aggregateMapper) rir(ctx context.Context, name string) (int64, error) {
	slug := naming.Slugify(name)
	plan := engine.Plan{
		Endpoint: netbox.RIRs,
		Describe: describe("RIR", name),
		Desired:  map[string]any{"name": name, "slug": slug},
		Lookups:  slugLookups(slug, name),
		Match:    slugOrName(slug, name),
	}
	outcome, err := engine.New(m.nb).Sync(ctx, dcopsv1alpha1.ObservedStatus{}, plan, nil)
	if err != nil {
		return 0, err
	}
	if outcome.Action == engine.ActionCreated {
		log.FromContext(ctx).Info("created RIR", "rir", name, "netboxId", outcome.Record.ID)
	}
	return outcome.Record.ID, nil
}

type roleMapper struct{ planner }

func (m *roleMapper) Kind() string                    { return dcopsv1alpha1.KindRole }
func (m *roleMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxRole{} }

func (m *roleMapper) Plan(_ context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	role, err := as[*dcopsv1alpha1.NetBoxRole](obj)
	if err != nil {
		return nil, err
	}
	spec := role.Spec
	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug}
	desired.int32("weight", spec.Weight).str("description", spec.Description)
	return &engine.Plan{
		Endpoint: netbox.Roles,
		Describe: describe("role", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}
