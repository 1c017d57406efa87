package controller

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"net/netip"
	"net/url"
	"strings"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/labels"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

// ipClaimMapper allocates one address from the prefix of an IPPool.
//
// The address record carries the claim in its description, which is how a
// claim finds its address again when its status was lost.
type ipClaimMapper struct{ planner }

func (m *ipClaimMapper) Kind() string                    { return dcopsv1alpha1.KindIPClaim }
func (m *ipClaimMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.IPClaim{} }

func (m *ipClaimMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	claim, err := as[*dcopsv1alpha1.IPClaim](obj)
	if err != nil {
		return nil, err
	}
	spec := claim.Spec
	if spec.PoolRef.Name == "" {
		return nil, engine.Configurationf("missing required %s reference", dcopsv1alpha1.KindIPPool)
	}

	poolKey := types.NamespacedName{Namespace: orDefault(spec.PoolRef.Namespace, claim.Namespace), Name: spec.PoolRef.Name}
	prefixID, err := m.resolver.ResolveName(ctx, poolKey, dcopsv1alpha1.KindIPPool, engine.Hard)
	if err != nil {
		return nil, err
	}
	poolObj, err := m.resolver.Object(ctx, poolKey, dcopsv1alpha1.KindIPPool)
	if err != nil {
		return nil, err
	}
	pool, err := as[*dcopsv1alpha1.IPPool](poolObj)
	if err != nil {
		return nil, err
	}

	prefix, err := m.prefix(ctx, *prefixID)
	if err != nil {
		return nil, err
	}
	preferred := ""
	if spec.PreferredIP != "" {
		if preferred, err = preferredAddress(spec.PreferredIP, prefix); err != nil {
			return nil, err
		}
	}

	desc := naming.ClaimDescription(claim.Namespace, claim.Name)
	tags := labels.NewTagBuilder().WithOwner(labels.TagOwnerIPClaim).Build(m.tagResolver(ctx))
	desired := fields{"description": desc, "status": "active", "tags": tags}
	desired.str("address", preferred)
	if spec.DeviceRef.Name != "" && spec.DeviceRef.Interface != "" {
		iface, err := m.deviceInterface(ctx, claim.Namespace, spec.DeviceRef.Name, spec.DeviceRef.Interface)
		if err != nil {
			return nil, err
		}
		if iface != nil {
			desired["assigned_object_type"] = "dcim.interface"
			desired["assigned_object_id"] = *iface
		}
	}

	var lookups []engine.Lookup
	if preferred != "" {
		lookups = append(lookups, engine.Lookup{Name: "address", Filters: url.Values{"address": {preferred}}})
	}
	lookups = append(lookups, engine.Lookup{
		Name:    "claim description",
		Filters: url.Values{"parent": {prefix.String()}, "description": {desc}},
	})

	return &engine.Plan{
		Endpoint: netbox.IPAddresses,
		Describe: "IP address for IPClaim " + naming.ObjectKey(claim.Namespace, claim.Name),
		Desired:  desired,
		Lookups:  lookups,
		Match: func(rec netbox.Record) bool {
			if preferred != "" && rec.String("address") == preferred {
				return true
			}
			return rec.String("description") == desc
		},
		Create: func(ctx context.Context) (*netbox.Record, error) {
			return m.allocate(ctx, *prefixID, pool.Spec.AllocationStrategy, desired)
		},
	}, nil
}

// prefix fetches the pool's prefix. A prefix that vanished from NetBox is a
// configuration problem of the pool, not something a retry fixes.
func (m *ipClaimMapper) prefix(ctx context.Context, id int64) (netip.Prefix, error) {
	rec, err := m.nb.Get(ctx, netbox.Prefixes, id)
	if err != nil {
		if netbox.IsNotFound(err) {
			return netip.Prefix{}, engine.Configurationf("Prefix %d not found in NetBox: %v", id, err)
		}
		return netip.Prefix{}, fmt.Errorf("failed to get prefix %d: %w", id, err)
	}
	p, err := netip.ParsePrefix(rec.String("prefix"))
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("prefix %d has unparsable value %q: %w", id, rec.String("prefix"), err)
	}
	return p.Masked(), nil
}

// allocate creates the address. A body with an address creates exactly that
// address; otherwise the pool's strategy picks the next free one or a random
// free one.
func (m *ipClaimMapper) allocate(ctx context.Context, prefixID int64, strategy dcopsv1alpha1.AllocationStrategy,
	body map[string]any) (*netbox.Record, error) {
	body = maps.Clone(body)
	if _, ok := body["address"]; ok {
		return m.nb.Create(ctx, netbox.IPAddresses, body)
	}
	if strategy != dcopsv1alpha1.AllocationRandom {
		return m.nb.AllocateIP(ctx, prefixID, body)
	}

	free, err := m.nb.AvailableIPs(ctx, prefixID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list available addresses of prefix %d: %w", prefixID, err)
	}
	if len(free) == 0 {
		return nil, fmt.Errorf("prefix %d has no available addresses", prefixID)
	}
	body["address"] = free[rand.IntN(len(free))].Address
	log.FromContext(ctx).V(1).Info("picked random address", "address", body["address"])
	return m.nb.Create(ctx, netbox.IPAddresses, body)
}

// Decorate records the allocated address.
func (m *ipClaimMapper) Decorate(_ context.Context, _ dcopsv1alpha1.NetBoxObject, rec *netbox.Record,
	status *dcopsv1alpha1.ObservedStatus) error {
	status.Extra = map[string]any{dcopsv1alpha1.ExtraIP: rec.String("address")}
	return nil
}

// tagResolver resolves tag slugs to ids. Lookup failures fall back to the
// slug form.
func (p planner) tagResolver(ctx context.Context) labels.TagResolver {
	return func(slug string) (int64, bool) {
		recs, err := p.nb.Query(ctx, netbox.Tags, url.Values{"slug": {slug}}, false)
		if err != nil {
			log.FromContext(ctx).V(1).Info("tag lookup failed, referencing it by slug", "tag", slug, "error", err.Error())
			return 0, false
		}
		if len(recs) == 0 {
			return 0, false
		}
		return recs[0].ID, true
	}
}

// preferredAddress validates a requested address against the prefix and
// returns it with the prefix length NetBox stores it with.
func preferredAddress(raw string, prefix netip.Prefix) (string, error) {
	host, _, _ := strings.Cut(raw, "/")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", engine.Configurationf("invalid preferred IP %q: %v", raw, err)
	}
	if !prefix.Contains(addr) {
		return "", engine.Configurationf("preferred IP %s is outside prefix %s", addr, prefix)
	}
	return netip.PrefixFrom(addr, prefix.Bits()).String(), nil
}
