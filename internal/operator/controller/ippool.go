package controller

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/async"
)

// ipPoolMapper tracks a prefix that is managed elsewhere. Pools never write
// to NetBox; their status reports the prefix and its address usage.
type ipPoolMapper struct{ planner }

func (m *ipPoolMapper) Kind() string                    { return dcopsv1alpha1.KindIPPool }
func (m *ipPoolMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.IPPool{} }

func (m *ipPoolMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	pool, err := as[*dcopsv1alpha1.IPPool](obj)
	if err != nil {
		return nil, err
	}
	prefixID, err := m.prefixID(ctx, pool)
	if err != nil {
		return nil, err
	}
	return &engine.Plan{
		Endpoint: netbox.Prefixes,
		Describe: fmt.Sprintf("Prefix %d", prefixID),
		Lookups: []engine.Lookup{
			{Name: "id", Filters: url.Values{"id": {idFilter(prefixID)}}},
		},
		ReadOnly: true,
	}, nil
}

// prefixID accepts either a numeric NetBox id or the name of a NetBoxPrefix.
func (m *ipPoolMapper) prefixID(ctx context.Context, pool *dcopsv1alpha1.IPPool) (int64, error) {
	ref := pool.Spec.NetBoxPrefixRef
	if id, err := strconv.ParseInt(ref.Name, 10, 64); err == nil && id > 0 {
		return id, nil
	}
	id, err := m.ref(ctx, pool, &ref, dcopsv1alpha1.KindPrefix, engine.Hard)
	if err != nil {
		return 0, err
	}
	return *id, nil
}

// Decorate counts the addresses of the prefix. Allocated addresses are the
// ones NetBox has within the prefix; total is allocated plus available.
func (m *ipPoolMapper) Decorate(ctx context.Context, _ dcopsv1alpha1.NetBoxObject, rec *netbox.Record,
	status *dcopsv1alpha1.ObservedStatus) error {
	cidr := rec.String("prefix")

	var available, allocated int
	tasks := []async.Task{
		{Name: "available", Func: func(ctx context.Context) error {
			ips, err := m.nb.AvailableIPs(ctx, rec.ID, 0)
			available = len(ips)
			return err
		}},
		{Name: "allocated", Func: func(ctx context.Context) error {
			recs, err := m.nb.Query(ctx, netbox.IPAddresses, url.Values{"parent": {cidr}}, true)
			allocated = len(recs)
			return err
		}},
	}
	if err := async.RunParallel(ctx, tasks, 0); err != nil {
		return fmt.Errorf("failed to count addresses of prefix %s: %w", cidr, err)
	}

	status.Extra = map[string]any{
		dcopsv1alpha1.ExtraTotalIPs:     int64(allocated + available),
		dcopsv1alpha1.ExtraAllocatedIPs: int64(allocated),
		dcopsv1alpha1.ExtraAvailableIPs: int64(available),
	}
	return nil
}
