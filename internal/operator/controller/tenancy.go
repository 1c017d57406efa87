package controller

import (
	"context"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

type tenantMapper struct{ planner }

func (m *tenantMapper) Kind() string                    { return dcopsv1alpha1.KindTenant }
func (m *tenantMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxTenant{} }

func (m *tenantMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	tenant, err := as[*dcopsv1alpha1.NetBoxTenant](obj)
	if err != nil {
		return nil, err
	}
	spec := tenant.Spec
	group, err := m.ref(ctx, tenant, spec.Group, kindTenantGroup, engine.Soft)
	if err != nil {
		return nil, err
	}

	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug}
	desired.id("group", group).
		str("description", spec.Description).
		str("comments", spec.Comments)
	return &engine.Plan{
		Endpoint: netbox.Tenants,
		Describe: describe("tenant", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}
