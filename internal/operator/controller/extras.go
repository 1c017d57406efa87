package controller

import (
	"context"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

type tagMapper struct{ planner }

func (m *tagMapper) Kind() string                    { return dcopsv1alpha1.KindTag }
func (m *tagMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxTag{} }

func (m *tagMapper) Plan(_ context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	tag, err := as[*dcopsv1alpha1.NetBoxTag](obj)
	if err != nil {
		return nil, err
	}
	spec := tag.Spec
	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug}
	desired.str("color", color(spec.Color)).str("description", spec.Description)
	return &engine.Plan{
		Endpoint: netbox.Tags,
		Describe: describe("tag", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}
