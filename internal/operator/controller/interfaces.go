package controller

import (
	"context"

	"github.com/Masterminds/semver/v3"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
)

// NetBox is the subset of the NetBox client used by the controllers.
// It is satisfied by *netbox.Client and by the in-memory fake.
type NetBox interface {
	engine.Inventory

	AvailableIPs(ctx context.Context, prefixID int64, limit int) ([]netbox.AvailableIP, error)
	AllocateIP(ctx context.Context, prefixID int64, body map[string]any) (*netbox.Record, error)
	ServerVersion(ctx context.Context) (*semver.Version, error)
}

// Mapper knows how one kind corresponds to NetBox records.
type Mapper interface {
	// Kind returns the kind name, e.g. NetBoxSite.
	Kind() string

	// New returns an empty object of the kind.
	New() dcopsv1alpha1.NetBoxObject

	// Plan resolves the references of obj and describes its record. Errors
	// abort the attempt before NetBox is written.
	Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error)
}

// Decorator is implemented by mappers whose status carries more than the
// record id, such as the allocated address of an IPClaim.
type Decorator interface {
	Decorate(ctx context.Context, obj dcopsv1alpha1.NetBoxObject, rec *netbox.Record, status *dcopsv1alpha1.ObservedStatus) error
}
