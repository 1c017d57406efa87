package engine

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
)

// Strength says what happens when a reference cannot be resolved.
type Strength int

const (
	// Hard references abort the reconcile until the dependency is Created.
	Hard Strength = iota
	// Soft references resolve to nothing and the reconcile carries on.
	Soft
)

func (s Strength) String() string {
	if s == Soft {
		return "soft"
	}
	return "hard"
}

// Resolver maps references to the NetBox id recorded in the referenced
// resource's status. Nothing is cached; every call reads the object.
type Resolver struct {
	reader client.Reader
	scheme *runtime.Scheme
}

// NewResolver creates a Resolver reading through reader. The scheme must know
// every kind that can be referenced.
func NewResolver(reader client.Reader, scheme *runtime.Scheme) *Resolver {
	return &Resolver{reader: reader, scheme: scheme}
}

// Resolve resolves ref, which must point at expectedKind. The namespace
// defaults to the owner's. A nil id with a nil error means an unresolved soft
// reference.
func (r *Resolver) Resolve(ctx context.Context, owner client.Object, ref *dcopsv1alpha1.ResourceReference,
	expectedKind string, strength Strength) (*int64, error) {
	if ref == nil || ref.Name == "" {
		if strength == Hard {
			return nil, Configurationf("missing required %s reference", expectedKind)
		}
		return nil, nil
	}
	if ref.Kind != "" && ref.Kind != expectedKind {
		return nil, Configurationf("reference %q has kind %s, expected %s", ref.Name, ref.Kind, expectedKind)
	}
	if ref.APIGroup != "" && ref.APIGroup != dcopsv1alpha1.GroupVersion.Group {
		return nil, Configurationf("reference %q has API group %s, expected %s",
			ref.Name, ref.APIGroup, dcopsv1alpha1.GroupVersion.Group)
	}

	namespace := ref.Namespace
	if namespace == "" {
		namespace = owner.GetNamespace()
	}
	return r.ResolveName(ctx, types.NamespacedName{Namespace: namespace, Name: ref.Name}, expectedKind, strength)
}

// ResolveName resolves a reference given only by object name, as used by
// kinds that point at their dependency with a plain string.
func (r *Resolver) ResolveName(ctx context.Context, key types.NamespacedName, kind string, strength Strength) (*int64, error) {
	id, err := r.lookup(ctx, key, kind)
	if err == nil {
		return id, nil
	}
	if strength == Soft && IsDependency(err) {
		log.FromContext(ctx).Info("optional dependency not ready, continuing without it",
			"dependency", kind, "name", key.String(), "reason", err.Error())
		return nil, nil
	}
	return nil, err
}

// Object fetches a referenced object of the given kind.
func (r *Resolver) Object(ctx context.Context, key types.NamespacedName, kind string) (dcopsv1alpha1.NetBoxObject, error) {
	gvk := dcopsv1alpha1.GroupVersion.WithKind(kind)
	raw, err := r.scheme.New(gvk)
	if err != nil {
		// Kinds this operator does not manage can never become ready.
		if runtime.IsNotRegisteredError(err) {
			return nil, Dependencyf("%s %s is not managed by this operator", kind, key)
		}
		return nil, Configurationf("cannot reference %s: %v", kind, err)
	}
	obj, ok := raw.(dcopsv1alpha1.NetBoxObject)
	if !ok {
		return nil, Configurationf("%s is not a NetBox resource", kind)
	}

	if err := r.reader.Get(ctx, key, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, Dependencyf("%s %s does not exist", kind, key)
		}
		return nil, StoreError(fmt.Sprintf("failed to get %s %s", kind, key), err)
	}
	return obj, nil
}

func (r *Resolver) lookup(ctx context.Context, key types.NamespacedName, kind string) (*int64, error) {
	obj, err := r.Object(ctx, key, kind)
	if err != nil {
		return nil, err
	}
	status := obj.ObservedStatus()
	if status.State != dcopsv1alpha1.StateCreated || status.ID == nil {
		state := string(status.State)
		if state == "" {
			state = string(dcopsv1alpha1.StatePending)
		}
		return nil, Dependencyf("%s %s is not ready (state %s)", kind, key, state)
	}
	id := *status.ID
	return &id, nil
}
