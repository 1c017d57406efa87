package controller

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	crfake "sigs.k8s.io/controller-runtime/pkg/client/fake"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
)

const testNamespace = "default"

func setupTestScheme(t require.TestingT) *runtime.Scheme {
	scheme := runtime.NewScheme()
	require.NoError(t, dcopsv1alpha1.AddToScheme(scheme))
	return scheme
}

// testEnv wires the mappers of every kind to a fake Kubernetes client and an
// in-memory NetBox.
type testEnv struct {
	ctx     context.Context
	k8s     client.Client
	nb      *fake.NetBox
	mappers map[string]Mapper
}

// newTestEnv builds an environment holding objs. A nil nb starts with an
// empty NetBox; pass one to seed records whose ids the objects refer to.
func newTestEnv(t require.TestingT, nb *fake.NetBox, objs ...client.Object) *testEnv {
	scheme := setupTestScheme(t)
	if nb == nil {
		nb = fake.New()
	}

	var withStatus []client.Object
	for _, m := range Mappers(nil, scheme, nil) {
		withStatus = append(withStatus, m.New())
	}
	k8s := crfake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(withStatus...).
		Build()

	mappers := make(map[string]Mapper)
	for _, m := range Mappers(k8s, scheme, nb) {
		mappers[m.Kind()] = m
	}
	return &testEnv{ctx: context.Background(), k8s: k8s, nb: nb, mappers: mappers}
}

// reconciler returns a reconciler for kind with metrics disabled.
func (e *testEnv) reconciler(kind string, opts ...Option) *Reconciler {
	m, ok := e.mappers[kind]
	if !ok {
		panic("no mapper for " + kind)
	}
	return NewReconciler(e.k8s, e.nb, m, append([]Option{WithMetrics(false)}, opts...)...)
}

// reconcile runs one attempt for the named object of r's kind.
func (e *testEnv) reconcile(t require.TestingT, r *Reconciler, name string) ctrl.Result {
	res, err := r.Reconcile(e.ctx, ctrl.Request{NamespacedName: key(name)})
	require.NoError(t, err)
	return res
}

// plan builds the plan of obj with the mapper of its kind.
func (e *testEnv) plan(kind string, obj dcopsv1alpha1.NetBoxObject) (map[string]any, error) {
	p, err := e.mappers[kind].Plan(e.ctx, obj)
	if err != nil {
		return nil, err
	}
	return p.Desired, nil
}

func (e *testEnv) get(t require.TestingT, name string, obj client.Object) {
	require.NoError(t, e.k8s.Get(e.ctx, key(name), obj))
}

func key(name string) types.NamespacedName {
	return types.NamespacedName{Namespace: testNamespace, Name: name}
}

func objectMeta(name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: name, Namespace: testNamespace, Generation: 1}
}

func ref(kind, name string) *dcopsv1alpha1.ResourceReference {
	return &dcopsv1alpha1.ResourceReference{Kind: kind, Name: name}
}

// createdStatus is the status of a resource backed by record id of ep.
func createdStatus(ep netbox.Endpoint, id int64) dcopsv1alpha1.NetBoxResourceStatus {
	return dcopsv1alpha1.NetBoxResourceStatus{
		NetBoxID:           ptr.To(id),
		NetBoxURL:          ptr.To(fmt.Sprintf("%s/api/%s/%d/", fake.BaseURL, ep, id)),
		State:              dcopsv1alpha1.StateCreated,
		ObservedGeneration: 1,
	}
}

func newSite(name string) *dcopsv1alpha1.NetBoxSite {
	return &dcopsv1alpha1.NetBoxSite{
		ObjectMeta: objectMeta(name),
		Spec:       dcopsv1alpha1.NetBoxSiteSpec{Name: name},
	}
}

func createdSite(name string, id int64) *dcopsv1alpha1.NetBoxSite {
	s := newSite(name)
	s.Status = createdStatus(netbox.Sites, id)
	return s
}

func createdDevice(name string, id int64) *dcopsv1alpha1.NetBoxDevice {
	return &dcopsv1alpha1.NetBoxDevice{
		ObjectMeta: objectMeta(name),
		Spec: dcopsv1alpha1.NetBoxDeviceSpec{
			DeviceType: *ref(dcopsv1alpha1.KindDeviceType, "dt"),
			DeviceRole: *ref(dcopsv1alpha1.KindDeviceRole, "server"),
			Site:       *ref(dcopsv1alpha1.KindSite, "dc1"),
		},
		Status: createdStatus(netbox.Devices, id),
	}
}
