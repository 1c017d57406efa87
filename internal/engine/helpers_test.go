package engine

import (
	"context"
	"sync/atomic"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	crfake "sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
)

func setupTestScheme(t require.TestingT) *runtime.Scheme {
	scheme := runtime.NewScheme()
	require.NoError(t, dcopsv1alpha1.AddToScheme(scheme))
	return scheme
}

// newStatusClient returns a fake client with status subresources enabled and
// a counter of status patches.
func newStatusClient(scheme *runtime.Scheme, objs ...client.Object) (client.Client, *atomic.Int32) {
	var patches atomic.Int32
	c := crfake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&dcopsv1alpha1.NetBoxSite{}, &dcopsv1alpha1.NetBoxDevice{}, &dcopsv1alpha1.IPClaim{}).
		WithInterceptorFuncs(interceptor.Funcs{
			SubResourcePatch: func(ctx context.Context, c client.Client, sub string, obj client.Object,
				patch client.Patch, opts ...client.SubResourcePatchOption) error {
				patches.Add(1)
				return c.SubResource(sub).Patch(ctx, obj, patch, opts...)
			},
		}).
		Build()
	return c, &patches
}

func site(name string, state dcopsv1alpha1.ResourceState, id *int64) *dcopsv1alpha1.NetBoxSite {
	s := &dcopsv1alpha1.NetBoxSite{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default", Generation: 1},
		Spec:       dcopsv1alpha1.NetBoxSiteSpec{Name: name},
	}
	s.Status.State = state
	s.Status.NetBoxID = id
	if id != nil {
		s.Status.NetBoxURL = ptr.To("http://netbox.test/api/dcim/sites/1/")
	}
	return s
}
