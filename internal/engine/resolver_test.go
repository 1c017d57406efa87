package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
)

func TestResolver_Resolve(t *testing.T) {
	scheme := setupTestScheme(t)
	ready := site("dc1", dcopsv1alpha1.StateCreated, ptr.To[int64](7))
	pending := site("dc2", dcopsv1alpha1.StatePending, nil)
	elsewhere := site("dc3", dcopsv1alpha1.StateCreated, ptr.To[int64](9))
	elsewhere.Namespace = "infra"
	c, _ := newStatusClient(scheme, ready, pending, elsewhere)

	owner := &dcopsv1alpha1.NetBoxDevice{ObjectMeta: metav1.ObjectMeta{Name: "srv1", Namespace: "default"}}
	r := NewResolver(c, scheme)
	ctx := context.Background()

	ref := func(kind, name string) *dcopsv1alpha1.ResourceReference {
		return &dcopsv1alpha1.ResourceReference{Kind: kind, Name: name}
	}

	t.Run("created dependency resolves to its id", func(t *testing.T) {
		id, err := r.Resolve(ctx, owner, ref(dcopsv1alpha1.KindSite, "dc1"), dcopsv1alpha1.KindSite, Hard)
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, int64(7), *id)
	})

	t.Run("namespace override", func(t *testing.T) {
		rf := ref(dcopsv1alpha1.KindSite, "dc3")
		rf.Namespace = "infra"
		id, err := r.Resolve(ctx, owner, rf, dcopsv1alpha1.KindSite, Hard)
		require.NoError(t, err)
		assert.Equal(t, int64(9), *id)
	})

	t.Run("pending hard dependency names the dependency", func(t *testing.T) {
		_, err := r.Resolve(ctx, owner, ref(dcopsv1alpha1.KindSite, "dc2"), dcopsv1alpha1.KindSite, Hard)
		require.Error(t, err)
		assert.True(t, IsDependency(err))
		assert.Equal(t, "NetBoxSite default/dc2 is not ready (state Pending)", err.Error())
	})

	t.Run("pending soft dependency degrades to absent", func(t *testing.T) {
		id, err := r.Resolve(ctx, owner, ref(dcopsv1alpha1.KindSite, "dc2"), dcopsv1alpha1.KindSite, Soft)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("missing hard dependency", func(t *testing.T) {
		_, err := r.Resolve(ctx, owner, ref(dcopsv1alpha1.KindSite, "nope"), dcopsv1alpha1.KindSite, Hard)
		require.Error(t, err)
		assert.True(t, IsDependency(err))
		assert.Contains(t, err.Error(), "NetBoxSite default/nope does not exist")
	})

	t.Run("kind mismatch is a configuration error", func(t *testing.T) {
		_, err := r.Resolve(ctx, owner, ref(dcopsv1alpha1.KindTenant, "dc1"), dcopsv1alpha1.KindSite, Soft)
		require.Error(t, err)
		assert.True(t, IsConfiguration(err))
	})

	t.Run("foreign api group is a configuration error", func(t *testing.T) {
		rf := ref(dcopsv1alpha1.KindSite, "dc1")
		rf.APIGroup = "example.com"
		_, err := r.Resolve(ctx, owner, rf, dcopsv1alpha1.KindSite, Hard)
		assert.True(t, IsConfiguration(err))
	})

	t.Run("missing required reference", func(t *testing.T) {
		_, err := r.Resolve(ctx, owner, nil, dcopsv1alpha1.KindSite, Hard)
		assert.True(t, IsConfiguration(err))

		id, err := r.Resolve(ctx, owner, nil, dcopsv1alpha1.KindSite, Soft)
		assert.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("unmanaged kind degrades when soft", func(t *testing.T) {
		id, err := r.Resolve(ctx, owner, ref("NetBoxTenantGroup", "g1"), "NetBoxTenantGroup", Soft)
		require.NoError(t, err)
		assert.Nil(t, id)
	})
}
