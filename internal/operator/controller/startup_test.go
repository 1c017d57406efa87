package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
)

func TestPrefixStartup_Run(t *testing.T) {
	newPrefix := func(name, cidr, namespace string) *dcopsv1alpha1.NetBoxPrefix {
		p := &dcopsv1alpha1.NetBoxPrefix{
			ObjectMeta: objectMeta(name),
			Spec:       dcopsv1alpha1.NetBoxPrefixSpec{Prefix: cidr},
		}
		p.Namespace = namespace
		return p
	}

	nb := fake.New()
	servers := nb.Seed(netbox.Prefixes, map[string]any{"prefix": "10.1.0.0/24"})
	nb.Seed(netbox.Prefixes, map[string]any{"prefix": "10.9.0.0/24"})

	mapped := newPrefix("already-mapped", "10.9.0.0/24", testNamespace)
	mapped.Status = createdStatus(netbox.Prefixes, 2)

	env := newTestEnv(t, nb,
		newPrefix("servers", "10.1.0.0/24", testNamespace),
		newPrefix("unknown", "10.2.0.0/24", testNamespace),
		newPrefix("elsewhere", "10.1.0.0/24", "other"),
		mapped,
	)

	res, err := NewPrefixStartup(env.k8s, env.nb, testNamespace, 0).Run(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, StartupResult{Mapped: 1, NotFound: 1}, res)

	got := &dcopsv1alpha1.NetBoxPrefix{}
	env.get(t, "servers", got)
	assert.Equal(t, dcopsv1alpha1.StateCreated, got.Status.State)
	assert.Equal(t, ptr.To(servers), got.Status.NetBoxID)

	unknown := &dcopsv1alpha1.NetBoxPrefix{}
	env.get(t, "unknown", unknown)
	assert.Nil(t, unknown.Status.NetBoxID)
	assert.Empty(t, unknown.Status.State)

	assert.Zero(t, env.nb.Writes(), "startup only records what exists")
	// One filtered lookup per unmapped prefix and a single full listing.
	assert.Equal(t, 3, env.nb.Calls("LIST", netbox.Prefixes))
}
