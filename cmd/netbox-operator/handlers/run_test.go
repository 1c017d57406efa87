package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	crfake "sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/microscaler/netbox-operator/internal/config"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
)

func testConfig(t *testing.T) *config.Config {
	t.Setenv("NETBOX_TOKEN", "abc")
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestManagerOptions(t *testing.T) {
	t.Setenv("WATCH_NAMESPACE", "")
	cfg := testConfig(t)
	opts := RunOptions{MetricsAddr: ":9090", ProbeAddr: ":9091", LeaderElect: true, LeaderElectionID: "netbox-operator"}

	o := managerOptions(cfg, opts)
	assert.Equal(t, ":9090", o.Metrics.BindAddress)
	assert.Equal(t, ":9091", o.HealthProbeBindAddress)
	assert.True(t, o.LeaderElection)
	assert.True(t, o.LeaderElectionReleaseOnCancel)
	assert.Equal(t, "netbox-operator", o.LeaderElectionID)
	assert.Empty(t, o.Cache.DefaultNamespaces)

	cfg.Watch.Namespace = "dcops"
	o = managerOptions(cfg, opts)
	assert.Contains(t, o.Cache.DefaultNamespaces, "dcops")
	assert.Len(t, o.Cache.DefaultNamespaces, 1)
}

func TestNewReconcilers(t *testing.T) {
	cfg := testConfig(t)
	c := crfake.NewClientBuilder().WithScheme(scheme).Build()

	recs := newReconcilers(c, scheme, fake.New(), cfg)

	kinds := make(map[string]bool)
	for _, r := range recs {
		kinds[r.Kind()] = true
	}
	assert.Len(t, recs, 19)
	assert.Len(t, kinds, 19, "one reconciler per kind")
}

func TestNewStartup(t *testing.T) {
	cfg := testConfig(t)
	c := crfake.NewClientBuilder().WithScheme(scheme).Build()

	assert.NotNil(t, newStartup(c, fake.New(), cfg))

	cfg.Startup.ReconcilePrefixes = false
	assert.Nil(t, newStartup(c, fake.New(), cfg))
}
