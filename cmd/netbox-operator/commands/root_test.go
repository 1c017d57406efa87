package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "netbox-operator", cmd.Use)
	assert.Equal(t, "Reconcile Kubernetes resources into NetBox", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range []string{"run", "validate", "version"} {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), 3)
}

func TestRun_Flags(t *testing.T) {
	cmd := Run()

	for _, name := range []string{
		"env-file", "metrics-bind-address", "health-probe-bind-address", "leader-elect",
		"leader-election-id", "debug", "netbox-url", "namespace", "requeue-strategy",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
	assert.Equal(t, "netbox-operator", cmd.Flags().Lookup("leader-election-id").DefValue)
	assert.Equal(t, "true", cmd.Flags().Lookup("leader-elect").DefValue)
}
