package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PrintConfig(t *testing.T) {
	t.Setenv("NETBOX_URL", "https://netbox.example.com")
	t.Setenv("NETBOX_TOKEN", "s3cret")

	var out bytes.Buffer
	cmd := Root()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate", "--print-config", "--requeue-strategy", "fibonacci"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "url: https://netbox.example.com")
	assert.Contains(t, out.String(), "requeueStrategy: fibonacci")
	assert.NotContains(t, out.String(), "s3cret")
}

func TestValidate_MissingToken(t *testing.T) {
	t.Setenv("NETBOX_URL", "https://netbox.example.com")
	t.Setenv("NETBOX_TOKEN", "")

	cmd := Root()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "netbox token is required")
}
