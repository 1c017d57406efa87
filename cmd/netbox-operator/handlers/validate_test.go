package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Setenv("NETBOX_URL", "http://netbox.local:8000")
	t.Setenv("NETBOX_TOKEN", "abc")

	var out bytes.Buffer
	require.NoError(t, Validate("", nil, false, &out))
	assert.Equal(t, "Configuration is valid (NetBox http://netbox.local:8000)\n", out.String())
}

func TestValidate_EnvFile(t *testing.T) {
	t.Setenv("NETBOX_URL", "http://ignored.local")
	t.Setenv("NETBOX_TOKEN", "abc")
	t.Setenv("DISPATCH_CONCURRENCY", "")

	path := filepath.Join(t.TempDir(), "operator.env")
	require.NoError(t, os.WriteFile(path, []byte("NETBOX_URL=http://from-file.local\nDISPATCH_CONCURRENCY=7\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, Validate(path, nil, true, &out))
	assert.Contains(t, out.String(), "url: http://from-file.local")
	assert.Contains(t, out.String(), "concurrency: 7")
	assert.NotContains(t, out.String(), "token: abc")
}

func TestValidate_Invalid(t *testing.T) {
	t.Setenv("NETBOX_URL", "ftp://netbox.local")
	t.Setenv("NETBOX_TOKEN", "abc")

	err := Validate("", nil, false, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "scheme must be http or https")
}
