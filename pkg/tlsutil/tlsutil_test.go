package tlsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir))

	for _, name := range []string{"ca.pem", "ca-key.pem", "server.pem", "server-key.pem"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.NotZero(t, info.Size())
	}

	t.Run("server credentials load from the generated files", func(t *testing.T) {
		creds, err := ServerTLSConfig(filepath.Join(dir, "server.pem"), filepath.Join(dir, "server-key.pem"))
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("client credentials trust the generated CA", func(t *testing.T) {
		creds, err := ClientTLSConfig(filepath.Join(dir, "ca.pem"), false)
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})
}

func TestClientTLSConfig(t *testing.T) {
	t.Run("system pool when no CA file given", func(t *testing.T) {
		creds, err := ClientTLSConfig("", false)
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("missing CA file is an error", func(t *testing.T) {
		_, err := ClientTLSConfig(filepath.Join(t.TempDir(), "absent.pem"), false)
		assert.Error(t, err)
	})

	t.Run("garbage CA file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))
		_, err := ClientTLSConfig(path, false)
		assert.Error(t, err)
	})
}
