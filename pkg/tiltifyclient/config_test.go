package tiltifyclient_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltifyclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the file", func(t *testing.T) {
		path := writeConfig(t, `
client_id: abc
client_secret: shh
base_url: https://example.test
http_timeout: 15s
retry_max: 2
debug: true
cache:
  type: nats
  nats:
    url: nats://cache:4222
    bucket: routes
    replicas: 3
`)

		config, err := tiltifyclient.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "abc", config.ClientID)
		assert.Equal(t, "shh", config.ClientSecret)
		assert.Equal(t, "https://example.test", config.BaseURL)
		assert.Equal(t, 15*time.Second, config.HTTPTimeout)
		assert.Equal(t, 2, config.RetryMax)
		assert.True(t, config.Debug)
		require.NotNil(t, config.Cache)
		assert.Equal(t, tiltify.CacheTypeNATS, config.Cache.Type)
		require.NotNil(t, config.Cache.NATS)
		assert.Equal(t, "nats://cache:4222", config.Cache.NATS.URL)
		assert.Equal(t, "routes", config.Cache.NATS.Bucket)
		assert.Equal(t, 3, config.Cache.NATS.Replicas)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "client_id: from-file\nclient_secret: shh\n")

		t.Setenv("TILTIFY_CLIENT_ID", "from-env")
		t.Setenv("TILTIFY_CACHE_TYPE", "none")

		config, err := tiltifyclient.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", config.ClientID)
		assert.Equal(t, "shh", config.ClientSecret)
		require.NotNil(t, config.Cache)
		assert.Equal(t, tiltify.CacheTypeNone, config.Cache.Type)
		assert.Nil(t, config.Cache.NATS)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := tiltifyclient.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})

	t.Run("default location may be absent", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("TILTIFY_CLIENT_ID", "env-only")

		config, err := tiltifyclient.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "env-only", config.ClientID)
		assert.Nil(t, config.Cache)
	})
}
