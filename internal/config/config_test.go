package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	t.Run("from flag with defaults", func(t *testing.T) {
		path := writeConfig(t, "env: dev\nhttp_server:\n  address: localhost:9000\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, "localhost:9000", cfg.Addr)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	})

	t.Run("explicit timeouts", func(t *testing.T) {
		path := writeConfig(t, "env: prod\nhttp_server:\n  address: :80\n  timeout: 3s\n  idle_timeout: 30s\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
	})

	t.Run("env var path wins", func(t *testing.T) {
		path := writeConfig(t, "env: staging\nhttp_server:\n  address: :8080\n")
		t.Setenv("CONFIG_PATH", path)

		cfg, err := Load("/does/not/exist.yaml")
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Env)
	})

	t.Run("env override", func(t *testing.T) {
		path := writeConfig(t, "env: dev\nhttp_server:\n  address: :8080\n")
		t.Setenv("HTTP_SERVER_ADDR", ":9999")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
	})

	t.Run("no path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing required key", func(t *testing.T) {
		path := writeConfig(t, "http_server:\n  address: :8080\n")
		t.Setenv("ENV", "")
		os.Unsetenv("ENV")

		_, err := Load(path)
		assert.Error(t, err)
	})
}
