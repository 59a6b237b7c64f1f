package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ModeServer, conf.Mode)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Duration(0), conf.SnapshotTTL)
		assert.Equal(t, "local", conf.ConsoleSession)
		assert.Empty(t, conf.AllowedOrigins)
	})

	t.Run("Values from file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
mode: console
snapshot-ttl: 24h
console-session: kitchen
allowed-origins:
  - http://localhost:3000
redis:
  host: redis
  port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeConsole, conf.Mode)
		assert.Equal(t, 24*time.Hour, conf.SnapshotTTL)
		assert.Equal(t, "kitchen", conf.ConsoleSession)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, []string{"http://localhost:3000"}, conf.AllowedOrigins)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: gui\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})
}
