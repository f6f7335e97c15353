package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.ReadTimeout())
	require.Equal(t, 30*time.Second, cfg.WriteTimeout())
	require.Equal(t, 10, cfg.Storage.Postgres.MaxOpenConns)
	require.Equal(t, 2, cfg.Storage.Postgres.MaxIdleConns)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Auth.Enabled)
	require.Equal(t, "teamspace", cfg.Auth.Issuer)
	require.Equal(t, time.Hour, cfg.AccessTTL())
}

func TestLoadFromYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  addr: ":9090"
  read_timeout: 5s
storage:
  dsn: postgres://localhost/teamspace
  postgres:
    max_open_conns: 25
log:
  level: debug
auth:
  enabled: true
  jwt_secret: topsecret
  access_ttl: 30m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout())
	require.Equal(t, "postgres://localhost/teamspace", cfg.Storage.DSN)
	require.Equal(t, 25, cfg.Storage.Postgres.MaxOpenConns)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, 30*time.Minute, cfg.AccessTTL())
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  addr: ":9090"
log:
  level: debug
`)

	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STORAGE_DSN", "postgres://env/db")
	t.Setenv("STORAGE_PG_MAX_OPEN_CONNS", "50")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "postgres://env/db", cfg.Storage.DSN)
	require.Equal(t, 50, cfg.Storage.Postgres.MaxOpenConns)
	require.True(t, cfg.Metrics.Enabled)
}

func TestValidateAuthNeedsSecret(t *testing.T) {
	path := writeYAML(t, `
auth:
  enabled: true
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "jwt_secret")
}

func TestValidateBadTTL(t *testing.T) {
	path := writeYAML(t, `
auth:
  access_ttl: nonsense
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
