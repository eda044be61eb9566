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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./workforce.db", cfg.Database.Path)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9090"
  shutdown_timeout: 30s
database:
  path: /var/lib/insights.db
cors:
  allowed_origins:
    - https://app.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/var/lib/insights.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  listen_addr: \":9999\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./workforce.db", cfg.Database.Path)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")

	_, err = Load(writeConfig(t, "server: [not a map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse yaml")

	_, err = Load(writeConfig(t, "server:\n  shutdown_timeout: soon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.shutdown_timeout")
}
