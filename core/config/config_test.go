package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"devserve/core/config"
	"devserve/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure values set by .env files during a test are restored afterwards.
func clearEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "SERVER_SOURCE", "LOG_LEVEL")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "", cfg.Server.Root)
	assert.Equal(t, server.SourceDisk, cfg.Server.Source)
	assert.True(t, cfg.Server.Browse)
	assert.True(t, cfg.Server.OpenBrowser)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("SERVER_OPEN_BROWSER", "false")
	t.Setenv("STORAGE_BUCKET", "site")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.False(t, cfg.Server.OpenBrowser)
	assert.Equal(t, "site", cfg.Storage.Bucket)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "SERVER_ROOT")

	dir := t.TempDir()
	content := "SERVER_PORT=8123\nSERVER_ROOT=/srv/site\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "/srv/site", cfg.Server.Root)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "eight-thousand")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}
