package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "chaincheck.db", cfg.DBPath)
	assert.Equal(t, 300*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CHAINCHECK_ADDR", ":9090")
	t.Setenv("CHAINCHECK_DB_PATH", "/tmp/test.db")
	t.Setenv("CHAINCHECK_LOG_LEVEL", "debug")
	t.Setenv("CHAINCHECK_SETTLE_DELAY", "50ms")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50*time.Millisecond, cfg.SettleDelay)
}

func TestFromEnvInvalidDuration(t *testing.T) {
	t.Setenv("CHAINCHECK_SETTLE_DELAY", "soon")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := writeConfigFile(t, `
addr: ":7070"
settle_delay: 1s
`)
	cfg, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, time.Second, cfg.SettleDelay)
	assert.Equal(t, "chaincheck.db", cfg.DBPath, "unset fields keep defaults")

	t.Run("environment wins over the file", func(t *testing.T) {
		t.Setenv("CHAINCHECK_CONFIG", path)
		t.Setenv("CHAINCHECK_ADDR", ":6060")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":6060", cfg.Addr)
		assert.Equal(t, time.Second, cfg.SettleDelay, "file value survives where env is unset")
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad duration errors", func(t *testing.T) {
		path := writeConfigFile(t, "settle_delay: soon\n")
		_, err := FromFile(path)
		assert.Error(t, err)
	})
}
