package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", nil)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "You can't decrement below 0", cfg.Labels.Error)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
mount_id: "#widget"
dev: true
labels:
  increment: "+1"
`)

	cfg, err := LoadWithEnv(path, nil)

	require.NoError(t, err)
	assert.Equal(t, "#widget", cfg.MountID)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "+1", cfg.Labels.Increment)
	assert.Equal(t, "Decrement counter", cfg.Labels.Decrement)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log_level: warn\n")

	cfg, err := LoadWithEnv(path, map[string]string{
		"COUNTER_LOG_LEVEL":       "debug",
		"COUNTER_LABEL_DECREMENT": "-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "-1", cfg.Labels.Decrement)
}

func TestLoad_Errors(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "read config")

	_, err = LoadWithEnv(writeFile(t, "mount_id: [\n"), nil)
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadWithEnv("", map[string]string{"COUNTER_DEV": "maybe"})
	assert.ErrorContains(t, err, "parse env")

	_, err = LoadWithEnv("", map[string]string{"COUNTER_MOUNT_ID": " "})
	assert.EqualError(t, err, "mount_id must not be empty")

	_, err = LoadWithEnv("", map[string]string{"COUNTER_LOG_LEVEL": "chatty"})
	assert.EqualError(t, err, `unknown log_level "chatty"`)
}
