package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "file", config.Storage)
	assert.NotEmpty(t, config.DataDir)
	assert.Equal(t, constants.DefaultRemoteURL, config.RemoteURL)
	assert.Equal(t, constants.DefaultRemoteCategory, config.RemoteCategory)
	assert.Equal(t, constants.DefaultRemoteLimit, config.RemoteLimit)
	assert.Equal(t, constants.DefaultSyncInterval, config.SyncInterval)
	assert.False(t, config.AutoSync)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QUOTEGEN_STORAGE", "sqlite")
	t.Setenv("QUOTEGEN_REMOTE_URL", "http://localhost:9999")
	t.Setenv("QUOTEGEN_REMOTE_LIMIT", "25")
	t.Setenv("QUOTEGEN_SYNC_INTERVAL", "1m")
	t.Setenv("QUOTEGEN_AUTO_SYNC", "true")
	t.Setenv("QUOTEGEN_PUSH_ON_ADD", "true")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", config.Storage)
	assert.Equal(t, "http://localhost:9999", config.RemoteURL)
	assert.Equal(t, 25, config.RemoteLimit)
	assert.Equal(t, time.Minute, config.SyncInterval)
	assert.True(t, config.AutoSync)
	assert.True(t, config.PushOnAdd)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	// Registered for restore, then cleared so the .env file can supply it
	t.Setenv("QUOTEGEN_REMOTE_CATEGORY", "")
	require.NoError(t, os.Unsetenv("QUOTEGEN_REMOTE_CATEGORY"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUOTEGEN_REMOTE_CATEGORY=FromDotEnv\n"), 0o600))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "FromDotEnv", config.RemoteCategory)
}

func TestLoadConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "quotegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: memory\nremote_category: Files\nsync_interval: 45s\n"), 0o600))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", config.Storage)
	assert.Equal(t, "Files", config.RemoteCategory)
	assert.Equal(t, 45*time.Second, config.SyncInterval)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)

	config.UpdateFromFlags(false, false, false, "json", "debug")
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}
