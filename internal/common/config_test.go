package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "./data/orbit", config.Storage.Badger.Path)
	assert.False(t, config.Storage.Badger.ResetOnStartup)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "gemini", config.LLM.Provider)
	assert.Equal(t, "15s", config.LLM.Timeout)
	assert.Equal(t, "123456", config.Auth.AccessCode)
	assert.Equal(t, "Alex (Mentor)", config.Auth.MentorName)
	assert.Equal(t, 18, config.Seed.CurrentMonth)
	assert.Equal(t, 9, config.Seed.PreviousMonth)
}

func TestLoadFromFileMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadFromFile("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Auth.AccessCode, config.Auth.AccessCode)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	content := `
environment = "production"

[storage.badger]
path = "/tmp/orbit-test"

[llm]
provider = "claude"
model = "claude-sonnet-4-20250514"

[auth]
access_code = "654321"

[seed]
random_seed = 42
current_month = 5
previous_month = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "/tmp/orbit-test", config.Storage.Badger.Path)
	assert.Equal(t, "claude", config.LLM.Provider)
	assert.Equal(t, "654321", config.Auth.AccessCode)
	assert.Equal(t, int64(42), config.Seed.RandomSeed)
	assert.Equal(t, 5, config.Seed.CurrentMonth)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Alex (Mentor)", config.Auth.MentorName)
	assert.Equal(t, "15s", config.LLM.Timeout)
}

func TestLoadFromFileInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ORBIT_STORAGE_PATH", "/tmp/env-orbit")
	t.Setenv("ORBIT_STORAGE_RESET", "true")
	t.Setenv("ORBIT_LOG_LEVEL", "debug")
	t.Setenv("ORBIT_LLM_PROVIDER", "claude")
	t.Setenv("ORBIT_LLM_API_KEY", "env-key")
	t.Setenv("ORBIT_ACCESS_CODE", "999999")

	config, err := LoadFromFile("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-orbit", config.Storage.Badger.Path)
	assert.True(t, config.Storage.Badger.ResetOnStartup)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "claude", config.LLM.Provider)
	assert.Equal(t, "env-key", config.LLM.APIKey)
	assert.Equal(t, "999999", config.Auth.AccessCode)
}
