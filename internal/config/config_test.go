package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("PROBE_BASE_URL", "https://calc.example.com/api/")
	t.Setenv("PROBE_TIMEOUT_MS", "1234")
	t.Setenv("PROBE_CLIENT_NAME", "CI_Client")
	t.Setenv("PROBE_LOG_LEVEL", "DEBUG")
	t.Setenv("PROBE_LOG_DIR", "./_testlogs")
	t.Setenv("PROBE_NO_COLOR", "true")

	cfg := FromEnv()

	assert.Equal(t, "https://calc.example.com/api", cfg.BaseURL)
	assert.Equal(t, 1234*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "CI_Client", cfg.ClientName)
	assert.Equal(t, "https://calc.example.com", cfg.Origin)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./_testlogs", cfg.LogDir)
	assert.True(t, cfg.NoColor)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"PROBE_BASE_URL", "PROBE_TIMEOUT_MS", "PROBE_CLIENT_NAME",
		"PROBE_ORIGIN", "PROBE_LOG_LEVEL", "PROBE_LOG_DIR", "PROBE_NO_COLOR",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultClientName, cfg.ClientName)
	assert.Equal(t, "http://localhost:8001", cfg.Origin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.False(t, cfg.NoColor)
}

func TestFromEnv_ExplicitOriginWins(t *testing.T) {
	t.Setenv("PROBE_BASE_URL", "https://api.example.com/api")
	t.Setenv("PROBE_ORIGIN", "https://frontend.example.com")

	cfg := FromEnv()
	assert.Equal(t, "https://frontend.example.com", cfg.Origin)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Config{
		BaseURL:    "ftp://example.com",
		Timeout:    0,
		ClientName: "",
		LogLevel:   "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestFromEnv_BadTimeoutFailsValidation(t *testing.T) {
	t.Setenv("PROBE_BASE_URL", "http://localhost:8001/api")
	t.Setenv("PROBE_TIMEOUT_MS", "soon")

	err := FromEnv().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROBE_TIMEOUT_MS")
}

func TestLoad_ReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	env := "PROBE_BASE_URL=https://from-file.example.com/api\nPROBE_CLIENT_NAME=FromFile\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv only fills keys that are absent; t.Setenv restores them afterwards.
	t.Setenv("PROBE_BASE_URL", "")
	os.Unsetenv("PROBE_BASE_URL")
	t.Setenv("PROBE_CLIENT_NAME", "FromEnv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.example.com/api", cfg.BaseURL)
	assert.Equal(t, "FromEnv", cfg.ClientName)
}
