package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "silvernest-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, int64(12<<20), cfg.Server.HTTP.MaxBodyBytes)
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Equal(t, 90*time.Second, cfg.Image.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Features.Results.TTL)
	assert.False(t, cfg.Features.Generation.StripCodeFence)

	name, p, ok := cfg.LLM.Provider("")
	require.True(t, ok)
	assert.Equal(t, "openai", name)
	assert.Equal(t, "gpt-4o-mini", p.Model)
	assert.Equal(t, 800, p.MaxTokens)
}

func TestLoadFromExpandsPlaceholders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
app:
  name: ${SN_TEST_NAME:fallback}
server:
  http:
    port: ${SN_TEST_PORT:9000}
features:
  generation:
    strip_code_fence: true
`)
	t.Setenv("APP_ENV", "test")
	t.Setenv("SN_TEST_NAME", "from-env")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Name)
	assert.Equal(t, 9000, cfg.Server.HTTP.Port)
	assert.True(t, cfg.Features.Generation.StripCodeFence)
}

func TestLoadFromMergesEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "app:\n  version: v1\nsecurity:\n  rate_limit:\n    requests_per_window: 10\n")
	writeFile(t, dir, "config.staging.yaml", "security:\n  rate_limit:\n    requests_per_window: 3\n")
	t.Setenv("APP_ENV", "staging")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "v1", cfg.App.Version)
	assert.Equal(t, 3, cfg.Security.RateLimit.RequestsPerWindow)
}

func TestLoadFromCredentialEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("GOOGLE_API_KEY", "g-env")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	_, p, ok := cfg.LLM.Provider("openai")
	require.True(t, ok)
	assert.Equal(t, "sk-env", p.APIKey)
	assert.Equal(t, "g-env", cfg.Image.APIKey)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("SN_SET", "x")
	assert.Equal(t, "x", expandEnv("${SN_SET}"))
	assert.Equal(t, "d", expandEnv("${SN_UNSET_VAR:d}"))
	assert.Equal(t, "", expandEnv("${SN_UNSET_VAR:}"))
	assert.Equal(t, "${SN_UNSET_VAR}", expandEnv("${SN_UNSET_VAR}"))
}

func TestLoadFromInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "app: [unclosed")
	t.Setenv("APP_ENV", "test")

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
