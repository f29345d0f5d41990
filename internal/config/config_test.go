package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DefaultSocrataURL, cfg.SocrataURL)
	assert.Equal(t, 1000, cfg.SocrataLimit)
	assert.Equal(t, 10*time.Second, cfg.SocrataTimeout)
	assert.Contains(t, cfg.SocrataUserAgent, "Mozilla/5.0")
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SOCRATA_URL", "https://example.test/resource/abcd-1234.json")
	t.Setenv("SOCRATA_LIMIT", "250")
	t.Setenv("SOCRATA_TIMEOUT", "3s")
	t.Setenv("SOCRATA_USER_AGENT", "test-agent/1.0")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://example.test/resource/abcd-1234.json", cfg.SocrataURL)
	assert.Equal(t, 250, cfg.SocrataLimit)
	assert.Equal(t, 3*time.Second, cfg.SocrataTimeout)
	assert.Equal(t, "test-agent/1.0", cfg.SocrataUserAgent)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidSocrataURL(t *testing.T) {
	t.Setenv("SOCRATA_URL", "not a url")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOCRATA_URL")
}

func TestLoad_InvalidSocrataLimit(t *testing.T) {
	t.Setenv("SOCRATA_LIMIT", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOCRATA_LIMIT")
}

func TestLoad_SocrataLimitTooLarge(t *testing.T) {
	t.Setenv("SOCRATA_LIMIT", "99999")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOCRATA_LIMIT")
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "-1m")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL")
}
