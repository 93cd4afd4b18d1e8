package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks the bound variables; viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "HTTP_CLIENT_TIMEOUT_SECONDS", "EXCHANGE_RATE_API_BASE_URL", "EXCHANGE_RATE_API_KEY",
		"LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit_ReadsYAML(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
http_client:
  timeout_seconds: 3
exchange_rate_api:
  base_url: "https://rates.example.com/v6/"
  api_key: "yaml-key"
logging:
  level: debug
  format: json
rate_limit:
  rate: "10-S"
cors:
  allowed_origins: ["https://app.example.com"]
`)

	cfg, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, 3, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "https://rates.example.com/v6/", cfg.ExchangeRateAPI.BaseURL)
	require.Equal(t, "yaml-key", cfg.ExchangeRateAPI.APIKey)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "10-S", cfg.RateLimit.Rate)
	require.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestInit_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
exchange_rate_api:
  api_key: "yaml-key"
`)
	t.Setenv("EXCHANGE_RATE_API_KEY", "env-key")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("EXCHANGE_RATE_API_BASE_URL", "http://localhost:9999/v6/")

	cfg, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.ExchangeRateAPI.APIKey)
	require.Equal(t, "7070", cfg.HTTPServer.Port)
	require.Equal(t, "http://localhost:9999/v6/", cfg.ExchangeRateAPI.BaseURL)
}

func TestInit_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXCHANGE_RATE_API_KEY", "env-key")

	cfg, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, 10, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "https://v6.exchangerate-api.com/v6/", cfg.ExchangeRateAPI.BaseURL)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "100-M", cfg.RateLimit.Rate)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestInit_APIKeyRequired(t *testing.T) {
	t.Setenv("EXCHANGE_RATE_API_KEY", "")

	_, err := Init(writeConfig(t, "http_server:\n  port: \"8080\"\n"))
	require.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestInit_InvalidYAML(t *testing.T) {
	_, err := Init(writeConfig(t, "http_server: [\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading config file")
}
