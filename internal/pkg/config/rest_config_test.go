//go:build unit
// +build unit

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

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LocalStorageProvider, cfg.PhotoStorage.Provider)
	assert.Equal(t, int64(5*1024*1024), cfg.PhotoStorage.MaxUploadBytes)
	assert.Equal(t, 512, cfg.Stylist.MaxTokens)
	assert.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
}

func TestInitializeRestConfig_FileValues(t *testing.T) {
	path := writeConfigFile(t, `
port: "8080"
database:
  type: postgres
  dsn: "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
  name: wardrobe
logger:
  log_level: debug
  log_type: console
photo_storage:
  provider: azure
  connection_string: "UseDevelopmentStorage=true"
  container_name: clothing-photos
  max_upload_bytes: 1048576
weather:
  cache_ttl: 30s
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, PostgresDbType, cfg.Database.Type)
	assert.Equal(t, "wardrobe", cfg.Database.Name)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, AzureStorageProvider, cfg.PhotoStorage.Provider)
	assert.Equal(t, int64(1048576), cfg.PhotoStorage.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.Weather.CacheTTL)
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WARDROBE_STYLIST_MODEL", "custom-model")
	t.Setenv("OPENWEATHER_KEY", "weather-key")
	t.Setenv("ANTHROPIC_KEY", "llm-key")
	t.Setenv("PORT", "9090")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "custom-model", cfg.Stylist.Model)
	assert.Equal(t, "weather-key", cfg.Weather.APIKey)
	assert.Equal(t, "llm-key", cfg.Stylist.APIKey)
	assert.Equal(t, "9090", cfg.Port)
}

func TestInitializeRestConfig_InvalidFile(t *testing.T) {
	path := writeConfigFile(t, `
photo_storage:
  provider: azure
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "azure")
}

func TestAuthSettingsValidation_ShortSecret(t *testing.T) {
	s := &AuthSettings{JWTSecret: "short", Issuer: "wardrobe-app", Audience: "authenticated", TokenTTL: time.Hour}
	require.Error(t, s.Validate())

	s.JWTSecret = "0123456789abcdef0123456789abcdef"
	require.NoError(t, s.Validate())
}
