package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App      App      `mapstructure:"app"`
	Logger   Logger   `mapstructure:"logger"`
	Database Database `mapstructure:"database"`
	API      API      `mapstructure:"api"`
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: "stock-registry"
database:
  driver: "sqlite"
  path: "registry.db"
  host: "db.internal"
  port: 5432
`)

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "stock-registry", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "registry.db", cfg.Database.Path)
	assert.Equal(t, 5432, cfg.Database.Port)

	// defaults
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 8080, cfg.API.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  host: "db.internal"
`)
	t.Setenv("DATABASE_HOST", "db.override")
	t.Setenv("API_PORT", "9090")

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.API.Port)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "error", cfg.Database.LogLevel)
}
