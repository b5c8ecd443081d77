package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/dualstream/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "dualstream_finance_live", cfg.StorageKey)
	assert.Equal(t, 1, cfg.SchemaVersion)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("SCHEMA_VERSION", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, 3, cfg.SchemaVersion)
	assert.Equal(t, "debug", cfg.LogLevel)
}
