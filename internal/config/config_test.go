package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Locale)
	assert.Zero(t, cfg.BcryptCost)
	assert.Equal(t, filepath.Join(cfg.DataDir, "aarnote.db"), cfg.DBPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOCALE", "de")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.DirExists(t, cfg.DataDir)
}
