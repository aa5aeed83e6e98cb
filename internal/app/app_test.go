package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aarnote/internal/config"
	"aarnote/internal/utils/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Env:     config.EnvProd,
		DataDir: dir,
		DBPath:  filepath.Join(dir, "aarnote.db"),
		Locale:  "en",
	}
}

func TestNew_StorageOpenFailurePropagates(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = cfg.DataDir // a directory, not a database file

	_, err := New(cfg, logger.New(cfg.Env))
	require.Error(t, err)
}

func TestNew_RegistrationSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, logger.New(cfg.Env))
	require.NoError(t, err)

	_, err = a.Users.SignUp("alice", "secret123")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	reopened, err := New(cfg, logger.New(cfg.Env))
	require.NoError(t, err)
	defer reopened.Close()

	taken, err := reopened.Users.IsUsernameTaken("alice")
	require.NoError(t, err)
	assert.True(t, taken)

	// The persisted session pointer comes back too
	assert.Equal(t, "alice", reopened.Session.Current())
}
