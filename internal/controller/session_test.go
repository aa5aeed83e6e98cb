package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"aarnote/internal/crypto/password"
	"aarnote/internal/domain/user"
	"aarnote/internal/storage"
	"aarnote/internal/storage/memory"
)

func newSessionController(t *testing.T) (*Session, *user.Service) {
	t.Helper()

	return sessionControllerOver(memory.New())
}

func sessionControllerOver(kv storage.KV) (*Session, *user.Service) {
	users := user.NewService(user.NewRepository(kv), password.NewBcrypt(bcrypt.MinCost), slog.Default())

	return NewSession(users, slog.Default()), users
}

func TestSession_SignUpAndSignOut(t *testing.T) {
	ctrl, _ := newSessionController(t)

	require.True(t, ctrl.SignUp("alice", "secret123"))
	assert.Equal(t, "alice", ctrl.Current())
	assert.NoError(t, ctrl.Err())

	ctrl.SignOut()
	assert.Empty(t, ctrl.Current())
}

func TestSession_SignUp_ValidationErrorSurfacedVerbatim(t *testing.T) {
	ctrl, _ := newSessionController(t)

	require.False(t, ctrl.SignUp("ab", "secret123"))
	assert.Empty(t, ctrl.Current())

	var vErr *user.ValidationError
	require.ErrorAs(t, ctrl.Err(), &vErr)
	assert.Equal(t, user.FieldUsername, vErr.Field)

	ctrl.ClearError()
	assert.NoError(t, ctrl.Err())
}

func TestSession_SignIn(t *testing.T) {
	ctrl, users := newSessionController(t)

	_, err := users.SignUp("alice", "secret123")
	require.NoError(t, err)
	require.NoError(t, users.SignOut())

	require.False(t, ctrl.SignIn("alice", "wrong-secret"))
	assert.Error(t, ctrl.Err())
	assert.Empty(t, ctrl.Current())

	require.True(t, ctrl.SignIn("alice", "secret123"))
	assert.Equal(t, "alice", ctrl.Current())
	assert.NoError(t, ctrl.Err())
}

// blockedSignOutKV persists normally but cannot clear keys.
type blockedSignOutKV struct {
	*memory.Store
}

func (blockedSignOutKV) Delete(string) error { return errDisk }

func TestSession_StorageFailureSurfaced(t *testing.T) {
	ctrl, _ := sessionControllerOver(failingKV{})

	require.Error(t, ctrl.Init())

	require.False(t, ctrl.SignUp("alice", "secret123"))
	err := ctrl.Err()
	require.ErrorIs(t, err, errDisk)

	// Infrastructure failures are not validation errors
	var vErr *user.ValidationError
	assert.False(t, errors.As(err, &vErr))

	require.False(t, ctrl.SignIn("alice", "secret123"))
	assert.ErrorIs(t, ctrl.Err(), errDisk)
}

func TestSession_SignOutStorageFailureKeepsSession(t *testing.T) {
	ctrl, users := sessionControllerOver(blockedSignOutKV{Store: memory.New()})

	require.True(t, ctrl.SignUp("alice", "secret123"))

	ctrl.SignOut()

	// Failure is recorded and the session survives: the persisted
	// pointer is still set, so the next start would restore it anyway
	assert.ErrorIs(t, ctrl.Err(), errDisk)
	assert.Equal(t, "alice", ctrl.Current())

	current, err := users.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", current)
}

func TestSession_InitRestoresPersistedSession(t *testing.T) {
	_, users := newSessionController(t)

	_, err := users.SignUp("alice", "secret123")
	require.NoError(t, err)

	// A fresh controller over the same store picks the session up
	restored := NewSession(users, slog.Default())
	require.NoError(t, restored.Init())
	assert.Equal(t, "alice", restored.Current())
}
