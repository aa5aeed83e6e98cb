package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"aarnote/internal/crypto/password"
	"aarnote/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()

	kv := memory.New()
	repo := NewRepository(kv)
	hasher := password.NewBcrypt(bcrypt.MinCost)

	return NewService(repo, hasher, slog.Default()), kv
}

func asValidation(t *testing.T, err error) *ValidationError {
	t.Helper()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr
}

func TestService_SignUp(t *testing.T) {
	service, _ := newTestService(t)

	u, err := service.SignUp("  alice  ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())

	taken, err := service.IsUsernameTaken("alice")
	require.NoError(t, err)
	assert.True(t, taken)

	// Sign-up establishes the session
	current, err := service.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", current)
}

func TestService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		field    string
	}{
		{name: "empty username", username: "", password: "secret123", field: FieldUsername},
		{name: "whitespace username", username: "   ", password: "secret123", field: FieldUsername},
		{name: "short username", username: "ab", password: "secret123", field: FieldUsername},
		{name: "empty password", username: "alice", password: "", field: FieldPassword},
		{name: "short password", username: "alice", password: "12345", field: FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.SignUp(tt.username, tt.password)
			vErr := asValidation(t, err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestService_SignUp_DuplicateUsername(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SignUp("alice", "secret123")
	require.NoError(t, err)

	// Surrounding whitespace still collides with the trimmed name
	_, err = service.SignUp("  alice ", "other-secret")
	vErr := asValidation(t, err)
	assert.Equal(t, FieldUsername, vErr.Field)
	assert.Equal(t, "Username already exists", vErr.Message)
}

func TestService_SignIn(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SignUp("alice", "secret123")
	require.NoError(t, err)
	require.NoError(t, service.SignOut())

	u, err := service.SignIn(" alice ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	current, err := service.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", current)
}

func TestService_SignIn_BadCredentials(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SignUp("alice", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "bob", password: "secret123"},
		{name: "wrong password", username: "alice", password: "wrong-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SignIn(tt.username, tt.password)
			vErr := asValidation(t, err)

			// Both cases present an identical error so the response
			// does not reveal whether the username exists.
			assert.Equal(t, "Invalid username or password", vErr.Message)
			assert.Empty(t, vErr.Field)
		})
	}
}

func TestService_SignOut_Idempotent(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SignUp("alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, service.SignOut())
	require.NoError(t, service.SignOut())

	current, err := service.CurrentUser()
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestService_IsUsernameTaken_Unknown(t *testing.T) {
	service, _ := newTestService(t)

	taken, err := service.IsUsernameTaken("nobody")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRepository_LegacyBareArray(t *testing.T) {
	service, kv := newTestService(t)

	// Layout written by the old mobile build: a bare array with an
	// unsalted SHA-256 digest of "secret123".
	legacy := `[{"username":"alice","passwordHash":` +
		`"fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4","createdAt":1700000000000}]`
	require.NoError(t, kv.Set("users", legacy))

	u, err := service.SignIn("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestRepository_SchemaVersionMismatch(t *testing.T) {
	service, kv := newTestService(t)

	require.NoError(t, kv.Set("users", `{"version":2,"users":[]}`))

	_, err := service.SignIn("alice", "secret123")
	require.Error(t, err)

	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "schema mismatch is not a validation error")
}
