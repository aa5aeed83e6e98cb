package user

import (
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"aarnote/internal/crypto/password"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Service is the credential store: it owns the registered user list and
// the single active session. Bad credentials come back as a
// *ValidationError value; storage failures are returned as-is.
type Service struct {
	repo   *Repository
	hasher password.Hasher
	log    *slog.Logger
	now    func() time.Time
}

func NewService(repo *Repository, hasher password.Hasher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log,
		now:    time.Now,
	}
}

func (s *Service) SignUp(username, password string) (*User, error) {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return nil, invalid(FieldUsername, "Username is required")
	}
	if len(trimmed) < minUsernameLen {
		return nil, invalid(FieldUsername, "Username must be at least 3 characters")
	}
	if password == "" {
		return nil, invalid(FieldPassword, "Password is required")
	}
	if len(password) < minPasswordLen {
		return nil, invalid(FieldPassword, "Password must be at least 6 characters")
	}

	users, err := s.repo.Users()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == trimmed {
			return nil, invalid(FieldUsername, "Username already exists")
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	newUser := User{
		Username:     trimmed,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	users = append(users, newUser)
	if err := s.repo.SaveUsers(users); err != nil {
		return nil, err
	}

	if err := s.repo.SetCurrentUser(trimmed); err != nil {
		return nil, err
	}

	s.log.Info("user registered", "username", trimmed)

	return &newUser, nil
}

func (s *Service) SignIn(username, password string) (*User, error) {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return nil, invalid(FieldUsername, "Username is required")
	}
	if password == "" {
		return nil, invalid(FieldPassword, "Password is required")
	}

	users, err := s.repo.Users()
	if err != nil {
		return nil, err
	}

	var found *User
	for i := range users {
		if users[i].Username == trimmed {
			found = &users[i]
			break
		}
	}

	// Unknown user and wrong password are indistinguishable to the
	// caller, field tag included.
	if found == nil || !s.hasher.Verify(password, found.PasswordHash) {
		s.log.Debug("sign-in rejected", "username", trimmed)
		return nil, invalid("", "Invalid username or password")
	}

	if err := s.repo.SetCurrentUser(trimmed); err != nil {
		return nil, err
	}

	s.log.Info("user signed in", "username", trimmed)

	return found, nil
}

// SignOut clears the session pointer. Idempotent.
func (s *Service) SignOut() error {
	return s.repo.ClearCurrentUser()
}

// CurrentUser returns the active session username, or an empty string
// when logged out.
func (s *Service) CurrentUser() (string, error) {
	return s.repo.CurrentUser()
}

func (s *Service) IsUsernameTaken(username string) (bool, error) {
	trimmed := strings.TrimSpace(username)

	users, err := s.repo.Users()
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Username == trimmed {
			return true, nil
		}
	}

	return false, nil
}
