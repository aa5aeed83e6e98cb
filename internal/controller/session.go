// Package controller holds the thin reactive state the presentation
// layer renders from. Controllers delegate to the domain services and
// keep the last visible result; they add no business rules of their own.
package controller

import (
	"sync"

	"golang.org/x/exp/slog"

	"aarnote/internal/domain/user"
)

// Session tracks the active logged-in username.
type Session struct {
	users *user.Service
	log   *slog.Logger

	mu      sync.RWMutex
	session string
	loading bool
	err     error
}

func NewSession(users *user.Service, log *slog.Logger) *Session {
	return &Session{users: users, log: log}
}

// Init restores the session from the persisted pointer. Called once at
// process start.
func (s *Session) Init() error {
	current, err := s.users.CurrentUser()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.session = current
	s.mu.Unlock()

	return nil
}

func (s *Session) SignUp(username, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.users.SignUp(username, password)
	if err != nil {
		s.setError(err)
		return false
	}

	s.mu.Lock()
	s.session = u.Username
	s.err = nil
	s.mu.Unlock()

	return true
}

func (s *Session) SignIn(username, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.users.SignIn(username, password)
	if err != nil {
		s.setError(err)
		return false
	}

	s.mu.Lock()
	s.session = u.Username
	s.err = nil
	s.mu.Unlock()

	return true
}

// SignOut clears the session. On a storage failure the local session
// is kept and the error recorded, since the persisted pointer would
// restore the session on the next start anyway.
func (s *Session) SignOut() {
	if err := s.users.SignOut(); err != nil {
		s.log.Warn("sign-out failed", "error", err)
		s.setError(err)
		return
	}

	s.mu.Lock()
	s.session = ""
	s.err = nil
	s.mu.Unlock()
}

// Current returns the active username, empty when logged out.
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last sign-up/sign-in failure, verbatim from the
// credential store.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
