package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/service"
)

// State is the authentication state of the running instance.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session holds the signed-in user for the lifetime of the process.
// Every restart begins Anonymous.
type Session struct {
	mu     sync.RWMutex
	auth   service.Authenticator
	logger *slog.Logger
	user   *models.User
}

// New creates an Anonymous session that signs in through auth.
func New(auth service.Authenticator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{auth: auth, logger: logger}
}

// Login authenticates and, on success, makes the user current.
// On failure the previous state is left untouched and the error is returned.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return nil, err
	}

	held := *user
	s.mu.Lock()
	s.user = &held
	s.mu.Unlock()

	s.logger.Info("signed in", "user_id", user.ID, "role", user.Role)
	out := held
	return &out, nil
}

// Logout returns the session to Anonymous. It never fails.
func (s *Session) Logout() {
	s.mu.Lock()
	prev := s.user
	s.user = nil
	s.mu.Unlock()

	if prev != nil {
		s.logger.Info("signed out", "user_id", prev.ID)
	}
}

// Current returns a copy of the signed-in user, if any.
func (s *Session) Current() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	user := *s.user
	return &user, true
}

// State reports whether a user is signed in.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return Anonymous
	}
	return Authenticated
}
