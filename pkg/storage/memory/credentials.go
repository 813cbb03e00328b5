package memory

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

// VerifyCredentials compares password with the stored hash for email.
func (s *Store) VerifyCredentials(ctx context.Context, email, password string) error {
	s.mu.RLock()
	hash, ok := s.credentials[email]
	s.mu.RUnlock()

	if !ok {
		return storage.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return storage.ErrInvalidCredentials
	}
	return nil
}
