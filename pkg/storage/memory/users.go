package memory

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/storage"
)

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, storage.ErrUserNotFound)
}

// ListUsers returns a copy of the user collection.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// AddUser appends a user to the collection.
func (s *Store) AddUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email) {
		return nil, fmt.Errorf("user with email %s: %w", user.Email, storage.ErrDuplicateEmail)
	}
	for _, u := range s.users {
		if u.ID == user.ID {
			return nil, fmt.Errorf("user ID %s already exists", user.ID)
		}
	}

	s.users = append(s.users, *user)
	created := *user
	return &created, nil
}

// ToggleUserStatus flips the IsActive flag of a user in place.
func (s *Store) ToggleUserStatus(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].IsActive = !s.users[i].IsActive
			updated := s.users[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("user ID %s: %w", userID, storage.ErrUserNotFound)
}

// RemoveAdmin deletes the user with adminID if, and only if, it holds the admin role.
func (s *Store) RemoveAdmin(ctx context.Context, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == adminID && u.Role == models.RoleAdmin {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("admin ID %s: %w", adminID, storage.ErrAdminNotFound)
}

// emailTaken must be called with s.mu held.
func (s *Store) emailTaken(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	return false
}
