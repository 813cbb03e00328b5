package service

import (
	"context"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
)

// FetchUsers returns every user except super admins.
// The filter is static; it does not depend on who is asking.
func (s *Service) FetchUsers(ctx context.Context) ([]models.User, error) {
	s.Latency.Wait(latency.FetchUsers)

	users, err := s.Store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	visible := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleSuperAdmin {
			visible = append(visible, u)
		}
	}
	return visible, nil
}

// ToggleUserStatus flips a user's active flag. Missing users fail with storage.ErrUserNotFound.
func (s *Service) ToggleUserStatus(ctx context.Context, userID string) (*models.User, error) {
	s.Latency.Wait(latency.ToggleUserStatus)

	user, err := s.Store.ToggleUserStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("user status toggled", "user_id", user.ID, "is_active", user.IsActive)
	return user, nil
}

// AddAdmin creates an active admin. Duplicate emails fail with storage.ErrDuplicateEmail.
func (s *Service) AddAdmin(ctx context.Context, name, email string) (*models.User, error) {
	s.Latency.Wait(latency.AddAdmin)

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	admin, err := s.Store.AddUser(ctx, &models.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: s.today(),
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("admin added", "user_id", admin.ID, "email", admin.Email)
	return admin, nil
}

// RemoveAdmin deletes an admin. Unknown IDs and non-admin users fail with storage.ErrAdminNotFound.
func (s *Service) RemoveAdmin(ctx context.Context, adminID string) error {
	s.Latency.Wait(latency.RemoveAdmin)

	if err := s.Store.RemoveAdmin(ctx, adminID); err != nil {
		return err
	}

	s.Logger.Info("admin removed", "user_id", adminID)
	return nil
}
