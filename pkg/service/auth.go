package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/storage"
)

// Authenticate returns the user owning email when password matches its demo credential.
// Unknown emails and wrong passwords both fail with storage.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.Latency.Wait(latency.Authenticate)

	user, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.Store.VerifyCredentials(ctx, email, password); err != nil {
		return nil, err
	}

	s.Logger.Info("user authenticated", "user_id", user.ID, "role", user.Role)
	return user, nil
}
