package storage

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// UserReader defines the interface for reading user data.
type UserReader interface {
	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers returns a snapshot of every user in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserManager defines the interface for mutating users.
type UserManager interface {
	// AddUser appends a user. It fails with ErrDuplicateEmail when the email is taken.
	AddUser(ctx context.Context, user *models.User) (*models.User, error)

	// ToggleUserStatus flips IsActive and returns the updated user.
	ToggleUserStatus(ctx context.Context, userID string) (*models.User, error)

	// RemoveAdmin removes the user only when it exists and holds the admin role.
	RemoveAdmin(ctx context.Context, adminID string) error
}

// UserStore combines the reader and manager interfaces.
type UserStore interface {
	UserReader
	UserManager
}

// CredentialVerifier checks passwords against the credential table.
type CredentialVerifier interface {
	// VerifyCredentials returns ErrInvalidCredentials when the pair does not match.
	VerifyCredentials(ctx context.Context, email, password string) error
}
