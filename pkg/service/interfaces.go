package service

import (
	"context"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/shopspring/decimal"
)

// Authenticator checks an email/password pair against the credential table.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// WalletService exposes the wallet position.
type WalletService interface {
	FetchWalletBalance(ctx context.Context) (*models.WalletBalance, error)
}

// TransactionService exposes the transaction log.
type TransactionService interface {
	FetchTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, amount decimal.Decimal, recipient, description string) (*models.Transaction, error)
}

// UserService exposes user management for admins.
type UserService interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	ToggleUserStatus(ctx context.Context, userID string) (*models.User, error)
}

// AdminService exposes admin management for super admins.
type AdminService interface {
	AddAdmin(ctx context.Context, name, email string) (*models.User, error)
	RemoveAdmin(ctx context.Context, adminID string) error
}

// ReportService exposes the reporting figures.
type ReportService interface {
	FetchPaymentSummaries(ctx context.Context) ([]models.PaymentSummary, error)
	FetchSystemStats(ctx context.Context) (*models.SystemStats, error)
}

// API is the complete mock payments backend.
type API interface {
	Authenticator
	WalletService
	TransactionService
	UserService
	AdminService
	ReportService
}
