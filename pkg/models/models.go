package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the authorization role carried by a user.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// TransactionType defines the direction of a transaction relative to the wallet.
type TransactionType string

const (
	CREDIT TransactionType = "credit"
	DEBIT  TransactionType = "debit"
)

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	COMPLETED TransactionStatus = "completed"
	PENDING   TransactionStatus = "pending"
	FAILED    TransactionStatus = "failed"
)

// User represents a dashboard account.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
}

// Transaction represents a single entry of the wallet's transaction log.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	Status      TransactionStatus
	Date        time.Time
	Recipient   *string
}

// WalletBalance is the wallet position. Total is always Available + Pending.
type WalletBalance struct {
	Total     decimal.Decimal
	Available decimal.Decimal
	Pending   decimal.Decimal
}

// SystemStats holds platform-wide figures shown to super admins.
type SystemStats struct {
	TotalPayments     int
	ActiveUsers       int
	TotalRevenue      decimal.Decimal
	TransactionsToday int
}

// PaymentSummary aggregates the payments of one user. UserID is a soft reference.
type PaymentSummary struct {
	UserID        string
	UserName      string
	TotalPayments int
	TotalAmount   decimal.Decimal
	LastPayment   time.Time
}

// PaymentTotals sums the payment summaries shown on the admin dashboards.
type PaymentTotals struct {
	TotalPayments int
	TotalRevenue  decimal.Decimal
}

// UserOverview holds the head counts shown above the user management table.
type UserOverview struct {
	TotalUsers  int
	ActiveUsers int
	Admins      int
}
