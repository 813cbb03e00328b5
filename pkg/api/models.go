// Package api holds the JSON wire models of the dashboard HTTP surface.
package api

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Role defines model for User.Role.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// TransactionType defines model for Transaction.Type.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// TransactionStatus defines model for Transaction.Status.
type TransactionStatus string

const (
	Completed TransactionStatus = "completed"
	Pending   TransactionStatus = "pending"
	Failed    TransactionStatus = "failed"
)

// View defines model for Session.View.
type View string

// User defines model for User.
type User struct {
	Id        string              `json:"id"`
	Name      string              `json:"name"`
	Email     openapi_types.Email `json:"email"`
	Role      Role                `json:"role"`
	IsActive  bool                `json:"isActive"`
	CreatedAt openapi_types.Date  `json:"createdAt"`
}

// Transaction defines model for Transaction.
type Transaction struct {
	Id          string             `json:"id"`
	Amount      decimal.Decimal    `json:"amount"`
	Type        TransactionType    `json:"type"`
	Description string             `json:"description"`
	Status      TransactionStatus  `json:"status"`
	Date        openapi_types.Date `json:"date"`
	Recipient   *string            `json:"recipient,omitempty"`
}

// WalletBalance defines model for WalletBalance.
type WalletBalance struct {
	Total     decimal.Decimal `json:"total"`
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
}

// SystemStats defines model for SystemStats.
type SystemStats struct {
	TotalPayments     int             `json:"totalPayments"`
	ActiveUsers       int             `json:"activeUsers"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TransactionsToday int             `json:"transactionsToday"`
}

// PaymentSummary defines model for PaymentSummary.
type PaymentSummary struct {
	UserId        string             `json:"userId"`
	UserName      string             `json:"userName"`
	TotalPayments int                `json:"totalPayments"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	LastPayment   openapi_types.Date `json:"lastPayment"`
}

// UserOverview defines model for UserOverview.
type UserOverview struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	Admins      int `json:"admins"`
}

// PaymentTotals defines model for PaymentTotals.
type PaymentTotals struct {
	TotalPayments int             `json:"totalPayments"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session defines model for Session.
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
	View          View  `json:"view"`
}

// NewTransaction defines model for NewTransaction.
type NewTransaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Recipient   string          `json:"recipient"`
	Description *string         `json:"description,omitempty"`
}

// NewAdmin defines model for NewAdmin.
type NewAdmin struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	View             View             `json:"view"`
	User             *User            `json:"user,omitempty"`
	Balance          *WalletBalance   `json:"balance,omitempty"`
	BalanceChange    *decimal.Decimal `json:"balanceChange,omitempty"`
	Transactions     []Transaction    `json:"transactions,omitempty"`
	Users            []User           `json:"users,omitempty"`
	Overview         *UserOverview    `json:"overview,omitempty"`
	PaymentSummaries []PaymentSummary `json:"paymentSummaries,omitempty"`
	PaymentTotals    *PaymentTotals   `json:"paymentTotals,omitempty"`
	SystemStats      *SystemStats     `json:"systemStats,omitempty"`
}

// ValidationError defines model for ValidationError.
type ValidationError struct {
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields"`
}

// ListTransactionsParams defines parameters for ListTransactions.
type ListTransactionsParams struct {
	Filter *string `form:"filter,omitempty" json:"filter,omitempty"`
}
