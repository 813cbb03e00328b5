package mapping

import (
	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/views"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiUser converts a domain User model to an API User model.
func ToApiUser(u *models.User) *api.User {
	return &api.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     openapi_types.Email(u.Email),
		Role:      api.Role(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: openapi_types.Date{Time: u.CreatedAt},
	}
}

// ToApiUsers converts a list of domain users, preserving order.
func ToApiUsers(users []models.User) []api.User {
	out := make([]api.User, len(users))
	for i := range users {
		out[i] = *ToApiUser(&users[i])
	}
	return out
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:          tx.ID,
		Amount:      tx.Amount,
		Type:        api.TransactionType(tx.Type),
		Description: tx.Description,
		Status:      api.TransactionStatus(tx.Status),
		Date:        openapi_types.Date{Time: tx.Date},
		Recipient:   tx.Recipient,
	}
}

// ToApiTransactions converts a list of domain transactions, preserving order.
func ToApiTransactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i := range txs {
		out[i] = *ToApiTransaction(&txs[i])
	}
	return out
}

func ToApiWalletBalance(b *models.WalletBalance) *api.WalletBalance {
	return &api.WalletBalance{
		Total:     b.Total,
		Available: b.Available,
		Pending:   b.Pending,
	}
}

func ToApiSystemStats(s *models.SystemStats) *api.SystemStats {
	return &api.SystemStats{
		TotalPayments:     s.TotalPayments,
		ActiveUsers:       s.ActiveUsers,
		TotalRevenue:      s.TotalRevenue,
		TransactionsToday: s.TransactionsToday,
	}
}

// ToApiPaymentSummaries converts payment summaries, preserving order.
func ToApiPaymentSummaries(summaries []models.PaymentSummary) []api.PaymentSummary {
	out := make([]api.PaymentSummary, len(summaries))
	for i, s := range summaries {
		out[i] = api.PaymentSummary{
			UserId:        s.UserID,
			UserName:      s.UserName,
			TotalPayments: s.TotalPayments,
			TotalAmount:   s.TotalAmount,
			LastPayment:   openapi_types.Date{Time: s.LastPayment},
		}
	}
	return out
}

func ToApiUserOverview(o *models.UserOverview) *api.UserOverview {
	return &api.UserOverview{
		TotalUsers:  o.TotalUsers,
		ActiveUsers: o.ActiveUsers,
		Admins:      o.Admins,
	}
}

// ToApiSession describes the signed-in user, if any, and the view routed for them.
func ToApiSession(user *models.User) *api.Session {
	s := &api.Session{View: api.View(views.Route(user))}
	if user != nil {
		s.Authenticated = true
		s.User = ToApiUser(user)
	}
	return s
}

// ToApiDashboard converts a loaded dashboard. Sections the view did not load are omitted.
func ToApiDashboard(d *views.Dashboard) *api.Dashboard {
	out := &api.Dashboard{
		View:          api.View(d.View),
		BalanceChange: d.BalanceChange,
	}
	if d.User != nil {
		out.User = ToApiUser(d.User)
	}
	if d.Balance != nil {
		out.Balance = ToApiWalletBalance(d.Balance)
	}
	if d.Transactions != nil {
		out.Transactions = ToApiTransactions(d.Transactions)
	}
	if d.Users != nil {
		out.Users = ToApiUsers(d.Users)
	}
	if d.Overview != nil {
		out.Overview = ToApiUserOverview(d.Overview)
	}
	if d.PaymentSummaries != nil {
		out.PaymentSummaries = ToApiPaymentSummaries(d.PaymentSummaries)
	}
	if d.PaymentTotals != nil {
		out.PaymentTotals = &api.PaymentTotals{
			TotalPayments: d.PaymentTotals.TotalPayments,
			TotalRevenue:  d.PaymentTotals.TotalRevenue,
		}
	}
	if d.SystemStats != nil {
		out.SystemStats = ToApiSystemStats(d.SystemStats)
	}
	return out
}
