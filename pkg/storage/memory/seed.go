package memory

import (
	"time"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/shopspring/decimal"
)

// Seed is the initial content of a Store.
type Seed struct {
	Users            []models.User
	Transactions     []models.Transaction
	Credentials      map[string]string
	OpeningBalance   models.WalletBalance
	PaymentSummaries []models.PaymentSummary
	SystemStats      models.SystemStats
	BcryptCost       int
}

// DefaultSeed returns the demo data the dashboard starts with.
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{ID: "1", Name: "Dawit Tesfaye", Email: "user@chapa.co", Role: models.RoleUser, IsActive: true, CreatedAt: day(2024, 1, 15)},
			{ID: "2", Name: "Hanan Bekele", Email: "admin@chapa.co", Role: models.RoleAdmin, IsActive: true, CreatedAt: day(2024, 1, 10)},
			{ID: "3", Name: "Yohannes Girma", Email: "superadmin@chapa.co", Role: models.RoleSuperAdmin, IsActive: true, CreatedAt: day(2024, 1, 1)},
			{ID: "4", Name: "Almaz Haile", Email: "almaz@example.com", Role: models.RoleUser, IsActive: true, CreatedAt: day(2024, 2, 1)},
			{ID: "5", Name: "Bereket Wolde", Email: "bereket@example.com", Role: models.RoleUser, IsActive: false, CreatedAt: day(2024, 2, 5)},
		},
		Transactions: []models.Transaction{
			{ID: "1", Amount: money("1500.00"), Type: models.CREDIT, Description: "Payment received from Almaz Haile", Status: models.COMPLETED, Date: day(2024, 1, 20), Recipient: recipient("Almaz Haile")},
			{ID: "2", Amount: money("250.00"), Type: models.DEBIT, Description: "Transfer to Bereket Wolde", Status: models.COMPLETED, Date: day(2024, 1, 19), Recipient: recipient("Bereket Wolde")},
			{ID: "3", Amount: money("750.00"), Type: models.CREDIT, Description: "Refund processed", Status: models.PENDING, Date: day(2024, 1, 18)},
			{ID: "4", Amount: money("2000.00"), Type: models.DEBIT, Description: "Withdrawal to bank account", Status: models.COMPLETED, Date: day(2024, 1, 17)},
			{ID: "5", Amount: money("500.00"), Type: models.CREDIT, Description: "Payment from merchant", Status: models.FAILED, Date: day(2024, 1, 16)},
		},
		Credentials: map[string]string{
			"user@chapa.co":       "user123",
			"admin@chapa.co":      "admin123",
			"superadmin@chapa.co": "super123",
		},
		// Folding the seed log over this opening position yields
		// total 15750.50, available 14250.50, pending 1500.00.
		OpeningBalance: models.WalletBalance{
			Available: money("15000.50"),
			Pending:   money("750.00"),
		},
		PaymentSummaries: []models.PaymentSummary{
			{UserID: "1", UserName: "Dawit Tesfaye", TotalPayments: 15, TotalAmount: money("12500.00"), LastPayment: day(2024, 1, 20)},
			{UserID: "4", UserName: "Almaz Haile", TotalPayments: 8, TotalAmount: money("6750.00"), LastPayment: day(2024, 1, 19)},
			{UserID: "5", UserName: "Bereket Wolde", TotalPayments: 12, TotalAmount: money("9200.00"), LastPayment: day(2024, 1, 18)},
		},
		SystemStats: models.SystemStats{
			TotalPayments:     1247,
			ActiveUsers:       156,
			TotalRevenue:      money("2847500.00"),
			TransactionsToday: 23,
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func recipient(name string) *string {
	return &name
}
