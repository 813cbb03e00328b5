package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleLog() []Transaction {
	return []Transaction{
		{ID: "a", Amount: decimal.NewFromInt(100), Type: DEBIT, Status: PENDING},
		{ID: "b", Amount: decimal.NewFromInt(40), Type: CREDIT, Status: COMPLETED},
		{ID: "c", Amount: decimal.NewFromInt(10), Type: CREDIT, Status: PENDING},
		{ID: "d", Amount: decimal.NewFromInt(5), Type: DEBIT, Status: FAILED},
	}
}

func TestParseTransactionFilter(t *testing.T) {
	t.Run("Empty Means All", func(t *testing.T) {
		f, err := ParseTransactionFilter("")
		assert.NoError(t, err)
		assert.Equal(t, FilterAll, f)
	})

	t.Run("Known Values", func(t *testing.T) {
		for _, s := range []string{"all", "credit", "debit", "pending"} {
			f, err := ParseTransactionFilter(s)
			assert.NoError(t, err)
			assert.Equal(t, TransactionFilter(s), f)
		}
	})

	t.Run("Unknown Value", func(t *testing.T) {
		_, err := ParseTransactionFilter("refunds")
		assert.Error(t, err)
	})
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleLog()

	assert.Len(t, FilterTransactions(txs, FilterAll), 4)

	credits := FilterTransactions(txs, FilterCredit)
	assert.Equal(t, []string{"b", "c"}, ids(credits))

	debits := FilterTransactions(txs, FilterDebit)
	assert.Equal(t, []string{"a", "d"}, ids(debits))

	pending := FilterTransactions(txs, FilterPending)
	assert.Equal(t, []string{"a", "c"}, ids(pending))
}

func TestBalanceChange(t *testing.T) {
	txs := sampleLog()

	assert.True(t, decimal.NewFromInt(-60).Equal(BalanceChange(txs, 2)))
	assert.True(t, decimal.NewFromInt(-55).Equal(BalanceChange(txs, 10)))
	assert.True(t, decimal.Zero.Equal(BalanceChange(nil, 5)))
}

func TestFoldBalance(t *testing.T) {
	opening := WalletBalance{Available: decimal.NewFromInt(1000), Pending: decimal.NewFromInt(0)}

	got := FoldBalance(opening, sampleLog())

	assert.True(t, decimal.NewFromInt(940).Equal(got.Available), "available: %s", got.Available)
	assert.True(t, decimal.NewFromInt(110).Equal(got.Pending), "pending: %s", got.Pending)
	assert.True(t, got.Total.Equal(got.Available.Add(got.Pending)))
}

func TestSummarizeUsers(t *testing.T) {
	users := []User{
		{ID: "1", Role: RoleUser, IsActive: true},
		{ID: "2", Role: RoleAdmin, IsActive: true},
		{ID: "3", Role: RoleAdmin, IsActive: false},
		{ID: "4", Role: RoleUser, IsActive: false},
	}

	assert.Equal(t, UserOverview{TotalUsers: 4, ActiveUsers: 2, Admins: 2}, SummarizeUsers(users))
}

func TestSummarizePayments(t *testing.T) {
	summaries := []PaymentSummary{
		{UserID: "1", TotalPayments: 15, TotalAmount: decimal.RequireFromString("12500.00")},
		{UserID: "4", TotalPayments: 8, TotalAmount: decimal.RequireFromString("6750.00")},
		{UserID: "5", TotalPayments: 12, TotalAmount: decimal.RequireFromString("9200.00")},
	}

	got := SummarizePayments(summaries)

	assert.Equal(t, 35, got.TotalPayments)
	assert.True(t, decimal.RequireFromString("28450.00").Equal(got.TotalRevenue), got.TotalRevenue.String())

	empty := SummarizePayments(nil)
	assert.Zero(t, empty.TotalPayments)
	assert.True(t, decimal.Zero.Equal(empty.TotalRevenue))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("auditor").Valid())
}

func ids(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}
