package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/views"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToApiTransaction(t *testing.T) {
	recipient := "Almaz Haile"
	tx := &models.Transaction{
		ID:          "1",
		Amount:      decimal.RequireFromString("1500.00"),
		Type:        models.CREDIT,
		Description: "Payment received from Almaz Haile",
		Status:      models.COMPLETED,
		Date:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Recipient:   &recipient,
	}

	body, err := json.Marshal(ToApiTransaction(tx))

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "1",
		"amount": "1500",
		"type": "credit",
		"description": "Payment received from Almaz Haile",
		"status": "completed",
		"date": "2024-01-20",
		"recipient": "Almaz Haile"
	}`, string(body))
}

func TestToApiUser(t *testing.T) {
	u := &models.User{
		ID:        "2",
		Name:      "Hanan Bekele",
		Email:     "admin@chapa.co",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(ToApiUser(u))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2","name":"Hanan Bekele","email":"admin@chapa.co","role":"admin","isActive":true,"createdAt":"2024-01-10"}`, string(body))
}

func TestToApiSession(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		s := ToApiSession(nil)
		assert.False(t, s.Authenticated)
		assert.Nil(t, s.User)
		assert.EqualValues(t, views.Landing, s.View)
	})

	t.Run("Super Admin", func(t *testing.T) {
		s := ToApiSession(&models.User{ID: "3", Email: "superadmin@chapa.co", Role: models.RoleSuperAdmin})
		assert.True(t, s.Authenticated)
		assert.Equal(t, "3", s.User.Id)
		assert.EqualValues(t, views.SuperAdminDashboard, s.View)
	})
}

func TestToApiDashboard(t *testing.T) {
	change := decimal.NewFromInt(-250)
	d := &views.Dashboard{
		View:          views.UserDashboard,
		User:          &models.User{ID: "1", Email: "user@chapa.co", Role: models.RoleUser},
		Balance:       &models.WalletBalance{Total: decimal.NewFromInt(10)},
		BalanceChange: &change,
		Transactions:  []models.Transaction{{ID: "1"}},
	}

	out := ToApiDashboard(d)

	assert.EqualValues(t, views.UserDashboard, out.View)
	assert.Equal(t, "1", out.User.Id)
	assert.True(t, decimal.NewFromInt(10).Equal(out.Balance.Total))
	assert.Len(t, out.Transactions, 1)
	assert.Nil(t, out.Users)
	assert.Nil(t, out.SystemStats)
}

func TestToApiDashboardPaymentTotals(t *testing.T) {
	d := &views.Dashboard{
		View:          views.AdminDashboard,
		PaymentTotals: &models.PaymentTotals{TotalPayments: 35, TotalRevenue: decimal.RequireFromString("28450.00")},
	}

	body, err := json.Marshal(ToApiDashboard(d))

	require.NoError(t, err)
	assert.JSONEq(t, `{"view":"admin_dashboard","paymentTotals":{"totalPayments":35,"totalRevenue":"28450"}}`, string(body))
}
