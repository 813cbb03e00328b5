package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"github.com/chris/gateway-dashboard/pkg/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := memory.NewSeeded()
	require.NoError(t, err)
	return New(store, latency.Disabled(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func userIDs(users []models.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("Demo Credentials", func(t *testing.T) {
		cases := []struct {
			email, password string
			role            models.Role
		}{
			{"user@chapa.co", "user123", models.RoleUser},
			{"admin@chapa.co", "admin123", models.RoleAdmin},
			{"superadmin@chapa.co", "super123", models.RoleSuperAdmin},
		}
		for _, c := range cases {
			user, err := svc.Authenticate(ctx, c.email, c.password)
			require.NoError(t, err, c.email)
			assert.Equal(t, c.email, user.Email)
			assert.Equal(t, c.role, user.Role)
		}
	})

	t.Run("Invalid Pairs", func(t *testing.T) {
		cases := [][2]string{
			{"user@chapa.co", "admin123"},
			{"admin@chapa.co", ""},
			{"nobody@chapa.co", "user123"},
			{"almaz@example.com", "user123"},
			{"", ""},
		}
		for _, c := range cases {
			_, err := svc.Authenticate(ctx, c[0], c[1])
			assert.ErrorIs(t, err, storage.ErrInvalidCredentials, c[0])
		}
	})
}

func TestFetchWalletBalance(t *testing.T) {
	svc := newTestService(t)

	balance, err := svc.FetchWalletBalance(context.Background())

	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15750.50").Equal(balance.Total))
	assert.True(t, decimal.RequireFromString("14250.50").Equal(balance.Available))
	assert.True(t, decimal.RequireFromString("1500.00").Equal(balance.Pending))
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestService(t)
		svc.now = func() time.Time { return time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC) }

		tx, err := svc.CreateTransaction(ctx, decimal.NewFromInt(100), "Alice", "desc")
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(100).Equal(tx.Amount))
		assert.Equal(t, models.DEBIT, tx.Type)
		assert.Equal(t, models.PENDING, tx.Status)
		assert.Equal(t, "Alice", *tx.Recipient)
		assert.Equal(t, "desc", tx.Description)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.NotEmpty(t, tx.ID)

		txs, err := svc.FetchTransactions(ctx)
		require.NoError(t, err)
		assert.Len(t, txs, 6)
		assert.Equal(t, tx.ID, txs[0].ID)
	})

	t.Run("Balance Follows Ledger", func(t *testing.T) {
		svc := newTestService(t)
		before, _ := svc.FetchWalletBalance(ctx)

		_, err := svc.CreateTransaction(ctx, decimal.RequireFromString("250.25"), "Alice", "rent")
		require.NoError(t, err)

		after, _ := svc.FetchWalletBalance(ctx)
		assert.True(t, before.Total.Equal(after.Total))
		assert.True(t, before.Available.Sub(decimal.RequireFromString("250.25")).Equal(after.Available))
		assert.True(t, before.Pending.Add(decimal.RequireFromString("250.25")).Equal(after.Pending))
	})

	t.Run("ID Generation Fails", func(t *testing.T) {
		svc := newTestService(t)
		svc.newID = func() (string, error) { return "", errors.New("entropy exhausted") }

		_, err := svc.CreateTransaction(ctx, decimal.NewFromInt(1), "Alice", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate transaction ID")
		txs, _ := svc.FetchTransactions(ctx)
		assert.Len(t, txs, 5)
	})

	t.Run("Concurrent Creates", func(t *testing.T) {
		svc := newTestService(t)
		const n = 20

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.CreateTransaction(ctx, decimal.NewFromInt(10), "Alice", "split")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		txs, _ := svc.FetchTransactions(ctx)
		assert.Len(t, txs, 5+n)

		balance, _ := svc.FetchWalletBalance(ctx)
		assert.True(t, balance.Total.Equal(balance.Available.Add(balance.Pending)))
		assert.True(t, decimal.RequireFromString("1700").Equal(balance.Pending))
	})
}

func TestFetchUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Hides Super Admins", func(t *testing.T) {
		svc := newTestService(t)

		users, err := svc.FetchUsers(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "4", "5"}, userIDs(users))
		for _, u := range users {
			assert.NotEqual(t, models.RoleSuperAdmin, u.Role)
		}
	})

	t.Run("Hides Super Admins After Mutations", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.AddAdmin(ctx, "Kebede T.", "kebede@x.co")
		require.NoError(t, err)
		_, err = svc.ToggleUserStatus(ctx, "3")
		require.NoError(t, err)

		users, _ := svc.FetchUsers(ctx)

		assert.Len(t, users, 5)
		for _, u := range users {
			assert.NotEqual(t, models.RoleSuperAdmin, u.Role)
		}
	})
}

func TestToggleUserStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Involution", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.ToggleUserStatus(ctx, "4")
		require.NoError(t, err)
		assert.False(t, first.IsActive)

		second, err := svc.ToggleUserStatus(ctx, "4")
		require.NoError(t, err)
		assert.True(t, second.IsActive)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.ToggleUserStatus(ctx, "does-not-exist")

		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestAddAndRemoveAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		svc := newTestService(t)
		before, _ := svc.Store.ListUsers(ctx)

		admin, err := svc.AddAdmin(ctx, "Kebede T.", "kebede@x.co")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.True(t, admin.IsActive)
		assert.Equal(t, "Kebede T.", admin.Name)

		require.NoError(t, svc.RemoveAdmin(ctx, admin.ID))

		after, _ := svc.Store.ListUsers(ctx)
		assert.ElementsMatch(t, userIDs(before), userIDs(after))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.AddAdmin(ctx, "Hanan Again", "admin@chapa.co")

		assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
	})

	t.Run("Remove Non Admin", func(t *testing.T) {
		svc := newTestService(t)
		before, _ := svc.Store.ListUsers(ctx)

		err := svc.RemoveAdmin(ctx, "1")

		assert.ErrorIs(t, err, storage.ErrAdminNotFound)
		after, _ := svc.Store.ListUsers(ctx)
		assert.Equal(t, userIDs(before), userIDs(after))
	})

	t.Run("Remove Unknown", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.RemoveAdmin(ctx, "nope")

		assert.ErrorIs(t, err, storage.ErrAdminNotFound)
	})
}

func TestReports(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	summaries, err := svc.FetchPaymentSummaries(ctx)
	assert.NoError(t, err)
	assert.Len(t, summaries, 3)

	stats, err := svc.FetchSystemStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 156, stats.ActiveUsers)
	assert.True(t, decimal.RequireFromString("2847500").Equal(stats.TotalRevenue))
}
