package views

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentWindow is how many of the latest transactions feed the balance change figure.
const RecentWindow = 5

// Dashboard is the data behind one rendered view. Only the fields of the routed view are set.
type Dashboard struct {
	View View
	User *models.User

	Balance       *models.WalletBalance
	BalanceChange *decimal.Decimal
	Transactions  []models.Transaction

	Users            []models.User
	Overview         *models.UserOverview
	PaymentSummaries []models.PaymentSummary
	PaymentTotals    *models.PaymentTotals
	SystemStats      *models.SystemStats
}

// Loader assembles dashboards from the mock backend.
type Loader struct {
	Wallet       service.WalletService
	Transactions service.TransactionService
	Users        service.UserService
	Reports      service.ReportService
	Logger       *slog.Logger
}

// NewLoader creates a Loader backed by api.
func NewLoader(api service.API, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Wallet: api, Transactions: api, Users: api, Reports: api, Logger: logger}
}

// Load routes user to a view and fetches that view's data, issuing the calls in parallel.
// Any failed call fails the whole load.
func (l *Loader) Load(ctx context.Context, user *models.User) (*Dashboard, error) {
	d := &Dashboard{View: Route(user), User: user}
	if user != nil && !user.Role.Valid() {
		l.Logger.Warn("unrecognised role, serving default view", "user_id", user.ID, "role", user.Role, "view", DefaultView)
	}

	g, gctx := errgroup.WithContext(ctx)
	switch d.View {
	case Landing:
		return d, nil
	case UserDashboard:
		l.loadWallet(gctx, g, d)
	case AdminDashboard:
		l.loadUsers(gctx, g, d)
		l.loadSummaries(gctx, g, d)
	case SuperAdminDashboard:
		l.loadUsers(gctx, g, d)
		l.loadSummaries(gctx, g, d)
		g.Go(func() error {
			stats, err := l.Reports.FetchSystemStats(gctx)
			if err != nil {
				return fmt.Errorf("failed to load system stats: %w", err)
			}
			d.SystemStats = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func (l *Loader) loadWallet(ctx context.Context, g *errgroup.Group, d *Dashboard) {
	g.Go(func() error {
		balance, err := l.Wallet.FetchWalletBalance(ctx)
		if err != nil {
			return fmt.Errorf("failed to load wallet balance: %w", err)
		}
		d.Balance = balance
		return nil
	})
	g.Go(func() error {
		txs, err := l.Transactions.FetchTransactions(ctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		change := models.BalanceChange(txs, RecentWindow)
		d.Transactions = txs
		d.BalanceChange = &change
		return nil
	})
}

func (l *Loader) loadUsers(ctx context.Context, g *errgroup.Group, d *Dashboard) {
	g.Go(func() error {
		users, err := l.Users.FetchUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		overview := models.SummarizeUsers(users)
		d.Users = users
		d.Overview = &overview
		return nil
	})
}

func (l *Loader) loadSummaries(ctx context.Context, g *errgroup.Group, d *Dashboard) {
	g.Go(func() error {
		summaries, err := l.Reports.FetchPaymentSummaries(ctx)
		if err != nil {
			return fmt.Errorf("failed to load payment summaries: %w", err)
		}
		totals := models.SummarizePayments(summaries)
		d.PaymentSummaries = summaries
		d.PaymentTotals = &totals
		return nil
	})
}
