package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/handlers/admins"
	"github.com/chris/gateway-dashboard/pkg/handlers/dashboard"
	"github.com/chris/gateway-dashboard/pkg/handlers/reports"
	"github.com/chris/gateway-dashboard/pkg/handlers/session"
	"github.com/chris/gateway-dashboard/pkg/handlers/transactions"
	"github.com/chris/gateway-dashboard/pkg/handlers/users"
	"github.com/chris/gateway-dashboard/pkg/handlers/wallets"
	wshandler "github.com/chris/gateway-dashboard/pkg/handlers/websockets"
	"github.com/chris/gateway-dashboard/pkg/middleware"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/chris/gateway-dashboard/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// Dependencies are the components the HTTP surface is built from.
type Dependencies struct {
	Service service.API
	Session session.Manager
	Loader  dashboard.Loader

	// Publisher receives live events. Defaults to a no-op publisher.
	Publisher websockets.Publisher
	// Connections backs the /ws endpoint, which is only mounted when set.
	Connections websockets.ConnectionManager

	Logger *slog.Logger
}

// NewRouter builds the chi router for the dashboard API.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = &websockets.NoOpPublisher{}
	}

	sessionHandler := session.NewSessionHandler(deps.Session)
	dashboardHandler := dashboard.NewDashboardHandler(deps.Session, deps.Loader)
	walletsHandler := wallets.NewWalletsHandler(deps.Service)
	transactionsHandler := transactions.NewTransactionsHandler(deps.Service, deps.Service, publisher, logger)
	usersHandler := users.NewUsersHandler(deps.Service, publisher, logger)
	adminsHandler := admins.NewAdminsHandler(deps.Service, publisher, logger)
	reportsHandler := reports.NewReportsHandler(deps.Service)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/session", sessionHandler.Login)
	r.Get("/session", sessionHandler.GetSession)
	r.Delete("/session", sessionHandler.Logout)
	r.Get("/dashboard", dashboardHandler.GetDashboard)

	if deps.Connections != nil {
		r.Handle("/ws", wshandler.NewHandler(deps.Connections, logger))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(deps.Session))

		r.Get("/wallet/balance", walletsHandler.GetWalletBalance)
		r.Get("/transactions", func(w http.ResponseWriter, r *http.Request) {
			var params api.ListTransactionsParams
			if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &params.Filter); err != nil {
				http.Error(w, fmt.Sprintf("Invalid format for parameter filter: %v", err), http.StatusBadRequest)
				return
			}
			transactionsHandler.ListTransactions(w, r, params)
		})
		r.Post("/transactions", transactionsHandler.SendMoney)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

			r.Get("/users", usersHandler.ListUsers)
			r.Post("/users/{userId}/toggle-status", withPathParam("userId", usersHandler.ToggleUserStatus))
			r.Get("/payment-summaries", reportsHandler.ListPaymentSummaries)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleSuperAdmin))

			r.Get("/system-stats", reportsHandler.GetSystemStats)
			r.Post("/admins", adminsHandler.AddAdmin)
			r.Delete("/admins/{adminId}", withPathParam("adminId", adminsHandler.RemoveAdmin))
		})
	})

	return r
}

// withPathParam binds a required simple-style path parameter and passes it to fn.
func withPathParam(name string, fn func(w http.ResponseWriter, r *http.Request, value string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var value string
		err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid format for parameter %s: %v", name, err), http.StatusBadRequest)
			return
		}
		fn(w, r, value)
	}
}
