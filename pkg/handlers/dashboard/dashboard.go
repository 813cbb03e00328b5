package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/middleware"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/views"
)

// Loader assembles the data of the routed view.
type Loader interface {
	Load(ctx context.Context, user *models.User) (*views.Dashboard, error)
}

// DashboardHandler holds the dependencies for the dashboard handler.
type DashboardHandler struct {
	Session middleware.SessionReader
	Loader  Loader
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(s middleware.SessionReader, l Loader) *DashboardHandler {
	return &DashboardHandler{Session: s, Loader: l}
}

// GetDashboard routes the current session to its view and returns that view's data.
// Anonymous callers get the landing view with no data.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Session.Current()

	d, err := h.Loader.Load(r.Context(), user)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load dashboard: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiDashboard(d))
}
