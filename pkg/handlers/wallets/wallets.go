package wallets

import (
	"fmt"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/service"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Service service.WalletService
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(svc service.WalletService) *WalletsHandler {
	return &WalletsHandler{Service: svc}
}

// GetWalletBalance returns the current wallet position.
func (h *WalletsHandler) GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Service.FetchWalletBalance(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallet balance: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWalletBalance(balance))
}
