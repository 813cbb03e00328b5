package users

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"github.com/chris/gateway-dashboard/pkg/websockets"
)

// UsersHandler holds the dependencies for user management handlers.
type UsersHandler struct {
	Service   service.UserService
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(svc service.UserService, publisher websockets.Publisher, logger *slog.Logger) *UsersHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersHandler{Service: svc, Publisher: publisher, Logger: logger}
}

// ListUsers returns every account except super admins.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.FetchUsers(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve users: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiUsers(users))
}

// ToggleUserStatus flips the activation flag of a user.
func (h *UsersHandler) ToggleUserStatus(w http.ResponseWriter, r *http.Request, userId string) {
	user, err := h.Service.ToggleUserStatus(r.Context(), userId)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to update user status: %v", err), http.StatusInternalServerError)
		}
		return
	}

	msg := websockets.Message{
		Type:    websockets.MessageTypeUserStatusChanged,
		Payload: websockets.UserStatusPayload{UserID: user.ID, IsActive: user.IsActive},
	}
	if err := h.Publisher.Publish(r.Context(), msg); err != nil {
		h.Logger.Error("failed to publish websocket message", "error", err)
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiUser(user))
}
