package admins

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"github.com/chris/gateway-dashboard/pkg/validation"
	"github.com/chris/gateway-dashboard/pkg/websockets"
)

// AdminsHandler holds the dependencies for admin management handlers.
type AdminsHandler struct {
	Service   service.AdminService
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// NewAdminsHandler creates a new AdminsHandler.
func NewAdminsHandler(svc service.AdminService, publisher websockets.Publisher, logger *slog.Logger) *AdminsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminsHandler{Service: svc, Publisher: publisher, Logger: logger}
}

// AddAdmin creates an active admin account.
func (h *AdminsHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var newAdmin api.NewAdmin
	if err := json.NewDecoder(r.Body).Decode(&newAdmin); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validation.ValidateAdmin(newAdmin.Name, newAdmin.Email); err != nil {
		respond.Invalid(w, err)
		return
	}

	admin, err := h.Service.AddAdmin(r.Context(), newAdmin.Name, newAdmin.Email)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			http.Error(w, "A user with this email already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to add admin: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAdmin := mapping.ToApiUser(admin)
	h.publish(r, websockets.Message{
		Type:    websockets.MessageTypeAdminAdded,
		Payload: websockets.AdminAddedPayload{Admin: *apiAdmin},
	})

	respond.JSON(w, http.StatusCreated, apiAdmin)
}

// RemoveAdmin deletes an admin account. Only accounts with the admin role can be removed.
func (h *AdminsHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request, adminId string) {
	if err := h.Service.RemoveAdmin(r.Context(), adminId); err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			http.Error(w, "Admin not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to remove admin: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.publish(r, websockets.Message{
		Type:    websockets.MessageTypeAdminRemoved,
		Payload: websockets.AdminRemovedPayload{AdminID: adminId},
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminsHandler) publish(r *http.Request, msg websockets.Message) {
	if err := h.Publisher.Publish(r.Context(), msg); err != nil {
		h.Logger.Error("failed to publish websocket message", "type", msg.Type, "error", err)
	}
}
