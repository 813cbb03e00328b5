package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/storage"
	"github.com/chris/gateway-dashboard/pkg/validation"
)

// Manager is the process-wide sign-in state.
type Manager interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout()
	Current() (*models.User, bool)
}

// SessionHandler holds the dependencies for session handlers.
type SessionHandler struct {
	Session Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s Manager) *SessionHandler {
	return &SessionHandler{Session: s}
}

// Login validates the credentials form and signs the user in.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validation.ValidateLogin(req.Email, req.Password); err != nil {
		respond.Invalid(w, err)
		return
	}

	user, err := h.Session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		} else {
			http.Error(w, fmt.Sprintf("Failed to sign in: %v", err), http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiSession(user))
}

// GetSession reports the signed-in user and the view routed for them.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, _ := h.Session.Current()
	respond.JSON(w, http.StatusOK, mapping.ToApiSession(user))
}

// Logout signs the current user out. It succeeds when nobody is signed in.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}
