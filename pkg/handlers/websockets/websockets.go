package websockets

import (
	"log/slog"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades clients onto the live event feed.
type Handler struct {
	connManager websockets.ConnectionManager
	logger      *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		connManager: connManager,
		logger:      logger,
	}
}

var upgrader = websocket.Upgrader{
	// The dashboard front-end is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeHTTP registers the connection with the manager and holds it open until the client goes away.
// Messages sent by clients are read and discarded.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.NewString()
	h.logger.Info("client connected", "connectionId", connectionID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, conn); err != nil {
		h.logger.Error("failed to register connection", "connectionId", connectionID, "error", err)
		return
	}

	defer func() {
		h.logger.Info("client disconnected", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			h.logger.Error("failed to remove connection", "connectionId", connectionID, "error", err)
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("unexpected close error", "connectionId", connectionID, "error", err)
			}
			return
		}
	}
}
