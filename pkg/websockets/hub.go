package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// sendBuffer is how many messages may queue for one client before it is dropped as too slow.
	sendBuffer = 16
	// writeWait bounds a single write to a client.
	writeWait = 10 * time.Second
)

type client struct {
	id   string
	conn Conn
	send chan Message
}

// Hub fans published messages out to every registered connection.
// Each connection is written by its own goroutine, so Publish never waits on a client.
// Connections that fail a write or fall sendBuffer messages behind are closed and dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
	logger  *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{clients: make(map[string]*client), logger: logger}
}

// Make sure we conform to the interfaces
var (
	_ ConnectionManager = (*Hub)(nil)
	_ Publisher         = (*Hub)(nil)
)

func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[connectionID]; ok {
		return fmt.Errorf("connection %s already registered", connectionID)
	}
	c := &client{id: connectionID, conn: conn, send: make(chan Message, sendBuffer)}
	h.clients[connectionID] = c
	go h.writePump(c)
	return nil
}

// RemoveConnection forgets a connection. Unknown ids are ignored.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.unregisterLocked(connectionID)
	return nil
}

// Len reports the number of registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues a message for all connected clients.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		select {
		case c.send <- message:
		default:
			h.logger.Info("slow connection found, deleting", "connectionId", id)
			h.unregisterLocked(id)
		}
	}
	return nil
}

// unregisterLocked must be called with h.mu held. Closing the send channel stops the client's writer.
func (h *Hub) unregisterLocked(connectionID string) {
	if c, ok := h.clients[connectionID]; ok {
		delete(h.clients, connectionID)
		close(c.send)
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			h.logger.Info("stale connection found, deleting", "connectionId", c.id, "error", err)
			h.mu.Lock()
			if h.clients[c.id] == c {
				h.unregisterLocked(c.id)
			}
			h.mu.Unlock()
			return
		}
	}
}
