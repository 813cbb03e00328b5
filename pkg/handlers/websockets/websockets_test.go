package websockets_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	handler "github.com/chris/gateway-dashboard/pkg/handlers/websockets"
	"github.com/chris/gateway-dashboard/pkg/websockets"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeHTTP(t *testing.T) {
	// Arrange
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := websockets.NewHub(logger)
	srv := httptest.NewServer(handler.NewHandler(hub, logger))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	// Act
	msg := websockets.Message{
		Type:    websockets.MessageTypeUserStatusChanged,
		Payload: websockets.UserStatusPayload{UserID: "5", IsActive: true},
	}
	require.NoError(t, hub.Publish(context.Background(), msg))

	// Assert
	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	var got map[string]interface{}
	require.NoError(t, client.ReadJSON(&got))
	assert.Equal(t, "userStatusChanged", got["type"])
	assert.Equal(t, map[string]interface{}{"userId": "5", "isActive": true}, got["payload"])

	require.NoError(t, client.Close())
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}
