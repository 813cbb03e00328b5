package websockets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	written []interface{}
	fail    bool
	closed  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.written = append(c.written, v)
	return nil
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) Written() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interface{}(nil), c.written...)
}

func (c *fakeConn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// blockedConn never finishes a write until release is closed, like a client that stopped reading.
type blockedConn struct {
	fakeConn
	release chan struct{}
}

func (c *blockedConn) WriteJSON(v interface{}) error {
	<-c.release
	return errors.New("write timeout")
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHubPublish(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		h := newTestHub()
		a, b := &fakeConn{}, &fakeConn{}
		require.NoError(t, h.AddConnection(context.Background(), "a", a))
		require.NoError(t, h.AddConnection(context.Background(), "b", b))
		msg := Message{Type: MessageTypeAdminRemoved, Payload: AdminRemovedPayload{AdminID: "7"}}

		// Act
		err := h.Publish(context.Background(), msg)

		// Assert
		assert.NoError(t, err)
		assert.Eventually(t, func() bool { return len(a.Written()) == 1 && len(b.Written()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []interface{}{msg}, a.Written())
	})

	t.Run("Drops Failed Connections", func(t *testing.T) {
		h := newTestHub()
		good, bad := &fakeConn{}, &fakeConn{fail: true}
		require.NoError(t, h.AddConnection(context.Background(), "good", good))
		require.NoError(t, h.AddConnection(context.Background(), "bad", bad))

		err := h.Publish(context.Background(), Message{Type: MessageTypeWalletUpdate})

		assert.NoError(t, err)
		assert.Eventually(t, func() bool { return h.Len() == 1 && bad.Closed() }, time.Second, 5*time.Millisecond)
		assert.False(t, good.Closed())
	})

	t.Run("Client That Stops Reading", func(t *testing.T) {
		// Arrange
		h := newTestHub()
		stuck := &blockedConn{release: make(chan struct{})}
		defer close(stuck.release)
		good := &fakeConn{}
		require.NoError(t, h.AddConnection(context.Background(), "stuck", stuck))
		require.NoError(t, h.AddConnection(context.Background(), "good", good))

		// Act: one message occupies the stuck writer, the next sendBuffer fill its queue, one more overflows.
		published := make(chan struct{})
		go func() {
			defer close(published)
			for i := 0; i < sendBuffer+2; i++ {
				_ = h.Publish(context.Background(), Message{Type: MessageTypeWalletUpdate})
				want := i + 1
				assert.Eventually(t, func() bool { return len(good.Written()) == want }, time.Second, time.Millisecond)
			}
		}()

		// Assert
		select {
		case <-published:
		case <-time.After(5 * time.Second):
			t.Fatal("publish blocked by a client that stopped reading")
		}
		assert.Equal(t, 1, h.Len())
		assert.Len(t, good.Written(), sendBuffer+2)
		assert.False(t, good.Closed())
	})
}

func TestHubConnections(t *testing.T) {
	h := newTestHub()
	ctx := context.Background()
	a := &fakeConn{}

	require.NoError(t, h.AddConnection(ctx, "a", a))
	assert.Error(t, h.AddConnection(ctx, "a", &fakeConn{}))
	assert.Equal(t, 1, h.Len())

	require.NoError(t, h.RemoveConnection(ctx, "a"))
	require.NoError(t, h.RemoveConnection(ctx, "missing"))
	assert.Equal(t, 0, h.Len())
	assert.Eventually(t, a.Closed, time.Second, 5*time.Millisecond)
}
