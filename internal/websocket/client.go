package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one live inbox connection, pinned to the user channel its
// notifications arrive on.
type Client struct {
	ID      string
	UserID  string
	Channel string
	Conn    *websocket.Conn
	Send    chan []byte
	mu      sync.Mutex // protects conn writes
}

func NewClient(conn *websocket.Conn, userID, channel string) *Client {
	return &Client{
		ID:      uuid.New().String(),
		UserID:  userID,
		Channel: channel,
		Conn:    conn,
		Send:    make(chan []byte, 256),
	}
}

// WriteLoop drains the Send channel onto the socket and keeps the
// connection alive with pings.
func (c *Client) WriteLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.close()
			return
		case msg, ok := <-c.Send:
			if !ok {
				c.close()
				return
			}
			c.mu.Lock()
			_ = c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
			c.mu.Unlock()
		case <-ticker.C:
			c.mu.Lock()
			_ = c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			_ = c.Conn.WriteMessage(websocket.PingMessage, []byte("ping"))
			c.mu.Unlock()
		}
	}
}

func (c *Client) close() {
	c.mu.Lock()
	_ = c.Conn.Close()
	c.mu.Unlock()
}

// SendMessage is non-blocking; a slow consumer drops messages instead
// of stalling the hub.
func (c *Client) SendMessage(msg []byte) {
	select {
	case c.Send <- msg:
	default:
	}
}
