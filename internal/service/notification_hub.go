package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// clientSendBuffer bounds the per-connection event queue; a client that
	// falls further behind misses events.
	clientSendBuffer = 16
	writeWait        = 10 * time.Second
)

// WSClient is one websocket connection of one user. All writes to the
// connection go through send and are drained by a single WritePump goroutine;
// nothing else may write to the connection.
type WSClient struct {
	UserID string
	conn   *websocket.Conn
	send   chan []byte
}

func NewWSClient(userID string, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, clientSendBuffer),
	}
}

// WritePump serializes all writes to the connection. It exits when the
// client is unregistered, which closes the send channel.
func (c *WSClient) WritePump() {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// NotificationHub fans realtime events out to a user's open websocket
// connections. A user may hold several connections at once.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *NotificationHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client, stops its WritePump and closes the
// connection. Unregistering twice is a no-op.
func (h *NotificationHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		if _, ok := set[c]; ok {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Notify queues payload for every open connection of userID and returns
// immediately. A client whose queue is full misses the event; notifications
// are best-effort.
func (h *NotificationHub) Notify(userID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
		}
	}
}
