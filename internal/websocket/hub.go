package websocket

import (
	"context"
	"sync"
)

// Hub tracks connected inbox clients keyed by user channel. A user may
// hold several connections (tabs, devices); each one is delivered to.
type Hub struct {
	mu sync.RWMutex

	clients  map[string]*Client
	channels map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		channels:   make(map[string]map[*Client]struct{}),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast delivers a payload to every connection subscribed to the
// given user channel.
func (h *Hub) Broadcast(channel string, payload []byte) {
	h.mu.RLock()
	for c := range h.channels[channel] {
		c.SendMessage(payload)
	}
	h.mu.RUnlock()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

// addClient registers a connection under its user channel. Inbox
// connections are bound to exactly one channel for their lifetime, so
// subscription happens at registration.
func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	if _, ok := h.channels[client.Channel]; !ok {
		h.channels[client.Channel] = make(map[*Client]struct{})
	}
	h.channels[client.Channel][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subscribers, ok := h.channels[client.Channel]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.channels, client.Channel)
		}
	}
	delete(h.clients, client.ID)
	close(client.Send)
}
