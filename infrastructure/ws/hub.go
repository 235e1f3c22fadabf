package ws

import (
	"log"
	"sync"
)

// MemoryHub is the single-server hub: a map of connected clients guarded by a
// mutex, with register/unregister funneled through channels.
type MemoryHub struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewMemoryHub() *MemoryHub {
	return &MemoryHub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *MemoryHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.UserId]; ok {
				close(old.send)
			}
			h.clients[client.UserId] = client
			h.mu.Unlock()
			log.Printf("ws: %s connected", client.UserId)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserId]; ok && current == client {
				delete(h.clients, client.UserId)
				close(client.send)
				log.Printf("ws: %s disconnected", client.UserId)
			}
			h.mu.Unlock()

		case payload := <-h.broadcast:
			h.mu.Lock()
			for userId, client := range h.clients {
				select {
				case client.send <- payload:
				default:
					close(client.send)
					delete(h.clients, userId)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *MemoryHub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *MemoryHub) UnregisterClient(client *Client) {
	h.unregister <- client
}

func (h *MemoryHub) SendToUser(userId string, payload []byte) {
	if payload == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[userId]
	if !ok {
		return
	}
	select {
	case client.send <- payload:
	default:
		log.Printf("ws: dropping event for slow client %s", userId)
	}
}

func (h *MemoryHub) Broadcast(payload []byte) {
	h.broadcast <- payload
}

func (h *MemoryHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
