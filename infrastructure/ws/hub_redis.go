package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

const eventChannelPrefix = "events:"

// RedisHub spans servers: local connections live in memory, and events for
// users connected elsewhere travel over Redis pub/sub. Each server publishes
// tagged with its own id and ignores its own publications on the way back.
type RedisHub struct {
	clients map[string]*Client
	mu      sync.RWMutex

	redisClient *redis.Client
	pubsub      *redis.PubSub
	serverId    string

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

type redisEnvelope struct {
	FromServerId string `json:"fromServerId"`
	ToUserId     string `json:"toUserId"`
	Payload      []byte `json:"payload"`
}

func NewRedisHub(redisAddr, serverId string) *RedisHub {
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})

	hub := &RedisHub{
		clients:     make(map[string]*Client),
		redisClient: rdb,
		serverId:    serverId,
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan []byte, 256),
	}
	hub.pubsub = rdb.PSubscribe(context.Background(), eventChannelPrefix+"*")
	return hub
}

func (h *RedisHub) Run() {
	go h.subscribe()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.UserId]; ok {
				close(old.send)
			}
			h.clients[client.UserId] = client
			h.mu.Unlock()
			log.Printf("ws[%s]: %s connected", h.serverId, client.UserId)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserId]; ok && current == client {
				delete(h.clients, client.UserId)
				close(client.send)
				log.Printf("ws[%s]: %s disconnected", h.serverId, client.UserId)
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

func (h *RedisHub) subscribe() {
	log.Printf("ws[%s]: redis subscriber started", h.serverId)

	for msg := range h.pubsub.Channel() {
		var envelope redisEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("ws[%s]: bad envelope: %v", h.serverId, err)
			continue
		}
		// Local delivery already happened on the publishing server.
		if envelope.FromServerId == h.serverId {
			continue
		}
		h.deliverLocal(envelope.ToUserId, envelope.Payload)
	}
}

func (h *RedisHub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *RedisHub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// SendToUser delivers to a locally connected client and publishes for the
// other servers. Publish failure is logged only: the poller remains the
// degrade-safe path for missed events.
func (h *RedisHub) SendToUser(userId string, payload []byte) {
	if payload == nil {
		return
	}
	h.deliverLocal(userId, payload)

	envelope, err := json.Marshal(redisEnvelope{
		FromServerId: h.serverId,
		ToUserId:     userId,
		Payload:      payload,
	})
	if err != nil {
		return
	}
	if err := h.redisClient.Publish(context.Background(), eventChannelPrefix+userId, envelope).Err(); err != nil {
		log.Printf("ws[%s]: publish failed: %v", h.serverId, err)
	}
}

func (h *RedisHub) deliverLocal(userId string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[userId]
	if !ok {
		return
	}
	select {
	case client.send <- payload:
	default:
		log.Printf("ws[%s]: dropping event for slow client %s", h.serverId, userId)
	}
}

func (h *RedisHub) Broadcast(payload []byte) {
	h.broadcast <- payload
}

func (h *RedisHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
