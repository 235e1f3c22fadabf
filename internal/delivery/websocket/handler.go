package websocket

import (
	"log"
	"net/http"

	"designdesk/infrastructure/ws"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades /ws/{userId} and subscribes the connection to the user's
// event stream. The socket is push-only; all mutations go through REST.
type Handler struct {
	hub ws.Hub
}

func NewHandler(hub ws.Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "userId")
	if userId == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := ws.NewClient(userId, h.hub, conn)
	h.hub.RegisterClient(client)

	go client.WritePump()
	go client.ReadPump()
}
