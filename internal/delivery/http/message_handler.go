package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"
)

type MessageHandler struct {
	messageUc usecase.MessageUsecase
}

func NewMessageHandler(messageUc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUc: messageUc}
}

// GET /messages/individual?user1&user2
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	user1 := r.URL.Query().Get("user1")
	user2 := r.URL.Query().Get("user2")

	messages, err := h.messageUc.Conversation(r.Context(), user1, user2)
	if err != nil {
		respondError(w, err, "get conversation")
		return
	}
	if messages == nil {
		messages = []entity.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// POST /messages/individual
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req entity.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.messageUc.Send(r.Context(), req)
	if err != nil {
		respondError(w, err, "send message")
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// DELETE /messages/individual?user1&user2
func (h *MessageHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	user1 := r.URL.Query().Get("user1")
	user2 := r.URL.Query().Get("user2")

	deleted, err := h.messageUc.DeleteConversation(r.Context(), user1, user2)
	if err != nil {
		respondError(w, err, "delete conversation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// GET /messages/individual/counts?userId
func (h *MessageHandler) UnreadCounts(w http.ResponseWriter, r *http.Request) {
	userId := r.URL.Query().Get("userId")

	counts, err := h.messageUc.UnreadCounts(r.Context(), userId)
	if err != nil {
		respondError(w, err, "unread counts")
		return
	}
	if counts == nil {
		counts = []entity.UnreadSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"counts": counts})
}

// PUT /messages/individual/mark-read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentUserId string `json:"currentUserId"`
		OtherUserId   string `json:"otherUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	marked, err := h.messageUc.MarkRead(r.Context(), req.CurrentUserId, req.OtherUserId)
	if err != nil {
		respondError(w, err, "mark read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"markedCount": marked,
	})
}
