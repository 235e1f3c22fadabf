package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type ChatHandler struct {
	chatUc usecase.ChatUsecase
}

func NewChatHandler(chatUc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUc: chatUc}
}

// GET /chat/{projectId}
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	projectId := chi.URLParam(r, "projectId")

	messages, err := h.chatUc.List(r.Context(), projectId)
	if err != nil {
		respondError(w, err, "list chat messages")
		return
	}
	if messages == nil {
		messages = []entity.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// POST /chat/{projectId}
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	projectId := chi.URLParam(r, "projectId")

	var req usecase.PostChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.chatUc.Post(r.Context(), projectId, req)
	if err != nil {
		respondError(w, err, "post chat message")
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// DELETE /chat/{projectId}
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectId := chi.URLParam(r, "projectId")

	deleted, err := h.chatUc.DeleteByProject(r.Context(), projectId)
	if err != nil {
		respondError(w, err, "delete chat messages")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
