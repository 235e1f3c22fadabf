package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notificationUc usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUc: notificationUc}
}

// GET /notifications?userId
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userId := r.URL.Query().Get("userId")

	notifications, err := h.notificationUc.List(r.Context(), userId)
	if err != nil {
		respondError(w, err, "list notifications")
		return
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

// POST /notifications
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	notification, err := h.notificationUc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err, "create notification")
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

// PUT /notifications/{id}
func (h *NotificationHandler) SetRead(w http.ResponseWriter, r *http.Request) {
	notificationId := chi.URLParam(r, "id")

	// isRead must be an explicit boolean; a missing or mistyped field is
	// rejected before storage is touched.
	var req struct {
		IsRead *bool `json:"isRead"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsRead == nil {
		writeError(w, http.StatusBadRequest, "isRead must be a boolean")
		return
	}

	if err := h.notificationUc.SetRead(r.Context(), notificationId, *req.IsRead); err != nil {
		respondError(w, err, "set notification read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PUT /notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserId string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	modified, err := h.notificationUc.MarkAllRead(r.Context(), req.UserId)
	if err != nil {
		respondError(w, err, "mark all notifications read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"modifiedCount": modified,
	})
}

// DELETE /notifications/{id}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	notificationId := chi.URLParam(r, "id")

	if err := h.notificationUc.Delete(r.Context(), notificationId); err != nil {
		respondError(w, err, "delete notification")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
