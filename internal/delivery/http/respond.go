package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"designdesk/internal/repository"
	"designdesk/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps domain errors onto the wire contract: validation -> 400
// with the validation message, not-found -> 404, anything else -> 500 with a
// generic body. The cause of a 500 is only ever logged server side.
func respondError(w http.ResponseWriter, err error, logPrefix string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, "Notification not found")
	case errors.Is(err, repository.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, repository.ErrProjectUpdateNotFound):
		writeError(w, http.StatusNotFound, "Project update not found")
	case errors.Is(err, repository.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("%s: %v", logPrefix, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the "validation: " prefix so clients see only the
// descriptive part.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := usecase.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
