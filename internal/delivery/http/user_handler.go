package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userUc usecase.UserUsecase
}

func NewUserHandler(userUc usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUc: userUc}
}

// GET /users?role=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUc.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		respondError(w, err, "list users")
		return
	}
	if users == nil {
		users = []entity.User{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "get user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// PUT /users/{id} (protected; users may only update their own profile)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "id")

	claims := ClaimsFromContext(r.Context())
	if claims == nil || (claims.UserId != userId && claims.Role != entity.RoleAdmin) {
		writeError(w, http.StatusForbidden, "Cannot update another user's profile")
		return
	}

	var req usecase.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userUc.UpdateProfile(r.Context(), userId, req)
	if err != nil {
		respondError(w, err, "update profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
