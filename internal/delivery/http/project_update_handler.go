package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type ProjectUpdateHandler struct {
	updateUc usecase.ProjectUpdateUsecase
}

func NewProjectUpdateHandler(updateUc usecase.ProjectUpdateUsecase) *ProjectUpdateHandler {
	return &ProjectUpdateHandler{updateUc: updateUc}
}

// GET /project-updates?projectId|userId
func (h *ProjectUpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	updates, err := h.updateUc.List(r.Context(), query.Get("projectId"), query.Get("userId"))
	if err != nil {
		respondError(w, err, "list project updates")
		return
	}
	if updates == nil {
		updates = []entity.ProjectUpdate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"updates": updates})
}

// GET /project-updates/{id}
func (h *ProjectUpdateHandler) Get(w http.ResponseWriter, r *http.Request) {
	update, err := h.updateUc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "get project update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"update": update})
}

// POST /project-updates
func (h *ProjectUpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateProjectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.updateUc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err, "create project update")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"update": update})
}

// PUT /project-updates/{id}
func (h *ProjectUpdateHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req usecase.EditProjectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.updateUc.Edit(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "edit project update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"update": update})
}

// DELETE /project-updates/{id}
func (h *ProjectUpdateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.updateUc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete project update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
