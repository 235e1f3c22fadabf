package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	projectUc usecase.ProjectUsecase
}

func NewProjectHandler(projectUc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUc: projectUc}
}

// GET /projects?search&userId&userRole
func (h *ProjectHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.ProjectFilter{
		UserId:   query.Get("userId"),
		UserRole: query.Get("userRole"),
		Search:   query.Get("search"),
	}

	projects, err := h.projectUc.Index(r.Context(), filter)
	if err != nil {
		respondError(w, err, "list projects")
		return
	}
	if projects == nil {
		projects = []entity.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// GET /projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectUc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "get project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"project": project})
}

// POST /projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectUc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err, "create project")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"project": project})
}

// PUT /projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req usecase.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectUc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"project": project})
}

// DELETE /projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectUc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
