package http

import (
	"encoding/json"
	"net/http"

	"designdesk/internal/entity"
	"designdesk/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskUc usecase.TaskUsecase
}

func NewTaskHandler(taskUc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUc: taskUc}
}

// GET /tasks?projectId|assigneeId
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tasks, err := h.taskUc.Index(r.Context(), query.Get("projectId"), query.Get("assigneeId"))
	if err != nil {
		respondError(w, err, "list tasks")
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskUc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err, "create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// PUT /tasks: the task id travels in the body, matching the board client.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskId string `json:"taskId"`
		entity.TaskUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TaskId == "" {
		writeError(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	task, err := h.taskUc.Update(r.Context(), req.TaskId, req.TaskUpdate)
	if err != nil {
		respondError(w, err, "update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskUc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
