package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/models"
)

type taskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

type taskRequest struct {
	Title string `json:"title"`
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	var req taskRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	task, err := s.tasks.Create(r.Context(), accountID, req.Title)
	if err != nil {
		s.logger.Error(r.Context(), "task create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	tasks, err := s.tasks.List(r.Context(), accountID)
	if err != nil {
		s.logger.Error(r.Context(), "task list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleGetTask(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	task, err := s.tasks.AssertOwnership(r.Context(), r.PathValue("id"), accountID)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	var req taskRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	task, err := s.tasks.UpdateTitle(r.Context(), r.PathValue("id"), accountID, req.Title)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) handleToggleTask(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	task, err := s.tasks.ToggleCompleted(r.Context(), r.PathValue("id"), accountID)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	accountID, _ := AccountIDFromContext(r.Context())

	if err := s.tasks.Delete(r.Context(), r.PathValue("id"), accountID); err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeTaskError maps task service errors to responses. Missing and
// not-yours both arrive here as common.ErrorNotFound and go out as 404.
func (s *HTTPServer) writeTaskError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	s.logger.Error(r.Context(), "task operation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
