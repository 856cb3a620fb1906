package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mlefebvre/tasktrack-api/internal/api/shared"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/mlefebvre/tasktrack-api/internal/platform/logger"
	"github.com/mlefebvre/tasktrack-api/internal/service"
	"github.com/mlefebvre/tasktrack-api/internal/view"
)

// dateLayout is the format of the list endpoint's date filter parameter.
const dateLayout = "2006-01-02"

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks.
//
// Query parameters:
//   - status: all | incomplete | complete (default all)
//   - date:   YYYY-MM-DD; restricts to tasks created on that calendar day
//   - sort:   date | status (default date, newest first)
//   - tz:     IANA timezone name used to interpret the date filter; defaults
//     to the server's local timezone
//
// Counts in the response always cover the user's full task list, so the UI
// can show totals alongside a filtered view.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	visible := view.Apply(tasks, query)
	counts := view.Count(tasks)

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks: tasksToResponses(visible),
		Counts: TaskCounts{
			Total:      counts.Total,
			Incomplete: counts.Incomplete,
			Complete:   counts.Complete,
		},
	})
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PATCH /api/tasks/{id}. Absent fields are left unchanged.
// A status value equal to the task's current status is a no-op; a different
// value toggles the task.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	var task *domain.Task
	var err error

	if req.Title != nil || req.Description != nil {
		task, err = h.taskService.UpdateTask(r.Context(), userID, taskID, req.Title, req.Description)
	} else {
		// Status-only (or empty) patch still needs the current task, both to
		// respond with it and to decide whether the status actually changes.
		task, err = h.taskService.GetTask(r.Context(), userID, taskID)
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	if req.Status != nil && domain.TaskStatus(*req.Status) != task.Status {
		task, err = h.taskService.ToggleTaskStatus(r.Context(), userID, taskID)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to update task")
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ToggleTask handles POST /api/tasks/{id}/toggle. It flips the task between
// complete and incomplete.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTaskStatus(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to toggle task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseListQuery builds a view.Query from the list endpoint's query string.
func parseListQuery(r *http.Request) (view.Query, error) {
	q := r.URL.Query()
	out := view.Query{}

	status, ok := view.ParseFilterStatus(q.Get("status"))
	if !ok {
		return out, domain.NewValidationError("status", "must be one of all, incomplete, complete", domain.ErrValidation)
	}
	out.Status = status

	sortBy, ok := view.ParseSortBy(q.Get("sort"))
	if !ok {
		return out, domain.NewValidationError("sort", "must be one of date, status", domain.ErrValidation)
	}
	out.Sort = sortBy

	loc := time.Local
	if tz := q.Get("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return out, domain.NewValidationError("tz", "is not a valid timezone", domain.ErrValidation)
		}
		loc = parsed
	}
	out.Location = loc

	if raw := q.Get("date"); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			return out, domain.NewValidationError("date", "must be formatted as YYYY-MM-DD", domain.ErrValidation)
		}
		out.Date = date
	}

	return out, nil
}

// taskToResponse converts a domain.Task to its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		UserID:      task.UserID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponses(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
