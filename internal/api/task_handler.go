// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation is scoped
// to the authenticated user resolved by the auth middleware; a task owned by
// another user is reported exactly like a missing one.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			shared.CodeTokenInvalid, "Invalid access token")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Title is required")
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("task created", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task created successfully",
	})
}

// List handles GET /tasks. Tasks are returned in stable insertion order.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			shared.CodeTokenInvalid, "Invalid access token")
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	summaries := make([]TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summaries = append(summaries, taskToSummary(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{Tasks: summaries})
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := h.userAndTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), userID, taskID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskDetailResponse{Task: taskToSummary(task)})
}

// Update handles PUT /tasks/{id}. Title and description are replaced in
// full; ownership never changes.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, taskID, ok := h.userAndTaskID(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Title is required")
		return
	}

	task := &domain.Task{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("task updated", "task_id", taskID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task updated successfully",
	})
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, taskID, ok := h.userAndTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), userID, taskID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("task deleted", "task_id", taskID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// userAndTaskID extracts the authenticated user ID and the {id} path
// parameter, writing an error response if either is unusable.
func (h *TaskHandler) userAndTaskID(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			shared.CodeTokenInvalid, "Invalid access token")
		return 0, 0, false
	}

	taskID, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid task ID format")
		return 0, 0, false
	}

	return userID, taskID, true
}

// respondStoreError maps a store-layer error onto the wire.
func (h *TaskHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrTaskNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			shared.CodeTaskNotFound, "Task not found")
		return
	}
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
}

func taskToSummary(task *domain.Task) TaskSummary {
	return TaskSummary{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
	}
}
