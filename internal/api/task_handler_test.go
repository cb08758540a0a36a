package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// fakeTaskStore is an in-memory store.TaskStore. The slice preserves
// insertion order, matching what the SQL implementation guarantees.
type fakeTaskStore struct {
	tasks  []*domain.Task
	nextID int64
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1}
}

func (s *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	task.ID = s.nextID
	s.nextID++
	copied := *task
	s.tasks = append(s.tasks, &copied)
	return nil
}

func (s *fakeTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	result := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (s *fakeTaskStore) GetByID(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	for _, task := range s.tasks {
		if task.ID == taskID && task.UserID == userID {
			return task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

func (s *fakeTaskStore) Update(ctx context.Context, updated *domain.Task) error {
	for _, task := range s.tasks {
		if task.ID == updated.ID && task.UserID == updated.UserID {
			task.Title = updated.Title
			task.Description = updated.Description
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (s *fakeTaskStore) Delete(ctx context.Context, userID, taskID int64) error {
	for i, task := range s.tasks {
		if task.ID == taskID && task.UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (s *fakeTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

// newTaskRouter mounts the handler under the same routes the server uses.
func newTaskRouter(handler *TaskHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/tasks", handler.Create)
	r.Get("/tasks", handler.List)
	r.Get("/tasks/{id}", handler.Get)
	r.Put("/tasks/{id}", handler.Update)
	r.Delete("/tasks/{id}", handler.Delete)
	return r
}

// doAs performs a request with the given user already authenticated.
func doAs(t *testing.T, router chi.Router, userID int64, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a task for the authenticated user", func(t *testing.T) {
		t.Parallel()
		tasks := newFakeTaskStore()
		router := newTaskRouter(NewTaskHandler(tasks))

		rec := doAs(t, router, 1, http.MethodPost, "/tasks", TaskRequest{
			Title:       "Buy groceries",
			Description: strPtr("milk and eggs"),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Task created successfully", resp.Message)

		stored, err := tasks.ListByUser(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Buy groceries", stored[0].Title)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		t.Parallel()
		router := newTaskRouter(NewTaskHandler(newFakeTaskStore()))

		rec := doAs(t, router, 1, http.MethodPost, "/tasks", TaskRequest{
			Description: strPtr("no title"),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, shared.CodeValidationError, decodeError(t, rec).Code)
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		t.Parallel()
		router := newTaskRouter(NewTaskHandler(newFakeTaskStore()))

		rec := doAs(t, router, 0, http.MethodPost, "/tasks", TaskRequest{Title: "x"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTaskHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("returns only the caller's tasks in insertion order", func(t *testing.T) {
		t.Parallel()
		tasks := newFakeTaskStore()
		router := newTaskRouter(NewTaskHandler(tasks))

		seed := []struct {
			userID int64
			title  string
		}{
			{1, "first"},
			{2, "other user's task"},
			{1, "second"},
			{1, "third"},
		}
		for _, s := range seed {
			task, err := domain.NewTask(s.userID, s.title, nil)
			require.NoError(t, err)
			require.NoError(t, tasks.Create(context.Background(), task))
		}

		rec := doAs(t, router, 1, http.MethodGet, "/tasks", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Tasks, 3)
		assert.Equal(t, "first", resp.Tasks[0].Title)
		assert.Equal(t, "second", resp.Tasks[1].Title)
		assert.Equal(t, "third", resp.Tasks[2].Title)
	})

	t.Run("empty list serializes as an empty array", func(t *testing.T) {
		t.Parallel()
		router := newTaskRouter(NewTaskHandler(newFakeTaskStore()))

		rec := doAs(t, router, 1, http.MethodGet, "/tasks", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"tasks":[]}`, rec.Body.String())
	})
}

func TestTaskHandler_Get(t *testing.T) {
	t.Parallel()

	newSeededRouter := func(t *testing.T) (chi.Router, *domain.Task) {
		t.Helper()
		tasks := newFakeTaskStore()
		task, err := domain.NewTask(1, "owned task", strPtr("details"))
		require.NoError(t, err)
		require.NoError(t, tasks.Create(context.Background(), task))
		return newTaskRouter(NewTaskHandler(tasks)), task
	}

	t.Run("owner fetches the task", func(t *testing.T) {
		t.Parallel()
		router, task := newSeededRouter(t)

		rec := doAs(t, router, 1, http.MethodGet, "/tasks/1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TaskDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, task.Title, resp.Task.Title)
		require.NotNil(t, resp.Task.Description)
		assert.Equal(t, "details", *resp.Task.Description)
	})

	t.Run("another user's task looks absent", func(t *testing.T) {
		t.Parallel()
		router, _ := newSeededRouter(t)

		foreign := doAs(t, router, 2, http.MethodGet, "/tasks/1", nil)
		absent := doAs(t, router, 1, http.MethodGet, "/tasks/999", nil)

		assert.Equal(t, http.StatusNotFound, foreign.Code)
		assert.Equal(t, http.StatusNotFound, absent.Code)
		// Byte-identical bodies: ownership is not observable.
		assert.Equal(t, absent.Body.String(), foreign.Body.String())
		assert.Equal(t, shared.CodeTaskNotFound, decodeError(t, foreign).Code)
	})

	t.Run("non-numeric ID rejected as bad request", func(t *testing.T) {
		t.Parallel()
		router, _ := newSeededRouter(t)

		rec := doAs(t, router, 1, http.MethodGet, "/tasks/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, shared.CodeValidationError, decodeError(t, rec).Code)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	newSeededStore := func(t *testing.T) *fakeTaskStore {
		t.Helper()
		tasks := newFakeTaskStore()
		task, err := domain.NewTask(1, "original title", strPtr("original description"))
		require.NoError(t, err)
		require.NoError(t, tasks.Create(context.Background(), task))
		return tasks
	}

	t.Run("replaces title and description in full", func(t *testing.T) {
		t.Parallel()
		tasks := newSeededStore(t)
		router := newTaskRouter(NewTaskHandler(tasks))

		rec := doAs(t, router, 1, http.MethodPut, "/tasks/1", TaskRequest{
			Title: "new title",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		updated, err := tasks.GetByID(context.Background(), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		// Omitted description clears the old value.
		assert.Nil(t, updated.Description)
	})

	t.Run("foreign task cannot be updated", func(t *testing.T) {
		t.Parallel()
		tasks := newSeededStore(t)
		router := newTaskRouter(NewTaskHandler(tasks))

		rec := doAs(t, router, 2, http.MethodPut, "/tasks/1", TaskRequest{
			Title: "hijacked",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, shared.CodeTaskNotFound, decodeError(t, rec).Code)

		unchanged, err := tasks.GetByID(context.Background(), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, "original title", unchanged.Title)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		t.Parallel()
		router := newTaskRouter(NewTaskHandler(newSeededStore(t)))

		rec := doAs(t, router, 1, http.MethodPut, "/tasks/1", TaskRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	t.Parallel()

	newSeededStore := func(t *testing.T) *fakeTaskStore {
		t.Helper()
		tasks := newFakeTaskStore()
		task, err := domain.NewTask(1, "doomed task", nil)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(context.Background(), task))
		return tasks
	}

	t.Run("owner deletes the task", func(t *testing.T) {
		t.Parallel()
		tasks := newSeededStore(t)
		router := newTaskRouter(NewTaskHandler(tasks))

		rec := doAs(t, router, 1, http.MethodDelete, "/tasks/1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		_, err := tasks.GetByID(context.Background(), 1, 1)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("foreign task cannot be deleted", func(t *testing.T) {
		t.Parallel()
		tasks := newSeededStore(t)
		router := newTaskRouter(NewTaskHandler(tasks))

		rec := doAs(t, router, 2, http.MethodDelete, "/tasks/1", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		// Still there for its owner.
		_, err := tasks.GetByID(context.Background(), 1, 1)
		assert.NoError(t, err)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		t.Parallel()
		router := newTaskRouter(NewTaskHandler(newSeededStore(t)))

		require.Equal(t, http.StatusOK, doAs(t, router, 1, http.MethodDelete, "/tasks/1", nil).Code)
		assert.Equal(t, http.StatusNotFound, doAs(t, router, 1, http.MethodDelete, "/tasks/1", nil).Code)
	})
}
