package store

import (
	"context"
	"database/sql"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every lookup and mutation is scoped by the owning user ID in the row
// predicate itself, so a task that exists but belongs to another user is
// indistinguishable from one that does not exist.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser retrieves all tasks owned by the given user, in stable
	// insertion order (ascending ID).
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// GetByID retrieves a task by ID, scoped to the owning user.
	// Returns ErrTaskNotFound if no such row exists for that owner.
	GetByID(ctx context.Context, userID, taskID int64) (*domain.Task, error)

	// Update replaces the title and description of an existing task, scoped
	// to the owning user. Ownership and ID are never changed.
	// Returns ErrTaskNotFound if no such row exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID, scoped to the owning user.
	// Returns ErrTaskNotFound if no such row exists for that owner.
	Delete(ctx context.Context, userID, taskID int64) error

	// WithTx returns a TaskStore that runs its operations on the given
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
