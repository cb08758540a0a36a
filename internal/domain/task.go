package domain

import (
	"fmt"
	"time"
)

// Common task validation errors. All wrap ErrValidation.
var (
	ErrEmptyTitle     = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong   = fmt.Errorf("%w: title must be at most 255 characters long", ErrValidation)
	ErrMissingOwnerID = fmt.Errorf("%w: task owner ID cannot be empty", ErrValidation)
)

// Task represents a single task record owned by exactly one user.
// Ownership is immutable for the lifetime of the task.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"` // Optional, nullable in storage
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task owned by the given user. The ID is assigned by the
// store on insert. A nil description is allowed.
func NewTask(userID int64, title string, description *string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 255 {
		return ErrTitleTooLong
	}
	if t.UserID == 0 {
		return ErrMissingOwnerID
	}
	return nil
}
