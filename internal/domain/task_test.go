package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid task with description", func(t *testing.T) {
		t.Parallel()
		description := "milk and eggs"
		task, err := NewTask(1, "Buy groceries", &description)
		require.NoError(t, err)

		assert.Equal(t, "Buy groceries", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, description, *task.Description)
		assert.Equal(t, int64(1), task.UserID)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("nil description is allowed", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(1, "Buy groceries", nil)
		require.NoError(t, err)
		assert.Nil(t, task.Description)
	})

	tests := []struct {
		name    string
		userID  int64
		title   string
		wantErr error
	}{
		{
			name:    "empty title",
			userID:  1,
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			userID:  1,
			title:   strings.Repeat("t", 256),
			wantErr: ErrTitleTooLong,
		},
		{
			name:   "title at the 255 character limit",
			userID: 1,
			title:  strings.Repeat("t", 255),
		},
		{
			name:    "missing owner",
			userID:  0,
			title:   "orphan",
			wantErr: ErrMissingOwnerID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			task, err := NewTask(tc.userID, tc.title, nil)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, task)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, task)
		})
	}
}
