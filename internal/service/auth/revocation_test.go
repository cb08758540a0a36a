package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationList(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unknown token is not revoked", func(t *testing.T) {
		t.Parallel()
		list, err := NewRevocationList()
		require.NoError(t, err)

		assert.False(t, list.IsRevoked("missing"))
	})

	t.Run("revoked token stays revoked until expiry", func(t *testing.T) {
		t.Parallel()
		list, err := NewRevocationList()
		require.NoError(t, err)
		list.timeFunc = func() time.Time { return now }

		list.Revoke("token-a", now.Add(time.Hour))
		assert.True(t, list.IsRevoked("token-a"))
		assert.Equal(t, 1, list.Len())
	})

	t.Run("entry is dropped once the token has expired", func(t *testing.T) {
		t.Parallel()
		list, err := NewRevocationList()
		require.NoError(t, err)

		current := now
		list.timeFunc = func() time.Time { return current }

		list.Revoke("token-b", now.Add(time.Minute))
		assert.True(t, list.IsRevoked("token-b"))

		current = now.Add(2 * time.Minute)
		assert.False(t, list.IsRevoked("token-b"))
		assert.Equal(t, 0, list.Len())
	})

	t.Run("expiry boundary counts as expired", func(t *testing.T) {
		t.Parallel()
		list, err := NewRevocationList()
		require.NoError(t, err)

		expiry := now.Add(time.Minute)
		list.timeFunc = func() time.Time { return expiry }

		list.Revoke("token-c", expiry)
		assert.False(t, list.IsRevoked("token-c"))
	})
}
