package auth

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// defaultRevocationCapacity bounds the revocation list. Entries self-expire
// with their token, so the cap only matters under pathological logout churn,
// where evicting the oldest entries is the acceptable failure mode.
const defaultRevocationCapacity = 65536

// RevocationList tracks revoked token IDs until their natural expiry.
// It is backed by a bounded, thread-safe LRU cache so memory use stays
// fixed regardless of logout volume.
type RevocationList struct {
	cache    *lru.Cache
	timeFunc func() time.Time
}

// NewRevocationList creates an empty revocation list.
func NewRevocationList() (*RevocationList, error) {
	cache, err := lru.New(defaultRevocationCapacity)
	if err != nil {
		return nil, err
	}
	return &RevocationList{
		cache:    cache,
		timeFunc: time.Now,
	}, nil
}

// Revoke records the token ID as revoked until expiresAt.
func (l *RevocationList) Revoke(tokenID string, expiresAt time.Time) {
	l.cache.Add(tokenID, expiresAt)
}

// IsRevoked reports whether the token ID is currently revoked.
// Entries whose token has expired anyway are dropped on lookup; the
// expiration check in the token service already rejects those tokens.
func (l *RevocationList) IsRevoked(tokenID string) bool {
	v, ok := l.cache.Get(tokenID)
	if !ok {
		return false
	}

	expiresAt, ok := v.(time.Time)
	if !ok {
		l.cache.Remove(tokenID)
		return false
	}

	if !l.timeFunc().Before(expiresAt) {
		l.cache.Remove(tokenID)
		return false
	}

	return true
}

// Len returns the number of tracked revocations, including any whose
// tokens have since expired but have not been looked up.
func (l *RevocationList) Len() int {
	return l.cache.Len()
}
