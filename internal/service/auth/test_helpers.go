package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function
// and its own revocation list. Intended for tests that need deterministic
// issuance and verification instants.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	revocations, err := NewRevocationList()
	if err != nil {
		// ALLOW-PANIC: test-only constructor, capacity is a positive constant
		panic(err)
	}
	// The revocation list shares the injected clock so revocations observe
	// the same deterministic time as issuance and verification.
	revocations.timeFunc = timeFunc
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		revocations:   revocations,
	}
}
