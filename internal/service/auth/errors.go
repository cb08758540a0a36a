package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrRevokedToken indicates the token was revoked by a logout.
	ErrRevokedToken = errors.New("authentication token has been revoked")

	// ErrMissingToken indicates a token was expected but not provided.
	// The auth middleware returns this before the token service is ever
	// consulted, so a missing token is never misreported as malformed.
	ErrMissingToken = errors.New("authentication token is missing")
)
