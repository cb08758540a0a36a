// Package auth provides token issuance, verification and password services.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken, ErrInvalidToken or ErrRevokedToken
	// as distinct kinds so callers can produce the correct user-facing
	// message for each.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// RevokeToken marks the token identified by the given claims as revoked
	// until its natural expiry. Subsequent ValidateToken calls for the same
	// token return ErrRevokedToken.
	RevokeToken(ctx context.Context, claims *Claims) error
}

// Claims represents the verified claim set of an accepted token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
