package auth

import (
	"context"

	"github.com/google/uuid"
)

// Claims are the validated contents of a session token.
type Claims struct {
	// Email identifies the authenticated user.
	Email string

	// SessionID ties the token to a server-side session; a token whose
	// session has been revoked is rejected even when its signature and
	// expiry are valid.
	SessionID uuid.UUID
}

// JWTService defines the interface for session token operations.
type JWTService interface {
	// GenerateToken creates a signed token for the given session.
	GenerateToken(ctx context.Context, session Session) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns
	// its claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	// Session liveness is checked by the caller against the SessionStore.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
