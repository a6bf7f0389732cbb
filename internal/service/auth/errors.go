package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the email is unknown or the password
	// does not match. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("session token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")

	// ErrSessionRevoked indicates the token is well-formed but its
	// server-side session no longer exists (e.g., after logout).
	ErrSessionRevoked = errors.New("session has been revoked")
)
