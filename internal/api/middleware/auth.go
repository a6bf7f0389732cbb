package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bricamarket/brica-api/internal/api/shared"
	"github.com/bricamarket/brica-api/internal/service/auth"
)

// AuthMiddleware authenticates requests against session tokens.
type AuthMiddleware struct {
	jwtService auth.JWTService
	sessions   *auth.SessionStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, sessions *auth.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// checks that its server-side session is still live, and adds the session
// to the request context. A token whose session was ended by logout is
// rejected even if the token itself has not expired.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			case auth.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session token")
			default:
				slog.Error("failed to validate session token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		session, ok := m.sessions.Get(claims.Email)
		if !ok || session.ID != claims.SessionID {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			return
		}

		ctx := context.WithValue(r.Context(), shared.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns false when the header is absent or not in "Bearer <token>" form.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// SessionFromContext extracts the authenticated session from the request
// context. Returns false if the request did not pass Authenticate.
func SessionFromContext(r *http.Request) (auth.Session, bool) {
	session, ok := r.Context().Value(shared.SessionContextKey).(auth.Session)
	return session, ok
}
