package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bricamarket/brica-api/internal/api/middleware"
	"github.com/bricamarket/brica-api/internal/mocks"
	"github.com/bricamarket/brica-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	newProtected := func(jwtService auth.JWTService, sessions *auth.SessionStore) (http.Handler, *bool) {
		reached := false
		m := middleware.NewAuthMiddleware(jwtService, sessions)
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			session, ok := middleware.SessionFromContext(r)
			assert.True(t, ok)
			assert.NotEmpty(t, session.Email)
			w.WriteHeader(http.StatusOK)
		}))
		return handler, &reached
	}

	t.Run("valid token with live session", func(t *testing.T) {
		t.Parallel()

		sessions := auth.NewSessionStore()
		session := sessions.Start("alice@example.com", "Alice")
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{Email: "alice@example.com", SessionID: session.ID},
		}
		handler, reached := newProtected(jwtService, sessions)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, *reached)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		t.Parallel()

		handler, reached := newProtected(&mocks.MockJWTService{}, auth.NewSessionStore())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Authorization required")
		assert.False(t, *reached)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		t.Parallel()

		handler, reached := newProtected(&mocks.MockJWTService{}, auth.NewSessionStore())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "token-without-scheme")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, *reached)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		handler, reached := newProtected(jwtService, auth.NewSessionStore())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid session token")
		assert.False(t, *reached)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		handler, reached := newProtected(jwtService, auth.NewSessionStore())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer old-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Session expired")
		assert.False(t, *reached)
	})

	t.Run("valid token whose session was ended", func(t *testing.T) {
		t.Parallel()

		sessions := auth.NewSessionStore()
		session := sessions.Start("alice@example.com", "Alice")
		sessions.End("alice@example.com")

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{Email: "alice@example.com", SessionID: session.ID},
		}
		handler, reached := newProtected(jwtService, sessions)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, *reached)
	})

	t.Run("valid token for a superseded session", func(t *testing.T) {
		t.Parallel()

		sessions := auth.NewSessionStore()
		old := sessions.Start("alice@example.com", "Alice")
		sessions.Start("alice@example.com", "Alice")

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{Email: "alice@example.com", SessionID: old.ID},
		}
		handler, reached := newProtected(jwtService, sessions)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, *reached)
	})
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected string
		ok       bool
	}{
		{"well formed", "Bearer abc123", "abc123", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"no token", "Bearer", "", false},
		{"too many parts", "Bearer abc 123", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			token, ok := middleware.BearerToken(req)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, token)
		})
	}
}
