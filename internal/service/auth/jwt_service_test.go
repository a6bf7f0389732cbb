package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricamarket/brica-api/internal/config"
)

const testJWTSecret = "test-secret-key-thats-long-enough-for-hmac"

func newTestJWTService(t *testing.T) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testJWTSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	sessions := NewSessionStore()
	session := sessions.Start("alice@example.com", "Alice")

	token, err := svc.GenerateToken(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, session.ID, claims.SessionID)
}

func TestValidateToken_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(t)

		_, err := svc.ValidateToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(t)
		other, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "another-secret-key-also-long-enough-ok",
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)

		session := NewSessionStore().Start("alice@example.com", "Alice")
		token, err := other.GenerateToken(ctx, session)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(t)

		issuedAt := time.Now().Add(-24 * time.Hour)
		svc.timeFunc = func() time.Time { return issuedAt }

		session := NewSessionStore().Start("alice@example.com", "Alice")
		token, err := svc.GenerateToken(ctx, session)
		require.NoError(t, err)

		// Move the clock past expiry plus the allowed skew.
		svc.timeFunc = time.Now

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token within clock skew still validates", func(t *testing.T) {
		t.Parallel()
		svc := newTestJWTService(t)

		issuedAt := time.Now()
		svc.timeFunc = func() time.Time { return issuedAt }

		session := NewSessionStore().Start("alice@example.com", "Alice")
		token, err := svc.GenerateToken(ctx, session)
		require.NoError(t, err)

		// One minute past expiry is inside the two-minute skew window.
		svc.timeFunc = func() time.Time { return issuedAt.Add(61 * time.Minute) }

		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Email)
	})
}
