package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bricamarket/brica-api/internal/api/middleware"
	"github.com/bricamarket/brica-api/internal/api/shared"
	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/service/auth"
	"github.com/bricamarket/brica-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	sessions         *auth.SessionStore
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	sessions *auth.SessionStore,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		sessions:         sessions,
		validator:        validator.New(),
	}
}

// Register handles the /api/v1/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Password, req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		slog.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		OK:      true,
		Message: "Account created",
	})
}

// Login handles the /api/v1/auth/login endpoint.
// On success it starts a server-side session for the email and returns a
// token bound to it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Unknown email and wrong password are indistinguishable.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by email", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session := h.sessions.Start(user.Email, user.Name)
	token, err := h.jwtService.GenerateToken(r.Context(), session)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "email", user.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to start session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		OK:      true,
		Message: "Logged in",
		User:    UserPayload{Email: user.Email, Name: user.Name},
		Token:   token,
	})
}

// Logout handles the /api/v1/auth/logout endpoint.
// It ends the session referenced by the bearer token if one is present and
// valid. Logout is idempotent: it succeeds even without a live session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.BearerToken(r); ok {
		if claims, err := h.jwtService.ValidateToken(r.Context(), token); err == nil {
			h.sessions.End(claims.Email)
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		OK:      true,
		Message: "Logged out",
	})
}

// Me handles the /api/v1/auth/me endpoint.
// It requires the auth middleware and returns the session's user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		OK:   true,
		User: UserPayload{Email: session.Email, Name: session.Name},
	})
}
