package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bricamarket/brica-api/internal/api"
	apiMiddleware "github.com/bricamarket/brica-api/internal/api/middleware"
	"github.com/bricamarket/brica-api/internal/api/shared"
)

// indexFile is the static UI shell served at the root path.
const indexFile = "web/index.html"

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create
// handlers and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.sessions,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.sessions)

	listingHandler := api.NewListingHandler(app.listingService)
	checkoutHandler := api.NewCheckoutHandler(app.checkoutService)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{Status: "ok"})
		})

		// Listing endpoints
		r.Post("/upload", listingHandler.Upload)
		r.Get("/load-gallery", listingHandler.Gallery)
		r.Get("/images/{name}", listingHandler.Image)
		r.Delete("/delete/{id}", listingHandler.Delete)

		// Checkout endpoint
		r.Post("/checkout", checkoutHandler.Checkout)

		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/auth/me", authHandler.Me)
		})
	})

	// Static UI shell
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, indexFile)
	})

	return r
}
