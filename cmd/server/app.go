package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bricamarket/brica-api/internal/config"
	"github.com/bricamarket/brica-api/internal/platform/email"
	"github.com/bricamarket/brica-api/internal/platform/mongo"
	"github.com/bricamarket/brica-api/internal/platform/postgres"
	"github.com/bricamarket/brica-api/internal/service"
	"github.com/bricamarket/brica-api/internal/service/auth"
	"github.com/bricamarket/brica-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Client handles are
// constructed once here and injected into handlers; no package-level
// mutable state exists.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger      *slog.Logger
	db          *sql.DB
	mongoClient *mongodriver.Client

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	listingStore store.ListingStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	sessions         *auth.SessionStore
	notifier         service.Notifier
	listingService   service.ListingService
	checkoutService  service.CheckoutService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// the user database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize session token service and registry
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.sessions = auth.NewSessionStore()
	app.passwordVerifier = auth.NewBcryptVerifier()
	logger.Info("Session auth initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)

	app.mongoClient, err = mongo.Connect(ctx, cfg.Storage.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object store: %w", err)
	}
	logger.Info("Object store connection established")

	app.listingStore, err = mongo.NewGridFSListingStore(
		app.mongoClient.Database(cfg.Storage.Database),
		cfg.Storage.Bucket,
		cfg.Storage.PublicURL,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize listing store: %w", err)
	}

	// Initialize the notifier: SendGrid when configured, log-only otherwise
	if cfg.Email.APIKey != "" {
		app.notifier = email.NewSendGridMailer(cfg.Email.APIKey, cfg.Email.Sender, logger)
	} else {
		logger.Warn("No email API key configured, checkout notifications will only be logged")
		app.notifier = email.NewLogNotifier(logger)
	}

	// Initialize services
	app.listingService, err = service.NewListingService(app.listingStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %w", err)
	}

	app.checkoutService, err = service.NewCheckoutService(app.notifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(context.Background()); err != nil {
			app.logger.Error("Error disconnecting from object store", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
