// Package main implements the entry point for the brica-api server, a
// small web marketplace backend: image listings in blob storage, user
// accounts with server-side sessions, and checkout notification fan-out.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/bricamarket/brica-api/internal/config"
	"github.com/bricamarket/brica-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires the application together, and serves HTTP
// until a shutdown signal arrives.
func run() error {
	ctx := context.Background()

	// Missing storage or database credentials surface here and are fatal.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"email_enabled", cfg.Email.APIKey != "")

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	return nil
}
