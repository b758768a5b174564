// Package main implements the entry point for the MADR API server, a
// bibliographic record service managing accounts, novelists and books.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/madr-io/madr-api/internal/config"
	"github.com/madr-io/madr-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires the application and starts the HTTP
// server. It returns instead of exiting so main stays the only caller of
// log.Fatalf.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.cleanup()

	ctx := context.Background()
	return app.startHTTPServer(ctx, app.setupRouter())
}
