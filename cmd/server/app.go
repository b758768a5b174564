package main

import (
	"database/sql"
	"log/slog"

	"github.com/madr-io/madr-api/internal/config"
	"github.com/madr-io/madr-api/internal/platform/postgres"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// application holds all shared dependencies of the server. Handlers and
// middleware are built from it in setupRouter.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	novelistStore store.NovelistStore
	bookStore     store.BookStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the stores and services on top of an open database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, logger),
		novelistStore:    postgres.NewPostgresNovelistStore(db, logger),
		bookStore:        postgres.NewPostgresBookStore(db, logger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
