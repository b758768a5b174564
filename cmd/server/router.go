package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/madr-io/madr-api/internal/api"
	apimiddleware "github.com/madr-io/madr-api/internal/api/middleware"
)

// setupRouter builds the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher)
	novelistHandler := api.NewNovelistHandler(app.novelistStore, app.config.Pagination.PageSize)
	bookHandler := api.NewBookHandler(app.bookStore, app.novelistStore, app.config.Pagination.PageSize)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Get("/", api.Root)

	// Public routes: registration, login and all reads.
	r.Post("/contas", userHandler.Create)
	r.Post("/auth/token", authHandler.Login)

	r.Get("/romancistas/query/", novelistHandler.List)
	r.Get("/romancistas/{id}", novelistHandler.Get)

	r.Get("/livros/query/", bookHandler.List)
	r.Get("/livros/romancista/{id}", bookHandler.ListByNovelist)
	r.Get("/livros/{id}", bookHandler.Get)

	// Everything that mutates requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/auth/refresh_token", authHandler.Refresh)

		r.Put("/contas/{id}", userHandler.Update)
		r.Delete("/contas/{id}", userHandler.Delete)

		r.Post("/romancistas", novelistHandler.Create)
		r.Patch("/romancistas/{id}", novelistHandler.Patch)
		r.Delete("/romancistas/{id}", novelistHandler.Delete)

		r.Post("/livros", bookHandler.Create)
		r.Patch("/livros/{id}", bookHandler.Patch)
		r.Delete("/livros/{id}", bookHandler.Delete)
	})

	return r
}
