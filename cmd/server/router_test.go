package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madr-io/madr-api/internal/config"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

type stubUserStore struct {
	user *domain.User
}

func (s *stubUserStore) Create(_ context.Context, _ *domain.User) error { return nil }
func (s *stubUserStore) GetByID(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}
func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, store.ErrUserNotFound
}
func (s *stubUserStore) Update(_ context.Context, _ *domain.User) error { return nil }
func (s *stubUserStore) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

type stubNovelistStore struct {
	novelist *domain.Novelist
}

func (s *stubNovelistStore) Create(_ context.Context, _ *domain.Novelist) error { return nil }
func (s *stubNovelistStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Novelist, error) {
	if s.novelist != nil && s.novelist.ID == id {
		return s.novelist, nil
	}
	return nil, store.ErrNovelistNotFound
}
func (s *stubNovelistStore) List(_ context.Context, _ string, _, _ int) ([]domain.Novelist, int64, error) {
	if s.novelist == nil {
		return nil, 0, nil
	}
	return []domain.Novelist{*s.novelist}, 1, nil
}
func (s *stubNovelistStore) Update(_ context.Context, _ *domain.Novelist) error { return nil }
func (s *stubNovelistStore) Delete(_ context.Context, _ uuid.UUID) error        { return nil }

type stubBookStore struct{}

func (s *stubBookStore) Create(_ context.Context, _ *domain.Book) error { return nil }
func (s *stubBookStore) GetByID(_ context.Context, _ uuid.UUID) (*domain.Book, error) {
	return nil, store.ErrBookNotFound
}
func (s *stubBookStore) List(_ context.Context, _ store.BookFilter, _, _ int) ([]domain.Book, int64, error) {
	return nil, 0, nil
}
func (s *stubBookStore) Update(_ context.Context, _ *domain.Book) error { return nil }
func (s *stubBookStore) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server:     config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth:       config.AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef", TokenLifetimeMinutes: 30},
		Pagination: config.PaginationConfig{PageSize: 20},
	}
	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	account := &domain.User{
		ID:             uuid.New(),
		Username:       "clarice",
		Email:          "clarice@exemplo.com",
		HashedPassword: "irrelevant",
	}

	return &application{
		config:           cfg,
		logger:           slog.Default(),
		userStore:        &stubUserStore{user: account},
		novelistStore:    &stubNovelistStore{novelist: &domain.Novelist{ID: uuid.New(), Name: "clarice lispector"}},
		bookStore:        &stubBookStore{},
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}
}

func TestRouterPublicRoutes(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"root greeting", http.MethodGet, "/", http.StatusOK},
		{"novelist listing is public", http.MethodGet, "/romancistas/query/", http.StatusOK},
		{"book listing is public", http.MethodGet, "/livros/query/", http.StatusOK},
		{"unknown book read is public", http.MethodGet, "/livros/" + uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouterMutationsRequireToken(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/romancistas"},
		{http.MethodPatch, "/romancistas/" + uuid.NewString()},
		{http.MethodDelete, "/romancistas/" + uuid.NewString()},
		{http.MethodPost, "/livros"},
		{http.MethodPatch, "/livros/" + uuid.NewString()},
		{http.MethodDelete, "/livros/" + uuid.NewString()},
		{http.MethodPut, "/contas/" + uuid.NewString()},
		{http.MethodDelete, "/contas/" + uuid.NewString()},
		{http.MethodPost, "/auth/refresh_token"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.Contains(t, rec.Body.String(), domain.MsgNotAuthorized)
		})
	}
}

func TestRouterAcceptsIssuedToken(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	token, err := app.jwtService.GenerateToken(context.Background(), "clarice@exemplo.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}
