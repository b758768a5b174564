package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madr-io/madr-api/internal/api"
	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/store"
)

const testPageSize = 20

func novelistRouter(handler *api.NovelistHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/romancistas", handler.Create)
	r.Get("/romancistas/query/", handler.List)
	r.Get("/romancistas/{id}", handler.Get)
	r.Patch("/romancistas/{id}", handler.Patch)
	r.Delete("/romancistas/{id}", handler.Delete)
	return r
}

func TestCreateNovelist(t *testing.T) {
	t.Parallel()

	t.Run("name is sanitized before storage", func(t *testing.T) {
		t.Parallel()

		var created *domain.Novelist
		novelistStore := &mockNovelistStore{
			createFn: func(_ context.Context, n *domain.Novelist) error {
				created = n
				return nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPost, "/romancistas", map[string]string{
			"nome": "  Machado   DE  Assis ",
		})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, "machado de assis", created.Name)

		var body api.NovelistResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, created.ID, body.ID)
		assert.Equal(t, "machado de assis", body.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		novelistStore := &mockNovelistStore{
			createFn: func(_ context.Context, _ *domain.Novelist) error { return store.ErrDuplicate },
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPost, "/romancistas", map[string]string{"nome": "clarice lispector"})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domain.MsgNovelistConflict, decodeError(t, rec).Detail)
	})

	t.Run("empty name after sanitization", func(t *testing.T) {
		t.Parallel()

		handler := api.NewNovelistHandler(&mockNovelistStore{}, testPageSize)

		req := jsonRequest(t, http.MethodPost, "/romancistas", map[string]string{"nome": "   "})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeValidationError(t, rec)
		require.Len(t, body.Detail, 1)
		assert.Equal(t, "nome", body.Detail[0].Field)
		assert.Equal(t, "must have at least 1 character", body.Detail[0].Message)
	})
}

func TestGetNovelist(t *testing.T) {
	t.Parallel()

	novelist := &domain.Novelist{ID: uuid.New(), Name: "clarice lispector"}
	novelistStore := &mockNovelistStore{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*domain.Novelist, error) {
			if id != novelist.ID {
				return nil, store.ErrNovelistNotFound
			}
			return novelist, nil
		},
	}
	handler := api.NewNovelistHandler(novelistStore, testPageSize)

	t.Run("existing novelist", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/romancistas/"+novelist.ID.String(), nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body api.NovelistResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "clarice lispector", body.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/romancistas/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.MsgNovelistNotFound, decodeError(t, rec).Detail)
	})

	t.Run("malformed id behaves like unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/romancistas/42", nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.MsgNovelistNotFound, decodeError(t, rec).Detail)
	})
}

func TestListNovelists(t *testing.T) {
	t.Parallel()

	novelists := []domain.Novelist{
		{ID: uuid.New(), Name: "clarice lispector"},
		{ID: uuid.New(), Name: "machado de assis"},
	}

	t.Run("filter and offset are forwarded to the store", func(t *testing.T) {
		t.Parallel()

		var gotFilter string
		var gotLimit, gotOffset int
		novelistStore := &mockNovelistStore{
			listFn: func(_ context.Context, nameFilter string, limit, offset int) ([]domain.Novelist, int64, error) {
				gotFilter, gotLimit, gotOffset = nameFilter, limit, offset
				return novelists, 42, nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := httptest.NewRequest(http.MethodGet, "/romancistas/query/?nome=a&offset=20", nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a", gotFilter)
		assert.Equal(t, testPageSize, gotLimit)
		assert.Equal(t, 20, gotOffset)

		var body api.NovelistListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body.Novelists, 2)
		assert.Equal(t, int64(42), body.Total)
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		t.Parallel()

		novelistStore := &mockNovelistStore{
			listFn: func(_ context.Context, _ string, _, _ int) ([]domain.Novelist, int64, error) {
				return nil, 0, nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := httptest.NewRequest(http.MethodGet, "/romancistas/query/?nome=zzz", nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"romancistas": [], "total": 0}`, rec.Body.String())
	})
}

func TestPatchNovelist(t *testing.T) {
	t.Parallel()

	t.Run("rename", func(t *testing.T) {
		t.Parallel()

		novelist := &domain.Novelist{ID: uuid.New(), Name: "clarice"}
		var updated *domain.Novelist
		novelistStore := &mockNovelistStore{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Novelist, error) {
				return novelist, nil
			},
			updateFn: func(_ context.Context, n *domain.Novelist) error {
				updated = n
				return nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPatch, "/romancistas/"+novelist.ID.String(),
			map[string]string{"nome": "Clarice  Lispector"})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, updated)
		assert.Equal(t, "clarice lispector", updated.Name)
	})

	t.Run("empty body leaves the novelist untouched", func(t *testing.T) {
		t.Parallel()

		novelist := &domain.Novelist{ID: uuid.New(), Name: "clarice"}
		novelistStore := &mockNovelistStore{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Novelist, error) {
				return novelist, nil
			},
			updateFn: func(_ context.Context, n *domain.Novelist) error {
				assert.Equal(t, "clarice", n.Name)
				return nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPatch, "/romancistas/"+novelist.ID.String(), map[string]string{})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("renaming to a taken name", func(t *testing.T) {
		t.Parallel()

		novelist := &domain.Novelist{ID: uuid.New(), Name: "clarice"}
		novelistStore := &mockNovelistStore{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Novelist, error) {
				return novelist, nil
			},
			updateFn: func(_ context.Context, _ *domain.Novelist) error { return store.ErrDuplicate },
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPatch, "/romancistas/"+novelist.ID.String(),
			map[string]string{"nome": "machado de assis"})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domain.MsgNovelistNameConflict, decodeError(t, rec).Detail)
	})

	t.Run("unknown novelist", func(t *testing.T) {
		t.Parallel()

		novelistStore := &mockNovelistStore{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Novelist, error) {
				return nil, store.ErrNovelistNotFound
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := jsonRequest(t, http.MethodPatch, "/romancistas/"+uuid.NewString(),
			map[string]string{"nome": "qualquer"})
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.MsgNovelistNotFound, decodeError(t, rec).Detail)
	})
}

func TestDeleteNovelist(t *testing.T) {
	t.Parallel()

	t.Run("existing novelist", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		novelistStore := &mockNovelistStore{
			deleteFn: func(_ context.Context, gotID uuid.UUID) error {
				assert.Equal(t, id, gotID)
				return nil
			},
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := httptest.NewRequest(http.MethodDelete, "/romancistas/"+id.String(), nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body shared.MessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, domain.MsgNovelistDeleted, body.Message)
	})

	t.Run("unknown novelist", func(t *testing.T) {
		t.Parallel()

		novelistStore := &mockNovelistStore{
			deleteFn: func(_ context.Context, _ uuid.UUID) error { return store.ErrNovelistNotFound },
		}
		handler := api.NewNovelistHandler(novelistStore, testPageSize)

		req := httptest.NewRequest(http.MethodDelete, "/romancistas/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		novelistRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.MsgNovelistNotFound, decodeError(t, rec).Detail)
	})
}
