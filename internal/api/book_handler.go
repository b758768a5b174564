package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/platform/logger"
	"github.com/madr-io/madr-api/internal/store"
)

// BookHandler handles book ("livro") API requests.
type BookHandler struct {
	bookStore     store.BookStore
	novelistStore store.NovelistStore
	pageSize      int
	validator     *validator.Validate
}

// NewBookHandler creates a new BookHandler. The novelist store backs the
// per-novelist listing's existence check.
func NewBookHandler(bookStore store.BookStore, novelistStore store.NovelistStore, pageSize int) *BookHandler {
	return &BookHandler{
		bookStore:     bookStore,
		novelistStore: novelistStore,
		pageSize:      pageSize,
		validator:     newValidator(),
	}
}

// Create handles POST /livros.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := DecodeJSON(r, &req); err != nil {
		if respondDomainValidationError(w, r, err) {
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		if respondRequestValidationError(w, r, err) {
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := domain.NewBook(req.Title, int(req.Year), req.NovelistID)
	if err != nil {
		if respondDomainValidationError(w, r, err) {
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	// Title uniqueness and novelist existence are both settled by a single
	// insert; the database reports whichever fails.
	if err := h.bookStore.Create(r.Context(), book); err != nil {
		switch {
		case store.IsDuplicateError(err):
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgBookConflict)
		case errors.Is(err, store.ErrNovelistNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		}
		return
	}

	logger.FromContext(r.Context()).Info("book created", "book_id", book.ID)
	shared.RespondWithJSON(w, http.StatusCreated, toBookResponse(book))
}

// Get handles GET /livros/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toBookResponse(book))
}

// List handles GET /livros/query/ with optional titulo, ano and offset
// query parameters.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter store.BookFilter

	if title := r.URL.Query().Get("titulo"); title != "" {
		filter.Title = &title
	}
	if rawYear := r.URL.Query().Get("ano"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			shared.RespondWithValidationError(w, r, []shared.FieldDetail{
				{Field: "ano", Message: "Input should be a valid integer"},
			})
			return
		}
		filter.Year = &year
	}

	books, total, err := h.bookStore.List(r.Context(), filter, h.pageSize, queryOffset(r))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toBookListResponse(books, total))
}

// ListByNovelist handles GET /livros/romancista/{id}. Asking for the books
// of a novelist that does not exist is a 404, not an empty page.
func (h *BookHandler) ListByNovelist(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		return
	}

	if _, err := h.novelistStore.GetByID(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	filter := store.BookFilter{NovelistID: &id}
	books, total, err := h.bookStore.List(r.Context(), filter, h.pageSize, queryOffset(r))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toBookListResponse(books, total))
}

// Patch handles PATCH /livros/{id}. Omitted fields stay untouched; a
// reassigned novelist is re-checked by the store on write.
func (h *BookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
		return
	}

	var req UpdateBookRequest
	if err := DecodeJSON(r, &req); err != nil {
		if respondDomainValidationError(w, r, err) {
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	if req.Title != nil {
		if err := book.SetTitle(*req.Title); err != nil {
			if respondDomainValidationError(w, r, err) {
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
	}
	if req.Year != nil {
		if err := book.SetYear(int(*req.Year)); err != nil {
			if respondDomainValidationError(w, r, err) {
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
	}
	if req.NovelistID != nil {
		if err := book.SetNovelist(*req.NovelistID); err != nil {
			if respondDomainValidationError(w, r, err) {
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
	}

	if err := h.bookStore.Update(r.Context(), book); err != nil {
		switch {
		case store.IsDuplicateError(err):
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgBookTitleConflict)
		case errors.Is(err, store.ErrNovelistNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		case store.IsNotFoundError(err):
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		}
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /livros/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
		return
	}

	if err := h.bookStore.Delete(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgBookNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	logger.FromContext(r.Context()).Info("book deleted", "book_id", id)
	shared.RespondWithJSON(w, http.StatusOK, shared.MessageResponse{Message: domain.MsgBookDeleted})
}
