package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/platform/logger"
	"github.com/madr-io/madr-api/internal/store"
)

// NovelistHandler handles novelist ("romancista") API requests.
type NovelistHandler struct {
	novelistStore store.NovelistStore
	pageSize      int
	validator     *validator.Validate
}

// NewNovelistHandler creates a new NovelistHandler. pageSize caps every
// listing response.
func NewNovelistHandler(novelistStore store.NovelistStore, pageSize int) *NovelistHandler {
	return &NovelistHandler{
		novelistStore: novelistStore,
		pageSize:      pageSize,
		validator:     newValidator(),
	}
}

// Create handles POST /romancistas.
func (h *NovelistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNovelistRequest
	if err := DecodeJSON(r, &req); err != nil {
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

	novelist, err := domain.NewNovelist(req.Name)
	if err != nil {
		if respondDomainValidationError(w, r, err) {
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	if err := h.novelistStore.Create(r.Context(), novelist); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgNovelistConflict)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	logger.FromContext(r.Context()).Info("novelist created", "novelist_id", novelist.ID)
	shared.RespondWithJSON(w, http.StatusCreated, toNovelistResponse(novelist))
}

// Get handles GET /romancistas/{id}.
func (h *NovelistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		return
	}

	novelist, err := h.novelistStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toNovelistResponse(novelist))
}

// List handles GET /romancistas/query/ with optional nome and offset
// query parameters. An empty result set is a normal 200.
func (h *NovelistHandler) List(w http.ResponseWriter, r *http.Request) {
	nameFilter := r.URL.Query().Get("nome")
	offset := queryOffset(r)

	novelists, total, err := h.novelistStore.List(r.Context(), nameFilter, h.pageSize, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toNovelistListResponse(novelists, total))
}

// Patch handles PATCH /romancistas/{id}. Omitted fields stay untouched.
func (h *NovelistHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		return
	}

	var req UpdateNovelistRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	novelist, err := h.novelistStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	if req.Name != nil {
		if err := novelist.Rename(*req.Name); err != nil {
			if respondDomainValidationError(w, r, err) {
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
	}

	if err := h.novelistStore.Update(r.Context(), novelist); err != nil {
		switch {
		case store.IsDuplicateError(err):
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgNovelistNameConflict)
		case store.IsNotFoundError(err):
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		}
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toNovelistResponse(novelist))
}

// Delete handles DELETE /romancistas/{id}. The novelist's books go with
// them, in the same transaction.
func (h *NovelistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
		return
	}

	if err := h.novelistStore.Delete(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgNovelistNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	logger.FromContext(r.Context()).Info("novelist deleted", "novelist_id", id)
	shared.RespondWithJSON(w, http.StatusOK, shared.MessageResponse{Message: domain.MsgNovelistDeleted})
}
