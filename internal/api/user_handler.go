package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/platform/logger"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// UserHandler handles account ("conta") API requests.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	validator      *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, passwordHasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		validator:      newValidator(),
	}
}

// Create handles POST /contas. Registration is public.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateAccountRequest
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

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		if respondDomainValidationError(w, r, err) {
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	hash, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	// Username and email uniqueness is the database's call; a duplicate on
	// either surfaces here as one conflict.
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgAccountConflict)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	log.Info("account created", "user_id", user.ID)
	shared.RespondWithJSON(w, http.StatusCreated, toAccountResponse(user))
}

// Update handles PUT /contas/{id}. Accounts may only update themselves;
// any other path ID gets a 401 with no further detail. Omitted fields stay
// untouched, so updating only the email leaves the username and password
// hash as they were.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil || id != user.ID {
		shared.RespondUnauthorized(w, r)
		return
	}

	var req UpdateAccountRequest
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

	if req.Username != nil {
		if err := user.SetUsername(*req.Username); err != nil {
			if respondDomainValidationError(w, r, err) {
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
	}
	if req.Email != nil {
		// The omitempty validation skips explicit empty strings; an empty
		// email supplied on purpose is still a rejection.
		if *req.Email == "" {
			shared.RespondWithValidationError(w, r, []shared.FieldDetail{
				{Field: "email", Message: "must have at least 1 character"},
			})
			return
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if *req.Password == "" {
			shared.RespondWithValidationError(w, r, []shared.FieldDetail{
				{Field: "senha", Message: "must have at least 1 character"},
			})
			return
		}
		hash, err := h.passwordHasher.Hash(*req.Password)
		if err != nil {
			logger.FromContext(r.Context()).Error("failed to hash password", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}
		user.HashedPassword = hash
	}

	if err := h.userStore.Update(r.Context(), user); err != nil {
		switch {
		case store.IsDuplicateError(err):
			shared.RespondWithError(w, r, http.StatusConflict, domain.MsgAccountConflict)
		case store.IsNotFoundError(err):
			// The account vanished between authentication and this write.
			shared.RespondUnauthorized(w, r)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		}
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, toAccountResponse(user))
}

// Delete handles DELETE /contas/{id}. Self-only, like Update.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil || id != user.ID {
		shared.RespondUnauthorized(w, r)
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondUnauthorized(w, r)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
		return
	}

	logger.FromContext(r.Context()).Info("account deleted", "user_id", id)
	shared.RespondWithJSON(w, http.StatusOK, shared.MessageResponse{Message: domain.MsgAccountDeleted})
}
