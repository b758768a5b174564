package api

import (
	"net/http"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/platform/logger"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// AuthHandler handles token issuance and refresh.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Login handles POST /auth/token. The credentials arrive as an OAuth2
// password-grant form: the "username" field carries the account email.
// Unknown email and wrong password are indistinguishable to the client.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.MsgBadCredentials)
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.MsgBadCredentials)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if !store.IsNotFoundError(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternalError, err)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.MsgBadCredentials)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.MsgBadCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Refresh handles POST /auth/refresh_token. The route sits behind the auth
// middleware, so the caller's account is already resolved.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to refresh token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
