package api

import (
	"errors"
	"net/http"

	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// msgInternalError is the detail for unexpected failures. Nothing about
// the underlying error reaches the client.
const msgInternalError = "Internal Server Error"

// MapErrorToStatusCode maps internal errors to HTTP status codes. Handlers
// that need operation-specific messages branch on the error themselves;
// this is the shared fallback mapping.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMissingSubject),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
