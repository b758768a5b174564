package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// newValidator builds a validator whose reported field names come from the
// json tags, so validation responses match the wire field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage renders a single validator failure as a client-facing
// message.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "not a valid email address"
	default:
		return "is invalid"
	}
}

// respondRequestValidationError translates validator failures into the 422
// body. Returns true if err was a validation error and a response was
// written.
func respondRequestValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	details := make([]shared.FieldDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, shared.FieldDetail{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	shared.RespondWithValidationError(w, r, details)
	return true
}

// respondDomainValidationError translates a domain.FieldError into the 422
// body. Returns true if err was one and a response was written.
func respondDomainValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		return false
	}
	shared.RespondWithValidationError(w, r, []shared.FieldDetail{
		{Field: fieldErr.Field, Message: fieldErr.Message},
	})
	return true
}

// currentUser extracts the authenticated account placed in the context by
// the auth middleware.
func currentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, domain.ErrInvalidID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

// queryOffset reads the offset query parameter, defaulting to 0. Negative
// and malformed values also fall back to 0.
func queryOffset(r *http.Request) int {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
