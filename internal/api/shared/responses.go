package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/redact"
)

// ErrorResponse is the body returned for every non-2xx outcome with a
// single cause. The Portuguese detail text is part of the public contract.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	TraceID string `json:"trace_id,omitempty"`
}

// ValidationErrorResponse is the body returned for 422 responses. Detail
// carries one entry per invalid field.
type ValidationErrorResponse struct {
	Detail  []FieldDetail `json:"detail"`
	TraceID string        `json:"trace_id,omitempty"`
}

// FieldDetail names a single invalid field and why it was rejected.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// MessageResponse is the body for operations whose only payload is a
// confirmation message, such as deletes and the root greeting.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already written; all we can do is log.
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an error response with the given status code and
// detail message, correlated with the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, detail string) {
	RespondWithJSON(w, statusCode, ErrorResponse{
		Detail:  detail,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes an error response and logs the underlying
// error with credentials redacted. The client only ever sees the detail
// message; the raw error stays in the logs. 5xx errors log at ERROR, 4xx
// at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, statusCode int, detail string, err error) {
	logAttrs := []any{
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method,
		"status_code", statusCode,
	}
	if err != nil {
		logAttrs = append(logAttrs, "error", redact.Error(err))
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("request failed", logAttrs...)
	} else {
		slog.Debug("request rejected", logAttrs...)
	}

	RespondWithError(w, r, statusCode, detail)
}

// RespondWithValidationError writes a 422 response listing every invalid field.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, fields []FieldDetail) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Detail:  fields,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondUnauthorized writes the standard 401 response. The
// WWW-Authenticate challenge tells clients a bearer token is expected.
func RespondUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	RespondWithError(w, r, http.StatusUnauthorized, domain.MsgNotAuthorized)
}
