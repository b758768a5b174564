package api

import (
	"net/http"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/domain"
)

// Root handles GET /. It exists mainly as a liveness check.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, http.StatusOK, shared.MessageResponse{Message: domain.MsgWelcome})
}
