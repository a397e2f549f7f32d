package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/scry-relay/internal/api/shared"
)

// HealthHandler reports liveness. It never touches an upstream.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a HealthHandler reading the wall clock.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Service:   ServiceName,
	})
}

// NotFound responds to requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed responds to known routes requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
