package handler

import (
	"net/http"

	"oakline/internal/services"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	healthService *services.HealthService
}

// NewHealthHandler creates a HealthHandler with the given service.
func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	result, err := h.healthService.Check(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
