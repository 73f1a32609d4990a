package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger checks connectivity of a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	tokenStore Pinger
}

// NewHealthHandler creates a new HealthHandler. Pass nil when the token
// store has no connectivity to check (the file-backed store).
func NewHealthHandler(tokenStore Pinger) *HealthHandler {
	return &HealthHandler{tokenStore: tokenStore}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running, with no dependency checks.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint. It verifies the token store is
// reachable when it lives out of process.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if h.tokenStore != nil {
		if err := h.tokenStore.Ping(ctx); err != nil {
			checks["token_store"] = "unhealthy: " + err.Error()
			healthy = false
		} else {
			checks["token_store"] = "ok"
		}
	}

	status := http.StatusOK
	response := HealthResponse{Status: "ok", Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		response.Status = "unavailable"
	}

	writeJSON(w, status, response)
}
