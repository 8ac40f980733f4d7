// Package health provides health check endpoints for the dashboard server.
package health

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// TenantSource reports how many tenants are loaded.
type TenantSource interface {
	Len() int
}

// HealthCheck manages health check functionality.
type HealthCheck struct {
	tenants TenantSource
	logger  *zap.Logger
	mu      sync.RWMutex
	ready   bool
}

// NewHealthCheck creates a new HealthCheck instance. It starts ready.
func NewHealthCheck(tenants TenantSource, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		tenants: tenants,
		logger:  logger,
		ready:   true,
	}
}

// LivenessResponse represents the response for the liveness check.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse represents the response for the readiness check.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// LivenessHandler handles GET /health requests.
// Returns 200 OK if the process is running.
func (hc *HealthCheck) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessResponse{Status: "healthy"})
}

// ReadinessHandler handles GET /ready requests.
// Returns 200 OK while the server accepts traffic and at least one tenant is loaded.
func (hc *HealthCheck) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	count := hc.tenants.Len()
	checks := map[string]string{
		"fixture": strconv.Itoa(count) + " tenants",
	}

	if count == 0 {
		writeJSON(w, http.StatusServiceUnavailable, ReadinessResponse{
			Status: "not_ready",
			Checks: checks,
			Error:  "no tenants loaded",
		})
		return
	}

	if !hc.IsReady() {
		writeJSON(w, http.StatusServiceUnavailable, ReadinessResponse{
			Status: "not_ready",
			Checks: checks,
			Error:  "shutting down",
		})
		return
	}

	writeJSON(w, http.StatusOK, ReadinessResponse{
		Status: "ready",
		Checks: checks,
	})
}

// IsReady returns the current readiness status.
func (hc *HealthCheck) IsReady() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.ready
}

// SetReady sets the readiness status. Shutdown clears it.
func (hc *HealthCheck) SetReady(ready bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	if hc.ready != ready {
		hc.logger.Info("readiness changed", zap.Bool("ready", ready))
	}
	hc.ready = ready
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
