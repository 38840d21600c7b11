package handler

import (
	"context"
	"net/http"

	"github.com/aqview/aqview/internal/api/models"
	"github.com/aqview/aqview/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	ping      func(ctx context.Context) error
}

// NewOpsHandler creates a new OpsHandler. ping checks store availability
// for the readiness endpoint.
func NewOpsHandler(version, buildTime string, ping func(ctx context.Context) error) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		ping:      ping,
	}
}

// HealthCheck handles GET /healthz - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: "ok",
		Details: map[string]string{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	})
}

// ReadinessCheck handles GET /readyz - readiness check including the store.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			response.JSON(w, r, http.StatusServiceUnavailable, models.Health{
				Status:  "unavailable",
				Details: map[string]string{"store": "unreachable"},
			})
			return
		}
	}

	response.JSON(w, r, http.StatusOK, models.Health{Status: "ok"})
}
