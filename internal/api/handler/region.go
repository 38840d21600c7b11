// Package handler provides HTTP handlers for the aqview API.
package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/api/middleware"
	"github.com/aqview/aqview/internal/api/response"
	"github.com/aqview/aqview/internal/region"
)

// RegionHandler handles region endpoints.
type RegionHandler struct {
	regions region.Repository
	logger  zerolog.Logger
}

// NewRegionHandler creates a new RegionHandler.
func NewRegionHandler(regions region.Repository, logger zerolog.Logger) *RegionHandler {
	return &RegionHandler{regions: regions, logger: logger}
}

// ListRegions handles GET /api/regions - list all monitored regions.
func (h *RegionHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.regions.List(r.Context())
	if err != nil {
		h.logger.Error().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Err(err).
			Msg("failed to list regions")
		response.InternalError(w, r, "failed to load regions")
		return
	}

	response.JSON(w, r, http.StatusOK, regions)
}
