package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/api/middleware"
	"github.com/aqview/aqview/internal/api/models"
	"github.com/aqview/aqview/internal/api/response"
	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
)

// Result sizes for the dashboard view.
const (
	recentReadings      = 10
	upcomingPredictions = 5
)

// MetricsHandler handles the per-region dashboard endpoint.
type MetricsHandler struct {
	measurements measurement.Repository
	forecasts    forecast.Repository
	clock        clockwork.Clock
	logger       zerolog.Logger
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(
	measurements measurement.Repository,
	forecasts forecast.Repository,
	clock clockwork.Clock,
	logger zerolog.Logger,
) *MetricsHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MetricsHandler{
		measurements: measurements,
		forecasts:    forecasts,
		clock:        clock,
		logger:       logger,
	}
}

// GetRegionMetrics handles GET /api/metrics/{regionID} - recent pollution
// and climate readings plus upcoming predictions for a region. An unknown
// region yields empty arrays, not an error.
func (h *MetricsHandler) GetRegionMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regionID := chi.URLParam(r, "regionID")

	pollution, err := h.measurements.RecentPollution(ctx, regionID, recentReadings)
	if err != nil {
		h.fail(w, r, regionID, "pollution", err)
		return
	}

	climate, err := h.measurements.RecentClimate(ctx, regionID, recentReadings)
	if err != nil {
		h.fail(w, r, regionID, "climate", err)
		return
	}

	predictions, err := h.forecasts.Upcoming(ctx, regionID, h.clock.Now().UTC(), upcomingPredictions)
	if err != nil {
		h.fail(w, r, regionID, "predictions", err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.RegionMetrics{
		Pollution:   pollution,
		Climate:     climate,
		Predictions: predictions,
	})
}

func (h *MetricsHandler) fail(w http.ResponseWriter, r *http.Request, regionID, kind string, err error) {
	h.logger.Error().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("region", regionID).
		Str("kind", kind).
		Err(err).
		Msg("failed to load region metrics")
	response.InternalError(w, r, "failed to load metrics")
}
