package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/api/middleware"
	"github.com/aqview/aqview/internal/api/response"
	"github.com/aqview/aqview/internal/forecast"
)

// ExplainHandler handles the prediction explanation endpoint.
type ExplainHandler struct {
	forecasts *forecast.Service
	logger    zerolog.Logger
}

// NewExplainHandler creates a new ExplainHandler.
func NewExplainHandler(forecasts *forecast.Service, logger zerolog.Logger) *ExplainHandler {
	return &ExplainHandler{forecasts: forecasts, logger: logger}
}

// GetExplanation handles GET /api/explain/{predictionID} - the feature
// attribution breakdown for a prediction. Predictions without recorded
// contributions yield a 404.
func (h *ExplainHandler) GetExplanation(w http.ResponseWriter, r *http.Request) {
	predictionID := chi.URLParam(r, "predictionID")

	explanation, err := h.forecasts.Explain(r.Context(), predictionID)
	if err != nil {
		if errors.Is(err, forecast.ErrNoExplanations) {
			response.NotFound(w, r, "no explanation available for this prediction")
			return
		}
		h.logger.Error().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("prediction", predictionID).
			Err(err).
			Msg("failed to load explanation")
		response.InternalError(w, r, "failed to load explanation")
		return
	}

	response.JSON(w, r, http.StatusOK, explanation)
}
