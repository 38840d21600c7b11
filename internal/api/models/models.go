// Package models provides response envelopes for the aqview API.
package models

import (
	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
)

// ErrorResponse is the error envelope for all failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegionMetrics bundles the dashboard data for a single region: the most
// recent readings plus the upcoming forecasts. Unknown regions yield empty
// arrays, never an error.
type RegionMetrics struct {
	Pollution   []measurement.PollutionMetric `json:"pollution"`
	Climate     []measurement.ClimateMetric   `json:"climate"`
	Predictions []forecast.Prediction         `json:"predictions"`
}

// Health is the response body for liveness and readiness checks.
type Health struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}
