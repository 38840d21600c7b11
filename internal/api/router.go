// Package api provides the HTTP API for the aqview dashboard.
package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/api/handler"
	"github.com/aqview/aqview/internal/api/middleware"
	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
	"github.com/aqview/aqview/internal/region"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	Metrics        *middleware.Metrics
	AllowedOrigins []string

	Regions      region.Repository
	Measurements measurement.Repository
	Forecasts    forecast.Repository
	Explainer    *forecast.Service
	Clock        clockwork.Clock

	// StorePing checks store availability for readiness probes.
	StorePing func(ctx context.Context) error
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.StorePing)
	regionHandler := handler.NewRegionHandler(cfg.Regions, cfg.Logger)
	metricsHandler := handler.NewMetricsHandler(cfg.Measurements, cfg.Forecasts, cfg.Clock, cfg.Logger)
	explainHandler := handler.NewExplainHandler(cfg.Explainer, cfg.Logger)

	r.Get("/healthz", opsHandler.HealthCheck)
	r.Get("/readyz", opsHandler.ReadinessCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(middleware.StandardRateLimit))
		r.Get("/regions", regionHandler.ListRegions)
		r.Get("/metrics/{regionID}", metricsHandler.GetRegionMetrics)
		r.Get("/explain/{predictionID}", explainHandler.GetExplanation)
	})

	return r
}
