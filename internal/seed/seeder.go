package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
	"github.com/aqview/aqview/internal/region"
)

// Series sizes. Readings form an hourly grid ending at seed time;
// forecasts target whole days ahead of it.
const (
	pollutionRows  = 10
	climateRows    = 10
	predictionRows = 3

	modelVersion = "baseline-wave-v1"
)

// Config holds the collaborators for a Seeder.
type Config struct {
	Regions      region.Repository
	Measurements measurement.Repository
	Forecasts    forecast.Repository
	Clock        clockwork.Clock
	Logger       zerolog.Logger
}

// Seeder populates the store with deterministic demo data on boot.
// Each region and metric type is seeded independently, and only when no
// rows exist yet for that region and type, so repeated boots against the
// same database file never duplicate or mutate rows.
type Seeder struct {
	regions      region.Repository
	measurements measurement.Repository
	forecasts    forecast.Repository
	clock        clockwork.Clock
	logger       zerolog.Logger
}

// New creates a Seeder. A nil Clock defaults to the real clock.
func New(cfg Config) *Seeder {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Seeder{
		regions:      cfg.Regions,
		measurements: cfg.Measurements,
		forecasts:    cfg.Forecasts,
		clock:        clock,
		logger:       cfg.Logger,
	}
}

// Run seeds all regions. Any error aborts immediately; the caller treats
// seeding failure as fatal since the service has nothing to serve from a
// half-initialized store.
func (s *Seeder) Run(ctx context.Context) error {
	seedTime := s.clock.Now().UTC()

	for _, profile := range Profiles() {
		if err := s.regions.InsertIfAbsent(ctx, profile.Region); err != nil {
			return fmt.Errorf("seed region %s: %w", profile.Region.ID, err)
		}

		if err := s.seedPollution(ctx, profile, seedTime); err != nil {
			return err
		}
		if err := s.seedClimate(ctx, profile, seedTime); err != nil {
			return err
		}
		if err := s.seedPredictions(ctx, profile, seedTime); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedPollution(ctx context.Context, p Profile, seedTime time.Time) error {
	regionID := p.Region.ID

	seeded, err := s.measurements.HasPollution(ctx, regionID)
	if err != nil {
		return fmt.Errorf("check pollution metrics for %s: %w", regionID, err)
	}
	if seeded {
		s.logger.Debug().Str("region", regionID).Msg("pollution metrics already present, skipping")
		return nil
	}

	for i := 0; i < pollutionRows; i++ {
		m := measurement.PollutionMetric{
			ID:        fmt.Sprintf("pol-%s-%02d", regionID, i),
			RegionID:  regionID,
			Timestamp: gridTimestamp(seedTime, pollutionRows, i),
			PM25:      Variation(p.Pollution.PM25.Baseline, p.Pollution.PM25.Amplitude, i),
			PM10:      Variation(p.Pollution.PM10.Baseline, p.Pollution.PM10.Amplitude, i),
			NO2:       Variation(p.Pollution.NO2.Baseline, p.Pollution.NO2.Amplitude, i),
			SO2:       Variation(p.Pollution.SO2.Baseline, p.Pollution.SO2.Amplitude, i),
			CO:        Variation(p.Pollution.CO.Baseline, p.Pollution.CO.Amplitude, i),
			O3:        Variation(p.Pollution.O3.Baseline, p.Pollution.O3.Amplitude, i),
			AQI:       variationInt(p.Pollution.AQI.Baseline, p.Pollution.AQI.Amplitude, i),
		}
		if err := s.measurements.InsertPollution(ctx, m); err != nil {
			return fmt.Errorf("seed pollution metrics for %s: %w", regionID, err)
		}
	}

	s.logger.Info().Str("region", regionID).Int("rows", pollutionRows).Msg("seeded pollution metrics")
	return nil
}

func (s *Seeder) seedClimate(ctx context.Context, p Profile, seedTime time.Time) error {
	regionID := p.Region.ID

	seeded, err := s.measurements.HasClimate(ctx, regionID)
	if err != nil {
		return fmt.Errorf("check climate metrics for %s: %w", regionID, err)
	}
	if seeded {
		s.logger.Debug().Str("region", regionID).Msg("climate metrics already present, skipping")
		return nil
	}

	for i := 0; i < climateRows; i++ {
		m := measurement.ClimateMetric{
			ID:            fmt.Sprintf("cli-%s-%02d", regionID, i),
			RegionID:      regionID,
			Timestamp:     gridTimestamp(seedTime, climateRows, i),
			Temperature:   Variation(p.Climate.Temperature.Baseline, p.Climate.Temperature.Amplitude, i),
			Humidity:      Variation(p.Climate.Humidity.Baseline, p.Climate.Humidity.Amplitude, i),
			WindSpeed:     Variation(p.Climate.WindSpeed.Baseline, p.Climate.WindSpeed.Amplitude, i),
			WindDirection: variationInt(p.Climate.WindDirection.Baseline, p.Climate.WindDirection.Amplitude, i),
			Precipitation: variationNonNegative(p.Climate.Precipitation.Baseline, p.Climate.Precipitation.Amplitude, i),
			Pressure:      Variation(p.Climate.Pressure.Baseline, p.Climate.Pressure.Amplitude, i),
		}
		if err := s.measurements.InsertClimate(ctx, m); err != nil {
			return fmt.Errorf("seed climate metrics for %s: %w", regionID, err)
		}
	}

	s.logger.Info().Str("region", regionID).Int("rows", climateRows).Msg("seeded climate metrics")
	return nil
}

func (s *Seeder) seedPredictions(ctx context.Context, p Profile, seedTime time.Time) error {
	regionID := p.Region.ID

	seeded, err := s.forecasts.HasPredictions(ctx, regionID)
	if err != nil {
		return fmt.Errorf("check predictions for %s: %w", regionID, err)
	}
	if seeded {
		s.logger.Debug().Str("region", regionID).Msg("predictions already present, skipping")
		return nil
	}

	for i := 0; i < predictionRows; i++ {
		pred := forecast.Prediction{
			ID:                  fmt.Sprintf("prd-%s-%02d", regionID, i),
			RegionID:            regionID,
			PredictionTimestamp: seedTime,
			TargetTimestamp:     seedTime.Add(time.Duration(i+1) * 24 * time.Hour),
			PredictedAQI:        variationInt(p.ForecastAQI.Baseline, p.ForecastAQI.Amplitude, i),
			ConfidenceScore:     confidence(i),
			ModelVersion:        modelVersion,
		}
		if err := s.forecasts.InsertPrediction(ctx, pred); err != nil {
			return fmt.Errorf("seed predictions for %s: %w", regionID, err)
		}
	}

	s.logger.Info().Str("region", regionID).Int("rows", predictionRows).Msg("seeded predictions")
	return nil
}

// gridTimestamp places step i on an hourly grid whose last point is the
// seed time, so pollution and climate rows share the same timestamps.
func gridTimestamp(seedTime time.Time, count, i int) time.Time {
	return seedTime.Add(-time.Duration(count-1-i) * time.Hour)
}

// confidence decreases with the forecast horizon, deterministically.
func confidence(step int) float64 {
	return 0.92 - 0.07*float64(step)
}
