package measurement

import "context"

// Repository defines persistence for pollution and climate readings.
type Repository interface {
	// HasPollution reports whether any pollution rows exist for a region.
	HasPollution(ctx context.Context, regionID string) (bool, error)

	// HasClimate reports whether any climate rows exist for a region.
	HasClimate(ctx context.Context, regionID string) (bool, error)

	// InsertPollution inserts a pollution reading, leaving any existing
	// row with the same ID untouched.
	InsertPollution(ctx context.Context, m PollutionMetric) error

	// InsertClimate inserts a climate reading, leaving any existing
	// row with the same ID untouched.
	InsertClimate(ctx context.Context, m ClimateMetric) error

	// RecentPollution returns up to limit pollution rows for a region,
	// most recent first.
	RecentPollution(ctx context.Context, regionID string, limit int) ([]PollutionMetric, error)

	// RecentClimate returns up to limit climate rows for a region,
	// most recent first.
	RecentClimate(ctx context.Context, regionID string, limit int) ([]ClimateMetric, error)
}
