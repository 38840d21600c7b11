package forecast

import (
	"context"
	"time"
)

// Repository defines persistence for predictions and explanations.
type Repository interface {
	// HasPredictions reports whether any prediction rows exist for a region.
	HasPredictions(ctx context.Context, regionID string) (bool, error)

	// InsertPrediction inserts a prediction, leaving any existing row
	// with the same ID untouched.
	InsertPrediction(ctx context.Context, p Prediction) error

	// Upcoming returns up to limit predictions for a region whose target
	// time is after the given instant, earliest target first.
	Upcoming(ctx context.Context, regionID string, after time.Time, limit int) ([]Prediction, error)

	// Contributions returns the feature contributions recorded for a
	// prediction, largest absolute contribution first.
	Contributions(ctx context.Context, predictionID string) ([]Contribution, error)
}
