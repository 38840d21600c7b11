package forecast

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteRepository is a SQLite implementation of Repository.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite forecast repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// HasPredictions reports whether any prediction rows exist for a region.
func (r *SQLiteRepository) HasPredictions(ctx context.Context, regionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM predictions WHERE region_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, regionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check predictions for region %s: %w", regionID, err)
	}
	return exists, nil
}

// InsertPrediction inserts a prediction unless its ID exists.
func (r *SQLiteRepository) InsertPrediction(ctx context.Context, p Prediction) error {
	query := `
		INSERT OR IGNORE INTO predictions
			(id, region_id, prediction_timestamp, target_timestamp, predicted_aqi, confidence_score, model_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.RegionID, p.PredictionTimestamp, p.TargetTimestamp,
		p.PredictedAQI, p.ConfidenceScore, p.ModelVersion)
	if err != nil {
		return fmt.Errorf("insert prediction %s: %w", p.ID, err)
	}
	return nil
}

// Upcoming returns future-dated predictions, earliest target first.
func (r *SQLiteRepository) Upcoming(ctx context.Context, regionID string, after time.Time, limit int) ([]Prediction, error) {
	query := `
		SELECT id, region_id, prediction_timestamp, target_timestamp, predicted_aqi, confidence_score, model_version
		FROM predictions
		WHERE region_id = ? AND target_timestamp > ?
		ORDER BY target_timestamp ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, regionID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions for region %s: %w", regionID, err)
	}
	defer rows.Close()

	predictions := make([]Prediction, 0, limit)
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(&p.ID, &p.RegionID, &p.PredictionTimestamp, &p.TargetTimestamp,
			&p.PredictedAQI, &p.ConfidenceScore, &p.ModelVersion); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}

	return predictions, nil
}

// Contributions returns feature contributions, largest magnitude first.
func (r *SQLiteRepository) Contributions(ctx context.Context, predictionID string) ([]Contribution, error) {
	query := `
		SELECT feature_name, feature_value, contribution
		FROM model_explanations
		WHERE prediction_id = ?
		ORDER BY ABS(contribution) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, predictionID)
	if err != nil {
		return nil, fmt.Errorf("list contributions for prediction %s: %w", predictionID, err)
	}
	defer rows.Close()

	contributions := make([]Contribution, 0)
	for rows.Next() {
		var c Contribution
		if err := rows.Scan(&c.FeatureName, &c.FeatureValue, &c.Contribution); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}

	return contributions, nil
}

// Ensure SQLiteRepository implements Repository.
var _ Repository = (*SQLiteRepository)(nil)
