package measurement

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteRepository is a SQLite implementation of Repository.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite measurement repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// HasPollution reports whether any pollution rows exist for a region.
func (r *SQLiteRepository) HasPollution(ctx context.Context, regionID string) (bool, error) {
	return r.exists(ctx, "pollution_metrics", regionID)
}

// HasClimate reports whether any climate rows exist for a region.
func (r *SQLiteRepository) HasClimate(ctx context.Context, regionID string) (bool, error) {
	return r.exists(ctx, "climate_metrics", regionID)
}

func (r *SQLiteRepository) exists(ctx context.Context, table, regionID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE region_id = ?)`, table)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, regionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s for region %s: %w", table, regionID, err)
	}
	return exists, nil
}

// InsertPollution inserts a pollution reading unless its ID exists.
func (r *SQLiteRepository) InsertPollution(ctx context.Context, m PollutionMetric) error {
	query := `
		INSERT OR IGNORE INTO pollution_metrics
			(id, region_id, timestamp, pm25, pm10, no2, so2, co, o3, aqi)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.RegionID, m.Timestamp, m.PM25, m.PM10, m.NO2, m.SO2, m.CO, m.O3, m.AQI)
	if err != nil {
		return fmt.Errorf("insert pollution metric %s: %w", m.ID, err)
	}
	return nil
}

// InsertClimate inserts a climate reading unless its ID exists.
func (r *SQLiteRepository) InsertClimate(ctx context.Context, m ClimateMetric) error {
	query := `
		INSERT OR IGNORE INTO climate_metrics
			(id, region_id, timestamp, temperature, humidity, wind_speed, wind_direction, precipitation, pressure)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.RegionID, m.Timestamp, m.Temperature, m.Humidity,
		m.WindSpeed, m.WindDirection, m.Precipitation, m.Pressure)
	if err != nil {
		return fmt.Errorf("insert climate metric %s: %w", m.ID, err)
	}
	return nil
}

// RecentPollution returns up to limit pollution rows, most recent first.
func (r *SQLiteRepository) RecentPollution(ctx context.Context, regionID string, limit int) ([]PollutionMetric, error) {
	query := `
		SELECT id, region_id, timestamp, pm25, pm10, no2, so2, co, o3, aqi
		FROM pollution_metrics
		WHERE region_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, regionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list pollution metrics for region %s: %w", regionID, err)
	}
	defer rows.Close()

	metrics := make([]PollutionMetric, 0, limit)
	for rows.Next() {
		var m PollutionMetric
		if err := rows.Scan(&m.ID, &m.RegionID, &m.Timestamp,
			&m.PM25, &m.PM10, &m.NO2, &m.SO2, &m.CO, &m.O3, &m.AQI); err != nil {
			return nil, fmt.Errorf("scan pollution metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pollution metrics: %w", err)
	}

	return metrics, nil
}

// RecentClimate returns up to limit climate rows, most recent first.
func (r *SQLiteRepository) RecentClimate(ctx context.Context, regionID string, limit int) ([]ClimateMetric, error) {
	query := `
		SELECT id, region_id, timestamp, temperature, humidity, wind_speed, wind_direction, precipitation, pressure
		FROM climate_metrics
		WHERE region_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, regionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list climate metrics for region %s: %w", regionID, err)
	}
	defer rows.Close()

	metrics := make([]ClimateMetric, 0, limit)
	for rows.Next() {
		var m ClimateMetric
		if err := rows.Scan(&m.ID, &m.RegionID, &m.Timestamp,
			&m.Temperature, &m.Humidity, &m.WindSpeed, &m.WindDirection, &m.Precipitation, &m.Pressure); err != nil {
			return nil, fmt.Errorf("scan climate metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate climate metrics: %w", err)
	}

	return metrics, nil
}

// Ensure SQLiteRepository implements Repository.
var _ Repository = (*SQLiteRepository)(nil)
