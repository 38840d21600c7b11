package region

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteRepository is a SQLite implementation of Repository.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite region repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List returns all regions ordered by ID.
func (r *SQLiteRepository) List(ctx context.Context) ([]Region, error) {
	query := `
		SELECT id, name, latitude, longitude, country, timezone
		FROM regions
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	regions := make([]Region, 0)
	for rows.Next() {
		var reg Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Latitude, &reg.Longitude, &reg.Country, &reg.Timezone); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regions: %w", err)
	}

	return regions, nil
}

// InsertIfAbsent inserts a region unless a row with the same ID exists.
func (r *SQLiteRepository) InsertIfAbsent(ctx context.Context, reg Region) error {
	query := `
		INSERT OR IGNORE INTO regions (id, name, latitude, longitude, country, timezone)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		reg.ID, reg.Name, reg.Latitude, reg.Longitude, reg.Country, reg.Timezone)
	if err != nil {
		return fmt.Errorf("insert region %s: %w", reg.ID, err)
	}
	return nil
}

// Ensure SQLiteRepository implements Repository.
var _ Repository = (*SQLiteRepository)(nil)
