package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements creates the full table set. Ordered so that referenced
// tables exist before their dependents; every statement is a no-op when the
// table is already present. The schema is fixed: there are no migrations.
var schemaStatements = []struct {
	table string
	ddl   string
}{
	{
		table: "regions",
		ddl: `CREATE TABLE IF NOT EXISTS regions (
			id        TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			latitude  REAL NOT NULL,
			longitude REAL NOT NULL,
			country   TEXT NOT NULL,
			timezone  TEXT NOT NULL
		)`,
	},
	{
		table: "pollution_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS pollution_metrics (
			id        TEXT PRIMARY KEY,
			region_id TEXT NOT NULL REFERENCES regions(id),
			timestamp TIMESTAMP NOT NULL,
			pm25      REAL,
			pm10      REAL,
			no2       REAL,
			so2       REAL,
			co        REAL,
			o3        REAL,
			aqi       INTEGER
		)`,
	},
	{
		table: "climate_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS climate_metrics (
			id             TEXT PRIMARY KEY,
			region_id      TEXT NOT NULL REFERENCES regions(id),
			timestamp      TIMESTAMP NOT NULL,
			temperature    REAL,
			humidity       REAL,
			wind_speed     REAL,
			wind_direction INTEGER,
			precipitation  REAL,
			pressure       REAL
		)`,
	},
	{
		table: "pollution_sources",
		ddl: `CREATE TABLE IF NOT EXISTS pollution_sources (
			id                   TEXT PRIMARY KEY,
			region_id            TEXT NOT NULL REFERENCES regions(id),
			source_name          TEXT NOT NULL,
			category             TEXT,
			contribution_percent REAL
		)`,
	},
	{
		table: "predictions",
		ddl: `CREATE TABLE IF NOT EXISTS predictions (
			id                   TEXT PRIMARY KEY,
			region_id            TEXT NOT NULL REFERENCES regions(id),
			prediction_timestamp TIMESTAMP NOT NULL,
			target_timestamp     TIMESTAMP NOT NULL,
			predicted_aqi        INTEGER NOT NULL,
			confidence_score     REAL,
			model_version        TEXT
		)`,
	},
	{
		table: "model_explanations",
		ddl: `CREATE TABLE IF NOT EXISTS model_explanations (
			id            TEXT PRIMARY KEY,
			prediction_id TEXT NOT NULL REFERENCES predictions(id),
			feature_name  TEXT NOT NULL,
			feature_value REAL,
			contribution  REAL NOT NULL
		)`,
	},
	{
		table: "data_sources",
		ddl: `CREATE TABLE IF NOT EXISTS data_sources (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			type       TEXT,
			base_url   TEXT,
			notes      TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "raw_ingest",
		ddl: `CREATE TABLE IF NOT EXISTS raw_ingest (
			id          TEXT PRIMARY KEY,
			source_id   TEXT REFERENCES data_sources(id),
			source_url  TEXT,
			raw_payload TEXT,
			format      TEXT,
			processed   BOOLEAN NOT NULL DEFAULT FALSE,
			ingested_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// InitSchema creates all tables if they do not exist.
// Safe to run on every boot.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", stmt.table, err)
		}
	}
	return nil
}
