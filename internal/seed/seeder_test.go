package seed_test

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqview/aqview/internal/database"
	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
	"github.com/aqview/aqview/internal/region"
	"github.com/aqview/aqview/internal/seed"
)

var seedTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.Config{Path: database.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.InitSchema(context.Background(), db))
	return db
}

func newTestSeeder(db *sql.DB, clock clockwork.Clock) *seed.Seeder {
	return seed.New(seed.Config{
		Regions:      region.NewSQLiteRepository(db),
		Measurements: measurement.NewSQLiteRepository(db),
		Forecasts:    forecast.NewSQLiteRepository(db),
		Clock:        clock,
		Logger:       zerolog.New(io.Discard),
	})
}

func countRows(t *testing.T, db *sql.DB, table, regionID string) int {
	t.Helper()

	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE region_id = ?", regionID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestSeeder_Run_PopulatesAllRegions(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))

	require.NoError(t, seeder.Run(context.Background()))

	for _, regionID := range []string{"reg-001", "reg-002", "reg-003"} {
		assert.Equal(t, 10, countRows(t, db, "pollution_metrics", regionID), "pollution rows for %s", regionID)
		assert.Equal(t, 10, countRows(t, db, "climate_metrics", regionID), "climate rows for %s", regionID)
		assert.Equal(t, 3, countRows(t, db, "predictions", regionID), "prediction rows for %s", regionID)
	}
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	// A later boot must not add or mutate rows.
	later := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime.Add(6*time.Hour)))
	require.NoError(t, later.Run(ctx))

	assert.Equal(t, 10, countRows(t, db, "pollution_metrics", "reg-001"))
	assert.Equal(t, 10, countRows(t, db, "climate_metrics", "reg-001"))
	assert.Equal(t, 3, countRows(t, db, "predictions", "reg-001"))

	var regions int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM regions").Scan(&regions))
	assert.Equal(t, 3, regions)
}

func TestSeeder_Run_ReseedsMetricTypesIndependently(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	// Wipe only climate rows; a rerun must restore them without touching
	// the other metric types.
	_, err := db.Exec("DELETE FROM climate_metrics")
	require.NoError(t, err)

	var beforePollution float64
	require.NoError(t, db.QueryRow(
		"SELECT pm25 FROM pollution_metrics WHERE id = ?", "pol-reg-001-00").Scan(&beforePollution))

	require.NoError(t, seeder.Run(ctx))

	assert.Equal(t, 10, countRows(t, db, "climate_metrics", "reg-001"))
	assert.Equal(t, 10, countRows(t, db, "pollution_metrics", "reg-001"))
	assert.Equal(t, 3, countRows(t, db, "predictions", "reg-001"))

	var afterPollution float64
	require.NoError(t, db.QueryRow(
		"SELECT pm25 FROM pollution_metrics WHERE id = ?", "pol-reg-001-00").Scan(&afterPollution))
	assert.Equal(t, beforePollution, afterPollution, "existing pollution rows must not change")
}

func TestSeeder_Run_SharedTimestampGrid(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))
	require.NoError(t, seeder.Run(context.Background()))

	measurements := measurement.NewSQLiteRepository(db)

	pollution, err := measurements.RecentPollution(context.Background(), "reg-002", 10)
	require.NoError(t, err)
	climate, err := measurements.RecentClimate(context.Background(), "reg-002", 10)
	require.NoError(t, err)

	require.Len(t, pollution, 10)
	require.Len(t, climate, 10)
	for i := range pollution {
		assert.True(t, pollution[i].Timestamp.Equal(climate[i].Timestamp),
			"pollution and climate timestamps differ at index %d", i)
	}

	// Hourly grid ending at seed time.
	assert.True(t, pollution[0].Timestamp.Equal(seedTime))
	for i := 0; i < len(pollution)-1; i++ {
		assert.Equal(t, time.Hour, pollution[i].Timestamp.Sub(pollution[i+1].Timestamp))
	}
}

func TestSeeder_Run_PredictionsAreFutureDated(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))
	require.NoError(t, seeder.Run(context.Background()))

	forecasts := forecast.NewSQLiteRepository(db)
	predictions, err := forecasts.Upcoming(context.Background(), "reg-001", seedTime, 5)
	require.NoError(t, err)

	require.Len(t, predictions, 3)
	for i, p := range predictions {
		assert.True(t, p.TargetTimestamp.After(seedTime), "prediction %d not future-dated", i)
		assert.True(t, p.TargetTimestamp.Equal(seedTime.Add(time.Duration(i+1)*24*time.Hour)),
			"prediction %d target not on a whole-day horizon", i)
		assert.Equal(t, "baseline-wave-v1", p.ModelVersion)
		assert.Greater(t, p.ConfidenceScore, 0.0)
	}
}

func TestSeeder_Run_DeterministicAcrossStores(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(seedTime)

	first := newTestStore(t)
	require.NoError(t, newTestSeeder(first, clock).Run(ctx))

	second := newTestStore(t)
	require.NoError(t, newTestSeeder(second, clock).Run(ctx))

	a, err := measurement.NewSQLiteRepository(first).RecentPollution(ctx, "reg-001", 10)
	require.NoError(t, err)
	b, err := measurement.NewSQLiteRepository(second).RecentPollution(ctx, "reg-001", 10)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].PM25, b[i].PM25, "pm25 differs at index %d", i)
		assert.Equal(t, a[i].AQI, b[i].AQI, "aqi differs at index %d", i)
	}
}

func TestSeeder_Run_ClimateFieldConstraints(t *testing.T) {
	db := newTestStore(t)
	seeder := newTestSeeder(db, clockwork.NewFakeClockAt(seedTime))
	require.NoError(t, seeder.Run(context.Background()))

	climate, err := measurement.NewSQLiteRepository(db).RecentClimate(context.Background(), "reg-001", 10)
	require.NoError(t, err)
	require.Len(t, climate, 10)

	for _, m := range climate {
		assert.GreaterOrEqual(t, m.Precipitation, 0.0, "precipitation must not go negative")
	}
}
