package measurement_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqview/aqview/internal/database"
	"github.com/aqview/aqview/internal/measurement"
	"github.com/aqview/aqview/internal/region"
)

var baseTime = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*measurement.SQLiteRepository, *sql.DB) {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{Path: database.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.InitSchema(ctx, db))

	regions := region.NewSQLiteRepository(db)
	require.NoError(t, regions.InsertIfAbsent(ctx, region.Region{
		ID: "reg-001", Name: "New Delhi", Latitude: 28.6139, Longitude: 77.209,
		Country: "India", Timezone: "Asia/Kolkata",
	}))

	return measurement.NewSQLiteRepository(db), db
}

func insertPollutionSeries(t *testing.T, repo *measurement.SQLiteRepository, regionID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.InsertPollution(context.Background(), measurement.PollutionMetric{
			ID:        fmt.Sprintf("pol-%s-%02d", regionID, i),
			RegionID:  regionID,
			Timestamp: baseTime.Add(time.Duration(i) * time.Hour),
			PM25:      float64(100 + i),
			AQI:       200 + i,
		}))
	}
}

func TestSQLiteRepository_HasPollution(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	has, err := repo.HasPollution(ctx, "reg-001")
	require.NoError(t, err)
	assert.False(t, has)

	insertPollutionSeries(t, repo, "reg-001", 1)

	has, err = repo.HasPollution(ctx, "reg-001")
	require.NoError(t, err)
	assert.True(t, has)

	// Presence is per region.
	has, err = repo.HasPollution(ctx, "reg-999")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSQLiteRepository_InsertPollution_IgnoresDuplicateID(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	m := measurement.PollutionMetric{
		ID: "pol-reg-001-00", RegionID: "reg-001", Timestamp: baseTime, PM25: 110, AQI: 245,
	}
	require.NoError(t, repo.InsertPollution(ctx, m))

	m.PM25 = 999
	require.NoError(t, repo.InsertPollution(ctx, m))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM pollution_metrics").Scan(&count))
	assert.Equal(t, 1, count)

	var pm25 float64
	require.NoError(t, db.QueryRow("SELECT pm25 FROM pollution_metrics WHERE id = ?", m.ID).Scan(&pm25))
	assert.Equal(t, 110.0, pm25, "existing row must not be mutated")
}

func TestSQLiteRepository_RecentPollution_OrderAndLimit(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	insertPollutionSeries(t, repo, "reg-001", 15)

	metrics, err := repo.RecentPollution(ctx, "reg-001", 10)
	require.NoError(t, err)
	require.Len(t, metrics, 10)

	for i := 0; i < len(metrics)-1; i++ {
		assert.True(t, metrics[i].Timestamp.After(metrics[i+1].Timestamp),
			"timestamps not strictly descending at index %d", i)
	}

	// Newest row first.
	assert.True(t, metrics[0].Timestamp.Equal(baseTime.Add(14*time.Hour)))
}

func TestSQLiteRepository_RecentPollution_UnknownRegion(t *testing.T) {
	repo, _ := newTestRepo(t)

	metrics, err := repo.RecentPollution(context.Background(), "reg-404", 10)
	require.NoError(t, err)
	assert.NotNil(t, metrics)
	assert.Empty(t, metrics)
}

func TestSQLiteRepository_RecentClimate_OrderAndRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.InsertClimate(ctx, measurement.ClimateMetric{
			ID:            fmt.Sprintf("cli-reg-001-%02d", i),
			RegionID:      "reg-001",
			Timestamp:     baseTime.Add(time.Duration(i) * time.Hour),
			Temperature:   31.5,
			Humidity:      48,
			WindSpeed:     9.2,
			WindDirection: 180 + i,
			Precipitation: 0,
			Pressure:      1008,
		}))
	}

	metrics, err := repo.RecentClimate(ctx, "reg-001", 10)
	require.NoError(t, err)
	require.Len(t, metrics, 3)

	assert.Equal(t, "cli-reg-001-02", metrics[0].ID)
	assert.Equal(t, 182, metrics[0].WindDirection)
	assert.Equal(t, 31.5, metrics[0].Temperature)
}
