package seed

import "github.com/aqview/aqview/internal/region"

// Wave holds the baseline and amplitude driving a single fabricated series.
type Wave struct {
	Baseline  float64
	Amplitude float64
}

// PollutionWaves holds per-pollutant wave parameters.
type PollutionWaves struct {
	PM25 Wave
	PM10 Wave
	NO2  Wave
	SO2  Wave
	CO   Wave
	O3   Wave
	AQI  Wave
}

// ClimateWaves holds per-climate-field wave parameters.
type ClimateWaves struct {
	Temperature   Wave
	Humidity      Wave
	WindSpeed     Wave
	WindDirection Wave
	Precipitation Wave
	Pressure      Wave
}

// Profile binds a region's identity to the wave parameters that shape its
// fabricated readings and forecasts.
type Profile struct {
	Region      region.Region
	Pollution   PollutionWaves
	Climate     ClimateWaves
	ForecastAQI Wave
}

// Profiles returns the fixed demo regions. Baselines differ per region so
// the dashboard shows distinct pollution severities: New Delhi reads high,
// Mumbai moderate, Bangalore comparatively clean.
func Profiles() []Profile {
	return []Profile{
		{
			Region: region.Region{
				ID:        "reg-001",
				Name:      "New Delhi",
				Latitude:  28.6139,
				Longitude: 77.2090,
				Country:   "India",
				Timezone:  "Asia/Kolkata",
			},
			Pollution: PollutionWaves{
				PM25: Wave{110, 25},
				PM10: Wave{190, 35},
				NO2:  Wave{58, 12},
				SO2:  Wave{14, 4},
				CO:   Wave{1.4, 0.5},
				O3:   Wave{38, 10},
				AQI:  Wave{245, 40},
			},
			Climate: ClimateWaves{
				Temperature:   Wave{31, 6},
				Humidity:      Wave{48, 12},
				WindSpeed:     Wave{9, 4},
				WindDirection: Wave{180, 90},
				Precipitation: Wave{0.4, 1.2},
				Pressure:      Wave{1008, 4},
			},
			ForecastAQI: Wave{250, 30},
		},
		{
			Region: region.Region{
				ID:        "reg-002",
				Name:      "Mumbai",
				Latitude:  19.0760,
				Longitude: 72.8777,
				Country:   "India",
				Timezone:  "Asia/Kolkata",
			},
			Pollution: PollutionWaves{
				PM25: Wave{62, 15},
				PM10: Wave{105, 20},
				NO2:  Wave{42, 9},
				SO2:  Wave{10, 3},
				CO:   Wave{0.9, 0.3},
				O3:   Wave{30, 8},
				AQI:  Wave{142, 25},
			},
			Climate: ClimateWaves{
				Temperature:   Wave{29, 3},
				Humidity:      Wave{74, 10},
				WindSpeed:     Wave{14, 5},
				WindDirection: Wave{220, 70},
				Precipitation: Wave{2.5, 3},
				Pressure:      Wave{1006, 3},
			},
			ForecastAQI: Wave{150, 20},
		},
		{
			Region: region.Region{
				ID:        "reg-003",
				Name:      "Bangalore",
				Latitude:  12.9716,
				Longitude: 77.5946,
				Country:   "India",
				Timezone:  "Asia/Kolkata",
			},
			Pollution: PollutionWaves{
				PM25: Wave{34, 9},
				PM10: Wave{58, 12},
				NO2:  Wave{24, 6},
				SO2:  Wave{6, 2},
				CO:   Wave{0.6, 0.2},
				O3:   Wave{22, 6},
				AQI:  Wave{78, 15},
			},
			Climate: ClimateWaves{
				Temperature:   Wave{24, 4},
				Humidity:      Wave{62, 12},
				WindSpeed:     Wave{11, 4},
				WindDirection: Wave{150, 80},
				Precipitation: Wave{1.1, 2},
				Pressure:      Wave{1012, 3},
			},
			ForecastAQI: Wave{85, 12},
		},
	}
}
