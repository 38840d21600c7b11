// Package measurement provides stored pollution and climate readings.
package measurement

import "time"

// PollutionMetric is an hourly pollutant snapshot for a region.
type PollutionMetric struct {
	ID        string    `json:"id"`
	RegionID  string    `json:"region_id"`
	Timestamp time.Time `json:"timestamp"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
	NO2       float64   `json:"no2"`
	SO2       float64   `json:"so2"`
	CO        float64   `json:"co"`
	O3        float64   `json:"o3"`
	AQI       int       `json:"aqi"`
}

// ClimateMetric is an hourly weather snapshot for a region.
type ClimateMetric struct {
	ID            string    `json:"id"`
	RegionID      string    `json:"region_id"`
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection int       `json:"wind_direction"`
	Precipitation float64   `json:"precipitation"`
	Pressure      float64   `json:"pressure"`
}
