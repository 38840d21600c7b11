// Package forecast provides AQI predictions and their model explanations.
package forecast

import "time"

// Prediction is a forecast AQI value for a region at a future point in time.
type Prediction struct {
	ID                  string    `json:"id"`
	RegionID            string    `json:"region_id"`
	PredictionTimestamp time.Time `json:"prediction_timestamp"`
	TargetTimestamp     time.Time `json:"target_timestamp"`
	PredictedAQI        int       `json:"predicted_aqi"`
	ConfidenceScore     float64   `json:"confidence_score"`
	ModelVersion        string    `json:"model_version"`
}

// Contribution is a single feature's effect on a prediction.
type Contribution struct {
	FeatureName  string  `json:"feature_name"`
	FeatureValue float64 `json:"feature_value"`
	Contribution float64 `json:"contribution"`
}

// Explanation is the full feature-attribution breakdown for a prediction.
type Explanation struct {
	PredictionID  string         `json:"prediction_id"`
	Contributions []Contribution `json:"contributions"`
	Summary       string         `json:"summary"`
}
