// Package region provides the fixed set of monitored geographic regions.
package region

// Region is a named geographic monitoring point.
type Region struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}
