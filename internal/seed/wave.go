// Package seed fabricates deterministic demo time series and forecasts
// for the fixed monitoring regions on first boot.
package seed

import "math"

// Variation produces the value of a fabricated series at a step index.
// Two overlaid waves give each series a smooth, repeatable shape without
// any randomness; the result is rounded to two decimals.
func Variation(baseline, amplitude float64, step int) float64 {
	i := float64(step)
	v := baseline + math.Sin(i*0.9)*amplitude + math.Cos(i*0.5)*amplitude*0.4
	return math.Round(v*100) / 100
}

// variationInt rounds a series value to the nearest integer, for fields
// like AQI and wind direction that are whole numbers.
func variationInt(baseline, amplitude float64, step int) int {
	return int(math.Round(Variation(baseline, amplitude, step)))
}

// variationNonNegative floors a series value at zero, for fields like
// precipitation that cannot go negative.
func variationNonNegative(baseline, amplitude float64, step int) float64 {
	return math.Max(0, Variation(baseline, amplitude, step))
}
