// Package stats is the statistics engine behind histogram and scatter
// charts: descriptive summaries, histogram binning, Pearson correlation,
// ordinary least squares and the normal-overlay curve.
//
// The engine operates on numeric slices its callers have already
// extracted and cleaned (null/NaN/non-finite values dropped); cleaning
// is deliberately not repeated here.
package stats

import (
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for one numeric field.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe computes descriptive statistics over a numeric slice.
// StdDev is the population standard deviation. An empty input yields
// the degenerate all-zero Summary.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviationPopulation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return Summary{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Count:  len(values),
		Min:    min,
		Max:    max,
	}
}
