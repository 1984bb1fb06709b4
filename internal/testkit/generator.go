// Package testkit generates deterministic synthetic record sets for
// engine tests and demos.
package testkit

import (
	"math"
	"math/rand"

	"chartcore/domain/record"
	"chartcore/domain/stats"
)

// SalesConfig controls the synthetic sales dataset.
type SalesConfig struct {
	Rows int
	Seed int64
}

// DefaultSalesConfig returns a small deterministic dataset.
func DefaultSalesConfig() SalesConfig {
	return SalesConfig{Rows: 200, Seed: 42}
}

var regions = []struct {
	state string
	name  string
	base  float64
}{
	{"CA", "California", 900},
	{"TX", "Texas", 700},
	{"NY", "New York", 650},
	{"FL", "Florida", 500},
	{"WA", "Washington", 420},
	{"OH", "Ohio", 300},
}

// SalesRecords generates rows with a stable per-state revenue ordering
// so aggregation tests can assert exact ranks.
func SalesRecords(cfg SalesConfig) []record.Raw {
	rng := rand.New(rand.NewSource(cfg.Seed))
	records := make([]record.Raw, 0, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		r := regions[i%len(regions)]
		revenue := r.base + rng.NormFloat64()*25
		records = append(records, record.Raw{
			"State":   r.state,
			"Region":  r.name,
			"Revenue": math.Round(revenue*100) / 100,
			"Units":   float64(1 + rng.Intn(20)),
		})
	}
	return records
}

// LinearPoints generates y = slope*x + intercept + noise scatter data.
func LinearPoints(n int, slope, intercept, noise float64, seed int64) []stats.XY {
	rng := rand.New(rand.NewSource(seed))
	points := make([]stats.XY, n)
	for i := range points {
		x := float64(i)
		points[i] = stats.XY{X: x, Y: slope*x + intercept + rng.NormFloat64()*noise}
	}
	return points
}

// NormalValues generates a normal sample for histogram tests.
func NormalValues(n int, mean, stdDev float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + rng.NormFloat64()*stdDev
	}
	return values
}
