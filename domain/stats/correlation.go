package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// XY is one scatter point.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Correlation pairs Pearson's r with the fitted regression line.
// R is nil when fewer than 2 points were supplied or when either axis
// has zero variance, which leaves the denominator undefined.
type Correlation struct {
	R         *float64 `json:"r"`
	Slope     float64  `json:"slope"`
	Intercept float64  `json:"intercept"`
}

// Correlate computes Pearson's r via the sum-of-products formula
// together with the least-squares line for the same points.
func Correlate(points []XY) Correlation {
	slope, intercept := Regress(points)
	out := Correlation{Slope: slope, Intercept: intercept}

	n := float64(len(points))
	if len(points) < 2 {
		return out
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return out
	}

	r := numerator / denominator
	out.R = &r
	return out
}

// Regress fits y = slope*x + intercept by ordinary least squares using
// the normal-equations form. A zero x-variance denominator yields
// slope 0 and intercept mean(y) rather than a division by zero.
func Regress(points []XY) (slope, intercept float64) {
	n := float64(len(points))
	if len(points) == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// CorrelationPValue computes the two-tailed p-value for a Pearson
// coefficient via the t-transform against Student's t-distribution.
// Samples smaller than 3 or |r| = 1 return the conservative 1.0 / 0.0
// sentinels instead of dividing by zero.
func CorrelationPValue(r float64, sampleSize int) float64 {
	if sampleSize < 3 {
		return 1.0
	}
	if r*r >= 1 {
		return 0.0
	}

	df := float64(sampleSize - 2)
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(t)))
}
