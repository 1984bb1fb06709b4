package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalPDF evaluates the normal density at x. A non-positive stdDev
// has no defined density and evaluates to 0.
func NormalPDF(x, mean, stdDev float64) float64 {
	if stdDev <= 0 {
		return 0
	}
	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	return dist.Prob(x)
}

// CurveHeight maps a density value onto the vertical axis of a
// frequency histogram:
//
//	height = pdf(x) * count * binWidth
//
// density times sample size times bin width approximates the expected
// bin count at x, which is what lets a normal overlay share an axis
// with histogram bars. This scaling is exact, not a visual fudge.
func CurveHeight(x, mean, stdDev float64, count int, binWidth float64) float64 {
	return NormalPDF(x, mean, stdDev) * float64(count) * binWidth
}

// CurvePoints samples the scaled normal curve across a histogram's
// padded domain for overlay drawing. steps <= 0 defaults to 100.
func CurvePoints(bins []Bin, mean, stdDev float64, count, steps int) []XY {
	if len(bins) == 0 {
		return []XY{}
	}
	if steps <= 0 {
		steps = 100
	}

	lo := bins[0].LowerBound
	hi := bins[len(bins)-1].UpperBound
	width := BinWidth(bins)
	step := (hi - lo) / float64(steps)

	out := make([]XY, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := lo + float64(i)*step
		out = append(out, XY{X: x, Y: CurveHeight(x, mean, stdDev, count, width)})
	}
	return out
}
