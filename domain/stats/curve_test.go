package stats

import (
	"math"
	"testing"
)

func TestNormalPDF_StandardNormalPeak(t *testing.T) {
	got := NormalPDF(0, 0, 1)
	want := 1 / math.Sqrt(2*math.Pi)
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("standard normal peak: expected %f, got %f", want, got)
	}
}

func TestNormalPDF_DegenerateStdDev(t *testing.T) {
	if got := NormalPDF(1, 0, 0); got != 0 {
		t.Errorf("zero stddev must evaluate to 0, got %f", got)
	}
	if got := NormalPDF(1, 0, -2); got != 0 {
		t.Errorf("negative stddev must evaluate to 0, got %f", got)
	}
}

// The overlay contract: pdf(x) * count * binWidth is the expected bin
// count at x, exactly.
func TestCurveHeight_ScalingContract(t *testing.T) {
	mean, stdDev := 10.0, 2.0
	count, binWidth := 500, 0.8

	pdf := NormalPDF(mean, mean, stdDev)
	want := pdf * float64(count) * binWidth
	got := CurveHeight(mean, mean, stdDev, count, binWidth)
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("curve height must equal pdf*count*binWidth: expected %f, got %f", want, got)
	}
}

// Integrated over the bins, the scaled curve approximately recovers the
// sample size, which is what makes the overlay share the frequency axis.
func TestCurveHeight_ApproximatesBinCounts(t *testing.T) {
	mean, stdDev := 0.0, 1.0
	count := 10000
	binWidth := 0.5

	var total float64
	for x := -4.0; x <= 4.0; x += binWidth {
		total += CurveHeight(x+binWidth/2, mean, stdDev, count, binWidth)
	}
	if math.Abs(total-float64(count)) > float64(count)/100 {
		t.Errorf("scaled curve should sum to ~n across the domain: got %f for n=%d", total, count)
	}
}

func TestCurvePoints_SpansHistogramDomain(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	bins := Histogram(values, 4, 400)
	s := Describe(values)

	curve := CurvePoints(bins, s.Mean, s.StdDev, s.Count, 50)
	if len(curve) != 51 {
		t.Fatalf("expected steps+1 samples, got %d", len(curve))
	}
	if curve[0].X != bins[0].LowerBound {
		t.Errorf("curve must start at the padded domain edge: %f vs %f",
			curve[0].X, bins[0].LowerBound)
	}
	last := curve[len(curve)-1]
	if !almostEqual(last.X, bins[len(bins)-1].UpperBound, 1e-9) {
		t.Errorf("curve must end at the padded domain edge: %f", last.X)
	}
}

func TestCurvePoints_EmptyBins(t *testing.T) {
	if got := CurvePoints(nil, 0, 1, 10, 10); len(got) != 0 {
		t.Errorf("no bins, no curve: got %d points", len(got))
	}
}
