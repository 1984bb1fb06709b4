package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDescribe_KnownValues(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Count != 8 {
		t.Errorf("expected count 8, got %d", s.Count)
	}
	if !almostEqual(s.Mean, 5, 1e-9) {
		t.Errorf("expected mean 5, got %f", s.Mean)
	}
	// Population standard deviation of this classic sample is exactly 2.
	if !almostEqual(s.StdDev, 2, 1e-9) {
		t.Errorf("expected population stddev 2, got %f", s.StdDev)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("expected min 2 max 9, got %f %f", s.Min, s.Max)
	}
}

func TestDescribe_MedianEvenLength(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2})
	if !almostEqual(s.Median, 2.5, 1e-9) {
		t.Errorf("even-length median averages the central pair: got %f", s.Median)
	}
}

func TestDescribe_MedianOddLength(t *testing.T) {
	s := Describe([]float64{9, 1, 5})
	if !almostEqual(s.Median, 5, 1e-9) {
		t.Errorf("odd-length median is the central value: got %f", s.Median)
	}
}

func TestDescribe_Empty(t *testing.T) {
	s := Describe(nil)
	if s != (Summary{}) {
		t.Errorf("empty input must yield the zero summary, got %+v", s)
	}
}

func TestDescribe_MeanBetweenMinAndMax(t *testing.T) {
	values := []float64{3.2, -1.5, 8.8, 0.4, 12.1, -7.7}
	s := Describe(values)
	if s.Count != len(values) {
		t.Errorf("count must equal input length")
	}
	if s.Min > s.Mean || s.Mean > s.Max {
		t.Errorf("min <= mean <= max violated: %f %f %f", s.Min, s.Mean, s.Max)
	}
}
