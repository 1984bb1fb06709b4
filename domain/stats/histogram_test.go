package stats

import (
	"math"
	"testing"
)

func sequence(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return values
}

func TestHistogram_ExplicitBinCount(t *testing.T) {
	bins := Histogram(sequence(100), 5, 400)
	if len(bins) != 5 {
		t.Fatalf("expected exactly 5 bins, got %d", len(bins))
	}
}

func TestHistogram_WidthCapsSturges(t *testing.T) {
	// Sturges for n=1e6 is ceil(log2(1e6))+1 = 21, over the 400px cap.
	bins := Histogram(sequence(1_000_000), 0, 400)
	if len(bins) > 20 {
		t.Errorf("400px allows at most floor(400/20)=20 bins, got %d", len(bins))
	}
}

func TestHistogram_SturgesWhenWide(t *testing.T) {
	// Sturges for n=64: ceil(log2(64))+1 = 7; a wide container keeps it.
	bins := Histogram(sequence(64), 0, 2000)
	if len(bins) != 7 {
		t.Errorf("expected Sturges' 7 bins, got %d", len(bins))
	}
}

func TestHistogram_DomainPadding(t *testing.T) {
	values := []float64{0, 100}
	bins := Histogram(values, 4, 400)
	if bins[0].LowerBound != -2 {
		t.Errorf("expected 2%% pad below min: lower=%f", bins[0].LowerBound)
	}
	if bins[len(bins)-1].UpperBound != 102 {
		t.Errorf("expected 2%% pad above max: upper=%f", bins[len(bins)-1].UpperBound)
	}
}

func TestHistogram_ZeroRangeFallbackPad(t *testing.T) {
	bins := Histogram([]float64{5, 5, 5}, 2, 400)
	if len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(bins))
	}
	if bins[0].LowerBound != 4 || bins[len(bins)-1].UpperBound != 6 {
		t.Errorf("zero-range domain must pad by 1: [%f, %f]",
			bins[0].LowerBound, bins[len(bins)-1].UpperBound)
	}
	var members int
	for _, b := range bins {
		members += len(b.Members)
	}
	if members != 3 {
		t.Errorf("every value must land in a bin, got %d members", members)
	}
}

func TestHistogram_BinsPartitionDomain(t *testing.T) {
	values := sequence(50)
	bins := Histogram(values, 0, 400)

	for i := 1; i < len(bins); i++ {
		if bins[i].LowerBound != bins[i-1].UpperBound {
			t.Errorf("bins must be contiguous at %d: %f vs %f",
				i, bins[i-1].UpperBound, bins[i].LowerBound)
		}
	}

	var members int
	for _, b := range bins {
		members += len(b.Members)
		for _, v := range b.Members {
			if v < b.LowerBound || v > b.UpperBound {
				t.Errorf("member %f outside bin [%f, %f)", v, b.LowerBound, b.UpperBound)
			}
		}
	}
	if members != len(values) {
		t.Errorf("expected %d members across bins, got %d", len(values), members)
	}
}

func TestHistogram_MaxValueLandsInLastClosedBin(t *testing.T) {
	values := sequence(10)
	bins := Histogram(values, 3, 400)
	last := bins[len(bins)-1]
	found := false
	for _, v := range last.Members {
		if v == 9 {
			found = true
		}
	}
	if !found {
		t.Error("maximum value must land in the closed last bin")
	}
}

func TestHistogram_Empty(t *testing.T) {
	if got := Histogram(nil, 0, 400); len(got) != 0 {
		t.Errorf("empty input must yield no bins, got %d", len(got))
	}
}

func TestHistogram_NarrowContainerStillBins(t *testing.T) {
	bins := Histogram(sequence(100), 0, 10)
	if len(bins) != 1 {
		t.Errorf("a container narrower than one legible bin still gets 1 bin, got %d", len(bins))
	}
	if math.IsNaN(BinWidth(bins)) || BinWidth(bins) <= 0 {
		t.Errorf("bin width must be positive, got %f", BinWidth(bins))
	}
}
