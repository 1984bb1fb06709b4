package stats

import (
	"math"
)

// minBinWidthPx is the narrowest bin worth drawing; the container width
// hint divided by this caps the bin count for narrow containers.
const minBinWidthPx = 20

// Bin is one histogram interval. Bins partition the padded domain into
// contiguous half-open intervals [LowerBound, UpperBound), except the
// last bin, which is closed.
type Bin struct {
	LowerBound float64   `json:"lowerBound"`
	UpperBound float64   `json:"upperBound"`
	Members    []float64 `json:"members"`
}

// Histogram bins values into equal-width intervals.
//
// A positive binCount is used exactly. Otherwise the count comes from
// Sturges' rule, ceil(log2(n)) + 1, capped at floor(widthPx/20) so a
// narrow container never receives more bins than can legibly be drawn.
//
// The observed [min, max] domain is padded by 2% of the range on both
// ends before binning; a zero-range domain falls back to a pad of 1 so
// single-valued inputs still produce a drawable bin.
func Histogram(values []float64, binCount int, widthPx float64) []Bin {
	n := len(values)
	if n == 0 {
		return []Bin{}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	pad := 0.02 * rng
	if rng == 0 {
		pad = 1
	}
	lo, hi := min-pad, max+pad

	bins := binCount
	if bins <= 0 {
		sturges := int(math.Ceil(math.Log2(float64(n)))) + 1
		legible := int(math.Floor(widthPx / minBinWidthPx))
		if legible < 1 {
			legible = 1
		}
		bins = sturges
		if legible < bins {
			bins = legible
		}
		if bins < 1 {
			bins = 1
		}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{
			LowerBound: lo + float64(i)*width,
			UpperBound: lo + float64(i+1)*width,
		}
	}
	// Close the last bin exactly on the padded upper edge.
	out[bins-1].UpperBound = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Members = append(out[idx].Members, v)
	}
	return out
}

// BinWidth returns the shared width of a histogram's bins, 0 for an
// empty histogram.
func BinWidth(bins []Bin) float64 {
	if len(bins) == 0 {
		return 0
	}
	return bins[0].UpperBound - bins[0].LowerBound
}
