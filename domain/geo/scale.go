package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaleKind selects the value-to-color mapping mode a caller requests.
type ScaleKind string

const (
	// Sequential interpolates low to high across the observed range.
	Sequential ScaleKind = "sequential"
	// Diverging interpolates through three stops around zero. It only
	// takes effect when the observed minimum is negative; otherwise the
	// scale degrades to sequential.
	Diverging ScaleKind = "diverging"
)

// ColorScale maps a region value to a hex color.
type ColorScale interface {
	Color(value float64) string
}

// Extent returns the scale domain for a value set. Zero is always
// included in the domain even if all data is positive, so the color
// scale never clips unexpectedly low values. An empty input yields
// the degenerate [0, 0] domain.
func Extent(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > 0 {
		min = 0
	}
	return min, max
}

// ScaleStops holds the interpolation anchor colors.
type ScaleStops struct {
	Low  string
	Mid  string
	High string
}

// DefaultStops are the bundled choropleth anchors: blue for negative,
// near-white at zero, red toward the observed maximum.
var DefaultStops = ScaleStops{Low: "#2E86C1", Mid: "#F4F6F7", High: "#C0392B"}

// NewScale builds the color scale for a value set. Diverging mode is
// honored only when the observed minimum is negative.
func NewScale(kind ScaleKind, values []float64, stops ScaleStops) ColorScale {
	min, max := Extent(values)
	if kind == Diverging && min < 0 {
		return &divergingScale{stops: stops, min: min, max: max}
	}
	return &sequentialScale{stops: stops, min: min, max: max}
}

type sequentialScale struct {
	stops    ScaleStops
	min, max float64
}

func (s *sequentialScale) Color(value float64) string {
	// A zero-width domain has no gradient; neutral matches the
	// diverging scale's degenerate branches.
	if s.max == s.min {
		return s.stops.Mid
	}
	t := (value - s.min) / (s.max - s.min)
	return lerpHex(s.stops.Mid, s.stops.High, clamp01(t))
}

type divergingScale struct {
	stops    ScaleStops
	min, max float64
}

func (s *divergingScale) Color(value float64) string {
	if value < 0 {
		if s.min == 0 {
			return s.stops.Mid
		}
		return lerpHex(s.stops.Mid, s.stops.Low, clamp01(value/s.min))
	}
	if s.max == 0 {
		return s.stops.Mid
	}
	return lerpHex(s.stops.Mid, s.stops.High, clamp01(value/s.max))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lerpHex linearly interpolates two #RRGGBB colors. Unparseable inputs
// return the from color unchanged.
func lerpHex(from, to string, t float64) string {
	fr, fg, fb, err := parseHex(from)
	if err != nil {
		return from
	}
	tr, tg, tb, err := parseHex(to)
	if err != nil {
		return from
	}
	r := int(float64(fr) + (float64(tr)-float64(fr))*t)
	g := int(float64(fg) + (float64(tg)-float64(fg))*t)
	b := int(float64(fb) + (float64(tb)-float64(fb))*t)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHex(color string) (r, g, b int64, err error) {
	c := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(c) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", color)
	}
	if r, err = strconv.ParseInt(c[0:2], 16, 0); err != nil {
		return 0, 0, 0, err
	}
	if g, err = strconv.ParseInt(c[2:4], 16, 0); err != nil {
		return 0, 0, 0, err
	}
	if b, err = strconv.ParseInt(c[4:6], 16, 0); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}
