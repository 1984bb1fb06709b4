// Package record models the open tabular rows every chart consumes.
//
// A Raw record is an open mapping from field name to an arbitrary scalar
// or date value. Records arrive from a remote query or a caller-supplied
// collection, so field access goes through typed accessors with explicit
// coercion rules instead of direct map reads.
package record

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Raw is a single tabular record with no required shape.
type Raw map[string]any

// Get returns the raw value for a field and whether the field is present.
// A present field holding nil reports ok=true with a nil value.
func Get(r Raw, field string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[field]
	return v, ok
}

// Has reports whether the field exists on the record, regardless of value.
func Has(r Raw, field string) bool {
	_, ok := Get(r, field)
	return ok
}

// Number coerces a field to float64. Missing fields, nil values and
// unparseable strings coerce to NaN; callers that need the
// NaN-as-zero aggregation rule apply it via NumberOrZero.
func Number(r Raw, field string) float64 {
	v, ok := Get(r, field)
	if !ok || v == nil {
		return math.NaN()
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case time.Time:
		return float64(n.UnixMilli())
	default:
		return math.NaN()
	}
}

// NumberOrZero coerces a field to float64 with NaN treated as 0.
// This is the reduction rule Sum and Average aggregations use.
func NumberOrZero(r Raw, field string) float64 {
	n := Number(r, field)
	if math.IsNaN(n) {
		return 0
	}
	return n
}

// String returns the string form of a field value. Nil values and missing
// fields stringify to the empty string; other values use their default
// formatting, so 0 stays "0" and false stays "false".
func String(r Raw, field string) string {
	v, ok := Get(r, field)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
