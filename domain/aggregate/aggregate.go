// Package aggregate groups prepared records and reduces each group by a
// single operation, producing the label/value points bar, donut and
// choropleth charts plot directly.
package aggregate

import (
	"fmt"
	"sort"

	"chartcore/domain/record"
)

// Operation selects the per-group reduction.
type Operation string

const (
	Sum     Operation = "Sum"
	Count   Operation = "Count"
	Average Operation = "Average"
)

// NullLabel is the group label for records whose group key is nil or
// absent. Other falsy-but-defined keys (0, "") keep their own string form.
const NullLabel = "Null"

// Point is one reduced group.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type group struct {
	label string
	sum   float64
	count int
}

// Aggregate groups records by groupBy and reduces each group with op.
// The result is sorted by value descending; ties keep the
// first-occurrence order of the group key during the forward pass.
//
// Unknown operations reduce as Count. Numeric coercion treats NaN as 0.
func Aggregate(records []record.Raw, groupBy, valueField string, op Operation) []Point {
	if len(records) == 0 || groupBy == "" {
		return []Point{}
	}

	index := make(map[string]int)
	groups := make([]*group, 0)

	for _, r := range records {
		label := groupLabel(r, groupBy)
		i, seen := index[label]
		if !seen {
			i = len(groups)
			index[label] = i
			groups = append(groups, &group{label: label})
		}
		g := groups[i]
		g.count++
		if op == Sum || op == Average {
			g.sum += record.NumberOrZero(r, valueField)
		}
	}

	points := make([]Point, len(groups))
	for i, g := range groups {
		points[i] = Point{Label: g.label, Value: reduce(g, op)}
	}

	// Stable sort preserves first-occurrence order between equal values.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	return points
}

func groupLabel(r record.Raw, field string) string {
	v, ok := record.Get(r, field)
	if !ok || v == nil {
		return NullLabel
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func reduce(g *group, op Operation) float64 {
	switch op {
	case Sum:
		return g.sum
	case Average:
		if g.count == 0 {
			return 0
		}
		return g.sum / float64(g.count)
	default:
		// Count, and the explicit fallback for unknown operations.
		return float64(g.count)
	}
}
