// Package geo normalizes region identifiers and matches aggregated
// values onto geography features for map coloring.
//
// Matching is deliberately forgiving: an identifier that cannot be
// resolved silently leaves its region uncolored rather than failing the
// chart. The only fatal condition is a geography that fails to load.
package geo

import (
	"encoding/json"
	"strings"

	"chartcore/domain/aggregate"
)

// Feature is the slice of a GeoJSON feature this engine reads: the
// identifier, the property bag and the untouched geometry payload the
// drawing library consumes.
type Feature struct {
	ID         string          `json:"id"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// Property returns the string form of a named property, "" when absent.
func (f Feature) Property(name string) string {
	if f.Properties == nil || name == "" {
		return ""
	}
	v, ok := f.Properties[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.Trim(string(b), `"`)
}

// Lookup maps normalized identifiers and names to their feature.
// Built once per geography load and owned by one chart's Matcher.
type Lookup map[string]Feature

// Matcher owns the region lookup for a single chart instance.
type Matcher struct {
	lookup       Lookup
	idProperty   string
	nameProperty string
}

// NewMatcher remaps FIPS identifiers to short codes, then indexes every
// feature by its normalized identifier and (when present) its
// normalized display name. Rebuild the matcher if the geography changes.
func NewMatcher(features []Feature, idProperty, nameProperty string) *Matcher {
	m := &Matcher{
		lookup:       make(Lookup, len(features)*2),
		idProperty:   idProperty,
		nameProperty: nameProperty,
	}
	for _, f := range features {
		f.ID = RemapIdentifier(f.ID)
		if id := m.featureID(f); id != "" {
			m.lookup[NormalizeKey(id)] = f
		}
		if name := f.Property(nameProperty); name != "" {
			m.lookup[NormalizeKey(name)] = f
		}
	}
	return m
}

// Lookup exposes the built region lookup.
func (m *Matcher) Lookup() Lookup {
	return m.lookup
}

// FeatureFor resolves a raw dataset key to a feature.
func (m *Matcher) FeatureFor(rawKey string) (Feature, bool) {
	f, ok := m.lookup[NormalizeKey(rawKey)]
	return f, ok
}

// RegionValue finds the aggregated value for a feature. ok=false means
// "no data": callers render that as a distinct neutral color rather
// than extrapolating.
func (m *Matcher) RegionValue(values map[string]float64, f Feature) (float64, bool) {
	f.ID = RemapIdentifier(f.ID)
	if id := m.featureID(f); id != "" {
		if v, ok := values[NormalizeKey(id)]; ok {
			return v, true
		}
	}
	if name := f.Property(m.nameProperty); name != "" {
		if v, ok := values[NormalizeKey(name)]; ok {
			return v, true
		}
	}
	return 0, false
}

func (m *Matcher) featureID(f Feature) string {
	if m.idProperty != "" {
		if id := f.Property(m.idProperty); id != "" {
			return id
		}
	}
	return f.ID
}

// NormalizeKey trims and lowercases a raw region key. When the result
// matches a known region display name, the corresponding short code is
// substituted so name-keyed datasets match code-keyed geographies and
// vice versa.
func NormalizeKey(rawKey string) string {
	key := strings.ToLower(strings.TrimSpace(rawKey))
	if code, ok := stateCodeByName[key]; ok {
		return strings.ToLower(code)
	}
	return key
}

// RemapIdentifier converts a numeric FIPS identifier to its short alpha
// code. Identifiers missing from the table pass through unchanged.
func RemapIdentifier(id string) string {
	if code, ok := uspsByFIPS[strings.TrimSpace(id)]; ok {
		return code
	}
	return id
}

// ValueIndex keys aggregated points by their normalized label for
// region matching.
func ValueIndex(points []aggregate.Point) map[string]float64 {
	values := make(map[string]float64, len(points))
	for _, p := range points {
		values[NormalizeKey(p.Label)] = p.Value
	}
	return values
}
