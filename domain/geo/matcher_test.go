package geo

import (
	"testing"

	"chartcore/domain/aggregate"
)

func stateFeatures() []Feature {
	return []Feature{
		{ID: "06", Properties: map[string]any{"STUSPS": "CA", "NAME": "California"}},
		{ID: "48", Properties: map[string]any{"STUSPS": "TX", "NAME": "Texas"}},
		{ID: "36", Properties: map[string]any{"STUSPS": "NY", "NAME": "New York"}},
	}
}

func TestNormalizeKey_TrimAndLowercase(t *testing.T) {
	if got := NormalizeKey("  CA  "); got != "ca" {
		t.Errorf("expected ca, got %q", got)
	}
}

func TestNormalizeKey_NameToCodeAlias(t *testing.T) {
	if got := NormalizeKey("California"); got != "ca" {
		t.Errorf("state names must substitute their code: got %q", got)
	}
	if got := NormalizeKey(" new york "); got != "ny" {
		t.Errorf("expected ny, got %q", got)
	}
	// Unknown names pass through lowercased.
	if got := NormalizeKey("Atlantis"); got != "atlantis" {
		t.Errorf("expected atlantis, got %q", got)
	}
}

func TestRemapIdentifier_FIPSToUSPS(t *testing.T) {
	if got := RemapIdentifier("06"); got != "CA" {
		t.Errorf("expected CA, got %q", got)
	}
	// Identifiers missing from the table keep their original form.
	if got := RemapIdentifier("99"); got != "99" {
		t.Errorf("unmapped identifiers must pass through, got %q", got)
	}
}

func TestMatcher_IndexesByIDAndName(t *testing.T) {
	m := NewMatcher(stateFeatures(), "STUSPS", "NAME")

	byCode, ok := m.FeatureFor("TX")
	if !ok {
		t.Fatal("expected lookup by code to succeed")
	}
	byName, ok := m.FeatureFor("Texas")
	if !ok {
		t.Fatal("expected lookup by name to succeed")
	}
	if byCode.Property("NAME") != byName.Property("NAME") {
		t.Error("code and name lookups must resolve the same feature")
	}
}

func TestMatcher_RegionValue(t *testing.T) {
	m := NewMatcher(stateFeatures(), "STUSPS", "NAME")
	// Dataset keyed by full names, geography keyed by codes.
	points := []aggregate.Point{
		{Label: "California", Value: 42},
		{Label: "Texas", Value: 7},
	}
	values := ValueIndex(points)

	v, ok := m.RegionValue(values, stateFeatures()[0])
	if !ok || v != 42 {
		t.Errorf("expected California=42, got %v ok=%v", v, ok)
	}

	// New York has no datum: no data, not zero.
	if _, ok := m.RegionValue(values, stateFeatures()[2]); ok {
		t.Error("regions without data must report ok=false")
	}
}

func TestMatcher_FIPSKeyedGeography(t *testing.T) {
	// Geography without a usable id property falls back to the feature
	// ID, which the FIPS remap converts at build time.
	features := []Feature{
		{ID: "06", Properties: map[string]any{"NAME": "California"}},
	}
	m := NewMatcher(features, "", "NAME")

	values := ValueIndex([]aggregate.Point{{Label: "CA", Value: 3}})
	v, ok := m.RegionValue(values, features[0])
	if !ok || v != 3 {
		t.Errorf("FIPS-keyed features must match code-keyed data, got %v ok=%v", v, ok)
	}
}

func TestFeature_Property(t *testing.T) {
	f := Feature{Properties: map[string]any{"NAME": "Ohio", "DENSITY": 109.9}}
	if got := f.Property("NAME"); got != "Ohio" {
		t.Errorf("expected Ohio, got %q", got)
	}
	if got := f.Property("DENSITY"); got != "109.9" {
		t.Errorf("non-string properties stringify, got %q", got)
	}
	if got := f.Property("MISSING"); got != "" {
		t.Errorf("missing properties yield empty, got %q", got)
	}
}
