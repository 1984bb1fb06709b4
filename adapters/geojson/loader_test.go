package geojson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chartcore/domain/core"
)

const statesDoc = `{
	"type": "FeatureCollection",
	"features": [
		{"id": "06", "properties": {"STUSPS": "CA", "NAME": "California"},
		 "geometry": {"type": "Polygon", "coordinates": []}},
		{"id": "48", "properties": {"STUSPS": "TX", "NAME": "Texas"},
		 "geometry": {"type": "Polygon", "coordinates": []}}
	]
}`

func TestParse(t *testing.T) {
	features, err := Parse([]byte(statesDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(features))
	}
	if features[0].ID != "06" || features[0].Property("NAME") != "California" {
		t.Errorf("unexpected first feature: %+v", features[0])
	}
	if len(features[0].Geometry) == 0 {
		t.Error("geometry payload must pass through untouched")
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not geojson"))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if !errors.Is(err, core.ErrGeographyFailed) {
		t.Errorf("parse failures must wrap the geography error, got %v", err)
	}
}

func TestParse_EmptyFeatures(t *testing.T) {
	_, err := Parse([]byte(`{"type": "FeatureCollection", "features": []}`))
	if !errors.Is(err, core.ErrNoGeography) {
		t.Errorf("an empty collection must report no geography, got %v", err)
	}
}

func TestLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statesDoc))
	}))
	defer srv.Close()

	features, err := NewLoader(srv.Client()).Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(features) != 2 {
		t.Errorf("expected 2 features, got %d", len(features))
	}
}

func TestLoader_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewLoader(srv.Client()).Load(context.Background(), srv.URL)
	if !errors.Is(err, core.ErrGeographyFailed) {
		t.Errorf("HTTP failures must wrap the geography error, got %v", err)
	}
}
