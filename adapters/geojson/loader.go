// Package geojson fetches and decodes the geography documents spatial
// charts color. A failure here is fatal for the chart's initialization.
package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chartcore/domain/core"
	"chartcore/domain/geo"
	"chartcore/ports"
)

// featureCollection is the subset of the GeoJSON shape this core reads.
type featureCollection struct {
	Type     string        `json:"type"`
	Features []geo.Feature `json:"features"`
}

// Loader fetches GeoJSON documents over HTTP.
type Loader struct {
	client *http.Client
}

// NewLoader creates a geography loader. client == nil uses a default
// with a 30s timeout.
func NewLoader(client *http.Client) ports.GeographyLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{client: client}
}

// Load fetches and decodes a geography document.
func (l *Loader) Load(ctx context.Context, url string) ([]geo.Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.NewGeographyError(err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, core.NewGeographyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, core.NewGeographyError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewGeographyError(err)
	}
	return Parse(body)
}

// Parse decodes raw GeoJSON bytes into features.
func Parse(data []byte) ([]geo.Feature, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, core.NewGeographyError(err)
	}
	if len(fc.Features) == 0 {
		return nil, core.NewGeographyError(core.ErrNoGeography)
	}
	return fc.Features, nil
}
