package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"chartcore/domain/aggregate"
	"chartcore/domain/core"
	"chartcore/domain/geo"
	"chartcore/domain/prepare"
	"chartcore/domain/record"
	"chartcore/internal"
	"chartcore/ports"
)

// ChoroplethRequest describes one map chart load.
type ChoroplethRequest struct {
	Query        string
	GroupBy      string
	ValueField   string
	Operation    aggregate.Operation
	GeographyURL string
	IDProperty   string
	NameProperty string
	ScaleKind    geo.ScaleKind
	Stops        geo.ScaleStops
}

// RegionDatum is one colored (or data-less) geography feature.
// HasData=false means the region has no value: the host renders it in
// its neutral color and Color is left empty.
type RegionDatum struct {
	Feature geo.Feature `json:"feature"`
	Value   float64     `json:"value"`
	HasData bool        `json:"hasData"`
	Color   string      `json:"color,omitempty"`
}

// ChoroplethView is everything a map chart needs to draw.
type ChoroplethView struct {
	Regions   []RegionDatum     `json:"regions"`
	Points    []aggregate.Point `json:"points"`
	Truncated bool              `json:"truncated"`
}

// GeoService builds choropleth views: concurrent record + geography
// load, aggregation, region matching and value-to-color scaling.
type GeoService struct {
	source     ports.RecordSource
	geography  ports.GeographyLoader
	logger     *internal.Logger
	limit      int
	defaultURL string
}

// NewGeoService wires a geo service. limit <= 0 uses the default
// record ceiling; defaultGeographyURL is used by requests that name no
// geography document of their own.
func NewGeoService(source ports.RecordSource, geography ports.GeographyLoader, logger *internal.Logger, limit int, defaultGeographyURL string) *GeoService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &GeoService{
		source:     source,
		geography:  geography,
		logger:     logger,
		limit:      limit,
		defaultURL: defaultGeographyURL,
	}
}

// Load fetches records and geography concurrently and assembles the
// choropleth view. Either fetch failing is fatal for this chart's
// initialization; no partial render is attempted.
func (s *GeoService) Load(ctx context.Context, req ChoroplethRequest) (*ChoroplethView, error) {
	var (
		records  []record.Raw
		features []geo.Feature
	)

	geographyURL := req.GeographyURL
	if geographyURL == "" {
		geographyURL = s.defaultURL
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.source.Query(gctx, req.Query)
		if err != nil {
			return core.NewFetchError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		features, err = s.geography.Load(gctx, geographyURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := prepare.Prepare(records, prepare.Options{Limit: s.limit})
	if !batch.OK() {
		return &ChoroplethView{Regions: []RegionDatum{}, Points: []aggregate.Point{}}, nil
	}
	if batch.Truncated {
		s.logger.Warn("choropleth data truncated: %d of %d records", len(batch.Data), batch.OriginalCount)
	}

	points := aggregate.Aggregate(batch.Data, req.GroupBy, req.ValueField, req.Operation)
	matcher := geo.NewMatcher(features, req.IDProperty, req.NameProperty)
	values := geo.ValueIndex(points)

	matched := make([]float64, 0, len(points))
	for _, f := range features {
		if v, ok := matcher.RegionValue(values, f); ok {
			matched = append(matched, v)
		}
	}

	stops := req.Stops
	if stops == (geo.ScaleStops{}) {
		stops = geo.DefaultStops
	}
	scale := geo.NewScale(req.ScaleKind, matched, stops)

	regions := make([]RegionDatum, 0, len(features))
	for _, f := range features {
		datum := RegionDatum{Feature: f}
		if v, ok := matcher.RegionValue(values, f); ok {
			datum.Value = v
			datum.HasData = true
			datum.Color = scale.Color(v)
		}
		regions = append(regions, datum)
	}

	return &ChoroplethView{
		Regions:   regions,
		Points:    points,
		Truncated: batch.Truncated,
	}, nil
}
