package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chartcore/app"
	"chartcore/domain/aggregate"
	"chartcore/domain/core"
	"chartcore/domain/geo"
	"chartcore/domain/stats"
	"chartcore/domain/theme"
)

// aggregateRequest is the JSON body for POST /api/charts/aggregate.
type aggregateRequest struct {
	Query          string   `json:"query"`
	GroupBy        string   `json:"groupBy"`
	ValueField     string   `json:"valueField"`
	Operation      string   `json:"operation"`
	RequiredFields []string `json:"requiredFields,omitempty"`
	DisplayConfig  string   `json:"displayConfig,omitempty"`
	Theme          string   `json:"theme,omitempty"`
	CustomColors   []string `json:"customColors,omitempty"`
}

type aggregateResponse struct {
	*app.LoadResult
	Colors  []string       `json:"colors"`
	Display map[string]any `json:"display"`
}

func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.charts.Load(r.Context(), app.LoadRequest{
		Query:          req.Query,
		GroupBy:        req.GroupBy,
		ValueField:     req.ValueField,
		Operation:      aggregate.Operation(req.Operation),
		RequiredFields: req.RequiredFields,
	})
	if err != nil {
		status := http.StatusBadGateway
		if !core.IsFetchError(err) {
			status = http.StatusInternalServerError
		}
		s.writeError(w, status, err)
		return
	}

	s.writeJSON(w, http.StatusOK, aggregateResponse{
		LoadResult: result,
		Colors:     theme.Colors(req.Theme, len(result.Points), req.CustomColors),
		Display:    app.ParseDisplayConfig(req.DisplayConfig),
	})
}

// choroplethRequest is the JSON body for POST /api/charts/choropleth.
type choroplethRequest struct {
	Query        string `json:"query"`
	GroupBy      string `json:"groupBy"`
	ValueField   string `json:"valueField"`
	Operation    string `json:"operation"`
	GeographyURL string `json:"geographyUrl"`
	IDProperty   string `json:"idProperty"`
	NameProperty string `json:"nameProperty"`
	Diverging    bool   `json:"diverging"`
}

func (s *Server) handleChoropleth(w http.ResponseWriter, r *http.Request) {
	if s.geo == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no geography loader configured"})
		return
	}

	var req choroplethRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	kind := geo.Sequential
	if req.Diverging {
		kind = geo.Diverging
	}
	view, err := s.geo.Load(r.Context(), app.ChoroplethRequest{
		Query:        req.Query,
		GroupBy:      req.GroupBy,
		ValueField:   req.ValueField,
		Operation:    aggregate.Operation(req.Operation),
		GeographyURL: req.GeographyURL,
		IDProperty:   req.IDProperty,
		NameProperty: req.NameProperty,
		ScaleKind:    kind,
	})
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := s.stats.DescribeField(r.Context(), q.Get("q"), q.Get("field"))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

type histogramResponse struct {
	Bins    []stats.Bin   `json:"bins"`
	Summary stats.Summary `json:"summary"`
	Curve   []stats.XY    `json:"curve"`
}

func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	binCount, _ := strconv.Atoi(q.Get("bins"))
	widthPx, err := strconv.ParseFloat(q.Get("width"), 64)
	if err != nil || widthPx <= 0 {
		widthPx = 400
	}

	bins, summary, err := s.stats.HistogramField(r.Context(), q.Get("q"), q.Get("field"), binCount, widthPx)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, histogramResponse{
		Bins:    bins,
		Summary: summary,
		Curve:   stats.CurvePoints(bins, summary.Mean, summary.StdDev, summary.Count, 0),
	})
}

type correlateResponse struct {
	stats.Correlation
	PValue *float64 `json:"pValue,omitempty"`
	N      int      `json:"n"`
}

func (s *Server) handleCorrelate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	corr, n, err := s.stats.CorrelateFields(r.Context(), q.Get("q"), q.Get("x"), q.Get("y"))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	resp := correlateResponse{Correlation: corr, N: n}
	if corr.R != nil && n >= 3 {
		p := stats.CorrelationPValue(*corr.R, n)
		resp.PValue = &p
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count <= 0 {
		count = len(theme.Palette(name))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"theme":  name,
		"colors": theme.Colors(name, count, nil),
	})
}
