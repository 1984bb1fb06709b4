// Package app orchestrates chart load cycles over the domain engines
// and the external collaborator ports.
package app

import (
	"context"
	"fmt"

	"chartcore/domain/aggregate"
	"chartcore/domain/core"
	"chartcore/domain/prepare"
	"chartcore/internal"
	"chartcore/ports"
)

// LoadRequest describes one chart load cycle.
type LoadRequest struct {
	Query          string
	GroupBy        string
	ValueField     string
	Operation      aggregate.Operation
	RequiredFields []string
}

// LoadResult is a completed load cycle. When the batch carries an
// input-shape error, Points is empty and the error string travels on
// the batch rather than as a Go error: the caller fixes configuration,
// nothing fatal happened.
type LoadResult struct {
	CycleID  core.LoadCycleID  `json:"cycleId"`
	LoadedAt core.Timestamp    `json:"loadedAt"`
	Batch    prepare.Batch     `json:"batch"`
	Points   []aggregate.Point `json:"points"`
}

// ChartService runs load cycles for one family of chart widgets.
type ChartService struct {
	source   ports.RecordSource
	notifier ports.Notifier
	logger   *internal.Logger
	limit    int
}

// NewChartService wires a chart service. notifier may be nil when the
// host has no toast mechanism; limit <= 0 uses the default ceiling.
func NewChartService(source ports.RecordSource, notifier ports.Notifier, logger *internal.Logger, limit int) *ChartService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &ChartService{source: source, notifier: notifier, logger: logger, limit: limit}
}

// Load fetches, prepares and aggregates records for one chart.
// A remote fetch failure is fatal for the cycle and is returned with
// the fixed data-load prefix; truncation is not an error and only
// triggers a non-blocking notification before the render proceeds.
func (s *ChartService) Load(ctx context.Context, req LoadRequest) (*LoadResult, error) {
	records, err := s.source.Query(ctx, req.Query)
	if err != nil {
		return nil, core.NewFetchError(err)
	}

	batch := prepare.Prepare(records, prepare.Options{
		RequiredFields: req.RequiredFields,
		Limit:          s.limit,
	})

	result := &LoadResult{
		CycleID:  core.LoadCycleID(core.NewID()),
		LoadedAt: core.Now(),
		Batch:    batch,
		Points:   []aggregate.Point{},
	}
	if !batch.OK() {
		s.logger.Debug("prepare rejected records: %s", batch.Err)
		return result, nil
	}

	if batch.Truncated {
		s.notifyTruncation(batch)
	}

	result.Points = aggregate.Aggregate(batch.Data, req.GroupBy, req.ValueField, req.Operation)
	return result, nil
}

func (s *ChartService) notifyTruncation(batch prepare.Batch) {
	s.logger.Warn("record set truncated: showing %d of %d", len(batch.Data), batch.OriginalCount)
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ports.Notification{
		Title:    "Data limited",
		Message:  fmt.Sprintf("Showing the first %d of %d records.", len(batch.Data), batch.OriginalCount),
		Severity: ports.SeverityWarning,
	})
}
