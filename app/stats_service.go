package app

import (
	"context"
	"math"

	"chartcore/domain/core"
	"chartcore/domain/record"
	"chartcore/domain/stats"
	"chartcore/internal"
	"chartcore/ports"
)

// StatsService computes chart statistics, preferring the remote
// statistics service and falling back to local computation over the
// same record set when the remote call fails. The fallback is silent
// toward the end user; only a warning is logged.
type StatsService struct {
	remote ports.StatsService
	source ports.RecordSource
	logger *internal.Logger
}

// NewStatsService wires a stats service. remote may be nil to force
// local computation.
func NewStatsService(remote ports.StatsService, source ports.RecordSource, logger *internal.Logger) *StatsService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &StatsService{remote: remote, source: source, logger: logger}
}

// DescribeField returns descriptive statistics for one numeric field.
func (s *StatsService) DescribeField(ctx context.Context, query, field string) (stats.Summary, error) {
	if s.remote != nil {
		summary, err := s.remote.Describe(ctx, query, field)
		if err == nil {
			return summary, nil
		}
		s.logger.Warn("remote describe failed, computing locally: %v", err)
	}

	records, err := s.source.Query(ctx, query)
	if err != nil {
		return stats.Summary{}, core.NewFetchError(err)
	}
	return stats.Describe(ExtractNumeric(records, field)), nil
}

// CorrelateFields returns Pearson's r and the fitted line for a field
// pair, plus the sample size used. The remote path does not report a
// sample size and returns 0 there.
func (s *StatsService) CorrelateFields(ctx context.Context, query, fieldX, fieldY string) (stats.Correlation, int, error) {
	if s.remote != nil {
		corr, err := s.remote.Correlate(ctx, query, fieldX, fieldY)
		if err == nil {
			return corr, 0, nil
		}
		s.logger.Warn("remote correlate failed, computing locally: %v", err)
	}

	records, err := s.source.Query(ctx, query)
	if err != nil {
		return stats.Correlation{}, 0, core.NewFetchError(err)
	}
	points := ExtractXY(records, fieldX, fieldY)
	return stats.Correlate(points), len(points), nil
}

// HistogramField bins one numeric field for a histogram chart and
// returns the bins plus the summary backing the normal overlay.
func (s *StatsService) HistogramField(ctx context.Context, query, field string, binCount int, widthPx float64) ([]stats.Bin, stats.Summary, error) {
	records, err := s.source.Query(ctx, query)
	if err != nil {
		return nil, stats.Summary{}, core.NewFetchError(err)
	}
	values := ExtractNumeric(records, field)
	return stats.Histogram(values, binCount, widthPx), stats.Describe(values), nil
}

// ExtractNumeric pulls a clean numeric slice out of raw records,
// dropping null, unparseable and non-finite values. This is the
// caller-side cleaning the statistics engine expects to already have
// happened.
func ExtractNumeric(records []record.Raw, field string) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		v := record.Number(r, field)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// ExtractXY pulls clean scatter points out of raw records, keeping only
// rows where both fields are finite numbers.
func ExtractXY(records []record.Raw, fieldX, fieldY string) []stats.XY {
	points := make([]stats.XY, 0, len(records))
	for _, r := range records {
		x := record.Number(r, fieldX)
		y := record.Number(r, fieldY)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, stats.XY{X: x, Y: y})
	}
	return points
}
