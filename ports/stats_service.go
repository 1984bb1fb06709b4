package ports

import (
	"context"

	"chartcore/domain/stats"
)

// StatsService is the optional remote statistics/correlation service.
// Any failure here is non-fatal: the caller falls back to local
// computation over the same record set and logs a warning, never
// surfacing the error to the end user.
type StatsService interface {
	Describe(ctx context.Context, query, field string) (stats.Summary, error)
	Correlate(ctx context.Context, query, fieldX, fieldY string) (stats.Correlation, error)
}
