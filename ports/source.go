package ports

import (
	"context"

	"chartcore/domain/record"
)

// RecordSource supplies raw records for a chart's load cycle. A query
// failure is fatal for that cycle: the error message is surfaced
// verbatim to the host, prefixed with the fixed data-load label.
type RecordSource interface {
	Query(ctx context.Context, query string) ([]record.Raw, error)
}
