package ports

import (
	"context"

	"chartcore/domain/geo"
)

// GeographyLoader fetches the GeoJSON-shaped geography document for a
// spatial chart. Load failures (network or malformed JSON) are fatal
// for that chart's initialization.
type GeographyLoader interface {
	Load(ctx context.Context, url string) ([]geo.Feature, error)
}
