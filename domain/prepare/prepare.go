// Package prepare validates and safely truncates raw record sets before
// any aggregation or statistics run on them.
package prepare

import (
	"sort"

	"chartcore/domain/core"
	"chartcore/domain/record"
)

// DefaultLimit is the record-count ceiling applied when no explicit
// limit is configured.
const DefaultLimit = 2000

// Options configures a single prepare pass.
type Options struct {
	// RequiredFields must be present on every retained record.
	RequiredFields []string
	// Limit caps the number of retained records; <= 0 uses DefaultLimit.
	Limit int
}

// Batch is the immutable result of one prepare pass.
// Invariant: len(Data) <= min(OriginalCount, limit), and
// Truncated is true iff OriginalCount > len(Data). Error batches carry
// no counts at all so the invariant holds for every returned value.
type Batch struct {
	Data          []record.Raw `json:"data"`
	Truncated     bool         `json:"truncated"`
	OriginalCount int          `json:"originalCount"`
	Err           string       `json:"error,omitempty"`
}

// OK reports whether the batch carries usable data.
func (b Batch) OK() bool {
	return b.Err == ""
}

// Prepare runs the default pipeline: validate shape, truncate, then
// validate required fields against the retained subset only.
//
// The ordering is deliberate. Field validation runs after truncation so
// that rows beyond the ceiling never count toward missing-field
// detection; validating the full input first would change which rows
// can fail a 2000+ row dataset.
func Prepare(input any, opts Options) Batch {
	records, errMsg := coerce(input)
	if errMsg != "" {
		return Batch{Err: errMsg}
	}

	batch := Truncate(records, opts.Limit)

	if missing := missingFields(batch.Data, opts.RequiredFields); len(missing) > 0 {
		return Batch{Err: core.NewMissingFieldsError(missing).Error()}
	}
	return batch
}

// Truncate keeps the first limit records in their original order.
// limit <= 0 falls back to DefaultLimit.
func Truncate(records []record.Raw, limit int) Batch {
	if limit <= 0 {
		limit = DefaultLimit
	}
	original := len(records)
	kept := records
	if original > limit {
		kept = records[:limit]
	}
	return Batch{
		Data:          kept,
		Truncated:     original > len(kept),
		OriginalCount: original,
	}
}

// coerce normalizes the caller-supplied collection into []record.Raw,
// returning a distinct error message per shape failure.
func coerce(input any) ([]record.Raw, string) {
	if input == nil {
		return nil, core.ErrNoRecords.Error()
	}

	var records []record.Raw
	switch in := input.(type) {
	case []record.Raw:
		records = in
	case []map[string]any:
		records = make([]record.Raw, len(in))
		for i, m := range in {
			records[i] = record.Raw(m)
		}
	case []any:
		records = make([]record.Raw, 0, len(in))
		for _, v := range in {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, core.ErrNotASequence.Error()
			}
			records = append(records, record.Raw(m))
		}
	default:
		return nil, core.ErrNotASequence.Error()
	}

	if len(records) == 0 {
		return nil, core.ErrEmptyRecords.Error()
	}
	return records, ""
}

// missingFields collects every required field absent from at least one
// record, each named once regardless of how many rows miss it.
func missingFields(records []record.Raw, required []string) []string {
	if len(required) == 0 {
		return nil
	}
	missing := make(map[string]bool)
	for _, r := range records {
		for _, f := range required {
			if !record.Has(r, f) {
				missing[f] = true
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for f := range missing {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}
