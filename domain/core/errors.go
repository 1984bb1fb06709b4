package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input-shape errors. These are recoverable by the caller correcting
	// configuration and are surfaced as strings on a PreparedBatch, never
	// as panics during a render cycle.
	ErrNoRecords     = errors.New("records are required")
	ErrNotASequence  = errors.New("records must be an array")
	ErrEmptyRecords  = errors.New("records are empty")
	ErrMissingFields = errors.New("records missing required fields")
	ErrNoGeography   = errors.New("geography has no features")

	// External-fetch errors. Fatal for the current load cycle: the chart
	// stops with no partial render.
	ErrFetchFailed     = errors.New("data fetch failed")
	ErrGeographyFailed = errors.New("geography load failed")
)

// DataLoadErrorPrefix is prepended verbatim to remote-fetch failures
// before they are surfaced to the host component.
const DataLoadErrorPrefix = "Error loading chart data"

// NewFetchError wraps a remote-source failure with the fixed user-facing label.
func NewFetchError(err error) error {
	return fmt.Errorf("%s: %w: %w", DataLoadErrorPrefix, ErrFetchFailed, err)
}

// NewGeographyError wraps a geography-resource failure.
func NewGeographyError(err error) error {
	return fmt.Errorf("%w: %v", ErrGeographyFailed, err)
}

// NewMissingFieldsError enumerates every missing field name once.
func NewMissingFieldsError(fields []string) error {
	return fmt.Errorf("%w: %v", ErrMissingFields, fields)
}

// Error checking helpers
func IsShapeError(err error) bool {
	return errors.Is(err, ErrNoRecords) ||
		errors.Is(err, ErrNotASequence) ||
		errors.Is(err, ErrEmptyRecords) ||
		errors.Is(err, ErrMissingFields)
}

func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetchFailed) ||
		errors.Is(err, ErrGeographyFailed)
}
