package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFetchError_PrefixAndSentinel(t *testing.T) {
	err := NewFetchError(errors.New("connection refused"))
	if !strings.HasPrefix(err.Error(), DataLoadErrorPrefix) {
		t.Errorf("fetch errors carry the fixed prefix, got %q", err.Error())
	}
	if !errors.Is(err, ErrFetchFailed) {
		t.Error("fetch errors must wrap the fetch sentinel")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("the cause message travels verbatim, got %q", err.Error())
	}
}

func TestErrorTaxonomy(t *testing.T) {
	shape := []error{
		ErrNoRecords,
		ErrNotASequence,
		ErrEmptyRecords,
		NewMissingFieldsError([]string{"a", "b"}),
	}
	for _, err := range shape {
		if !IsShapeError(err) {
			t.Errorf("%v must classify as a shape error", err)
		}
		if IsFetchError(err) {
			t.Errorf("%v must not classify as a fetch error", err)
		}
	}

	fetch := []error{
		NewFetchError(errors.New("timeout")),
		NewGeographyError(errors.New("404")),
	}
	for _, err := range fetch {
		if !IsFetchError(err) {
			t.Errorf("%v must classify as a fetch error", err)
		}
		if IsShapeError(err) {
			t.Errorf("%v must not classify as a shape error", err)
		}
	}
}

func TestNewMissingFieldsError_NamesEveryField(t *testing.T) {
	err := NewMissingFieldsError([]string{"alpha", "beta"})
	for _, f := range []string{"alpha", "beta"} {
		if !strings.Contains(err.Error(), f) {
			t.Errorf("expected %q in %q", f, err.Error())
		}
	}
}
