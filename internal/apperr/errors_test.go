package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vectrust/benchcmp/internal/apperr"
)

func TestNewNotComparable(t *testing.T) {
	err := apperr.NewNotComparable("no common benchmarks")

	if err.Error() != "no common benchmarks" {
		t.Errorf("expected 'no common benchmarks', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewNotComparableWrap(t *testing.T) {
	inner := fmt.Errorf("no rust results")
	err := apperr.NewNotComparableWrap("cannot compare", inner)

	if err.Error() != "cannot compare: no rust results" {
		t.Errorf("expected 'cannot compare: no rust results', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNotComparableError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewNotComparable("missing nodejs data")

	wrapped := fmt.Errorf("comparison failed: %w", original)
	doubleWrapped := fmt.Errorf("run aborted: %w", wrapped)

	var nce *apperr.NotComparableError
	if !errors.As(doubleWrapped, &nce) {
		t.Fatal("errors.As should find NotComparableError through double wrapping")
	}
	if nce.Message != "missing nodejs data" {
		t.Errorf("expected 'missing nodejs data', got %q", nce.Message)
	}
}

func TestNotComparableError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("disk read failed")
	wrapped := fmt.Errorf("run aborted: %w", plain)

	var nce *apperr.NotComparableError
	if errors.As(wrapped, &nce) {
		t.Fatal("errors.As should NOT find NotComparableError in plain error chain")
	}
}
