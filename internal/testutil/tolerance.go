package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSingleImpulse fails t unless data holds exactly one non-zero
// sample and that sample equals 1. It returns the impulse index.
func RequireSingleImpulse(t *testing.T, data []float64) int {
	t.Helper()
	idx := -1
	for i, v := range data {
		if v == 0 {
			continue
		}
		if idx >= 0 {
			t.Fatalf("second non-zero sample at %d (first at %d)", i, idx)
		}
		if v != 1 {
			t.Fatalf("index %d: got %v, want 1", i, v)
		}
		idx = i
	}
	if idx < 0 {
		t.Fatal("no non-zero sample")
	}
	return idx
}

// RequireUniformSpacing fails t unless axis is strictly increasing with
// spacing step within eps.
func RequireUniformSpacing(t *testing.T, axis []float64, step, eps float64) {
	t.Helper()
	for i := 1; i < len(axis); i++ {
		d := axis[i] - axis[i-1]
		if d <= 0 {
			t.Fatalf("index %d: axis not increasing (%v after %v)", i, axis[i], axis[i-1])
		}
		if math.Abs(d-step) > eps {
			t.Fatalf("index %d: spacing %v, want %v", i, d, step)
		}
	}
}
