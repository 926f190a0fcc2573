package sampler

import (
	"testing"

	"github.com/cwbudde/algo-tisample/internal/testutil"
)

func TestMergeInterleaves(t *testing.T) {
	branches := [][]float64{
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
	}
	got := Merge(branches, 3, 9)
	testutil.RequireSliceNearlyEqual(t, got, testutil.Ramp(9), 0)
}

func TestMergeTruncatesLongBranches(t *testing.T) {
	branches := [][]float64{
		{10, 13, 16, 19, 22},
		{11, 14, 17, 20},
		{12, 15, 18},
	}
	got := Merge(branches, 3, 7)
	want := []float64{10, 11, 12, 13, 14, 15, 16}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestMergeShortBranchesLeaveBackground(t *testing.T) {
	branches := [][]float64{
		{1, 1, 1},
		{2},
	}
	got := Merge(branches, 2, 7)
	want := []float64{1, 2, 1, 0, 1, 0, 0}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestMergeIgnoresSurplusBranches(t *testing.T) {
	branches := [][]float64{{1, 1}, {2, 2}, {9, 9}}
	got := Merge(branches, 2, 4)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 1, 2}, 0)
}

func TestMergeDestinationShorterThanPhases(t *testing.T) {
	branches := [][]float64{{1}, {2}, {3}, {4}}
	got := Merge(branches, 4, 2)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2}, 0)
}

func TestMergeDegenerate(t *testing.T) {
	if got := Merge([][]float64{{1}}, 1, 0); got != nil {
		t.Fatalf("Merge(dstLen=0) = %v, want nil", got)
	}
	got := Merge([][]float64{{1}}, 0, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0}, 0)
	got = Merge(nil, 4, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0}, 0)
}

func TestMergeIntoCountsWrites(t *testing.T) {
	dst := []float64{-1, -1, -1, -1, -1}
	n := MergeInto(dst, [][]float64{{1, 1, 1, 1}, {2}}, 2)
	if n != 4 {
		t.Fatalf("written = %d, want 4", n)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 2, 1, -1, 1}, 0)
}

func TestMergeDecimateRoundTrip(t *testing.T) {
	// Splitting into every phase and merging back is the identity.
	for _, length := range []int{1, 9, 10, 11, 101} {
		for _, phases := range []int{1, 2, 3, 10} {
			src := testutil.Ramp(length)
			branches := make([][]float64, phases)
			for k := range branches {
				branches[k] = Decimate(src, k, phases)
			}
			got := Merge(branches, phases, length)
			testutil.RequireSliceNearlyEqual(t, got, src, 0)
		}
	}
}
