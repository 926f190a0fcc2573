package sampler

// Merge interleaves branches into a new zeroed sequence of length dstLen.
// Sample j of branch k is written to index k + phases*j. See MergeInto for
// the clamping rules.
func Merge(branches [][]float64, phases, dstLen int) []float64 {
	if dstLen <= 0 {
		return nil
	}
	dst := make([]float64, dstLen)
	MergeInto(dst, branches, phases)
	return dst
}

// MergeInto writes branches into dst at stride phases and returns the number
// of samples written.
//
// Each branch is truncated to the shorter of its own length and the number
// of dst slots at its phase. Branches with index >= phases are ignored.
// Slots no branch reaches keep their previous value. MergeInto never writes
// out of bounds and never fails.
func MergeInto(dst []float64, branches [][]float64, phases int) int {
	if phases < 1 {
		return 0
	}

	written := 0
	for k, branch := range branches {
		if k >= phases || k >= len(dst) {
			break
		}
		slots := (len(dst) - k + phases - 1) / phases
		n := min(len(branch), slots)
		for j := range n {
			dst[k+phases*j] = branch[j]
		}
		written += n
	}
	return written
}
