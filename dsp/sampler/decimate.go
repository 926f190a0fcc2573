package sampler

// Decimate returns x[offset], x[offset+stride], ... as a new slice.
// It returns nil when stride < 1, offset < 0, or offset is past the end.
func Decimate(x []float64, offset, stride int) []float64 {
	if stride < 1 || offset < 0 || offset >= len(x) {
		return nil
	}
	out := make([]float64, 0, (len(x)-offset+stride-1)/stride)
	for i := offset; i < len(x); i += stride {
		out = append(out, x[i])
	}
	return out
}
