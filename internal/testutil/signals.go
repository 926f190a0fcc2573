package testutil

// Impulse generates a unit impulse at the given position.
// Positions outside [0, length) yield an all-zero slice.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp returns 0, 1, ..., length-1 so that every sample identifies its
// own source index after decimation or interleaving.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// CountNonZero returns the number of non-zero samples in data.
func CountNonZero(data []float64) int {
	n := 0
	for _, v := range data {
		if v != 0 {
			n++
		}
	}
	return n
}
