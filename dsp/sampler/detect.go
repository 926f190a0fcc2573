package sampler

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Detection summarizes whether a sampled sequence captured the impulse.
type Detection struct {
	Hit bool
	// Index is the first maximal sample, or -1 on a miss.
	Index int
	// Time is the instant of Index, or NaN on a miss.
	Time float64
	// Peak is the amplitude at Index.
	Peak float64
	// Energy is the sum of squares of the sampled sequence.
	Energy float64
}

// Detect reports a hit when the samples sum to a positive value and then
// locates the first maximal sample. t and x are expected to be aligned;
// a hit index past the end of t leaves Time as NaN.
func Detect(t, x []float64) Detection {
	d := Detection{Index: -1, Time: math.NaN()}
	if len(x) == 0 {
		return d
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)
	d.Energy = floats.Sum(sq)

	if floats.Sum(x) <= 0 {
		return d
	}

	d.Hit = true
	d.Index = floats.MaxIdx(x)
	d.Peak = x[d.Index]
	if d.Index < len(t) {
		d.Time = t[d.Index]
	}
	return d
}
