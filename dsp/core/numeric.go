package core

import "math"

const (
	defaultEpsilon  = 1e-12
	integralEpsilon = 1e-9
)

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsIntegral reports whether x is within eps of a whole number.
// Rate ratios such as 1000/10 are computed in floating point and
// need this instead of an exact comparison.
func IsIntegral(x, eps float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return NearlyEqual(x, math.Round(x), eps)
}
