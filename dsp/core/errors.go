package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an impulse time outside the simulated span.
	ErrOutOfRange = errors.New("core: impulse time out of range")
	// ErrRateMismatch indicates rates that do not decimate evenly.
	ErrRateMismatch = errors.New("core: rate mismatch")
	// ErrInvalidConfig indicates a non-positive or fractional parameter.
	ErrInvalidConfig = errors.New("core: invalid sampling config")
)

// OutOfRangeError reports an impulse time outside [0, Duration].
type OutOfRangeError struct {
	Time     float64
	Duration float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("core: impulse time %g s outside [0, %g] s", e.Time, e.Duration)
}

// Is makes errors.Is(err, ErrOutOfRange) succeed.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// RateMismatchError reports a rate that does not evenly divide the
// simulation rate.
type RateMismatchError struct {
	SimulationRate float64
	Rate           float64
	Reason         string
}

func (e *RateMismatchError) Error() string {
	return fmt.Sprintf("core: %s (simulation %g Hz, rate %g Hz)", e.Reason, e.SimulationRate, e.Rate)
}

// Is makes errors.Is(err, ErrRateMismatch) succeed.
func (e *RateMismatchError) Is(target error) bool {
	return target == ErrRateMismatch
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
