package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tisample/dsp/core"
	"github.com/cwbudde/algo-tisample/internal/testutil"
)

func TestTimeAxis(t *testing.T) {
	axis, err := TimeAxis(10, 1000)
	if err != nil {
		t.Fatalf("TimeAxis() error = %v", err)
	}
	if len(axis) != 10001 {
		t.Fatalf("len = %d, want 10001", len(axis))
	}
	if axis[0] != 0 {
		t.Fatalf("axis[0] = %v, want 0", axis[0])
	}
	if math.Abs(axis[len(axis)-1]-10) > 1e-9 {
		t.Fatalf("axis[last] = %v, want 10", axis[len(axis)-1])
	}
	testutil.RequireUniformSpacing(t, axis, 1.0/1000, 1e-9)
	for _, i := range []int{1, 123, 1230, 9999} {
		if math.Abs(axis[i]-float64(i)/1000) > 1e-9 {
			t.Fatalf("axis[%d] = %v, want %v", i, axis[i], float64(i)/1000)
		}
	}
}

func TestTimeAxisInvalid(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		rate     float64
	}{
		{name: "zero duration", duration: 0, rate: 1000},
		{name: "negative rate", duration: 1, rate: -1},
		{name: "fractional length", duration: 0.0015, rate: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TimeAxis(tt.duration, tt.rate); !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("TimeAxis() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestImpulseAtSingleNonZero(t *testing.T) {
	g := NewGenerator()
	for _, ti := range []float64{0, 0.0004, 0.0005, 1.2, 1.23, 1.235, 5.9, 9.9999, 10} {
		ref, err := g.ImpulseAt(ti)
		if err != nil {
			t.Fatalf("ImpulseAt(%v) error = %v", ti, err)
		}
		if len(ref.Values) != len(ref.Time) {
			t.Fatalf("ImpulseAt(%v): %d values for %d instants", ti, len(ref.Values), len(ref.Time))
		}
		idx := testutil.RequireSingleImpulse(t, ref.Values)
		if idx != ref.Index {
			t.Fatalf("ImpulseAt(%v): impulse at %d, Index = %d", ti, idx, ref.Index)
		}
		if math.Abs(ref.Time[idx]-ti) > 0.5/1000+1e-12 {
			t.Fatalf("ImpulseAt(%v): snapped to %v", ti, ref.Time[idx])
		}
		if ref.ImpulseTime != ti {
			t.Fatalf("ImpulseTime = %v, want %v", ref.ImpulseTime, ti)
		}
	}
}

func TestImpulseAtNearestIndex(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		t    float64
		want int
	}{
		{t: 0, want: 0},
		{t: 1.23, want: 1230},
		{t: 1.2304, want: 1230},
		{t: 1.2306, want: 1231},
		{t: 10, want: 10000},
	}
	for _, tt := range tests {
		ref, err := g.ImpulseAt(tt.t)
		if err != nil {
			t.Fatalf("ImpulseAt(%v) error = %v", tt.t, err)
		}
		if ref.Index != tt.want {
			t.Fatalf("ImpulseAt(%v).Index = %d, want %d", tt.t, ref.Index, tt.want)
		}
	}
}

func TestNearestTieTakesLowerIndex(t *testing.T) {
	axis := []float64{0, 1, 2, 3}
	if got := Nearest(axis, 1.5); got != 1 {
		t.Fatalf("Nearest(1.5) = %d, want 1", got)
	}
	if got := Nearest(axis, 2.6); got != 3 {
		t.Fatalf("Nearest(2.6) = %d, want 3", got)
	}
	if got := Nearest(nil, 1); got != -1 {
		t.Fatalf("Nearest(nil) = %d, want -1", got)
	}
}

func TestImpulseAtOutOfRange(t *testing.T) {
	g := NewGenerator(core.WithDuration(2))
	for _, ti := range []float64{-0.001, 2.001, math.NaN()} {
		_, err := g.ImpulseAt(ti)
		if !errors.Is(err, core.ErrOutOfRange) {
			t.Fatalf("ImpulseAt(%v) error = %v, want ErrOutOfRange", ti, err)
		}
		var oor *core.OutOfRangeError
		if !errors.As(err, &oor) || oor.Duration != 2 {
			t.Fatalf("ImpulseAt(%v) error = %#v, want *OutOfRangeError with duration 2", ti, err)
		}
	}
}

func TestImpulse(t *testing.T) {
	out, err := Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 0.75
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestImpulseInvalid(t *testing.T) {
	if _, err := Impulse(1, 0, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := Impulse(1, 4, 4); err == nil {
		t.Fatal("expected error for position past end")
	}
}

func TestImpulseAtFreshSlices(t *testing.T) {
	g := NewGenerator(core.WithDuration(1))
	a, err := g.ImpulseAt(0.5)
	if err != nil {
		t.Fatalf("ImpulseAt() error = %v", err)
	}
	b, err := g.ImpulseAt(0.25)
	if err != nil {
		t.Fatalf("ImpulseAt() error = %v", err)
	}
	if a.Values[a.Index] != 1 || a.Values[b.Index] != 0 {
		t.Fatal("second call mutated the first result")
	}
}

func TestNearestMatchesExhaustiveSearch(t *testing.T) {
	axis, err := TimeAxis(1, 200)
	if err != nil {
		t.Fatalf("TimeAxis() error = %v", err)
	}
	for _, ti := range []float64{-0.3, 0, 0.0025, 0.0026, 0.4975, 0.5, 0.99, 1, 1.7} {
		want := 0
		for i, v := range axis {
			if math.Abs(v-ti) < math.Abs(axis[want]-ti) {
				want = i
			}
		}
		if got := Nearest(axis, ti); got != want {
			t.Fatalf("Nearest(%v) = %d, want %d", ti, got, want)
		}
	}
}
