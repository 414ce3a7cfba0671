package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrEmptyTrajectory is returned when evaluating a trajectory with no
	// samples.
	ErrEmptyTrajectory = errors.New("empty trajectory")
	// ErrTimeOutOfRange is returned when evaluating a trajectory outside
	// [TMin, TMax].
	ErrTimeOutOfRange = errors.New("time out of range")
	// ErrNonMonotonicTime is returned when appending a sample at or before
	// the last sample.
	ErrNonMonotonicTime = errors.New("non-monotonic time")
)

// Trajectory is an append-only timeline of degrees of freedom, continuously
// evaluable on [TMin, TMax] by cubic Hermite interpolation between samples.
type Trajectory struct {
	times  []float64
	states []DegreesOfFreedom
}

func NewTrajectory() *Trajectory {
	return &Trajectory{}
}

// Append adds a sample. Times must be strictly increasing.
func (t *Trajectory) Append(time float64, dof DegreesOfFreedom) error {
	if n := len(t.times); n > 0 && time <= t.times[n-1] {
		return fmt.Errorf("appending at %g after %g: %w",
			time, t.times[n-1], ErrNonMonotonicTime)
	}
	t.times = append(t.times, time)
	t.states = append(t.states, dof)
	return nil
}

// Empty reports whether the trajectory has no samples.
func (t *Trajectory) Empty() bool { return len(t.times) == 0 }

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.times) }

// TMin returns the time of the first sample, or NaN if empty.
func (t *Trajectory) TMin() float64 {
	if t.Empty() {
		return math.NaN()
	}
	return t.times[0]
}

// TMax returns the time of the last sample, or NaN if empty.
func (t *Trajectory) TMax() float64 {
	if t.Empty() {
		return math.NaN()
	}
	return t.times[len(t.times)-1]
}

// EvaluateDegreesOfFreedom interpolates the trajectory at the given time.
func (t *Trajectory) EvaluateDegreesOfFreedom(time float64) (DegreesOfFreedom, error) {
	if t.Empty() {
		return DegreesOfFreedom{}, ErrEmptyTrajectory
	}
	if time < t.times[0] || time > t.times[len(t.times)-1] {
		return DegreesOfFreedom{}, fmt.Errorf(
			"t=%g outside [%g, %g]: %w",
			time, t.times[0], t.times[len(t.times)-1], ErrTimeOutOfRange)
	}
	// Index of the first sample at or after time.
	i := sort.SearchFloat64s(t.times, time)
	if t.times[i] == time {
		return t.states[i], nil
	}
	return hermite(t.times[i-1], t.times[i], t.states[i-1], t.states[i], time), nil
}

// EvaluatePosition interpolates only the position at the given time.
func (t *Trajectory) EvaluatePosition(time float64) (mgl64.Vec3, error) {
	dof, err := t.EvaluateDegreesOfFreedom(time)
	return dof.Position, err
}

// ForgetBefore drops all samples strictly before the given time. The sample
// at or immediately before the time is kept so the trajectory remains
// evaluable there.
func (t *Trajectory) ForgetBefore(time float64) {
	i := sort.SearchFloat64s(t.times, time)
	if i < len(t.times) && t.times[i] == time {
		// keep the exact sample
	} else if i > 0 {
		i--
	}
	if i <= 0 {
		return
	}
	t.times = append(t.times[:0], t.times[i:]...)
	t.states = append(t.states[:0], t.states[i:]...)
}

// hermite evaluates the cubic Hermite interpolant matching position and
// velocity at both ends of [t0, t1].
func hermite(t0, t1 float64, d0, d1 DegreesOfFreedom, t float64) DegreesOfFreedom {
	h := t1 - t0
	s := (t - t0) / h
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	p := d0.Position.Mul(h00).
		Add(d0.Velocity.Mul(h10 * h)).
		Add(d1.Position.Mul(h01)).
		Add(d1.Velocity.Mul(h11 * h))

	// Derivatives of the basis polynomials, divided by h for d/dt.
	g00 := (6*s2 - 6*s) / h
	g10 := 3*s2 - 4*s + 1
	g01 := (-6*s2 + 6*s) / h
	g11 := 3*s2 - 2*s

	v := d0.Position.Mul(g00).
		Add(d0.Velocity.Mul(g10)).
		Add(d1.Position.Mul(g01)).
		Add(d1.Velocity.Mul(g11))

	return DegreesOfFreedom{Position: p, Velocity: v}
}
