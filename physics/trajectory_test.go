package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTrajectoryAppendMonotonic(t *testing.T) {
	tr := NewTrajectory()
	if err := tr.Append(1, DegreesOfFreedom{}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Append(2, DegreesOfFreedom{}); err != nil {
		t.Fatal(err)
	}
	err := tr.Append(2, DegreesOfFreedom{})
	if !errors.Is(err, ErrNonMonotonicTime) {
		t.Errorf("appending at the same time: %v", err)
	}
	err = tr.Append(0.5, DegreesOfFreedom{})
	if !errors.Is(err, ErrNonMonotonicTime) {
		t.Errorf("appending in the past: %v", err)
	}
}

func TestTrajectoryEvaluateErrors(t *testing.T) {
	tr := NewTrajectory()
	if _, err := tr.EvaluateDegreesOfFreedom(0); !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("empty trajectory: %v", err)
	}
	if !math.IsNaN(tr.TMin()) || !math.IsNaN(tr.TMax()) {
		t.Error("TMin/TMax of an empty trajectory must be NaN")
	}
	tr.Append(1, DegreesOfFreedom{})
	tr.Append(2, DegreesOfFreedom{})
	if _, err := tr.EvaluateDegreesOfFreedom(0.5); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("before TMin: %v", err)
	}
	if _, err := tr.EvaluateDegreesOfFreedom(2.5); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("after TMax: %v", err)
	}
}

func TestTrajectoryInterpolatesPolynomial(t *testing.T) {
	// Cubic Hermite interpolation is exact on polynomials of degree <= 3.
	pos := func(tt float64) mgl64.Vec3 {
		return mgl64.Vec3{tt * tt * tt, 2*tt*tt - tt, 3}
	}
	vel := func(tt float64) mgl64.Vec3 {
		return mgl64.Vec3{3 * tt * tt, 4*tt - 1, 0}
	}
	tr := NewTrajectory()
	for tt := 0.0; tt <= 4.0; tt += 0.5 {
		tr.Append(tt, DegreesOfFreedom{Position: pos(tt), Velocity: vel(tt)})
	}
	for tt := 0.0; tt <= 4.0; tt += 0.125 {
		d, err := tr.EvaluateDegreesOfFreedom(tt)
		if err != nil {
			t.Fatal(err)
		}
		if e := d.Position.Sub(pos(tt)).Len(); e > 1e-9 {
			t.Errorf("position off by %g at t=%g", e, tt)
		}
		if e := d.Velocity.Sub(vel(tt)).Len(); e > 1e-9 {
			t.Errorf("velocity off by %g at t=%g", e, tt)
		}
	}
}

func TestTrajectoryForgetBefore(t *testing.T) {
	tr := NewTrajectory()
	for tt := 0.0; tt <= 10.0; tt += 1.0 {
		tr.Append(tt, DegreesOfFreedom{Position: mgl64.Vec3{tt, 0, 0}})
	}

	// Forgetting between samples keeps the bracketing sample.
	tr.ForgetBefore(3.5)
	if tr.TMin() != 3.0 {
		t.Errorf("TMin = %g, want 3", tr.TMin())
	}
	if _, err := tr.EvaluateDegreesOfFreedom(3.5); err != nil {
		t.Errorf("evaluating at the forget time: %v", err)
	}

	// Forgetting at an exact sample keeps that sample.
	tr.ForgetBefore(5.0)
	if tr.TMin() != 5.0 {
		t.Errorf("TMin = %g, want 5", tr.TMin())
	}
	if tr.TMax() != 10.0 {
		t.Errorf("TMax = %g, want 10", tr.TMax())
	}

	// Forgetting before TMin does nothing.
	tr.ForgetBefore(1.0)
	if tr.TMin() != 5.0 || tr.Len() != 6 {
		t.Errorf("TMin = %g, Len = %d after no-op forget", tr.TMin(), tr.Len())
	}
}
