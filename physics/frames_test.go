package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRigidMotionInverse(t *testing.T) {
	m := NewRigidMotion(
		mgl64.QuatRotate(0.9, mgl64.Vec3{1, 2, 3}.Normalize()),
		mgl64.Vec3{0.1, -0.2, 0.3},
		mgl64.Vec3{10, -20, 30},
		mgl64.Vec3{1, 2, -3})
	dof := DegreesOfFreedom{
		Position: mgl64.Vec3{5, 7, -11},
		Velocity: mgl64.Vec3{-2, 4, 8},
	}
	back := m.Inverse().Apply(m.Apply(dof))
	if e := back.Position.Sub(dof.Position).Len(); e > 1e-12*dof.Position.Len() {
		t.Errorf("position round trip off by %g", e)
	}
	if e := back.Velocity.Sub(dof.Velocity).Len(); e > 1e-11*dof.Velocity.Len() {
		t.Errorf("velocity round trip off by %g", e)
	}
}

func TestBarycentricFrameGeometry(t *testing.T) {
	e, primary, secondary := circularPair(t, math.Pi/1000)
	e.Prolong(4)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []float64{0, 1.7, 3.9} {
		to, err := f.ToThisFrameAtTime(tt)
		if err != nil {
			t.Fatal(err)
		}
		ptr, _ := e.Trajectory(primary)
		str, _ := e.Trajectory(secondary)
		pd, err := ptr.EvaluateDegreesOfFreedom(tt)
		if err != nil {
			t.Fatal(err)
		}
		sd, err := str.EvaluateDegreesOfFreedom(tt)
		if err != nil {
			t.Fatal(err)
		}

		// The secondary sits on the positive x axis, at rest.
		s := to.Apply(sd)
		if e := s.Position.Sub(mgl64.Vec3{8000, 0, 0}).Len(); e > 1e-3 {
			t.Errorf("secondary at %v in the frame at t=%g", s.Position, tt)
		}
		if e := s.Velocity.Len(); e > 1e-3 {
			t.Errorf("secondary moves at %v in the frame at t=%g", s.Velocity, tt)
		}
		p := to.Apply(pd)
		if e := p.Position.Sub(mgl64.Vec3{-2000, 0, 0}).Len(); e > 1e-3 {
			t.Errorf("primary at %v in the frame at t=%g", p.Position, tt)
		}

		// FromThisFrameAtTime inverts ToThisFrameAtTime.
		from, err := f.FromThisFrameAtTime(tt)
		if err != nil {
			t.Fatal(err)
		}
		round := from.Apply(to.Apply(sd))
		if e := round.Position.Sub(sd.Position).Len(); e > 1e-6 {
			t.Errorf("round trip position off by %g at t=%g", e, tt)
		}
		if e := round.Velocity.Sub(sd.Velocity).Len(); e > 1e-6 {
			t.Errorf("round trip velocity off by %g at t=%g", e, tt)
		}
	}
}

func TestBarycentricFrameTiltedPlane(t *testing.T) {
	// A third body above the pair's orbital plane tilts it, so the frame
	// angular velocity gains a component along x. The velocity Apply
	// reports for a point fixed in inertial coordinates must match the
	// time derivative of its frame position.
	primary := &MassiveBody{Name: "primary", GravitationalParameter: 8e11}
	secondary := &MassiveBody{Name: "secondary", GravitationalParameter: 2e11}
	tertiary := &MassiveBody{Name: "tertiary", GravitationalParameter: 5e11}
	states := []DegreesOfFreedom{
		{Position: mgl64.Vec3{-2000, 0, 0}, Velocity: mgl64.Vec3{0, -2000, 0}},
		{Position: mgl64.Vec3{8000, 0, 0}, Velocity: mgl64.Vec3{0, 8000, 0}},
		{Position: mgl64.Vec3{0, 0, 5e4}},
	}
	e, err := NewEphemeris([]*MassiveBody{primary, secondary, tertiary},
		states, 0, math.Pi/1000, &McLachlanAtela4{})
	if err != nil {
		t.Fatal(err)
	}
	e.Prolong(1.5)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}

	fixed := DegreesOfFreedom{Position: mgl64.Vec3{4000, -3000, 2000}}
	const h = 1e-3
	for _, tt := range []float64{0.25, 0.5, 1.0} {
		to, err := f.ToThisFrameAtTime(tt)
		if err != nil {
			t.Fatal(err)
		}
		before, err := f.ToThisFrameAtTime(tt - h)
		if err != nil {
			t.Fatal(err)
		}
		after, err := f.ToThisFrameAtTime(tt + h)
		if err != nil {
			t.Fatal(err)
		}
		numeric := after.Apply(fixed).Position.
			Sub(before.Apply(fixed).Position).Mul(1 / (2 * h))
		got := to.Apply(fixed).Velocity
		if d := got.Sub(numeric).Len(); d > 0.1 {
			t.Errorf("frame velocity off by %g m/s at t=%g", d, tt)
		}
	}
}

func TestBarycentricFrameEquilibrium(t *testing.T) {
	// L4 of the pair is an equilibrium of the rotating frame: a body at
	// rest there feels no geometric acceleration.
	e, primary, secondary := circularPair(t, math.Pi/1000)
	e.Prolong(4)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}
	l4 := DegreesOfFreedom{
		Position: mgl64.Vec3{3000, 1e4 * math.Sqrt(3) / 2, 0},
	}
	for _, tt := range []float64{0.5, 2.0, 3.5} {
		a, err := f.GeometricAcceleration(tt, l4)
		if err != nil {
			t.Fatal(err)
		}
		// The scale of the individual terms is ω²R = 1e4 m/s².
		if a.Len() > 0.1 {
			t.Errorf("acceleration %v at L4 at t=%g", a, tt)
		}
	}
}

func TestBarycentricFrameCentrifugal(t *testing.T) {
	// At rest on the x axis beyond the secondary, gravity pulls inward and
	// the centrifugal acceleration pushes outward; the geometric
	// acceleration is their difference, along x.
	e, primary, secondary := circularPair(t, math.Pi/1000)
	e.Prolong(2)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}
	x := 3e4
	a, err := f.GeometricAcceleration(1.0, DegreesOfFreedom{Position: mgl64.Vec3{x, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	want := x - 8e11/math.Pow(x+2000, 2) - 2e11/math.Pow(x-8000, 2)
	if e := math.Abs(a[0] - want); e > 1e-3*math.Abs(want) {
		t.Errorf("a_x = %g, want %g", a[0], want)
	}
	if math.Abs(a[1]) > 1e-3*math.Abs(want) || math.Abs(a[2]) > 1e-3*math.Abs(want) {
		t.Errorf("off-axis acceleration %v", a)
	}
}
