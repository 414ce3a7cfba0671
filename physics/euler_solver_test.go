package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type rigidBodyCase struct {
	name    string
	moments mgl64.Vec3
	m0      mgl64.Vec3
	formula Formula
}

// The cases cover all four formulæ and their degenerations.
var rigidBodyCases = []rigidBodyCase{
	{"low axis circulation", mgl64.Vec3{3, 5, 9}, mgl64.Vec3{5, 1, 2}, FormulaI},
	{"high axis circulation", mgl64.Vec3{3, 5, 9}, mgl64.Vec3{1, 1, 5}, FormulaII},
	{"separatrix", mgl64.Vec3{2, 3, 6}, mgl64.Vec3{1, 0.5, 1}, FormulaIII},
	{"sphere", mgl64.Vec3{4, 4, 4}, mgl64.Vec3{1, 2, 3}, FormulaSphere},
	{"low axis rotation", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0}, FormulaI},
	{"high axis rotation", mgl64.Vec3{3, 5, 9}, mgl64.Vec3{0, 0, 2}, FormulaII},
	{"oblate symmetric", mgl64.Vec3{3, 3, 5}, mgl64.Vec3{1, 2, 3}, FormulaII},
	{"prolate symmetric", mgl64.Vec3{3, 5, 5}, mgl64.Vec3{1, 2, 3}, FormulaI},
}

func testAttitude() mgl64.Quat {
	return mgl64.QuatRotate(0.7, mgl64.Vec3{1, 1, 0}.Normalize())
}

func TestEulerSolverClassification(t *testing.T) {
	for _, c := range rigidBodyCases {
		s := NewEulerSolver(c.moments, c.m0, testAttitude(), 0)
		if s.Formula() != c.formula {
			t.Errorf("%s: formula %v, want %v", c.name, s.Formula(), c.formula)
		}
	}
}

func TestEulerSolverRejectsUnsortedMoments(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for decreasing moments of inertia")
		}
	}()
	NewEulerSolver(mgl64.Vec3{3, 2, 1}, mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent(), 0)
}

func TestEulerSolverInitialState(t *testing.T) {
	const t0 = 10.0
	for _, c := range rigidBodyCases {
		a0 := testAttitude()
		s := NewEulerSolver(c.moments, c.m0, a0, t0)
		m := s.AngularMomentumAt(t0)
		if e := m.Sub(c.m0).Len(); e > 1e-10*c.m0.Len() {
			t.Errorf("%s: momentum at t₀ off by %g", c.name, e)
		}
		a := s.AttitudeAt(m, t0)
		if e := quatDistance(a, a0); e > 1e-10 {
			t.Errorf("%s: attitude at t₀ off by %g", c.name, e)
		}
	}
}

func TestEulerSolverConservation(t *testing.T) {
	for _, c := range rigidBodyCases {
		s := NewEulerSolver(c.moments, c.m0, testAttitude(), 0)
		g := c.m0.Len()
		energy := kineticEnergy(c.moments, c.m0)
		for tt := -50.0; tt <= 50.0; tt += 0.5 {
			m := s.AngularMomentumAt(tt)
			if e := math.Abs(m.Len() - g); e > 1e-10*g {
				t.Errorf("%s: |m| off by %g at t=%g", c.name, e, tt)
			}
			if e := math.Abs(kineticEnergy(c.moments, m) - energy); e > 1e-10*energy {
				t.Errorf("%s: energy off by %g at t=%g", c.name, e, tt)
			}
		}
	}
}

func TestEulerSolverEquationsOfMotion(t *testing.T) {
	// The closed-form momentum must satisfy ṁ = m × ω.
	const h = 1e-4
	for _, c := range rigidBodyCases {
		s := NewEulerSolver(c.moments, c.m0, testAttitude(), 0)
		for tt := -5.0; tt <= 5.0; tt += 0.375 {
			m := s.AngularMomentumAt(tt)
			mdot := s.AngularMomentumAt(tt + h).Sub(s.AngularMomentumAt(tt - h)).Mul(1 / (2 * h))
			want := m.Cross(s.AngularVelocityFor(m))
			if e := mdot.Sub(want).Len(); e > 1e-6 {
				t.Errorf("%s: ṁ off by %g at t=%g", c.name, e, tt)
			}
		}
	}
}

func TestEulerSolverAttitudeKinematics(t *testing.T) {
	// 2 q⁻¹ q̇ must reproduce the angular velocity in the principal axes
	// frame.
	const h = 1e-4
	for _, c := range rigidBodyCases {
		s := NewEulerSolver(c.moments, c.m0, testAttitude(), 0)
		for tt := -3.0; tt <= 3.0; tt += 0.25 {
			q := s.AttitudeAt(s.AngularMomentumAt(tt), tt)
			qp := alignQuat(s.AttitudeAt(s.AngularMomentumAt(tt+h), tt+h), q)
			qm := alignQuat(s.AttitudeAt(s.AngularMomentumAt(tt-h), tt-h), q)
			qdot := qp.Sub(qm).Scale(1 / (2 * h))
			omega := q.Inverse().Mul(qdot).Scale(2).V
			want := s.AngularVelocityFor(s.AngularMomentumAt(tt))
			if e := omega.Sub(want).Len(); e > 1e-5 {
				t.Errorf("%s: ω off by %g at t=%g", c.name, e, tt)
			}
		}
	}
}

func TestEulerSolverPrincipalAxisSpin(t *testing.T) {
	// A body with distinct moments spinning about its smallest axis keeps a
	// constant momentum and rotates uniformly about that axis.
	s := NewEulerSolver(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent(), 0)
	if s.Formula() != FormulaI {
		t.Fatalf("formula %v, want %v", s.Formula(), FormulaI)
	}
	for tt := 0.0; tt <= 20.0; tt += 0.5 {
		m := s.AngularMomentumAt(tt)
		if e := m.Sub(mgl64.Vec3{1, 0, 0}).Len(); e > 1e-12 {
			t.Errorf("momentum drifted by %g at t=%g", e, tt)
		}
		got := s.AttitudeAt(m, tt)
		want := mgl64.QuatRotate(tt, mgl64.Vec3{1, 0, 0})
		for _, v := range []mgl64.Vec3{{0, 1, 0}, {0, 0, 1}} {
			if e := got.Rotate(v).Sub(want.Rotate(v)).Len(); e > 1e-10 {
				t.Errorf("attitude off by %g at t=%g", e, tt)
			}
		}
	}
}

func TestEulerSolverSeparatrixLimit(t *testing.T) {
	// On the separatrix the momentum tends to the unstable axis.
	s := NewEulerSolver(mgl64.Vec3{2, 3, 6}, mgl64.Vec3{1, 0.5, 1}, mgl64.QuatIdent(), 0)
	if s.Formula() != FormulaIII {
		t.Fatalf("formula %v, want %v", s.Formula(), FormulaIII)
	}
	g := mgl64.Vec3{1, 0.5, 1}.Len()
	m := s.AngularMomentumAt(1e3)
	if e := m.Sub(mgl64.Vec3{0, g, 0}).Len(); e > 1e-9 {
		t.Errorf("late momentum %v, want the middle axis", m)
	}
}

func kineticEnergy(moments, m mgl64.Vec3) float64 {
	return 0.5 * (m[0]*m[0]/moments[0] + m[1]*m[1]/moments[1] + m[2]*m[2]/moments[2])
}

// quatDistance measures how far two unit quaternions are as rotations.
func quatDistance(a, b mgl64.Quat) float64 {
	d := a.Sub(b)
	s := a.Add(b)
	return math.Min(
		math.Hypot(d.W, d.V.Len()),
		math.Hypot(s.W, s.V.Len()))
}

// alignQuat flips the sign of q if needed to put it in the same hemisphere
// as reference, so that finite differences across a branch cut stay smooth.
func alignQuat(q, reference mgl64.Quat) mgl64.Quat {
	if q.W*reference.W+q.V.Dot(reference.V) < 0 {
		return q.Scale(-1)
	}
	return q
}
