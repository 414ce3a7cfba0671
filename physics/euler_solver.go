// Package physics implements the dynamics of the simulation: the closed-form
// motion of a torque-free rigid body, massive and massless bodies, their
// trajectories, the n-body ephemeris, and dynamic reference frames derived
// from it.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tnuvoletta/Principia/numerics"
)

// Formula identifies the closed-form solution selected for a rigid body,
// following the classification of Celledoni, Fassò, Säfström and Zanna
// (2007). The formula is a constant of motion.
type Formula int

const (
	// FormulaI applies when the angular momentum circulates around the
	// axis of smallest inertia.
	FormulaI Formula = iota
	// FormulaII applies when the angular momentum circulates around the
	// axis of largest inertia.
	FormulaII
	// FormulaIII applies on the separatrix.
	FormulaIII
	// FormulaSphere applies to a spherical body or to a vanishing angular
	// momentum, where the momentum is trivially constant.
	FormulaSphere
)

// EulerSolver computes the attitude and angular momentum of a torque-free
// rigid body in closed form. The moments of inertia are given in the
// principal axes frame in increasing order; attitudes are rotations from the
// principal axes frame to the inertial frame.
type EulerSolver struct {
	moments         mgl64.Vec3 // kg m², ascending
	initialMomentum mgl64.Vec3 // kg m²/s, principal axes coordinates
	initialTime     float64    // s
	formula         Formula
	g               float64    // |initial angular momentum|
	base            mgl64.Quat // maps the intermediate frame to the inertial frame
	motion          freeMotion
}

// freeMotion is the closed-form time dependence of one of the four formulæ.
// dt is measured from the initial time.
type freeMotion interface {
	momentumAt(dt float64) mgl64.Vec3
	psiAt(dt float64) float64
}

// NewEulerSolver constructs a solver for a body with the given moments of
// inertia, which must be positive and in increasing order. At initialTime
// the body has the given angular momentum and attitude. The classification
// of the motion and all elliptic parameters are computed once here.
func NewEulerSolver(momentsOfInertia mgl64.Vec3,
	initialAngularMomentum mgl64.Vec3,
	initialAttitude mgl64.Quat,
	initialTime float64) *EulerSolver {
	i1, i2, i3 := momentsOfInertia[0], momentsOfInertia[1], momentsOfInertia[2]
	if !(0 < i1 && i1 <= i2 && i2 <= i3) {
		panic("euler solver: moments of inertia must be positive and in increasing order")
	}
	s := &EulerSolver{
		moments:         momentsOfInertia,
		initialMomentum: initialAngularMomentum,
		initialTime:     initialTime,
		g:               initialAngularMomentum.Len(),
	}

	m1, m2, m3 := initialAngularMomentum[0], initialAngularMomentum[1], initialAngularMomentum[2]
	i21 := i2 - i1
	i31 := i3 - i1
	i32 := i3 - i2

	// The Δᵢ = G² - 2 T Iᵢ are computed by difference to avoid cancellation.
	// Δ₁ ≥ Δ₂ ≥ Δ₃, with Δ₁ ≥ 0 and Δ₃ ≤ 0.
	delta1 := m2*m2*(i21/i2) + m3*m3*(i31/i3)
	delta2 := m3*m3*(i32/i3) - m1*m1*(i21/i1)
	delta3 := -(m1*m1*(i31/i1) + m2*m2*(i32/i2))

	g := s.g
	switch {
	case g == 0 || i31 == 0:
		s.formula = FormulaSphere
		s.motion = &sphereMotion{m0: initialAngularMomentum, psiT: g / i1}
	case delta2 < 0:
		s.formula = FormulaI
		b13 := math.Sqrt(i1 * -delta3 / i31)
		b31 := math.Sqrt(i3 * delta1 / i31)
		b21 := math.Sqrt(i2 * delta1 / i21)
		sigma := math.Copysign(1, m1)
		lambda := math.Sqrt(-delta3 * i21 / (i1 * i2 * i3))
		mc := delta2 * i31 / (delta3 * i21)
		e := &ellipticMotion{
			b1:      sigma * b13,
			b2:      b21,
			b3:      sigma * b31,
			dnFirst: true,
			lambda:  lambda,
			mc:      mc,
			psiT:    g / i3,
			psiMult: g * i31 / (i1 * i3 * lambda),
		}
		if b21 != 0 {
			e.nu = ellipticF(math.Atan2(m2/b21, m3/(sigma*b31)), mc)
			e.setCharacteristic(-(b31 * b31) / (b13 * b13))
		}
		e.psiOffset = e.lambdaIntegral(e.nu)
		s.motion = e
	case delta2 > 0:
		s.formula = FormulaII
		b13 := math.Sqrt(i1 * -delta3 / i31)
		b31 := math.Sqrt(i3 * delta1 / i31)
		b23 := math.Sqrt(i2 * -delta3 / i32)
		sigma := math.Copysign(1, m3)
		lambda := math.Sqrt(delta1 * i32 / (i1 * i2 * i3))
		mc := delta2 * i31 / (delta1 * i32)
		e := &ellipticMotion{
			b1:      sigma * b13,
			b2:      b23,
			b3:      sigma * b31,
			dnFirst: false,
			lambda:  lambda,
			mc:      mc,
			psiT:    g / i3,
			psiMult: g * i31 / (i1 * i3 * lambda),
		}
		if m1 == 0 && m2 == 0 {
			// Rotation about the third axis; the elliptic term vanishes.
			e.psiMult = 0
		} else {
			e.nu = ellipticF(math.Atan2(m2/b23, m1/(sigma*b13)), mc)
			e.setCharacteristic(-i3 * i21 / (i1 * i32))
		}
		e.psiOffset = e.lambdaIntegral(e.nu)
		s.motion = e
	default:
		s.formula = FormulaIII
		lambda := math.Sqrt(-delta3 * i21 / (i1 * i2 * i3))
		if lambda == 0 {
			// Symmetric body rotating about an axis of equal inertia; the
			// momentum is constant.
			s.motion = &sphereMotion{m0: initialAngularMomentum, psiT: g / i2}
			break
		}
		b13 := math.Sqrt(i1 * -delta3 / i31)
		b31 := math.Sqrt(i3 * delta1 / i31)
		sigmap := math.Copysign(1, m1)
		sigmapp := math.Copysign(1, m3)
		rho := b31 / b13
		sep := &separatrixMotion{
			b1:      sigmap * b13,
			b2:      sigmap * sigmapp * g,
			b3:      sigmapp * b31,
			lambda:  lambda,
			nu:      math.Atanh(m2 / (sigmap * sigmapp * g)),
			rho:     rho,
			psiT:    g / i2,
			psiCoef: g * i21 / (i1 * i2 * lambda * rho),
		}
		sep.psiOffset = math.Atan(rho * math.Tanh(sep.nu))
		s.motion = sep
	}

	s.base = initialAttitude.Mul(momentumToPole(initialAngularMomentum).Inverse())
	return s
}

// Formula returns the closed-form solution selected at construction.
func (s *EulerSolver) Formula() Formula { return s.formula }

// AngularMomentumAt computes the angular momentum in the principal axes
// frame at the given time. Its norm is conserved.
func (s *EulerSolver) AngularMomentumAt(t float64) mgl64.Vec3 {
	return s.motion.momentumAt(t - s.initialTime)
}

// AngularVelocityFor computes the angular velocity corresponding to the
// given angular momentum.
func (s *EulerSolver) AngularVelocityFor(angularMomentum mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		angularMomentum[0] / s.moments[0],
		angularMomentum[1] / s.moments[1],
		angularMomentum[2] / s.moments[2],
	}
}

// AttitudeAt computes the attitude at the given time, using the angular
// momentum computed by AngularMomentumAt for the same time.
func (s *EulerSolver) AttitudeAt(angularMomentum mgl64.Vec3, t float64) mgl64.Quat {
	psi := s.motion.psiAt(t - s.initialTime)
	zRotation := mgl64.QuatRotate(psi, mgl64.Vec3{0, 0, 1})
	return s.base.Mul(zRotation).Mul(momentumToPole(angularMomentum))
}

// momentumToPole builds the rotation that maps the angular momentum to the
// third axis of the intermediate frame, scaled to its norm. For a vanishing
// momentum any rotation works and the identity is used.
func momentumToPole(m mgl64.Vec3) mgl64.Quat {
	if m.Len() == 0 {
		return mgl64.QuatIdent()
	}
	theta := math.Atan2(math.Hypot(m[0], m[1]), m[2])
	psiB := math.Atan2(m[0], m[1])
	qx := mgl64.QuatRotate(theta, mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(psiB, mgl64.Vec3{0, 0, 1})
	return qx.Mul(qz)
}

// ellipticMotion is the quadrature for formulæ i and ii. The angular
// momentum follows Jacobi elliptic functions of u = λ dt + ν and the proper
// rotation integrates an elliptic integral of the third kind with a
// nonpositive characteristic n.
type ellipticMotion struct {
	b1, b2, b3 float64 // signed amplitudes
	dnFirst    bool    // formula i: m₁ ∝ dn, m₃ ∝ cn; formula ii: the converse
	lambda     float64 // rad/s
	nu         float64
	mc         float64
	psiT       float64 // rad/s
	psiMult    float64
	psiOffset  float64

	// Reduction of the characteristic n ≤ 0 to the partner characteristic
	// bigN = (m - n)/(1 - n) ∈ [m, 1), which is in the domain of the
	// incomplete third-kind routines.
	n                  float64
	bigN               float64
	alpha, beta, gamma float64
	q                  float64
	kComplete, piBigN  float64
}

// setCharacteristic precomputes the parameters of the reduction of
// Π(u, n|m) for the nonpositive characteristic n.
func (e *ellipticMotion) setCharacteristic(n float64) {
	e.n = n
	if n == 0 {
		return
	}
	m := 1.0 - e.mc
	e.bigN = (m - n) / (1.0 - n)
	e.alpha = m / (m - n)
	e.beta = -n * e.mc / ((m - n) * (1.0 - n))
	e.gamma = -n / (1.0 - n)
	e.q = math.Sqrt(n * (n - m) / (1.0 - n))
	e.kComplete = numerics.EllipticK(e.mc)
	_, _, jc := numerics.EllipticBDJ(1.0-e.bigN, e.mc)
	e.piBigN = e.kComplete + e.bigN*jc
}

func (e *ellipticMotion) momentumAt(dt float64) mgl64.Vec3 {
	u := e.lambda*dt + e.nu
	sn, cn, dn := numerics.JacobiSNCNDN(u, e.mc)
	if e.dnFirst {
		return mgl64.Vec3{e.b1 * dn, e.b2 * sn, e.b3 * cn}
	}
	return mgl64.Vec3{e.b1 * cn, e.b2 * sn, e.b3 * dn}
}

func (e *ellipticMotion) psiAt(dt float64) float64 {
	psi := e.psiT * dt
	if e.psiMult != 0 {
		u := e.lambda*dt + e.nu
		psi += e.psiMult * (e.lambdaIntegral(u) - e.psiOffset)
	}
	return psi
}

// lambdaIntegral computes Λ(u) = ∫₀ᵘ du′/(1 - n sn²(u′|m)) for the
// nonpositive characteristic n. The reduction to the partner characteristic
// leaves a residual arctangent which is periodic and needs no unwinding.
func (e *ellipticMotion) lambdaIntegral(u float64) float64 {
	if e.n == 0 {
		return u
	}
	sn, cn, dn := numerics.JacobiSNCNDN(u, e.mc)
	return e.alpha*u + e.beta*e.thirdKind(u) + (e.gamma/e.q)*math.Atan(e.q*sn*cn/dn)
}

// thirdKind computes Π(am(u), bigN|m) continued over the whole real line.
func (e *ellipticMotion) thirdKind(u float64) float64 {
	j := math.Round(u / (2.0 * e.kComplete))
	r := u - 2.0*e.kComplete*j
	sn, cn, _ := numerics.JacobiSNCNDN(r, e.mc)
	phi := math.Atan2(sn, cn)
	sign := 1.0
	if phi < 0 {
		phi = -phi
		sign = -1.0
	}
	b, d, jj := numerics.IncompleteEllipticBDJ(phi, e.bigN, e.mc)
	return 2.0*j*e.piBigN + sign*(b+d+e.bigN*jj)
}

// separatrixMotion is the quadrature for formula iii, where the elliptic
// functions degenerate to hyperbolic ones.
type separatrixMotion struct {
	b1, b2, b3 float64
	lambda     float64
	nu         float64
	rho        float64
	psiT       float64
	psiCoef    float64
	psiOffset  float64
}

func (s *separatrixMotion) momentumAt(dt float64) mgl64.Vec3 {
	u := s.lambda*dt + s.nu
	sech := 1.0 / math.Cosh(u)
	return mgl64.Vec3{s.b1 * sech, s.b2 * math.Tanh(u), s.b3 * sech}
}

func (s *separatrixMotion) psiAt(dt float64) float64 {
	u := s.lambda*dt + s.nu
	return s.psiT*dt + s.psiCoef*(math.Atan(s.rho*math.Tanh(u))-s.psiOffset)
}

// sphereMotion covers the spherical body, the vanishing angular momentum,
// and the symmetric degenerations where the momentum is constant in the
// principal axes frame.
type sphereMotion struct {
	m0   mgl64.Vec3
	psiT float64
}

func (s *sphereMotion) momentumAt(dt float64) mgl64.Vec3 { return s.m0 }

func (s *sphereMotion) psiAt(dt float64) float64 { return s.psiT * dt }

// ellipticF computes the incomplete elliptic integral of the first kind
// F(φ|m) for -π < φ <= π, composed from the associate integrals.
func ellipticF(phi, mc float64) float64 {
	sign := 1.0
	if phi < 0 {
		phi = -phi
		sign = -1.0
	}
	if phi > math.Pi/2 {
		b, d, _ := numerics.IncompleteEllipticBDJ(math.Pi-phi, 0, mc)
		return sign * (2.0*numerics.EllipticK(mc) - (b + d))
	}
	b, d, _ := numerics.IncompleteEllipticBDJ(phi, 0, mc)
	return sign * (b + d)
}
