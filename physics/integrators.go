package physics

import "github.com/go-gl/mathgl/mgl64"

// An AccelerationFunc fills accelerations with the acceleration of each
// position at time t. Both slices have the same length.
type AccelerationFunc func(t float64, positions []mgl64.Vec3, accelerations []mgl64.Vec3)

// A SymplecticIntegrator advances a second-order system q̈ = a(q, t) by one
// fixed step, mutating states in place.
type SymplecticIntegrator interface {
	Step(t, dt float64, states []DegreesOfFreedom, compute AccelerationFunc)
	// Order returns the order of the method.
	Order() int
}

// McLachlanAtela4 is the optimal fourth-order method of McLachlan and Atela
// (1992), 4 force evaluations per step.
type McLachlanAtela4 struct {
	positions     []mgl64.Vec3
	accelerations []mgl64.Vec3
}

var mclachlanAtelaA = [4]float64{
	0.5153528374311229364,
	-0.085782019412973646,
	0.4415830236164665242,
	0.1288461583653841854,
}

var mclachlanAtelaB = [4]float64{
	0.1344961992774310892,
	-0.2248198030794208058,
	0.7563200005156682911,
	0.3340036032863214255,
}

func (m *McLachlanAtela4) Order() int { return 4 }

func (m *McLachlanAtela4) Step(t, dt float64, states []DegreesOfFreedom, compute AccelerationFunc) {
	n := len(states)
	if cap(m.positions) < n {
		m.positions = make([]mgl64.Vec3, n)
		m.accelerations = make([]mgl64.Vec3, n)
	}
	positions := m.positions[:n]
	accelerations := m.accelerations[:n]

	ts := t
	for stage := 0; stage < 4; stage++ {
		for i := range states {
			positions[i] = states[i].Position
		}
		compute(ts, positions, accelerations)
		for i := range states {
			states[i].Velocity = states[i].Velocity.Add(
				accelerations[i].Mul(mclachlanAtelaB[stage] * dt))
			states[i].Position = states[i].Position.Add(
				states[i].Velocity.Mul(mclachlanAtelaA[stage] * dt))
		}
		ts += mclachlanAtelaA[stage] * dt
	}
}

// Leapfrog is the classic second-order kick-drift-kick method, 2 force
// evaluations per step (1 with force reuse, which this implementation does
// not do).
type Leapfrog struct {
	positions     []mgl64.Vec3
	accelerations []mgl64.Vec3
}

func (l *Leapfrog) Order() int { return 2 }

func (l *Leapfrog) Step(t, dt float64, states []DegreesOfFreedom, compute AccelerationFunc) {
	n := len(states)
	if cap(l.positions) < n {
		l.positions = make([]mgl64.Vec3, n)
		l.accelerations = make([]mgl64.Vec3, n)
	}
	positions := l.positions[:n]
	accelerations := l.accelerations[:n]

	for i := range states {
		positions[i] = states[i].Position
	}
	compute(t, positions, accelerations)
	for i := range states {
		states[i].Velocity = states[i].Velocity.Add(accelerations[i].Mul(dt / 2))
		states[i].Position = states[i].Position.Add(states[i].Velocity.Mul(dt))
		positions[i] = states[i].Position
	}
	compute(t+dt, positions, accelerations)
	for i := range states {
		states[i].Velocity = states[i].Velocity.Add(accelerations[i].Mul(dt / 2))
	}
}
