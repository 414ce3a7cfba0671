package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrUnknownBody is returned when a body is not part of an ephemeris.
	ErrUnknownBody = errors.New("unknown body")
	// ErrBadConfiguration is returned by NewEphemeris on invalid input.
	ErrBadConfiguration = errors.New("bad ephemeris configuration")
)

// Ephemeris integrates the motion of a set of massive bodies under their
// mutual gravitation and records one trajectory per body. The timeline
// starts at the initial time and is extended forward on demand by Prolong.
type Ephemeris struct {
	bodies       []*MassiveBody
	byName       map[string]*MassiveBody
	trajectories map[*MassiveBody]*Trajectory
	states       []DegreesOfFreedom // at time t
	t            float64
	initialTime  float64
	step         float64
	integrator   SymplecticIntegrator
}

// NewEphemeris builds an ephemeris for the given bodies, which must have
// distinct names and positive gravitational parameters, starting from the
// given degrees of freedom at initialTime and integrating with the given
// fixed step.
func NewEphemeris(bodies []*MassiveBody, initial []DegreesOfFreedom,
	initialTime, step float64, integrator SymplecticIntegrator) (*Ephemeris, error) {
	if len(bodies) == 0 || len(bodies) != len(initial) {
		return nil, fmt.Errorf("%d bodies, %d states: %w",
			len(bodies), len(initial), ErrBadConfiguration)
	}
	if !(step > 0) {
		return nil, fmt.Errorf("step %g: %w", step, ErrBadConfiguration)
	}
	if integrator == nil {
		return nil, fmt.Errorf("nil integrator: %w", ErrBadConfiguration)
	}
	e := &Ephemeris{
		bodies:       bodies,
		byName:       make(map[string]*MassiveBody, len(bodies)),
		trajectories: make(map[*MassiveBody]*Trajectory, len(bodies)),
		states:       append([]DegreesOfFreedom(nil), initial...),
		t:            initialTime,
		initialTime:  initialTime,
		step:         step,
		integrator:   integrator,
	}
	for i, b := range bodies {
		if !(b.GravitationalParameter > 0) {
			return nil, fmt.Errorf("body %q has μ=%g: %w",
				b.Name, b.GravitationalParameter, ErrBadConfiguration)
		}
		if _, dup := e.byName[b.Name]; dup {
			return nil, fmt.Errorf("duplicate body %q: %w", b.Name, ErrBadConfiguration)
		}
		e.byName[b.Name] = b
		tr := NewTrajectory()
		if err := tr.Append(initialTime, initial[i]); err != nil {
			return nil, err
		}
		e.trajectories[b] = tr
	}
	return e, nil
}

// Bodies returns the bodies of the ephemeris, in construction order.
func (e *Ephemeris) Bodies() []*MassiveBody { return e.bodies }

// Body looks a body up by name.
func (e *Ephemeris) Body(name string) (*MassiveBody, error) {
	b, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBody)
	}
	return b, nil
}

// Trajectory returns the recorded trajectory of the given body.
func (e *Ephemeris) Trajectory(b *MassiveBody) (*Trajectory, error) {
	tr, ok := e.trajectories[b]
	if !ok {
		return nil, fmt.Errorf("%q: %w", b.Name, ErrUnknownBody)
	}
	return tr, nil
}

// TMin returns the start of the covered timeline.
func (e *Ephemeris) TMin() float64 { return e.initialTime }

// TMax returns the end of the covered timeline.
func (e *Ephemeris) TMax() float64 { return e.t }

// Step returns the integration step.
func (e *Ephemeris) Step() float64 { return e.step }

// Prolong extends the timeline to cover at least t. Prolonging to a time
// already covered does nothing.
func (e *Ephemeris) Prolong(t float64) {
	for e.t < t {
		e.integrator.Step(e.t, e.step, e.states, e.massiveAccelerations)
		e.t += e.step
		for i, b := range e.bodies {
			// Times are exact multiples of the step from the initial time,
			// so appending is strictly monotonic.
			if err := e.trajectories[b].Append(e.t, e.states[i]); err != nil {
				panic(err)
			}
		}
	}
}

// ForgetBefore drops trajectory history strictly before t.
func (e *Ephemeris) ForgetBefore(t float64) {
	for _, tr := range e.trajectories {
		tr.ForgetBefore(t)
	}
	if t > e.initialTime {
		e.initialTime = math.Min(t, e.t)
	}
}

// massiveAccelerations computes the mutual gravitational accelerations of
// the massive bodies at the given positions.
func (e *Ephemeris) massiveAccelerations(t float64, positions, accelerations []mgl64.Vec3) {
	for i := range accelerations {
		accelerations[i] = mgl64.Vec3{}
	}
	for i := 0; i < len(e.bodies)-1; i++ {
		for j := i + 1; j < len(e.bodies); j++ {
			d := positions[j].Sub(positions[i])
			r2 := d.Dot(d)
			r := math.Sqrt(r2)
			inv := 1 / (r2 * r)
			accelerations[i] = accelerations[i].Add(
				d.Mul(e.bodies[j].GravitationalParameter * inv))
			accelerations[j] = accelerations[j].Sub(
				d.Mul(e.bodies[i].GravitationalParameter * inv))
			if e.bodies[j].J2 != 0 {
				accelerations[i] = accelerations[i].Add(
					oblatenessAcceleration(e.bodies[j], positions[i].Sub(positions[j])))
			}
			if e.bodies[i].J2 != 0 {
				accelerations[j] = accelerations[j].Add(
					oblatenessAcceleration(e.bodies[i], d))
			}
		}
	}
}

// oblatenessAcceleration computes the degree-2 zonal correction of the
// field of body b at the point rel, relative to b, with the figure axis
// along z.
func oblatenessAcceleration(b *MassiveBody, rel mgl64.Vec3) mgl64.Vec3 {
	r2 := rel.Dot(rel)
	r := math.Sqrt(r2)
	factor := -1.5 * b.J2 * b.GravitationalParameter *
		b.ReferenceRadius * b.ReferenceRadius / (r2 * r2 * r)
	z2 := rel[2] * rel[2]
	transverse := 1 - 5*z2/r2
	return mgl64.Vec3{
		factor * rel[0] * transverse,
		factor * rel[1] * transverse,
		factor * rel[2] * (3 - 5*z2/r2),
	}
}

// bodyPositionsAt evaluates the position of every body at t.
func (e *Ephemeris) bodyPositionsAt(t float64) ([]mgl64.Vec3, error) {
	positions := make([]mgl64.Vec3, len(e.bodies))
	for i, b := range e.bodies {
		p, err := e.trajectories[b].EvaluatePosition(t)
		if err != nil {
			return nil, err
		}
		positions[i] = p
	}
	return positions, nil
}

// ComputeGravitationalAccelerationOnMassiveBody computes the acceleration
// exerted on the given body by all the others at a time within the covered
// timeline.
func (e *Ephemeris) ComputeGravitationalAccelerationOnMassiveBody(
	b *MassiveBody, t float64) (mgl64.Vec3, error) {
	tr, ok := e.trajectories[b]
	if !ok {
		return mgl64.Vec3{}, fmt.Errorf("%q: %w", b.Name, ErrUnknownBody)
	}
	p, err := tr.EvaluatePosition(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	positions, err := e.bodyPositionsAt(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	var a mgl64.Vec3
	for j, other := range e.bodies {
		if other == b {
			continue
		}
		a = a.Add(pointAcceleration(other, positions[j], p))
	}
	return a, nil
}

// ComputeGravitationalAccelerationOnMasslessBody computes the acceleration
// of the field of all massive bodies at the given position.
func (e *Ephemeris) ComputeGravitationalAccelerationOnMasslessBody(
	position mgl64.Vec3, t float64) (mgl64.Vec3, error) {
	positions, err := e.bodyPositionsAt(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	var a mgl64.Vec3
	for j, b := range e.bodies {
		a = a.Add(pointAcceleration(b, positions[j], position))
	}
	return a, nil
}

// pointAcceleration computes the acceleration of the field of body b,
// located at bp, at the point p.
func pointAcceleration(b *MassiveBody, bp, p mgl64.Vec3) mgl64.Vec3 {
	d := bp.Sub(p)
	r2 := d.Dot(d)
	r := math.Sqrt(r2)
	a := d.Mul(b.GravitationalParameter / (r2 * r))
	if b.J2 != 0 {
		a = a.Add(oblatenessAcceleration(b, p.Sub(bp)))
	}
	return a
}

// FlowWithFixedStep integrates a massless body in the field of the
// ephemeris from t0 to t1 with the given step and integrator, prolonging
// the ephemeris as needed. The last step is shortened to land on t1.
func (e *Ephemeris) FlowWithFixedStep(dof DegreesOfFreedom, t0, t1, step float64,
	integrator SymplecticIntegrator) (DegreesOfFreedom, error) {
	if !(step > 0) || t1 < t0 {
		return DegreesOfFreedom{}, fmt.Errorf(
			"flow from %g to %g with step %g: %w", t0, t1, step, ErrBadConfiguration)
	}
	if t0 < e.TMin() {
		return DegreesOfFreedom{}, fmt.Errorf(
			"t=%g before %g: %w", t0, e.TMin(), ErrTimeOutOfRange)
	}
	e.Prolong(t1)

	var evalErr error
	states := []DegreesOfFreedom{dof}
	compute := func(t float64, positions, accelerations []mgl64.Vec3) {
		a, err := e.ComputeGravitationalAccelerationOnMasslessBody(positions[0], t)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		accelerations[0] = a
	}
	for t := t0; t < t1; {
		h := math.Min(step, t1-t)
		integrator.Step(t, h, states, compute)
		t += h
	}
	if evalErr != nil {
		return DegreesOfFreedom{}, evalErr
	}
	return states[0], nil
}
