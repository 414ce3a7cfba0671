package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RigidMotion maps degrees of freedom from one frame to another: a rotation
// and a moving origin, with the angular velocity of the target frame. All
// origin quantities are expressed in source coordinates.
type RigidMotion struct {
	rotation        mgl64.Quat // source basis to target basis
	angularVelocity mgl64.Vec3 // of the target frame, source coordinates
	originPosition  mgl64.Vec3
	originVelocity  mgl64.Vec3
}

// NewRigidMotion builds the motion mapping source coordinates to the frame
// with the given origin, origin velocity and angular velocity, all in
// source coordinates, and the given basis rotation.
func NewRigidMotion(rotation mgl64.Quat, angularVelocity,
	originPosition, originVelocity mgl64.Vec3) *RigidMotion {
	return &RigidMotion{
		rotation:        rotation,
		angularVelocity: angularVelocity,
		originPosition:  originPosition,
		originVelocity:  originVelocity,
	}
}

// Rotation returns the basis rotation of the motion.
func (m *RigidMotion) Rotation() mgl64.Quat { return m.rotation }

// AngularVelocity returns the angular velocity of the target frame in
// source coordinates.
func (m *RigidMotion) AngularVelocity() mgl64.Vec3 { return m.angularVelocity }

// Apply transforms degrees of freedom from source to target coordinates.
func (m *RigidMotion) Apply(dof DegreesOfFreedom) DegreesOfFreedom {
	dp := dof.Position.Sub(m.originPosition)
	return DegreesOfFreedom{
		Position: m.rotation.Rotate(dp),
		Velocity: m.rotation.Rotate(
			dof.Velocity.Sub(m.originVelocity).Sub(m.angularVelocity.Cross(dp))),
	}
}

// Inverse returns the motion mapping target coordinates back to source
// coordinates. Applying both in sequence is the identity.
func (m *RigidMotion) Inverse() *RigidMotion {
	inv := m.rotation.Inverse()
	return &RigidMotion{
		rotation:        inv,
		angularVelocity: m.rotation.Rotate(m.angularVelocity).Mul(-1),
		originPosition:  m.rotation.Rotate(m.originPosition).Mul(-1),
		originVelocity: m.rotation.Rotate(
			m.angularVelocity.Cross(m.originPosition).Sub(m.originVelocity)),
	}
}

// BarycentricRotatingDynamicFrame is the frame whose origin is the
// barycentre of two bodies of an ephemeris, whose x axis points from the
// barycentre to the secondary, and whose z axis is along the orbital
// angular momentum of the pair. Useful for studying libration points.
type BarycentricRotatingDynamicFrame struct {
	ephemeris *Ephemeris
	primary   *MassiveBody
	secondary *MassiveBody
}

// NewBarycentricRotatingDynamicFrame builds the barycentric rotating frame
// of the two bodies, which must belong to the ephemeris.
func NewBarycentricRotatingDynamicFrame(e *Ephemeris,
	primary, secondary *MassiveBody) (*BarycentricRotatingDynamicFrame, error) {
	if _, err := e.Trajectory(primary); err != nil {
		return nil, err
	}
	if _, err := e.Trajectory(secondary); err != nil {
		return nil, err
	}
	return &BarycentricRotatingDynamicFrame{
		ephemeris: e,
		primary:   primary,
		secondary: secondary,
	}, nil
}

// ToThisFrameAtTime returns the motion from inertial to frame coordinates
// at t, which must be within the covered timeline.
func (f *BarycentricRotatingDynamicFrame) ToThisFrameAtTime(t float64) (*RigidMotion, error) {
	pd, sd, err := f.endpoints(t)
	if err != nil {
		return nil, err
	}
	bary := Barycentre(pd, sd,
		f.primary.GravitationalParameter, f.secondary.GravitationalParameter)

	r := sd.Position.Sub(pd.Position)
	rdot := sd.Velocity.Sub(pd.Velocity)
	xHat := r.Normalize()
	l := r.Cross(rdot)
	zHat := l.Normalize()
	yHat := zHat.Cross(xHat)

	rotation := mgl64.Mat3FromCols(xHat, yHat, zHat).Transpose()
	omega := l.Mul(1 / r.Dot(r))
	// The triad also precesses about x when the orbital plane tilts.
	ap, err := f.ephemeris.ComputeGravitationalAccelerationOnMassiveBody(f.primary, t)
	if err != nil {
		return nil, err
	}
	as, err := f.ephemeris.ComputeGravitationalAccelerationOnMassiveBody(f.secondary, t)
	if err != nil {
		return nil, err
	}
	// d(zHat)/dt = omega × zHat gives omega_x = -(ldot·yHat)/|l|.
	ldot := r.Cross(as.Sub(ap))
	omega = omega.Sub(xHat.Mul(ldot.Dot(yHat) / l.Len()))

	return NewRigidMotion(mgl64.Mat4ToQuat(rotation.Mat4()),
		omega, bary.Position, bary.Velocity), nil
}

// FromThisFrameAtTime returns the motion from frame to inertial
// coordinates at t.
func (f *BarycentricRotatingDynamicFrame) FromThisFrameAtTime(t float64) (*RigidMotion, error) {
	to, err := f.ToThisFrameAtTime(t)
	if err != nil {
		return nil, err
	}
	return to.Inverse(), nil
}

// GeometricAcceleration computes the acceleration, in frame coordinates,
// experienced at t by a massless body with the given degrees of freedom in
// the frame. It includes gravity and the linear, centrifugal, Coriolis and
// Euler inertial accelerations.
func (f *BarycentricRotatingDynamicFrame) GeometricAcceleration(
	t float64, dof DegreesOfFreedom) (mgl64.Vec3, error) {
	to, err := f.ToThisFrameAtTime(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	inertial := to.Inverse().Apply(dof)

	gravity, err := f.ephemeris.ComputeGravitationalAccelerationOnMasslessBody(
		inertial.Position, t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	origin, err := f.originAcceleration(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	omega := to.rotation.Rotate(to.angularVelocity)
	omegaDot, err := f.angularAcceleration(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	omegaDot = to.rotation.Rotate(omegaDot)

	a := to.rotation.Rotate(gravity.Sub(origin))
	a = a.Sub(omegaDot.Cross(dof.Position))
	a = a.Sub(omega.Cross(omega.Cross(dof.Position)))
	a = a.Sub(omega.Cross(dof.Velocity).Mul(2))
	return a, nil
}

// originAcceleration computes the inertial acceleration of the barycentre.
func (f *BarycentricRotatingDynamicFrame) originAcceleration(t float64) (mgl64.Vec3, error) {
	ap, err := f.ephemeris.ComputeGravitationalAccelerationOnMassiveBody(f.primary, t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	as, err := f.ephemeris.ComputeGravitationalAccelerationOnMassiveBody(f.secondary, t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	mup := f.primary.GravitationalParameter
	mus := f.secondary.GravitationalParameter
	return ap.Mul(mup / (mup + mus)).Add(as.Mul(mus / (mup + mus))), nil
}

// angularAcceleration differentiates the frame angular velocity by central
// differences over a fraction of the ephemeris step.
func (f *BarycentricRotatingDynamicFrame) angularAcceleration(t float64) (mgl64.Vec3, error) {
	h := f.ephemeris.Step() / 4
	tm := math.Max(t-h, f.ephemeris.TMin())
	tp := math.Min(t+h, f.ephemeris.TMax())
	before, err := f.ToThisFrameAtTime(tm)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	after, err := f.ToThisFrameAtTime(tp)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return after.angularVelocity.Sub(before.angularVelocity).Mul(1 / (tp - tm)), nil
}

func (f *BarycentricRotatingDynamicFrame) endpoints(t float64) (pd, sd DegreesOfFreedom, err error) {
	ptr, err := f.ephemeris.Trajectory(f.primary)
	if err != nil {
		return
	}
	str, err := f.ephemeris.Trajectory(f.secondary)
	if err != nil {
		return
	}
	pd, err = ptr.EvaluateDegreesOfFreedom(t)
	if err != nil {
		return
	}
	sd, err = str.EvaluateDegreesOfFreedom(t)
	return
}
