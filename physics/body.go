package physics

import "github.com/go-gl/mathgl/mgl64"

// G = 6.67408 × 10-11 m3 kg-1 s-2
//   = 6.67408e-11 m³/(kg·s²)
const G = 6.67408e-11

// MassiveBody is a body that exerts gravity. It is identified by name within
// an ephemeris. A nonzero J2 models the oblateness of the body, with the
// figure axis along the z axis of the inertial frame.
type MassiveBody struct {
	Name                   string
	GravitationalParameter float64 // m³/s²
	J2                     float64 // dimensionless
	ReferenceRadius        float64 // m, equatorial; only used when J2 != 0
}

// Mass returns the body mass in kg.
func (b *MassiveBody) Mass() float64 {
	return b.GravitationalParameter / G
}

// MasslessBody is a probe whose gravity is neglected, e.g. a spacecraft.
type MasslessBody struct {
	Name string
}

// DegreesOfFreedom is the position and velocity of a body, in m and m/s.
type DegreesOfFreedom struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Barycentre returns the mass-weighted combination of two degrees of
// freedom with the given gravitational parameters.
func Barycentre(a, b DegreesOfFreedom, muA, muB float64) DegreesOfFreedom {
	w := muA + muB
	return DegreesOfFreedom{
		Position: a.Position.Mul(muA / w).Add(b.Position.Mul(muB / w)),
		Velocity: a.Velocity.Mul(muA / w).Add(b.Velocity.Mul(muB / w)),
	}
}

// SolarSystemBodies returns the sun and planets with their initial degrees
// of freedom: each planet at its mean orbital distance on the x axis with
// its mean orbital speed along y, alternating sides so the system roughly
// balances.
func SolarSystemBodies() ([]*MassiveBody, []DegreesOfFreedom) {
	bodies := []*MassiveBody{
		{Name: "sun", GravitationalParameter: 1.9885e30 * G},
		{Name: "mercury", GravitationalParameter: 3.3011e23 * G},
		{Name: "venus", GravitationalParameter: 4.8675e24 * G},
		{Name: "earth", GravitationalParameter: 5.97237e24 * G,
			J2: 1.08263e-3, ReferenceRadius: 6.378137e6},
		{Name: "mars", GravitationalParameter: 6.4171e23 * G},
		{Name: "jupiter", GravitationalParameter: 1.8982e27 * G},
		{Name: "saturn", GravitationalParameter: 5.6834e26 * G},
		{Name: "uranus", GravitationalParameter: 8.681e25 * G},
		{Name: "neptune", GravitationalParameter: 1.02413e26 * G},
	}
	states := []DegreesOfFreedom{
		{},
		{Position: mgl64.Vec3{(69816900*1e3 + 46001200*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, 47.362 * 1e3, 0}},
		{Position: mgl64.Vec3{-(108939000*1e3 + 107477000*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, -35.02 * 1e3, 0}},
		{Position: mgl64.Vec3{(152100000*1e3 + 147095000*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, 29.78 * 1e3, 0}},
		{Position: mgl64.Vec3{-(249200000*1e3 + 206700000*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, -24.007 * 1e3, 0}},
		{Position: mgl64.Vec3{(816.2*1e6*1e3 + 740.52*1e6*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, 13.07 * 1e3, 0}},
		{Position: mgl64.Vec3{-(1514.5*1e6*1e3 + 1352.55*1e6*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, -9.68 * 1e3, 0}},
		{Position: mgl64.Vec3{(3.008*1e9*1e3 + 2.742*1e9*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, 6.8 * 1e3, 0}},
		{Position: mgl64.Vec3{-(4.54e9*1e3 + 4.46e9*1e3) / 2, 0, 0},
			Velocity: mgl64.Vec3{0, -5.43 * 1e3, 0}},
	}
	return bodies, states
}
