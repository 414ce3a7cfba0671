// Package numerics provides the elliptic functions and integrals used by the
// closed-form rigid body solver: the Jacobian elliptic functions sn, cn, dn,
// the complete and incomplete elliptic integrals of the first, second and
// third kinds in Fukushima's associate form, and Bulirsch's general complete
// integral cel.
//
// The algorithms follow Fukushima (Celest. Mech. Dyn. Astron. 105, 2009;
// Numer. Math. 2012; J. Comp. Appl. Math. 2011) and Bulirsch (1969).
// Throughout, m is the elliptic parameter and mc = 1 - m its complement.
package numerics

import (
	"log"
	"math"
)

// JacobiSNCNDN computes the three Jacobian elliptic functions sn(u|m),
// cn(u|m) and dn(u|m) simultaneously by reduction to the first half-quarter
// period followed by conditional duplication. The argument u is unrestricted;
// mc is the complementary parameter, 0 < mc <= 1.
func JacobiSNCNDN(u, mc float64) (s, c, d float64) {
	kc := math.Sqrt(mc)
	ux := math.Abs(u)
	if ux < 0.785 {
		s, c, d = scd2(ux, mc)
	} else {
		k := EllipticK(mc)
		kh := k * 0.5
		kh3 := k * 1.5
		kh5 := k * 2.5
		kh7 := k * 3.5
		k2 := k * 2.0
		k3 := k * 3.0
		k4 := k * 4.0
		ux -= k4 * math.Trunc(ux/k4)
		switch {
		case ux < kh:
			s, c, d = scd2(ux, mc)
		case ux < k:
			s, c, d = scd2(k-ux, mc)
			s, c, d = c/d, kc*s/d, kc/d
		case ux < kh3:
			s, c, d = scd2(ux-k, mc)
			s, c, d = c/d, -kc*s/d, kc/d
		case ux < k2:
			s, c, d = scd2(k2-ux, mc)
			c = -c
		case ux < kh5:
			s, c, d = scd2(ux-k2, mc)
			s, c = -s, -c
		case ux < k3:
			s, c, d = scd2(k3-ux, mc)
			s, c, d = -c/d, -kc*s/d, kc/d
		case ux < kh7:
			s, c, d = scd2(ux-k3, mc)
			s, c, d = -c/d, kc*s/d, kc/d
		default:
			s, c, d = scd2(k4-ux, mc)
			s = -s
		}
	}
	if u < 0.0 {
		s = -s
	}
	return s, c, d
}

// JacobiAmplitude computes the amplitude am(u|m), the angle whose sine is
// sn(u|m), continued across quarter periods so that it is monotonic in u.
func JacobiAmplitude(u, mc float64) float64 {
	if mc <= 0.0 {
		// m = 1: am(u) = gd(u).
		return 2.0*math.Atan(math.Exp(u)) - math.Pi/2.0
	}
	k := EllipticK(mc)
	j := math.Round(u / (2.0 * k))
	s, c, _ := JacobiSNCNDN(u-2.0*k*j, mc)
	return j*math.Pi + math.Atan2(s, c)
}

// scd2 computes sn, cn, dn for 0 <= u < K/2 by Maclaurin seeding and
// conditional ascending/descending duplication.
func scd2(u, mc float64) (s, c, d float64) {
	const (
		b10 = 1.0 / 24.0
		b11 = 1.0 / 6.0
		b20 = 1.0 / 720.0
		b21 = 11.0 / 180.0
		b22 = 1.0 / 45.0
	)
	m := 1.0 - mc
	uA := 1.76269 + mc*1.16357
	uT := 5.217e-3 - m*2.143e-3
	u0 := u
	n := 0
	for ; u0 >= uT; n++ {
		if n > 20 {
			log.Panicf("scd2: too large input argument: u=%v", u)
		}
		u0 *= 0.5
	}
	v := u0 * u0
	a := 1.0
	b := v * (0.5 - v*(b10+m*b11-v*(b20+m*(b21+m*b22))))
	if u < uA {
		for j := 0; j < n; j++ {
			y := b * (a*2.0 - b)
			z := a * a
			my := m * y
			b = (y * 2.0) * (z - my)
			a = z*z - my*y
		}
	} else {
		for j := 0; j < n; j++ {
			y := b * (a*2.0 - b)
			z := a * a
			my := m * y
			if z < my*2.0 {
				// Switch to the recursion on c to avoid cancellation.
				c = a - b
				mc2 := mc * 2.0
				m2 := m * 2.0
				for i := j; i < n; i++ {
					x := c * c
					z = a * a
					w := m*x*x - mc*z*z
					xz := x * z
					c = mc2*xz + w
					a = m2*xz - w
				}
				c = c / a
				x := c * c
				s = math.Sqrt(1.0 - x)
				d = math.Sqrt(mc + m*x)
				return s, c, d
			}
			b = (y * 2.0) * (z - my)
			a = z*z - my*y
		}
	}
	b = b / a
	y := b * (2.0 - b)
	c = 1.0 - b
	s = math.Sqrt(y)
	d = math.Sqrt(1.0 - m*y)
	return s, c, d
}
