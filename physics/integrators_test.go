package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// harmonic is a unit harmonic oscillator along x.
func harmonic(t float64, positions, accelerations []mgl64.Vec3) {
	for i := range positions {
		accelerations[i] = positions[i].Mul(-1)
	}
}

func integrateHarmonic(integrator SymplecticIntegrator, h float64) DegreesOfFreedom {
	states := []DegreesOfFreedom{{Position: mgl64.Vec3{1, 0, 0}}}
	steps := int(math.Round(2 * math.Pi / h))
	t := 0.0
	for i := 0; i < steps; i++ {
		integrator.Step(t, h, states, harmonic)
		t += h
	}
	return states[0]
}

func TestMcLachlanAtela4Accuracy(t *testing.T) {
	final := integrateHarmonic(&McLachlanAtela4{}, 2*math.Pi/1000)
	if e := final.Position.Sub(mgl64.Vec3{1, 0, 0}).Len(); e > 1e-7 {
		t.Errorf("position error %g after one period", e)
	}
	if e := final.Velocity.Len(); e > 1e-7 {
		t.Errorf("velocity error %g after one period", e)
	}
}

func TestLeapfrogAccuracy(t *testing.T) {
	final := integrateHarmonic(&Leapfrog{}, 2*math.Pi/1000)
	if e := final.Position.Sub(mgl64.Vec3{1, 0, 0}).Len(); e > 1e-4 {
		t.Errorf("position error %g after one period", e)
	}
}

func TestIntegratorOrders(t *testing.T) {
	// Halving the step must reduce the error by about 2^order.
	for _, tc := range []struct {
		name       string
		integrator func() SymplecticIntegrator
	}{
		{"mclachlan-atela", func() SymplecticIntegrator { return &McLachlanAtela4{} }},
		{"leapfrog", func() SymplecticIntegrator { return &Leapfrog{} }},
	} {
		coarse := integrateHarmonic(tc.integrator(), 2*math.Pi/500)
		fine := integrateHarmonic(tc.integrator(), 2*math.Pi/1000)
		e1 := coarse.Position.Sub(mgl64.Vec3{1, 0, 0}).Len()
		e2 := fine.Position.Sub(mgl64.Vec3{1, 0, 0}).Len()
		order := float64(tc.integrator().Order())
		ratio := e1 / e2
		if ratio < math.Pow(2, order-0.5) || ratio > math.Pow(2, order+0.5) {
			t.Errorf("%s: error ratio %g for order %g", tc.name, ratio, order)
		}
	}
}

func TestLeapfrogEnergyBounded(t *testing.T) {
	// Symplectic methods keep the oscillator energy bounded over many
	// periods instead of drifting.
	states := []DegreesOfFreedom{{Position: mgl64.Vec3{1, 0, 0}}}
	integrator := &Leapfrog{}
	const h = 2 * math.Pi / 200
	t0 := 0.0
	for i := 0; i < 200*100; i++ {
		integrator.Step(t0, h, states, harmonic)
		t0 += h
		energy := 0.5 * (states[0].Position.Dot(states[0].Position) +
			states[0].Velocity.Dot(states[0].Velocity))
		if math.Abs(energy-0.5) > 1e-3 {
			t.Fatalf("energy %g at step %d", energy, i)
		}
	}
}
