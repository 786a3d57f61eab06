package reservoir

import (
	"math"
	"testing"

	"github.com/GaryBoone/GoStats/stats"
)

func TestPowerOutletThreshold(t *testing.T) {
	o := &PowerOutlet{C: 1.e-5, E: 1.5, Sa: .25, Vmax: 1.}
	for _, s := range []float64{0., .1, .25} {
		if v := o.Velocity(s, 0., 1.); v != 0. {
			t.Fatalf("storage %g below threshold released %g", s, v)
		}
	}
	if v := o.Velocity(.26, 0., 1.); v <= 0. {
		t.Fatalf("storage above threshold released %g", v)
	}
}

func TestPowerOutletCap(t *testing.T) {
	o := &PowerOutlet{C: 1.e-3, E: 1., Sa: 0., Vmax: 1.e-6}
	if v := o.Velocity(.9, 0., 1.); v != 1.e-6 {
		t.Fatalf("velocity %g exceeds cap", v)
	}
}

func TestPowerOutletLinearity(t *testing.T) {
	// with E = 1 the rate law is linear in storage; recover the slope
	// C/(smax-sa) by regression over a storage sweep
	c, sa, smax := 1.e-5, .2, 1.2
	o := &PowerOutlet{C: c, E: 1., Sa: sa, Vmax: 1.}
	n := 10
	x, y := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = .25 + .1*float64(i)
		y[i] = o.Velocity(x[i], 0., smax)
	}
	slope, _, rsquared, _, _, _ := stats.LinearRegression(x, y)
	want := c / (smax - sa)
	if math.Abs(slope-want)/want > 1.e-9 {
		t.Fatalf("regressed slope %g, wanted %g", slope, want)
	}
	if rsquared < .999999 {
		t.Fatalf("rsquared %g for a linear rate law", rsquared)
	}
}

func TestPowerOutletMonotone(t *testing.T) {
	o := &PowerOutlet{C: 1.e-5, E: 2., Sa: .1, Vmax: 1.}
	last := -1.
	for s := 0.; s <= 1.; s += .05 {
		v := o.Velocity(s, 0., 1.)
		if v < last {
			t.Fatalf("velocity decreased to %g at storage %g", v, s)
		}
		last = v
	}
}

func TestExpOutletLaw(t *testing.T) {
	c, e, sa, smax := .01, 3., 0., 1.
	o := &ExpOutlet{C: c, E: e, Sa: sa, Vmax: 1.e6}
	for _, s := range []float64{.1, .5, 1.} {
		want := c * (math.Exp(e*s/smax) - 1.)
		if v := o.Velocity(s, 0., smax); !near(v, want, testTolerance) {
			t.Fatalf("storage %g: velocity %g, wanted %g", s, v, want)
		}
	}
	if v := o.Velocity(0., 0., smax); v != 0. {
		t.Fatalf("empty store released %g", v)
	}
}
