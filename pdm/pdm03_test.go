package pdm

import (
	"math"
	"testing"
)

const testTolerance = 1.e-8

func TestNewPdm03(t *testing.T) {
	p, err := NewPdm03(1.5, 1., .5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Cpar-.2) > testTolerance {
		t.Fatalf("Cpar %g, wanted .2", p.Cpar)
	}
	for _, a := range [][3]float64{{-.1, 1., .5}, {1.5, -1., .5}, {1.5, 1., 0.}} {
		if _, err := NewPdm03(a[0], a[1], a[2]); err == nil {
			t.Fatalf("accepted parameters %v", a)
		}
	}
}

func TestUpdateContentBalance(t *testing.T) {
	// content gained equals precipitation less overflow and ET loss
	p, err := NewPdm03(1.5, .9, .5)
	if err != nil {
		t.Fatal(err)
	}
	p.XHuz = .2
	cbeg := p.Cpar * (1. - math.Pow(1.-p.XHuz/p.Huz, 1.+p.B))
	p.EffPrecip = .015
	p.PE = .004
	p.Update()
	res := p.EffPrecip - p.OV - p.AE - (p.XCuz - cbeg)
	if math.Abs(res) > testTolerance {
		t.Fatalf("content balance residual %g", res)
	}
}

func TestUpdateNoDemandNoChange(t *testing.T) {
	p, err := NewPdm03(2., 1., .4)
	if err != nil {
		t.Fatal(err)
	}
	p.XHuz = .17
	p.Update() // EffPrecip and PE both zero
	if math.Abs(p.XHuz-.17) > 1.e-12 {
		t.Fatalf("storage drifted to %g with no forcing", p.XHuz)
	}
	if p.AE != 0. || p.OV != 0. {
		t.Fatalf("fluxes [%g %g] with no forcing", p.AE, p.OV)
	}
}

func TestCalcEvapotranspirationDepletes(t *testing.T) {
	p, err := NewPdm03(1.5, 1., .5)
	if err != nil {
		t.Fatal(err)
	}
	p.PE = .002
	soilM := .3
	for i := 0; i < 200; i++ {
		loss := p.CalcEvapotranspiration(soilM)
		if loss < 0. {
			t.Fatalf("step %d: negative loss %g", i, loss)
		}
		if p.AE > p.PE*p.Kv+testTolerance {
			t.Fatalf("step %d: AE %g exceeds demand %g", i, p.AE, p.PE*p.Kv)
		}
		soilM -= loss
		if soilM < 0. {
			t.Fatalf("step %d: soil moisture driven negative", i)
		}
	}
	if soilM >= .3 {
		t.Fatal("no depletion over 200 demand steps")
	}
}

func TestCalcEvapotranspirationDryColumn(t *testing.T) {
	p, err := NewPdm03(1.5, 1., .5)
	if err != nil {
		t.Fatal(err)
	}
	p.PE = .002
	if loss := p.CalcEvapotranspiration(0.); loss != 0. {
		t.Fatalf("dry column lost %g", loss)
	}
}

func TestCalcEvapotranspirationFullStore(t *testing.T) {
	// saturated column evaporates at the vegetation-adjusted potential
	p, err := NewPdm03(1.5, .8, .5)
	if err != nil {
		t.Fatal(err)
	}
	p.PE = .001
	p.CalcEvapotranspiration(p.Huz)
	if math.Abs(p.AE-p.PE*p.Kv) > testTolerance {
		t.Fatalf("saturated AE %g, wanted %g", p.AE, p.PE*p.Kv)
	}
}
