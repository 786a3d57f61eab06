// Package pdm implements the probability-distributed soil moisture
// store of Moore (2007), here used to convert a potential
// evapotranspiration demand into an actual soil moisture loss.
package pdm

import (
	"fmt"
	"math"
)

// Pdm03 : a soil column whose point storage capacities follow a Pareto
// distribution. Huz and B set the distribution, Kv scales potential
// evapotranspiration, and the X* fields carry the water state between
// updates. Per-step forcings (EffPrecip, PE) and responses (AE, OV) are
// depths [m].
type Pdm03 struct {
	B         float64 // capacity distribution shape
	Kv        float64 // vegetation adjustment on potential ET
	Huz       float64 // maximum storage height [m]
	Cpar      float64 // maximum storage content [m]
	XHuz      float64 // storage height [m]
	XCuz      float64 // storage content [m]
	EffPrecip float64 // effective precipitation [m]
	PE        float64 // potential evapotranspiration [m]
	AE        float64 // actual evapotranspiration [m]
	OV        float64 // effective rainfall overflow [m]
}

// NewPdm03 : empty store; the content parameter follows from the height
// maximum and the distribution shape
func NewPdm03(b, kv, huz float64) (*Pdm03, error) {
	if b < 0. {
		return nil, fmt.Errorf("pdm.NewPdm03: negative shape %g", b)
	}
	if kv < 0. {
		return nil, fmt.Errorf("pdm.NewPdm03: negative vegetation factor %g", kv)
	}
	if huz <= 0. {
		return nil, fmt.Errorf("pdm.NewPdm03: non-positive storage height %g", huz)
	}
	return &Pdm03{B: b, Kv: kv, Huz: huz, Cpar: huz / (1. + b)}, nil
}

// unit : ratios fed to pow stay on [0,1]
func unit(x float64) float64 {
	if x < 0. {
		return 0.
	}
	if x > 1. {
		return 1.
	}
	return x
}

// Update : advance the store one step from EffPrecip and PE, filling
// AE, OV and the new storage state (Moore, 2007)
func (p *Pdm03) Update() {
	cbeg := p.Cpar * (1. - math.Pow(unit(1.-p.XHuz/p.Huz), 1.+p.B))
	ov2 := math.Max(0., p.EffPrecip+p.XHuz-p.Huz)
	ppinf := p.EffPrecip - ov2
	hint := math.Min(p.Huz, p.XHuz+ppinf)
	cint := p.Cpar * (1. - math.Pow(unit(1.-hint/p.Huz), 1.+p.B))
	ov1 := math.Max(0., ppinf+cbeg-cint)
	p.OV = ov1 + ov2
	p.AE = math.Min(cint, cint/p.Cpar*p.PE*p.Kv)
	p.XCuz = math.Max(0., cint-p.AE)
	p.XHuz = p.Huz * (1. - math.Pow(unit(1.-p.XCuz/p.Cpar), 1./(1.+p.B)))
}

// CalcEvapotranspiration : set the store height to the column's soil
// moisture [m], update with no precipitation, and return the soil
// moisture drawn off by evapotranspiration [m], never negative.
func (p *Pdm03) CalcEvapotranspiration(soilM float64) float64 {
	p.XHuz = soilM
	p.EffPrecip = 0.
	p.Update()
	loss := soilM - p.XHuz
	if loss < 0. {
		return 0.
	}
	return loss
}
