package tshirt

import "math"

// SoilFieldCapacityStorage : the storage height Sfc [m] at which free
// drainage stops, from closed-form integration of the Clapp-Hornberger
// tension profile over a 2 m window starting .5 m below the
// representative water table head. State-independent; reused as the
// activation threshold of the lateral, percolation and cascade outlets.
func (p *Params) SoilFieldCapacityStorage() float64 {
	hwt := p.AlphaFc * atmosphericPressure / waterSpecificWeight
	z1 := hwt - .5
	z2 := z1 + 2.
	// z^(1-1/b)/(1-1/b) == b*z^((b-1)/b)/(b-1)
	bb := (p.B - 1.) / p.B
	return p.Maxsmc * math.Pow(1./p.Satpsi, -1./p.B) *
		(p.B*math.Pow(z2, bb)/(p.B-1.) - p.B*math.Pow(z1, bb)/(p.B-1.))
}
