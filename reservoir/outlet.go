package reservoir

import "math"

// Outlet : a single flow path out of a reservoir. Velocity returns the
// outflow rate [m/s] given the current storage height and the owning
// reservoir's bounds; implementations return zero at or below their
// activation threshold and never exceed their velocity cap.
type Outlet interface {
	Velocity(sto, smin, smax float64) float64
}

// PowerOutlet : power-law rate law v = C*((S-Sa)/(Smax-Sa))^E, capped at
// Vmax. E = 1 yields the linear reservoir used for lateral and
// percolation flow.
type PowerOutlet struct {
	C    float64 // rate coefficient [m/s]
	E    float64 // shape exponent
	Sa   float64 // activation threshold [m]
	Vmax float64 // velocity cap [m/s]
}

func (o *PowerOutlet) Velocity(sto, smin, smax float64) float64 {
	if sto <= o.Sa {
		return 0.
	}
	v := o.C * math.Pow((sto-o.Sa)/(smax-o.Sa), o.E)
	return math.Min(v, o.Vmax)
}

// ExpOutlet : exponential rate law v = C*(exp(E*(S-Sa)/(Smax-Sa))-1),
// capped at Vmax; the NWM-style deep groundwater discharge law.
type ExpOutlet struct {
	C    float64 // rate coefficient [m/s]
	E    float64 // shape exponent
	Sa   float64 // activation threshold [m]
	Vmax float64 // velocity cap [m/s]
}

func (o *ExpOutlet) Velocity(sto, smin, smax float64) float64 {
	if sto <= o.Sa {
		return 0.
	}
	v := o.C * (math.Exp(o.E*(sto-o.Sa)/(smax-o.Sa)) - 1.)
	return math.Min(v, o.Vmax)
}
