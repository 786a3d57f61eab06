package reservoir

import "fmt"

// Cascade : an ordered chain of identical single linear-outlet
// reservoirs used to delay and smooth a lateral flow signal.
type Cascade []*Res

// NewCascade : build a Nash cascade seeded from sto, one reservoir per
// entry, each bounded [0,smax] with a linear outlet of coefficient k,
// activation threshold sa and velocity cap vmax.
func NewCascade(smax, k, sa, vmax float64, sto []float64) (Cascade, error) {
	if len(sto) == 0 {
		return nil, fmt.Errorf("reservoir.NewCascade: cascade requires at least one reservoir")
	}
	c := make(Cascade, len(sto))
	for i, s := range sto {
		r, err := NewSingle(0., smax, s, k, 1., sa, vmax)
		if err != nil {
			return nil, fmt.Errorf("reservoir.NewCascade: reservoir %d: %v", i, err)
		}
		c[i] = r
	}
	return c, nil
}

// Route : pass an inflow velocity [m/s] through the chain for one
// timestep. Each stage's excess is returned to the stream as excess/dt
// added to that stage's output velocity, keeping the chain conservative
// at the cost of bypassing the next stage's capacity check.
func (c Cascade) Route(vin, dt float64) float64 {
	for _, r := range c {
		v, xs := r.Respond(vin, dt)
		vin = v + xs/dt
	}
	return vin
}

// Storages : current storage heights [m], ordered upstream to down
func (c Cascade) Storages() []float64 {
	s := make([]float64, len(c))
	for i, r := range c {
		s[i] = r.Storage()
	}
	return s
}
