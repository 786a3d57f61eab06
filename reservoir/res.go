// Package reservoir implements bounded nonlinear storage reservoirs:
// one or more outlets drawing from a shared storage, explicit-Euler
// timestep integration with capacity overflow reported as excess, and
// the Nash cascade built from chains of linear reservoirs.
package reservoir

import "fmt"

// Res : a bounded store with one or more outlets sharing the same
// storage. Storage is clamped to [smin,smax]; water that cannot be held
// is reported as excess, never silently dropped.
type Res struct {
	smin, smax float64
	sto        float64
	out        []Outlet
	vel        []float64 // realized outlet velocities from the last Respond
}

// New : reservoir with an explicit outlet set
func New(smin, smax, sto float64, outlets ...Outlet) (*Res, error) {
	if smax <= smin {
		return nil, fmt.Errorf("reservoir.New: invalid bounds [%g,%g]", smin, smax)
	}
	if sto < smin || sto > smax {
		return nil, fmt.Errorf("reservoir.New: initial storage %g outside [%g,%g]", sto, smin, smax)
	}
	if len(outlets) == 0 {
		return nil, fmt.Errorf("reservoir.New: no outlets")
	}
	for i, o := range outlets {
		var c, vmax, sa float64
		switch t := o.(type) {
		case *PowerOutlet:
			c, vmax, sa = t.C, t.Vmax, t.Sa
		case *ExpOutlet:
			c, vmax, sa = t.C, t.Vmax, t.Sa
		default:
			continue
		}
		if c < 0. || vmax < 0. || sa < 0. {
			return nil, fmt.Errorf("reservoir.New: outlet %d has negative parameterization", i)
		}
	}
	return &Res{smin: smin, smax: smax, sto: sto, out: outlets, vel: make([]float64, len(outlets))}, nil
}

// NewSingle : single power-law outlet shorthand
func NewSingle(smin, smax, sto, c, e, sa, vmax float64) (*Res, error) {
	return New(smin, smax, sto, &PowerOutlet{C: c, E: e, Sa: sa, Vmax: vmax})
}

// NewExp : single exponential outlet shorthand
func NewExp(smin, smax, sto, c, e, sa, vmax float64) (*Res, error) {
	return New(smin, smax, sto, &ExpOutlet{C: c, E: e, Sa: sa, Vmax: vmax})
}

// Respond : advance the reservoir one timestep of length dt [s] given an
// inflow rate [m/s]. Outlet velocities are evaluated at the pre-update
// storage (single explicit step). Returns the total realized outflow
// velocity [m/s] and any overflow above capacity as an excess depth [m].
// If outflow would draw storage below smin, all outlet velocities are
// scaled by a common factor so storage floors exactly at smin.
func (r *Res) Respond(inflow, dt float64) (vout, excess float64) {
	if r.sto < r.smin {
		r.sto = r.smin
	} else if r.sto > r.smax {
		r.sto = r.smax
	}
	sum := 0.
	for i, o := range r.out {
		r.vel[i] = o.Velocity(r.sto, r.smin, r.smax)
		sum += r.vel[i]
	}
	cand := r.sto + (inflow-sum)*dt
	if cand < r.smin && sum > 0. {
		f := (r.sto + inflow*dt - r.smin) / (sum * dt)
		sum = 0.
		for i := range r.vel {
			r.vel[i] *= f
			sum += r.vel[i]
		}
		cand = r.smin
	}
	if cand > r.smax {
		excess = cand - r.smax
		cand = r.smax
	}
	r.sto = cand
	return sum, excess
}

// Velocity : realized velocity [m/s] for outlet i from the last Respond
func (r *Res) Velocity(i int) float64 { return r.vel[i] }

// Storage : current storage height [m]
func (r *Res) Storage() float64 { return r.sto }
