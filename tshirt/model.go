package tshirt

import (
	"fmt"
	"math"

	"github.com/GreyEvenson-NOAA/ngen/reservoir"
)

// Partitioner : splits the input water flux [m/s] into surface runoff
// and infiltration [m/s] given the Schaake coefficient and the column
// soil moisture deficit [m]. Both returns are non-negative and sum to
// the input.
type Partitioner func(dt, cs, deficit, waterIn float64) (runoff, infil float64)

// Router : lags instantaneous surface runoff [m/s] through a unit
// hydrograph; it owns its in-transit state across calls.
type Router interface {
	Convolve(dt, runoff float64) float64
}

// ETFunc : evapotranspiration demand [m] on a column holding the given
// soil storage height [m]
type ETFunc func(soilStorage float64) float64

// Step : advance the column one timestep of length dt [s] from prev
// under an input water flux [m/s], returning the new state and the
// step's fluxes. The input is partitioned against the moisture deficit,
// infiltration drives the two-outlet soil reservoir, evapotranspiration
// draws down the responded column, lateral flow and soil overflow route
// down the Nash cascade, percolation drives the groundwater reservoir,
// and surface runoff lags through the router. Conservation is verified
// against tol [m] before returning; on a *MassBalanceError the computed
// state and fluxes are still returned so the caller can choose to carry
// on. Any other error aborts the step with nil results.
func Step(p *Params, prev *State, waterIn, dt, tol float64, part Partitioner, route Router, et ETFunc) (*State, *Fluxes, error) {
	if p == nil || prev == nil {
		return nil, nil, fmt.Errorf("tshirt.Step: nil parameters or state")
	}
	if part == nil || route == nil || et == nil {
		return nil, nil, ErrNoCollaborator
	}
	if dt <= 0. {
		return nil, nil, fmt.Errorf("tshirt.Step: non-positive timestep %g", dt)
	}
	if waterIn < 0. {
		return nil, nil, fmt.Errorf("tshirt.Step: negative input flux %g", waterIn)
	}
	if len(prev.NashStorage) != p.NashN {
		return nil, nil, fmt.Errorf("tshirt.Step: state holds %d cascade storages, parameters require %d", len(prev.NashStorage), p.NashN)
	}

	deficit := p.MaxSoilStorage - prev.SoilStorage
	if deficit < 0. {
		return nil, nil, fmt.Errorf("%w: %g m", ErrNegativeDeficit, deficit)
	}

	runoff, infil := part(dt, p.Cschaake, deficit, waterIn)
	if runoff < 0. || infil < 0. || math.Abs(runoff+infil-waterIn) > nearzero {
		return nil, nil, fmt.Errorf("%w: %g + %g against input %g", ErrPartitionSplit, runoff, infil, waterIn)
	}

	sfc := p.SoilFieldCapacityStorage()

	soil, err := reservoir.New(0., p.MaxSoilStorage, prev.SoilStorage,
		&reservoir.PowerOutlet{C: p.Klf, E: 1., Sa: sfc, Vmax: p.MaxLateralFlow},
		&reservoir.PowerOutlet{C: p.Satdk * p.Slope, E: 1., Sa: sfc, Vmax: p.Satdk})
	if err != nil {
		return nil, nil, fmt.Errorf("tshirt.Step: soil reservoir: %v", err)
	}
	_, soilExcess := soil.Respond(infil, dt)
	qlfRaw := soil.Velocity(lfOutlet)
	qperc := soil.Velocity(percOutlet)

	soilNext := soil.Storage()
	loss := et(soilNext)
	if loss < 0. {
		loss = 0.
	}
	if loss > soilNext { // unrecoverable demand, clamp at the dry column
		loss = soilNext
	}
	soilNext -= loss

	casc, err := reservoir.NewCascade(p.MaxSoilStorage, p.Kn, sfc, p.MaxLateralFlow, prev.NashStorage)
	if err != nil {
		return nil, nil, fmt.Errorf("tshirt.Step: nash cascade: %v", err)
	}
	qlf := casc.Route(qlfRaw+soilExcess/dt, dt)

	gw, err := reservoir.NewExp(0., p.MaxGWStorage, prev.GWStorage,
		p.Cgw, p.Expon, 0., p.Cgw*(math.Exp(p.Expon)-1.))
	if err != nil {
		return nil, nil, fmt.Errorf("tshirt.Step: groundwater reservoir: %v", err)
	}
	qgw, gwExcess := gw.Respond(qperc, dt)
	qgw += gwExcess / dt

	next := &State{SoilStorage: soilNext, GWStorage: gw.Storage(), NashStorage: casc.Storages()}
	fx := &Fluxes{SurfaceRunoff: runoff, Qgw: qgw, Qperc: qperc, Qlf: qlf, ETLoss: loss}
	err = CheckMassBalance(p, prev, next, waterIn, fx, dt, tol)
	fx.SurfaceRunoff = route.Convolve(dt, runoff)
	return next, fx, err
}

// Model : a thin stateful wrapper over Step threading previous to
// current state for hosts wanting an object lifecycle. Instances are
// independent and may run concurrently; a single instance must be
// updated sequentially.
type Model struct {
	Tol float64 // mass balance tolerance [m]

	p     *Params
	prev  *State
	cur   *State
	part  Partitioner
	route Router
	et    ETFunc
}

// New : model from parameters, an optional initial state (nil starts
// every store empty) and the three external collaborators
func New(p *Params, s *State, part Partitioner, route Router, et ETFunc) (*Model, error) {
	if p == nil {
		return nil, fmt.Errorf("tshirt.New: nil parameters")
	}
	if part == nil || route == nil || et == nil {
		return nil, ErrNoCollaborator
	}
	if s == nil {
		s = ZeroState(p.NashN)
	} else if err := s.check(p); err != nil {
		return nil, err
	}
	return &Model{Tol: nearzero, p: p, prev: s.Copy(), cur: s.Copy(), part: part, route: route, et: et}, nil
}

// Update : advance the model one timestep, demoting the current state
// to previous. On a *MassBalanceError the new state is still committed
// so a host can log the drift and continue; any other error leaves the
// model untouched.
func (m *Model) Update(waterIn, dt float64) (*Fluxes, error) {
	next, fx, err := Step(m.p, m.cur, waterIn, dt, m.Tol, m.part, m.route, m.et)
	if next == nil {
		return nil, err
	}
	m.prev = m.cur
	m.cur = next
	return fx, err
}

// Params : the model's immutable parameter set
func (m *Model) Params() *Params { return m.p }

// State : the current (most recently computed) state
func (m *Model) State() *State { return m.cur }

// PrevState : the state preceding the last update
func (m *Model) PrevState() *State { return m.prev }
