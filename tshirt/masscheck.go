package tshirt

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CheckMassBalance : verify the two conservation identities of a
// timestep, in depths [m]:
//
//	waterIn*dt = (runoff+Qperc+Qlf)*dt + ETLoss + Δsoil + ΔΣcascade
//	Qperc*dt   = Qgw*dt + Δgroundwater
//
// fx.SurfaceRunoff must carry the instantaneous partition share; a
// lagged value leaves the convolution kernel's in-transit water
// unaccounted. A verification oracle only: nothing is corrected, a
// *MassBalanceError reports any residual beyond tol.
func CheckMassBalance(p *Params, prev, next *State, waterIn float64, fx *Fluxes, dt, tol float64) error {
	soilRes := waterIn*dt -
		(fx.SurfaceRunoff+fx.Qperc+fx.Qlf)*dt - fx.ETLoss -
		(next.SoilStorage - prev.SoilStorage) -
		(floats.Sum(next.NashStorage) - floats.Sum(prev.NashStorage))
	gwRes := fx.Qperc*dt - fx.Qgw*dt - (next.GWStorage - prev.GWStorage)
	if math.Abs(soilRes) > tol || math.Abs(gwRes) > tol {
		return &MassBalanceError{SoilResidual: soilRes, GWResidual: gwRes, Tol: tol}
	}
	return nil
}
