package tshirt

// Fluxes : the flow responses of one timestep, a pure function of the
// previous state, the input and the parameters. Rates are [m/s]; the
// evapotranspiration loss is a depth [m].
type Fluxes struct {
	SurfaceRunoff float64 // unit hydrograph-convolved surface runoff
	Qgw           float64 // deep groundwater discharge
	Qperc         float64 // percolation from the soil column to groundwater
	Qlf           float64 // lateral subsurface flow leaving the cascade
	ETLoss        float64 // evapotranspiration drawn from the soil column [m]
}
