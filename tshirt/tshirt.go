// Package tshirt implements a conceptual rainfall-runoff model that
// advances a single soil column's hydrologic state one timestep at a
// time. Input water is partitioned into surface runoff and
// infiltration, infiltration drives a two-outlet soil reservoir whose
// lateral flow routes down a Nash cascade and whose percolation feeds
// an exponential groundwater reservoir, evapotranspiration draws the
// soil column down, and every step is closed against a mass balance.
//
// The model is a computational library: no I/O, no clock, no spatial
// discretization. Instances are independent and may run in parallel;
// timesteps of a single instance are strictly sequential.
package tshirt

const (
	nearzero = 1.e-8 // default mass balance tolerance [m]

	soilColumnDepth     = 2.      // [m]
	atmosphericPressure = 101325. // [Pa]
	waterSpecificWeight = 9810.   // [N/m³]
)

// soil reservoir outlet indices
const (
	lfOutlet   = 0
	percOutlet = 1
)
