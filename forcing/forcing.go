// Package forcing carries the atmospheric exchange terms driving a
// model column: water yield to the surface (rain plus melt) and
// potential evaporation, one value per timestep.
package forcing

import "time"

type Forcing struct {
	T           []time.Time // [date ID]
	Ya, Ea      []float64   // [date ID] atmospheric exchange terms [m]
	IntervalSec float64
}
