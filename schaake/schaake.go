// Package schaake implements the Schaake runoff partitioning scheme
// (Schaake et al., 1996), splitting an input water flux into surface
// runoff and infiltration as a function of the column soil moisture
// deficit.
package schaake

import "math"

const secperday = 86400.

// Partition : split an input water flux [m/s] over a timestep of length
// dt [s] into surface runoff and infiltration [m/s] given the runoff
// coefficient cs [1/d] and the column soil moisture deficit [m]. The
// split conserves mass: runoff+infil always returns waterIn, never
// negative. A column with no remaining deficit sheds everything as
// runoff.
func Partition(dt, cs, deficit, waterIn float64) (runoff, infil float64) {
	if waterIn <= 0. {
		return 0., 0.
	}
	if deficit <= 0. {
		return waterIn, 0.
	}
	px := waterIn * dt
	ic := deficit * (1. - math.Exp(-cs*dt/secperday))
	infil = px * ic / (px + ic) / dt
	return waterIn - infil, infil
}
