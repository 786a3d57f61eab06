package forcing

import (
	"math"
	"math/rand"
	"time"

	"github.com/maseology/goHydro/pet"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

const (
	secperday = 86400.

	avgTm  = 7.5 // average annual air temperature [°C]
	minTm  = -4. // baseline air temperature [°C]
	avgKe  = 26. // average annual extraterrestrial radiation [MJ/m²/d]
	minKe  = 10. // baseline extraterrestrial radiation [MJ/m²/d]
	offset = 10  // offset to date of min Ke (adjusts the winter solstice 10 days before new years, i.e., Dec-21 'see sinET.xlsx)
	lagTm  = 30  // days the temperature cycle trails the radiation cycle

	wetfrac  = .2   // proportion of wet timesteps
	avgPulse = .003 // average wet timestep yield [m]

	// Prescott-type coefficients (Novák, 2012, pg.232)
	a = .27
	b = .52
)

func sinKe(doy int) float64 {
	return (avgKe-minKe)*(1.+math.Sin(2.*math.Pi*float64(doy-offset)/366.-math.Pi/2.)) + minKe // [MJ/m²/d]
}

func sinTm(doy int) float64 {
	return (avgTm-minTm)*(1.+math.Sin(2.*math.Pi*float64(doy-offset-lagTm)/366.-math.Pi/2.)) + minTm // [°C]
}

func etRadToGlobal(Ke, nN float64) float64 {
	return Ke * (a + b*nN)
}

// GenerateSynthetic : build a synthetic forcing record of nstep
// timesteps of length intvl [s] starting at dtb. Water yield arrives as
// exponentially-distributed storm pulses; potential evaporation follows
// Makkink on sinusoidal annual radiation and temperature cycles, with
// overcast skies on wet timesteps. A given seed always reproduces the
// same record.
func GenerateSynthetic(dtb time.Time, nstep int, intvl float64, seed int64) *Forcing {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)

	ts := make([]time.Time, nstep)
	ya, ea := make([]float64, nstep), make([]float64, nstep)
	dt := dtb
	for j := 0; j < nstep; j++ {
		doy := dt.YearDay()
		y, nN := 0., 1. // ratio of sunshine hours (n) to total possible (N)
		if rng.Float64() < wetfrac {
			y = avgPulse * rng.ExpFloat64()
		}
		if y > .001 {
			nN = 0.
		}
		Kg := etRadToGlobal(sinKe(doy), nN)
		ts[j] = dt
		ya[j] = y
		ea[j] = pet.Makkink(Kg, sinTm(doy), 101300.) * intvl / secperday
		dt = dt.Add(time.Second * time.Duration(intvl))
	}

	return &Forcing{
		T:           ts,
		Ya:          ya,
		Ea:          ea,
		IntervalSec: intvl,
	}
}
