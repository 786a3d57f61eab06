// Package giuh lags instantaneous surface runoff through a
// geomorphological instantaneous unit hydrograph, a set of dimensionless
// ordinates distributing each timestep's runoff over the following
// timesteps.
package giuh

import (
	"fmt"
	"math"
)

// Kernel : a runoff convolution kernel holding the water still in
// transit. Each call to Convolve releases the current timestep's share
// and queues the remainder against future steps.
type Kernel struct {
	ord []float64 // unit hydrograph ordinates, summing to one
	q   []float64 // runoff in transit [m/s], q[0] releases next
}

// New : kernel from a set of ordinates
func New(ord []float64) (*Kernel, error) {
	if len(ord) == 0 {
		return nil, fmt.Errorf("giuh.New: no ordinates")
	}
	s := 0.
	for i, o := range ord {
		if o < 0. {
			return nil, fmt.Errorf("giuh.New: negative ordinate %d: %g", i, o)
		}
		s += o
	}
	if math.Abs(s-1.) > 1.e-6 {
		return nil, fmt.Errorf("giuh.New: ordinates sum to %g", s)
	}
	k := &Kernel{ord: make([]float64, len(ord)), q: make([]float64, len(ord))}
	copy(k.ord, ord)
	return k, nil
}

// NewIdentity : single-ordinate kernel passing runoff through unlagged
func NewIdentity() *Kernel {
	k, _ := New([]float64{1.})
	return k
}

// Convolve : distribute this timestep's surface runoff [m/s] over the
// ordinates and release the share due now, together with any runoff
// queued by earlier steps.
func (k *Kernel) Convolve(dt, runoff float64) float64 {
	for i, o := range k.ord {
		k.q[i] += runoff * o
	}
	out := k.q[0]
	copy(k.q, k.q[1:])
	k.q[len(k.q)-1] = 0.
	return out
}

// Pending : total runoff still in transit [m/s]
func (k *Kernel) Pending() float64 {
	s := 0.
	for _, v := range k.q {
		s += v
	}
	return s
}
