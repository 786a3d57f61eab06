package forcing

import "fmt"

func (frc *Forcing) CheckAndPrint() {
	fmt.Println("Forcing summary:")
	nt := len(frc.T)
	fmt.Printf(" %v to %v (%d timesteps)\n", frc.T[0], frc.T[nt-1], nt)
	fmt.Printf(" model timestep interval: %ds\n", int64(frc.IntervalSec))

	sy, se := 0., 0.
	for j := 0; j < nt; j++ {
		sy += frc.Ya[j]
		se += frc.Ea[j]
	}
	f := 365.24 * secperday / frc.IntervalSec / float64(nt)
	fmt.Printf(" totals (m/yr): Ya: %.5f   Ea: %.5f\n", sy*f, se*f)
}
