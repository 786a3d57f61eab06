package tshirt

import "fmt"

// CheckAndPrint : console summary of the parameter set and its derived
// constants
func (p *Params) CheckAndPrint() {
	fmt.Println("Tshirt parameters:")
	fmt.Printf(" maxsmc: %.3f   wltsmc: %.3f   b: %.2f   satpsi: %.3f m   alpha_fc: %.2f\n", p.Maxsmc, p.Wltsmc, p.B, p.Satpsi, p.AlphaFc)
	fmt.Printf(" satdk: %.2e m/s   slope: %.3f   multiplier: %.0f\n", p.Satdk, p.Slope, p.Multiplier)
	fmt.Printf(" Klf: %.2e m/s   Kn: %.2e m/s   nash n: %d\n", p.Klf, p.Kn, p.NashN)
	fmt.Printf(" Cgw: %.2e m/s   expon: %.1f   max gw storage: %.2f m\n", p.Cgw, p.Expon, p.MaxGWStorage)
	fmt.Printf(" derived: max soil storage: %.3f m   max lateral flow: %.2e m/s   Cschaake: %.3f /d   Sfc: %.3f m\n",
		p.MaxSoilStorage, p.MaxLateralFlow, p.Cschaake, p.SoilFieldCapacityStorage())
}
