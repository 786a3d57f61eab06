package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GreyEvenson-NOAA/ngen/forcing"
	"github.com/GreyEvenson-NOAA/ngen/giuh"
	"github.com/GreyEvenson-NOAA/ngen/pdm"
	"github.com/GreyEvenson-NOAA/ngen/schaake"
	"github.com/GreyEvenson-NOAA/ngen/tshirt"
	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/floats"
)

func main() {

	const (
		// soil hydraulics (silt loam)
		maxsmc  = .439
		wltsmc  = .066
		satdk   = 3.38e-6
		satpsi  = .355
		slope   = .01
		bexp    = 4.05
		mult    = 1000.
		alphafc = .33

		// subsurface routing
		klf   = 1.e-5
		kn    = 1.5e-6
		nashn = 2

		// groundwater
		cgw   = 5.e-9
		expon = 6.
		maxgw = 1.6

		// evapotranspiration
		pdmb = 1.3
		kv   = .99

		// scenario
		nyr   = 5
		intvl = 21600.
		seed  = 1624
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	// build forcings
	nstep := 4 * 365 * nyr // 6-hourly
	frc := forcing.GenerateSynthetic(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), nstep, intvl, seed)
	frc.CheckAndPrint()
	frc.ToCsv("forcing.csv")

	// build model
	p, err := tshirt.NewParams(maxsmc, wltsmc, satdk, satpsi, slope, bexp, mult, alphafc, klf, kn, nashn, cgw, expon, maxgw)
	if err != nil {
		log.Fatalln(err)
	}
	etp, err := pdm.NewPdm03(pdmb, kv, p.MaxSoilStorage)
	if err != nil {
		log.Fatalln(err)
	}
	kern, err := giuh.New([]float64{.06, .51, .28, .12, .03})
	if err != nil {
		log.Fatalln(err)
	}
	m, err := tshirt.New(p, nil, schaake.Partition, kern, etp.CalcEvapotranspiration)
	if err != nil {
		log.Fatalln(err)
	}
	p.CheckAndPrint()
	tt.Print("model build complete\n")

	// run model
	uiprogress.Start()
	timestep := make(chan string)
	bar := uiprogress.AddBar(nstep).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-timestep
	})

	csvw := mmio.NewCSVwriter("wbgt.csv")
	defer csvw.Close()
	if err := csvw.WriteHead("ya,ep,ae,rnf,qlf,qgw,ssto,gsto,nsto"); err != nil {
		log.Fatalf("%v", err)
	}

	qall, qrnf, qlf, qgw := make([]float64, nstep), make([]float64, nstep), make([]float64, nstep), make([]float64, nstep)
	sy, sa, sr, sl, sg := 0., 0., 0., 0., 0.
	nmbe := 0
	for j, t := range frc.T {
		timestep <- fmt.Sprint(t)
		etp.PE = frc.Ea[j]
		fx, err := m.Update(frc.Ya[j]/intvl, intvl)
		if err != nil {
			var mbe *tshirt.MassBalanceError
			if errors.As(err, &mbe) {
				nmbe++
				fmt.Print("^")
			} else {
				log.Fatalf("step %d: %v", j, err)
			}
		}
		s := m.State()
		qrnf[j], qlf[j], qgw[j] = fx.SurfaceRunoff, fx.Qlf, fx.Qgw
		qall[j] = fx.SurfaceRunoff + fx.Qlf + fx.Qgw
		csvw.WriteLine(frc.Ya[j], frc.Ea[j], fx.ETLoss, fx.SurfaceRunoff*intvl, fx.Qlf*intvl, fx.Qgw*intvl, s.SoilStorage, s.GWStorage, floats.Sum(s.NashStorage))
		sy += frc.Ya[j]
		sa += fx.ETLoss
		sr += fx.SurfaceRunoff * intvl
		sl += fx.Qlf * intvl
		sg += fx.Qgw * intvl
		bar.Incr()
	}
	close(timestep)
	uiprogress.Stop()

	// save results
	mmio.WriteCsvDateFloats("hdgrph.csv", "date,qall,qrnf,qlf,qgw", frc.T, qall, qrnf, qlf, qgw)
	if err := p.SaveGob("params.gob"); err != nil {
		log.Fatalln(err)
	}
	if err := m.State().SaveGob("state.gob"); err != nil {
		log.Fatalln(err)
	}

	s := m.State()
	sto := s.SoilStorage + s.GWStorage + floats.Sum(s.NashStorage) + kern.Pending()*intvl
	dif := sy - (sa + sr + sl + sg) - sto
	ff := 1000. / float64(nyr) // [m] over the run to [mm/yr]
	fmt.Printf("\n  waterbudget [mm/yr]: pre: %.0f  aet: %.0f  olf: %.0f  lat: %.0f  gwd: %.0f  sto: %.0f  dif: %.2f\n",
		sy*ff, sa*ff, sr*ff, sl*ff, sg*ff, sto*ff, dif*ff)
	if nmbe > 0 {
		fmt.Printf("  %d of %d timesteps flagged mass-balance drift\n", nmbe, nstep)
	}
}
