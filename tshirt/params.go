package tshirt

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Params : static soil, routing and groundwater constants for one model
// column, shared read-only across timesteps. The last four fields are
// derived at construction and stay consistent with their source fields
// for the life of the object.
type Params struct {
	Maxsmc       float64 // saturated soil moisture content [-]
	Wltsmc       float64 // wilting point moisture content [-]
	Satdk        float64 // saturated hydraulic conductivity [m/s]
	Satpsi       float64 // saturated capillary head [m]
	Slope        float64 // drainage slope factor [-]
	B            float64 // Clapp-Hornberger pore size distribution index [-]
	Multiplier   float64 // subsurface routing multiplier [-]
	AlphaFc      float64 // field capacity scaling on atmospheric head [-]
	Klf          float64 // lateral flow coefficient [m/s]
	Kn           float64 // Nash cascade coefficient [m/s]
	NashN        int     // cascade reservoir count
	Cgw          float64 // groundwater discharge coefficient [m/s]
	Expon        float64 // groundwater discharge exponent [-]
	MaxGWStorage float64 // groundwater reservoir capacity [m]

	Depth          float64 // soil column depth [m]
	MaxSoilStorage float64 // soil reservoir capacity [m]
	MaxLateralFlow float64 // lateral flow velocity cap [m/s]
	Cschaake       float64 // Schaake partitioning coefficient [1/d]
}

// NewParams : validated parameter set with derived fields filled.
// Arguments follow the conventional tshirt ordering.
func NewParams(maxsmc, wltsmc, satdk, satpsi, slope, b, multiplier, alphafc, klf, kn float64, nashN int, cgw, expon, maxGWStorage float64) (*Params, error) {
	switch {
	case maxsmc <= 0. || maxsmc > 1.:
		return nil, fmt.Errorf("tshirt.NewParams: maxsmc %g outside (0,1]", maxsmc)
	case wltsmc < 0. || wltsmc >= maxsmc:
		return nil, fmt.Errorf("tshirt.NewParams: wltsmc %g outside [0,maxsmc)", wltsmc)
	case satdk < 0.:
		return nil, fmt.Errorf("tshirt.NewParams: negative satdk %g", satdk)
	case satpsi <= 0.:
		return nil, fmt.Errorf("tshirt.NewParams: non-positive satpsi %g", satpsi)
	case slope < 0.:
		return nil, fmt.Errorf("tshirt.NewParams: negative slope %g", slope)
	case b <= 1.:
		return nil, fmt.Errorf("tshirt.NewParams: pore size index b %g must exceed 1", b)
	case multiplier < 0.:
		return nil, fmt.Errorf("tshirt.NewParams: negative multiplier %g", multiplier)
	case klf < 0. || kn < 0.:
		return nil, fmt.Errorf("tshirt.NewParams: negative flow coefficient (klf %g, kn %g)", klf, kn)
	case nashN < 1:
		return nil, fmt.Errorf("tshirt.NewParams: cascade count %d below 1", nashN)
	case cgw < 0.:
		return nil, fmt.Errorf("tshirt.NewParams: negative cgw %g", cgw)
	case expon <= 0.:
		return nil, fmt.Errorf("tshirt.NewParams: non-positive expon %g", expon)
	case maxGWStorage <= 0.:
		return nil, fmt.Errorf("tshirt.NewParams: non-positive groundwater capacity %g", maxGWStorage)
	case alphafc*atmosphericPressure/waterSpecificWeight <= .5:
		// the field capacity head window [Hwt-.5, Hwt+1.5] must sit above the datum
		return nil, fmt.Errorf("tshirt.NewParams: alpha_fc %g puts the water table head below .5 m", alphafc)
	}
	p := Params{
		Maxsmc:       maxsmc,
		Wltsmc:       wltsmc,
		Satdk:        satdk,
		Satpsi:       satpsi,
		Slope:        slope,
		B:            b,
		Multiplier:   multiplier,
		AlphaFc:      alphafc,
		Klf:          klf,
		Kn:           kn,
		NashN:        nashN,
		Cgw:          cgw,
		Expon:        expon,
		MaxGWStorage: maxGWStorage,
		Depth:        soilColumnDepth,
	}
	p.MaxSoilStorage = p.Depth * maxsmc
	p.MaxLateralFlow = satdk * multiplier * p.MaxSoilStorage
	p.Cschaake = 3. * satdk / 2.e-6 // scaled from the reference conductivity of the NWM Schaake constant
	return &p, nil
}

// SaveGob Params to gob
func (p *Params) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Params.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf(" Params.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobParams loads
func LoadGobParams(fp string) (*Params, error) {
	var p Params
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&p)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &p, nil
}
