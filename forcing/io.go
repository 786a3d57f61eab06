package forcing

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

func (frc *Forcing) SaveGobForcing(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" forcing.saveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(frc); err != nil {
		return fmt.Errorf(" forcing.saveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobForcing(fp string) (*Forcing, error) {
	var frc Forcing
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&frc)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &frc, nil
}

// ToCsv : dump the record to a date-indexed csv [m per timestep]
func (frc *Forcing) ToCsv(fp string) {
	mmio.WriteCsvDateFloats(fp, "date,ya,ea", frc.T, frc.Ya, frc.Ea)
}
