package tshirt

import (
	"encoding/gob"
	"fmt"
	"os"
)

// State : the water held by the column at the end of a timestep: soil
// and groundwater storage heights plus the cascade storage sequence,
// upstream to down [m]. State is the system of record; reservoirs are
// rebuilt from it every timestep.
type State struct {
	SoilStorage float64
	GWStorage   float64
	NashStorage []float64
}

// NewState : state from explicit storages; the cascade sequence is copied
func NewState(soil, gw float64, nash []float64) *State {
	s := State{SoilStorage: soil, GWStorage: gw, NashStorage: make([]float64, len(nash))}
	copy(s.NashStorage, nash)
	return &s
}

// ZeroState : every store empty, for an n-reservoir cascade
func ZeroState(nashN int) *State {
	return &State{NashStorage: make([]float64, nashN)}
}

// Copy : deep copy, sharing nothing with the receiver
func (s *State) Copy() *State {
	return NewState(s.SoilStorage, s.GWStorage, s.NashStorage)
}

// check storages against the reservoir bounds set by p
func (s *State) check(p *Params) error {
	if len(s.NashStorage) != p.NashN {
		return fmt.Errorf("tshirt: state holds %d cascade storages, parameters require %d", len(s.NashStorage), p.NashN)
	}
	if s.SoilStorage < 0. || s.SoilStorage > p.MaxSoilStorage {
		return fmt.Errorf("%w: soil storage %g outside [0,%g]", ErrStorageBounds, s.SoilStorage, p.MaxSoilStorage)
	}
	if s.GWStorage < 0. || s.GWStorage > p.MaxGWStorage {
		return fmt.Errorf("%w: groundwater storage %g outside [0,%g]", ErrStorageBounds, s.GWStorage, p.MaxGWStorage)
	}
	for i, v := range s.NashStorage {
		if v < 0. || v > p.MaxSoilStorage {
			return fmt.Errorf("%w: cascade storage %d %g outside [0,%g]", ErrStorageBounds, i, v, p.MaxSoilStorage)
		}
	}
	return nil
}

// SaveGob State to gob
func (s *State) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" State.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" State.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobState loads
func LoadGobState(fp string) (*State, error) {
	var s State
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&s)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &s, nil
}
