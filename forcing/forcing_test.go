package forcing

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerateSynthetic(t *testing.T) {
	dtb := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	nstep := 4 * 365 * 2 // two years, 6-hourly
	intvl := 21600.
	frc := GenerateSynthetic(dtb, nstep, intvl, 1624)
	if len(frc.T) != nstep || len(frc.Ya) != nstep || len(frc.Ea) != nstep {
		t.Fatalf("series lengths [%d %d %d], wanted %d", len(frc.T), len(frc.Ya), len(frc.Ea), nstep)
	}
	if frc.T[0] != dtb {
		t.Fatalf("record starts %v, wanted %v", frc.T[0], dtb)
	}
	sy, se := 0., 0.
	for j := 0; j < nstep; j++ {
		if j > 0 && frc.T[j].Sub(frc.T[j-1]) != time.Second*time.Duration(intvl) {
			t.Fatalf("irregular interval at step %d", j)
		}
		if frc.Ya[j] < 0. || frc.Ea[j] < 0. {
			t.Fatalf("step %d: negative forcing [%g %g]", j, frc.Ya[j], frc.Ea[j])
		}
		sy += frc.Ya[j]
		se += frc.Ea[j]
	}
	f := 365.24 * secperday / intvl / float64(nstep)
	if sy*f < .4 || sy*f > 1.6 {
		t.Fatalf("annual yield %g m/yr outside humid-climate range", sy*f)
	}
	if se*f < .3 || se*f > 1.2 {
		t.Fatalf("annual potential evaporation %g m/yr outside humid-climate range", se*f)
	}
}

func TestGenerateSyntheticSeasonal(t *testing.T) {
	// summer demand must clearly exceed winter demand
	dtb := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	frc := GenerateSynthetic(dtb, 4*365, 21600., 1624)
	win, sum := 0., 0.
	for j, dt := range frc.T {
		switch dt.Month() {
		case time.January, time.February:
			win += frc.Ea[j]
		case time.July, time.August:
			sum += frc.Ea[j]
		}
	}
	if sum < 3.*win {
		t.Fatalf("summer demand %g against winter %g", sum, win)
	}
}

func TestGenerateSyntheticReproducible(t *testing.T) {
	dtb := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateSynthetic(dtb, 400, 21600., 7)
	b := GenerateSynthetic(dtb, 400, 21600., 7)
	for j := range a.T {
		if a.Ya[j] != b.Ya[j] || a.Ea[j] != b.Ea[j] {
			t.Fatalf("seeded records diverge at step %d", j)
		}
	}
	c := GenerateSynthetic(dtb, 400, 21600., 8)
	same := true
	for j := range a.T {
		if a.Ya[j] != c.Ya[j] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced the same record")
	}
}

func TestGobRoundTrip(t *testing.T) {
	dtb := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	frc := GenerateSynthetic(dtb, 100, 21600., 1624)
	fp := filepath.Join(t.TempDir(), "frc.gob")
	if err := frc.SaveGobForcing(fp); err != nil {
		t.Fatal(err)
	}
	frc2, err := LoadGobForcing(fp)
	if err != nil {
		t.Fatal(err)
	}
	if frc2.IntervalSec != frc.IntervalSec || len(frc2.T) != len(frc.T) {
		t.Fatalf("record shape changed on reload: %d steps at %gs", len(frc2.T), frc2.IntervalSec)
	}
	for j := range frc.T {
		if !frc2.T[j].Equal(frc.T[j]) || math.Abs(frc2.Ya[j]-frc.Ya[j]) > 0. || math.Abs(frc2.Ea[j]-frc.Ea[j]) > 0. {
			t.Fatalf("record changed on reload at step %d", j)
		}
	}
}
