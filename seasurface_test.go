package asvsim

import (
	"errors"
	"math"
	"testing"
)

func TestNewSeaSurfaceRejectsBadParameters(t *testing.T) {
	if _, err := NewSeaSurface(0, 0, 1, 4, 4); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for zero significant height")
	}
	if _, err := NewSeaSurface(2, 0, 1, 1, 4); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for direction bins < 2")
	}
	if _, err := NewSeaSurface(2, 0, 1, 4, 1); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for frequency bins < 2")
	}
}

func TestSeaSurfaceElevationAtOriginFinite(t *testing.T) {
	s, err := NewSeaSurface(2.0, 0, 42, 6, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := s.Elevation(Coord3D{}, 0)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		t.Fatalf("elevation(origin, 0) = %v, want finite", e)
	}
}

func TestSeaSurfaceVarianceApproachesHsInvariant(t *testing.T) {
	hs := 2.0
	s, err := NewSeaSurface(hs, 0, 7, 12, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const n = 20000
	const dt = 0.05
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		e := s.Elevation(Coord3D{}, float64(i)*dt)
		sum += e
		sumSq += e * e
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	want := (hs / 4) * (hs / 4)
	// Coarse tolerance: Bretschneider quadrature truncation plus finite
	// sample variance of a quasi-periodic sum of finitely many components.
	if !equalWithinAbs(variance, want, want*0.5) {
		t.Fatalf("elevation variance = %v, want close to %v", variance, want)
	}
}

func TestSeaSurfaceRNGDeterministic(t *testing.T) {
	a, err := NewSeaSurface(1.5, 0.3, 99, 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSeaSurface(1.5, 0.3, 99, 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for d := 0; d < 5; d++ {
		for f := 0; f < 5; f++ {
			wa, _ := a.RegularWaveAt(d, f)
			wb, _ := b.RegularWaveAt(d, f)
			if wa.Amplitude() != wb.Amplitude() || wa.PhaseLag() != wb.PhaseLag() {
				t.Fatalf("same seed produced different spectra at (%d,%d)", d, f)
			}
		}
	}
}

func TestSeaSurfaceRegularWaveAtOutOfRange(t *testing.T) {
	s, err := NewSeaSurface(1.0, 0, 1, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.RegularWaveAt(-1, 0); !errors.Is(err, ErrOutOfRangeErr) {
		t.Fatal("expected OutOfRange for negative direction index")
	}
	if _, err := s.RegularWaveAt(0, 3); !errors.Is(err, ErrOutOfRangeErr) {
		t.Fatal("expected OutOfRange for frequency index == bin count")
	}
}

func TestSeaSurfaceAccessors(t *testing.T) {
	s, err := NewSeaSurface(1.2, math.Pi/4, 5, 4, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SignificantHeight() != 1.2 {
		t.Fatal("SignificantHeight mismatch")
	}
	if s.DirectionBins() != 4 || s.FrequencyBins() != 6 {
		t.Fatal("bin count mismatch")
	}
	fmin, fmax := s.FrequencyRange()
	if fmin <= 0 || fmax <= fmin {
		t.Fatalf("invalid frequency range [%v, %v]", fmin, fmax)
	}
}
