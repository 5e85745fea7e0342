package asvsim

import (
	"errors"
	"math"
	"testing"
)

func testAsvSpec(t *testing.T) *AsvSpec {
	t.Helper()
	spec, err := NewAsvSpec("test-glider", 2.1, 0.6, 0.3, 0.15, 1.5, 60, 0.2, 0.6, 0.65, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error building spec: %v", err)
	}
	return spec
}

func testSeaSurface(t *testing.T) *SeaSurface {
	t.Helper()
	sea, err := NewSeaSurface(1.0, 0, 11, 4, 6)
	if err != nil {
		t.Fatalf("unexpected error building sea surface: %v", err)
	}
	return sea
}

func TestComputeDynamicsRequiresInit(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.ComputeDynamics(0.04); !errors.Is(err, ErrInvalidStateErr) {
		t.Fatalf("expected InvalidState before Init, got %v", err)
	}
}

func TestComputeDynamicsRejectsNonPositiveDt(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	if err := a.ComputeDynamics(0); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for dt == 0")
	}
	if err := a.ComputeDynamics(-1); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for negative dt")
	}
}

func TestSetThrustersRejectsOutsideHullEnvelope(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	bad := []*Thruster{NewThruster(Coord3D{100, 0, 0})}
	if err := a.SetThrusters(bad); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for thruster outside hull envelope")
	}
	good := []*Thruster{NewThruster(Coord3D{-1, 0, -0.1})}
	if err := a.SetThrusters(good); err != nil {
		t.Fatalf("unexpected error for valid thruster position: %v", err)
	}
}

func TestSetThrustOutOfRangeIndex(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	if err := a.SetThrust(0, Coord3D{1, 0, 0}, 1); !errors.Is(err, ErrOutOfRangeErr) {
		t.Fatal("expected OutOfRange for index into empty thruster array")
	}
}

func TestComputeDynamicsAdvancesSimTime(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	for i := 0; i < 10; i++ {
		if err := a.ComputeDynamics(0.04); err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}
	}
	if !equalWithinAbs(a.SimTime(), 0.4, 1e-9) {
		t.Fatalf("SimTime = %v, want 0.4", a.SimTime())
	}
}

func TestComputeDynamicsNeverProducesNaNOrInf(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	th := NewThruster(Coord3D{-1, 0, -0.1})
	if err := th.setThrust(Coord3D{1, 0, 0}, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetThrusters([]*Thruster{th}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 500; i++ {
		if err := a.ComputeDynamics(0.04); err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}
		pos := a.Position()
		if math.IsNaN(pos.X) || math.IsInf(pos.X, 0) {
			t.Fatalf("position diverged at step %d: %v", i, pos)
		}
	}
}

func TestComputeDynamicsRestoresHeaveToEquilibrium(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()
	// Perturb heave away from equilibrium and verify the restoring term
	// pulls it back down over many steps in the absence of waves/thrust.
	calmSea, err := NewSeaSurface(0.001, 0, 1, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetSeaState(calmSea); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.state.Displacement[dofHeave] = 0.2
	initialHeave := math.Abs(a.state.Displacement[dofHeave])
	for i := 0; i < 2000; i++ {
		if err := a.ComputeDynamics(0.02); err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}
	}
	finalHeave := math.Abs(a.state.Displacement[dofHeave])
	if finalHeave >= initialHeave {
		t.Fatalf("heave displacement did not decay: initial=%v final=%v", initialHeave, finalHeave)
	}
}

func TestSetSeaStateRejectsNilAndRequiresInit(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetSeaState(nil); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for nil sea surface")
	}
	if err := a.SetSeaState(testSeaSurface(t)); !errors.Is(err, ErrInvalidStateErr) {
		t.Fatal("expected InvalidState before Init")
	}
}

func TestSetWaveGliderTuningRejectsNegative(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.SetWaveGliderTuning(-0.1); !errors.Is(err, ErrInvalidParameterErr) {
		t.Fatal("expected InvalidParameter for negative tuning factor")
	}
	if err := a.SetWaveGliderTuning(2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.WaveGliderTuning() != 2.0 {
		t.Fatalf("WaveGliderTuning() = %v, want 2.0", a.WaveGliderTuning())
	}
}

func TestDistanceToWaypointTracksAttachedSequence(t *testing.T) {
	a, err := NewASV(testAsvSpec(t), testSeaSurface(t), Coord3D{}, Coord3D{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Init()

	if a.DistanceToWaypoint() != -1 {
		t.Fatalf("DistanceToWaypoint() = %v, want -1 with no sequence attached", a.DistanceToWaypoint())
	}

	wp, err := NewPointWaypoint(Coord3D{5, 0, 0}, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := NewWaypointSequence([]Waypoint{wp})
	a.SetWaypoints(seq)
	if a.Waypoints() != seq {
		t.Fatal("Waypoints() should return the attached sequence")
	}

	if err := a.ComputeDynamics(0.04); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.DistanceToWaypoint() <= 0 {
		t.Fatalf("DistanceToWaypoint() = %v, want > 0 before reaching the waypoint", a.DistanceToWaypoint())
	}

	a.SetWaypoints(nil)
	if a.DistanceToWaypoint() != -1 {
		t.Fatalf("DistanceToWaypoint() = %v, want -1 after detaching", a.DistanceToWaypoint())
	}
}
