package asvsim

import (
	"errors"
	"testing"
)

func validSpecArgs() (string, float64, float64, float64, float64, float64, float64, float64, float64, float64, Coord3D) {
	return "glider-1", 2.1, 0.6, 0.3, 0.15, 1.5, 60, 0.2, 0.6, 0.65, Coord3D{}
}

func TestNewAsvSpecValid(t *testing.T) {
	name, l, b, d, dr, mx, disp, rr, rp, ry, cog := validSpecArgs()
	spec, err := NewAsvSpec(name, l, b, d, dr, mx, disp, rr, rp, ry, cog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.WaterlineLength != l || spec.Beam != b {
		t.Fatal("spec fields not stored correctly")
	}
}

func TestNewAsvSpecRejectsBadDimensions(t *testing.T) {
	name, l, b, d, dr, mx, disp, rr, rp, ry, cog := validSpecArgs()
	cases := []struct {
		name string
		l, b, d, dr, mx, disp, rr, rp, ry float64
	}{
		{"length", 0, b, d, dr, mx, disp, rr, rp, ry},
		{"beam", l, -1, d, dr, mx, disp, rr, rp, ry},
		{"depth", l, b, 0, dr, mx, disp, rr, rp, ry},
		{"draft exceeds depth", l, b, d, d + 1, mx, disp, rr, rp, ry},
		{"max speed", l, b, d, dr, 0, disp, rr, rp, ry},
		{"displacement", l, b, d, dr, mx, -1, rr, rp, ry},
		{"radius of gyration", l, b, d, dr, mx, disp, 0, rp, ry},
	}
	for _, c := range cases {
		if _, err := NewAsvSpec(name, c.l, c.b, c.d, c.dr, c.mx, c.disp, c.rr, c.rp, c.ry, cog); !errors.Is(err, ErrInvalidParameterErr) {
			t.Fatalf("%s: expected InvalidParameter, got %v", c.name, err)
		}
	}
}

func TestInsideHullEnvelope(t *testing.T) {
	name, l, b, d, dr, mx, disp, rr, rp, ry, cog := validSpecArgs()
	spec, err := NewAsvSpec(name, l, b, d, dr, mx, disp, rr, rp, ry, cog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !spec.insideHullEnvelope(Coord3D{0, 0, -d / 2}) {
		t.Fatal("centre point should be inside hull envelope")
	}
	if spec.insideHullEnvelope(Coord3D{l, 0, 0}) {
		t.Fatal("point beyond half-length should be outside hull envelope")
	}
	if spec.insideHullEnvelope(Coord3D{0, 0, 1}) {
		t.Fatal("point above deck should be outside hull envelope")
	}
}
