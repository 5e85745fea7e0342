package asvsim

import "fmt"

// AsvSpec is the immutable geometric and inertial specification of a hull,
// shared by every ASV instance built from it (spec.md 3).
type AsvSpec struct {
	Name string

	WaterlineLength float64 // L, metres
	Beam            float64 // B, metres
	Depth           float64 // D, metres, keel to deck
	Draft           float64 // T, metres, keel to waterline

	MaxSpeed     float64 // m/s
	Displacement float64 // kg

	RadiusOfGyrationRoll  float64 // r_roll, metres
	RadiusOfGyrationPitch float64 // r_pitch, metres
	RadiusOfGyrationYaw   float64 // r_yaw, metres

	CenterOfGravity Coord3D // body-frame offset from origin
}

// NewAsvSpec validates and returns a hull specification. Fails with
// InvalidParameter on any non-positive dimension, non-positive
// displacement, or non-positive radius of gyration.
func NewAsvSpec(name string, length, beam, depth, draft, maxSpeed, displacement,
	rRoll, rPitch, rYaw float64, cog Coord3D) (*AsvSpec, error) {
	switch {
	case length <= 0:
		return nil, invalidParameter("NewAsvSpec", "waterline length must be > 0")
	case beam <= 0:
		return nil, invalidParameter("NewAsvSpec", "beam must be > 0")
	case depth <= 0:
		return nil, invalidParameter("NewAsvSpec", "depth must be > 0")
	case draft <= 0 || draft > depth:
		return nil, invalidParameter("NewAsvSpec", "draft must be > 0 and <= depth")
	case maxSpeed <= 0:
		return nil, invalidParameter("NewAsvSpec", "max speed must be > 0")
	case displacement <= 0:
		return nil, invalidParameter("NewAsvSpec", "displacement must be > 0")
	case rRoll <= 0 || rPitch <= 0 || rYaw <= 0:
		return nil, invalidParameter("NewAsvSpec", "radii of gyration must be > 0")
	}
	return &AsvSpec{
		Name:                  name,
		WaterlineLength:       length,
		Beam:                  beam,
		Depth:                 depth,
		Draft:                 draft,
		MaxSpeed:              maxSpeed,
		Displacement:          displacement,
		RadiusOfGyrationRoll:  rRoll,
		RadiusOfGyrationPitch: rPitch,
		RadiusOfGyrationYaw:   rYaw,
		CenterOfGravity:       cog,
	}, nil
}

// insideHullEnvelope reports whether a body-frame position lies within the
// hull envelope |x| <= L/2, |y| <= B/2, -D <= z <= 0 (spec.md 4.4).
func (spec *AsvSpec) insideHullEnvelope(p Coord3D) bool {
	return p.X >= -spec.WaterlineLength/2 && p.X <= spec.WaterlineLength/2 &&
		p.Y >= -spec.Beam/2 && p.Y <= spec.Beam/2 &&
		p.Z >= -spec.Depth && p.Z <= 0
}

// waterplaneArea approximates the waterplane area as L*B (spec.md 4.4).
func (spec *AsvSpec) waterplaneArea() float64 {
	return spec.WaterlineLength * spec.Beam
}

func (spec *AsvSpec) String() string {
	return fmt.Sprintf("AsvSpec(%s L=%.2fm B=%.2fm D=%.2fm T=%.2fm disp=%.1fkg)",
		spec.Name, spec.WaterlineLength, spec.Beam, spec.Depth, spec.Draft, spec.Displacement)
}
