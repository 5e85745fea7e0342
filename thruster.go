package asvsim

import "fmt"

// Thruster is a body-fixed thrust point: a mounting position and a current
// thrust vector (body-frame unit direction scaled by magnitude). Mutable
// per tick (spec.md 3).
type Thruster struct {
	Position    Coord3D // body-frame mounting position
	orientation Coord3D // body-frame unit direction
	magnitude   float64 // newtons, >= 0
}

// NewThruster constructs a thruster at the given body-frame position with
// zero initial thrust.
func NewThruster(position Coord3D) *Thruster {
	return &Thruster{Position: position}
}

// Orientation returns the thruster's current body-frame unit direction.
func (th *Thruster) Orientation() Coord3D { return th.orientation }

// Magnitude returns the thruster's current thrust magnitude in newtons.
func (th *Thruster) Magnitude() float64 { return th.magnitude }

// setThrust sets this thruster's orientation and magnitude. orientation is
// normalised to a unit vector; the zero vector is rejected since it carries
// no direction. Fails with InvalidParameter on magnitude < 0 or a
// zero-length orientation.
func (th *Thruster) setThrust(orientation Coord3D, magnitude float64) error {
	if magnitude < 0 {
		return invalidParameter("SetThrust", "magnitude must be >= 0")
	}
	if equalWithinAbs(orientation.Norm(), 0, 1e-12) {
		return invalidParameter("SetThrust", "orientation must be non-zero")
	}
	th.orientation = orientation.Unit()
	th.magnitude = magnitude
	return nil
}

// ForceVector returns the thruster's current thrust as a body-frame force.
func (th *Thruster) ForceVector() Coord3D {
	return th.orientation.Scale(th.magnitude)
}

// generalisedForce returns the 6-DOF generalised force this thruster
// contributes at the COG: the thrust itself for surge/sway/heave, and the
// moment (offset-from-COG x force) for roll/pitch/yaw (spec.md 4.4 step 2).
func (th *Thruster) generalisedForce(cog Coord3D) RigidBodyDOF {
	force := th.ForceVector()
	moment := th.Position.Sub(cog).Cross(force)
	return RigidBodyDOF{force.X, force.Y, force.Z, moment.X, moment.Y, moment.Z}
}

func (th *Thruster) String() string {
	return fmt.Sprintf("Thruster(pos=%v dir=%v mag=%.3fN)", th.Position, th.orientation, th.magnitude)
}
