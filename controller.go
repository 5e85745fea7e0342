package asvsim

// ControllerContext is the read-only view of an ASV's current state handed
// to a Controller on each pre-compute call (spec.md 6).
type ControllerContext struct {
	SimTime  float64
	Position Coord3D
	Attitude Coord3D
	Velocity RigidBodyDOF
	Sea      *SeaSurface
}

// ThrustCommand is a single thruster's requested orientation and
// magnitude, addressed by index into the ASV's thruster array.
type ThrustCommand struct {
	ThrusterIdx int
	Orientation Coord3D
	Magnitude   float64
}

// ControlCommand is a controller's output for one tick: a rudder angle and
// thruster commands. SwarmRunner applies the thruster commands through
// ASV.SetThrust; it does not apply RudderAngle. The stop signal is the
// separate bool returned by Controller.Step.
type ControlCommand struct {
	RudderAngle float64
	Thrusts     []ThrustCommand
}

// Controller is the external collaborator that supplies rudder and
// thruster commands each tick (spec.md 6). Step returns the command to
// apply and a continue flag; a false continue flag tells the SwarmRunner
// to stop advancing this ASV.
type Controller interface {
	Step(ctx ControllerContext) (ControlCommand, bool)
}
