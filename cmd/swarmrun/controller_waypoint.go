package main

import (
	"math"

	asvsim "github.com/resilient-swarms/ASVLite"
)

// WaypointRudderController steers a single thruster toward the current
// waypoint of an attached sequence with a proportional heading-error
// rudder, holding thrust magnitude constant. Analogous in spirit to a
// simple proportional heading-hold autopilot, written fresh for this
// swarm rather than ported from any single source.
type WaypointRudderController struct {
	seq         *asvsim.WaypointSequence
	thrusterIdx int
	thrust      float64
	gain        float64
	maxRudder   float64
}

// NewWaypointRudderController builds a controller that drives thruster
// thrusterIdx at constant magnitude thrust, reorienting it by a rudder
// deflection proportional to heading error (gain, clamped to
// +/-maxRudder radians) toward seq's active waypoint.
func NewWaypointRudderController(seq *asvsim.WaypointSequence, thrusterIdx int, thrust, gain, maxRudder float64) *WaypointRudderController {
	return &WaypointRudderController{
		seq:         seq,
		thrusterIdx: thrusterIdx,
		thrust:      thrust,
		gain:        gain,
		maxRudder:   maxRudder,
	}
}

// Step computes a straight-line bearing from ctx.Position to the
// sequence's current waypoint and returns a proportional rudder
// deflection toward it, applied to the configured thruster at constant
// thrust. Returns cont=false once the sequence is done.
func (c *WaypointRudderController) Step(ctx asvsim.ControllerContext) (asvsim.ControlCommand, bool) {
	target := c.seq.Current()
	if target == nil {
		return asvsim.ControlCommand{}, false
	}

	to := target.Position().Sub(ctx.Position)
	desiredHeading := math.Atan2(to.Y, to.X)
	headingError := asvsim.NormalisePI(desiredHeading - ctx.Attitude.Z)

	rudder := c.gain * headingError
	if rudder > c.maxRudder {
		rudder = c.maxRudder
	} else if rudder < -c.maxRudder {
		rudder = -c.maxRudder
	}

	orientation := asvsim.Coord3D{X: math.Cos(rudder), Y: math.Sin(rudder), Z: 0}
	cmd := asvsim.ControlCommand{
		RudderAngle: rudder,
		Thrusts: []asvsim.ThrustCommand{
			{ThrusterIdx: c.thrusterIdx, Orientation: orientation, Magnitude: c.thrust},
		},
	}
	return cmd, true
}
