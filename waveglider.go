package asvsim

import "math"

// waveGliderMinMotionThreshold is the minimum |vertical velocity| (m/s)
// below which wave-glider thrust is forced to zero, preventing
// noise-driven jitter when the sea is nearly flat (spec.md 4.4).
const waveGliderMinMotionThreshold = 0.01

// waveGliderThrustCoeff and wingArea parameterise the submerged wing's
// lift-to-thrust conversion: magnitude = Ct * rho * Awing * wg^2.
const (
	waveGliderThrustCoeff = 0.6
	waveGliderWingArea    = 0.25 // m^2
)

// waveGliderThrust returns the horizontal thrust vector (earth frame)
// generated by the submerged glider's wing from vertical velocity wg,
// deflected by rudderAngle from the vehicle's current heading (spec.md
// 4.4). Returns the zero vector when |wg| is below the motion threshold.
func (a *ASV) waveGliderThrust(wg, rudderAngle float64) Coord3D {
	if math.Abs(wg) < waveGliderMinMotionThreshold {
		return Coord3D{}
	}
	magnitude := a.waveGliderTuning * waveGliderThrustCoeff * WaterDensity * waveGliderWingArea * wg * wg
	heading := a.state.Attitude.Z + rudderAngle
	return Coord3D{magnitude * math.Cos(heading), magnitude * math.Sin(heading), 0}
}

// WaveGliderComputeDynamics is the wave-glider variant of ComputeDynamics:
// it first derives propulsive force from the wave-induced vertical
// velocity of the glider's submerged wing before stepping the rigid body
// (spec.md 4.4). rudderAngle must lie in (-pi/2, pi/2); a positive angle
// deflects thrust to starboard.
func (a *ASV) WaveGliderComputeDynamics(rudderAngle, dt float64) error {
	if a.phase == asvUninitialised {
		return invalidState("WaveGliderComputeDynamics", "ASV must be initialised before stepping")
	}
	if rudderAngle <= -pi/2 || rudderAngle >= pi/2 {
		return invalidParameter("WaveGliderComputeDynamics", "rudder angle must lie in (-pi/2, pi/2)")
	}

	wg := a.sea.VerticalVelocity(a.state.cog(a.spec), a.state.SimTime)
	thrust := a.waveGliderThrust(wg, rudderAngle)
	// waveGliderThrust is earth-frame; a Thruster orientation is body-frame,
	// so undo the heading rotation (roll and pitch are taken as small).
	sy, cy := math.Sincos(a.state.Attitude.Z)
	thrust = Coord3D{cy*thrust.X + sy*thrust.Y, -sy*thrust.X + cy*thrust.Y, 0}

	glider := NewThruster(Coord3D{0, 0, -a.spec.Draft})
	if thrust.Norm() > 0 {
		if err := glider.setThrust(thrust, thrust.Norm()); err != nil {
			return err
		}
		a.state.Thrusters = append(a.state.Thrusters, glider)
		defer func() { a.state.Thrusters = a.state.Thrusters[:len(a.state.Thrusters)-1] }()
	}

	return a.ComputeDynamics(dt)
}
