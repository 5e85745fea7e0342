package asvsim

// AsvState is the mutable kinematic and force state of an ASV at a point
// in simulated time (spec.md 3). It is owned exclusively by its ASV; never
// shared.
type AsvState struct {
	Origin   Coord3D // earth-frame position of the body origin
	Attitude Coord3D // roll, pitch, yaw, radians

	Force        RigidBodyDOF
	Acceleration RigidBodyDOF
	Velocity     RigidBodyDOF
	Displacement RigidBodyDOF

	SimTime  float64
	Timestep float64

	// unitWavePressure[d*frequencyBins+f] caches rho*g*a*exp(-k*draft) for
	// each spectral cell at the current draft, refreshed on SetSeaState.
	unitWavePressure []float64

	Thrusters []*Thruster
}

// COG returns the centre-of-gravity position in the earth frame:
// origin + R(attitude)*cog_offset (spec.md 3).
func (s *AsvState) cog(spec *AsvSpec) Coord3D {
	return s.Origin.Add(rotateToEarth(s.Attitude, spec.CenterOfGravity))
}
