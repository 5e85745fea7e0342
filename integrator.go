package asvsim

import "github.com/ChristopherRabotin/ode"

// rkState adapts an ASV to the ode.Integrable contract for a single
// compute_dynamics step, grounded on the teacher's Mission
// GetState/SetState/Func/Stop (mission.go). The 12-element state vector is
// [velocity(6), displacement(6)]; wave and propulsive forces are evaluated
// at the ASV's origin/attitude as of the start of the step, which is an
// adequate approximation given how little pose changes over one timestep
// (spec.md 4.4 treats the hull as slender-body throughout).
type rkState struct {
	asv      *ASV
	stepDT   float64
	tElapsed float64
}

func (r *rkState) GetState() []float64 {
	s := make([]float64, 12)
	copy(s[0:6], r.asv.state.Velocity[:])
	copy(s[6:12], r.asv.state.Displacement[:])
	return s
}

func (r *rkState) SetState(t float64, s []float64) {
	var vel, disp RigidBodyDOF
	copy(vel[:], s[0:6])
	copy(disp[:], s[6:12])
	r.asv.state.Velocity = vel
	r.asv.state.Displacement = disp
	r.tElapsed = t
}

func (r *rkState) Func(t float64, f []float64) []float64 {
	var vel, disp RigidBodyDOF
	copy(vel[:], f[0:6])
	copy(disp[:], f[6:12])

	fWave := r.asv.waveForce(r.asv.state.SimTime + t)
	fProp := r.asv.propulsiveForce()

	var fDrag, fRestoring RigidBodyDOF
	for i := 0; i < 6; i++ {
		fDrag[i] = r.asv.dragDiag[i] * vel[i] * absFloat(vel[i])
		fRestoring[i] = r.asv.stiffnessDiag[i] * disp[i]
	}

	total := fWave.Add(fProp).Sub(fDrag).Sub(fRestoring)
	accel := diagSolve(r.asv.massDiag, total)

	fDot := make([]float64, 12)
	copy(fDot[0:6], accel[:])
	copy(fDot[6:12], vel[:])
	return fDot
}

func (r *rkState) Stop(t float64) bool {
	return t >= r.stepDT
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ComputeDynamicsRK4 is a higher-fidelity alternative to ComputeDynamics
// using a 4th-order Runge-Kutta step via github.com/ChristopherRabotin/ode
// instead of semi-implicit Euler. Pose (origin, attitude) is advanced the
// same way as ComputeDynamics once the velocity/displacement state has
// been integrated. Fails with InvalidState if called before Init, or
// InvalidParameter if dt <= 0.
func (a *ASV) ComputeDynamicsRK4(dt float64) error {
	if a.phase == asvUninitialised {
		return invalidState("ComputeDynamicsRK4", "ASV must be initialised before stepping")
	}
	if dt <= 0 {
		return invalidParameter("ComputeDynamicsRK4", "dt must be > 0")
	}

	rk := &rkState{asv: a, stepDT: dt}
	ode.NewRK4(0, dt, rk).Solve()

	a.state.Force = a.waveForce(a.state.SimTime).Add(a.propulsiveForce()).Sub(a.dragForce()).Sub(a.restoringForce())

	bodyLinear := Coord3D{a.state.Velocity.Surge(), a.state.Velocity.Sway(), a.state.Velocity.Heave()}
	a.state.Origin = a.state.Origin.Add(rotateToEarth(a.state.Attitude, bodyLinear).Scale(dt))
	a.state.Attitude = Coord3D{
		NormalisePI(a.state.Attitude.X + a.state.Velocity.Roll()*dt),
		NormalisePI(a.state.Attitude.Y + a.state.Velocity.Pitch()*dt),
		NormalisePI(a.state.Attitude.Z + a.state.Velocity.Yaw()*dt),
	}

	a.state.Timestep = dt
	a.state.SimTime += dt
	a.phase = asvStepping
	return nil
}
