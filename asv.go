package asvsim

import (
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// asvPhase is the ASV's lifecycle state (spec.md 4.4): Uninitialised ->
// Initialised -> Stepping -> Stepping -> ...
type asvPhase uint8

const (
	asvUninitialised asvPhase = iota
	asvInitialised
	asvStepping
)

// Hydrodynamic coefficients used to build the quadratic drag diagonal.
// Sway (bluff-body, pressure-dominant) drag is an order of magnitude
// larger than surge (slender-body, friction-dominant) per spec.md 4.4.
const (
	dragCoeffSurge         = 0.05
	swayToSurgeDragRatio   = 20.0
	angularDragCoefficient = 0.08
)

// ASV is a six-degree-of-freedom rigid body advancing under wave
// excitation, propulsion, drag and hydrostatic restoring (spec.md 4.4).
type ASV struct {
	spec  *AsvSpec
	sea   *SeaSurface
	state AsvState
	phase asvPhase

	massDiag      RigidBodyDOF
	dragDiag      RigidBodyDOF
	stiffnessDiag RigidBodyDOF

	waveGliderTuning float64

	waypoints            *WaypointSequence
	lastWaypointDistance float64

	logger kitlog.Logger
}

// NewASV constructs an uninitialised ASV at the given earth-frame position
// and attitude. Call Init before ComputeDynamics. Fails with
// InvalidParameter if spec or sea is nil.
func NewASV(spec *AsvSpec, sea *SeaSurface, initialPosition, initialAttitude Coord3D) (*ASV, error) {
	if spec == nil {
		return nil, invalidParameter("NewASV", "spec must not be nil")
	}
	if sea == nil {
		return nil, invalidParameter("NewASV", "sea surface must not be nil")
	}
	return &ASV{
		spec: spec,
		sea:  sea,
		state: AsvState{
			Origin:   initialPosition,
			Attitude: initialAttitude,
			Timestep: 0.04,
		},
		waveGliderTuning:     1.0,
		lastWaypointDistance: -1,
		logger:               newComponentLogger("asv", spec.Name),
	}, nil
}

// Init computes the mass and stiffness matrices from the hull spec and
// caches the per-component unit-wave pressure amplitudes at the current
// draft, transitioning Uninitialised -> Initialised.
func (a *ASV) Init() {
	m := a.spec.Displacement
	a.massDiag = RigidBodyDOF{
		m, m, m,
		m * a.spec.RadiusOfGyrationRoll * a.spec.RadiusOfGyrationRoll,
		m * a.spec.RadiusOfGyrationPitch * a.spec.RadiusOfGyrationPitch,
		m * a.spec.RadiusOfGyrationYaw * a.spec.RadiusOfGyrationYaw,
	}

	volume := a.spec.Displacement / WaterDensity
	bmRoll := a.spec.Beam * a.spec.Beam / (12 * a.spec.Draft)
	bmPitch := a.spec.WaterlineLength * a.spec.WaterlineLength / (12 * a.spec.Draft)
	waterplane := a.spec.waterplaneArea()

	a.stiffnessDiag = RigidBodyDOF{
		0, 0,
		WaterDensity * Gravity * waterplane,
		WaterDensity * Gravity * volume * bmRoll,
		WaterDensity * Gravity * volume * bmPitch,
		0,
	}

	frontalArea := a.spec.Beam * a.spec.Draft
	lateralArea := a.spec.WaterlineLength * a.spec.Draft
	dragSurge := 0.5 * WaterDensity * dragCoeffSurge * frontalArea
	a.dragDiag = RigidBodyDOF{
		dragSurge,
		dragSurge * swayToSurgeDragRatio,
		0.5 * WaterDensity * dragCoeffSurge * waterplane,
		0.5 * WaterDensity * angularDragCoefficient * lateralArea * a.spec.Beam * a.spec.Beam,
		0.5 * WaterDensity * angularDragCoefficient * lateralArea * a.spec.WaterlineLength * a.spec.WaterlineLength,
		0.5 * WaterDensity * angularDragCoefficient * lateralArea * a.spec.WaterlineLength * a.spec.WaterlineLength,
	}

	a.recomputeUnitWavePressure()
	a.phase = asvInitialised
}

func (a *ASV) recomputeUnitWavePressure() {
	n := a.sea.DirectionBins() * a.sea.FrequencyBins()
	cache := make([]float64, n)
	for d := 0; d < a.sea.DirectionBins(); d++ {
		for f := 0; f < a.sea.FrequencyBins(); f++ {
			w, _ := a.sea.RegularWaveAt(d, f)
			p, _ := w.PressureAmplitude(a.spec.Draft)
			cache[d*a.sea.FrequencyBins()+f] = p
		}
	}
	a.state.unitWavePressure = cache
}

// SetThrusters replaces the thruster array. Fails with InvalidParameter if
// any thruster lies outside the hull envelope.
func (a *ASV) SetThrusters(thrusters []*Thruster) error {
	for _, th := range thrusters {
		if !a.spec.insideHullEnvelope(th.Position) {
			return invalidParameter("SetThrusters", "thruster position outside hull envelope")
		}
	}
	a.state.Thrusters = thrusters
	return nil
}

// SetThrust sets a single thruster's orientation and magnitude. Fails with
// OutOfRange on a bad index, or InvalidParameter per Thruster.setThrust.
func (a *ASV) SetThrust(thrusterIdx int, orientation Coord3D, magnitude float64) error {
	if thrusterIdx < 0 || thrusterIdx >= len(a.state.Thrusters) {
		return outOfRange("SetThrust", "thruster index out of range")
	}
	return a.state.Thrusters[thrusterIdx].setThrust(orientation, magnitude)
}

// SetSeaState swaps the wave source and recomputes the cached per-component
// unit-wave pressure amplitudes. Fails with InvalidParameter if surface is
// nil, InvalidState if called before Init.
func (a *ASV) SetSeaState(surface *SeaSurface) error {
	if surface == nil {
		return invalidParameter("SetSeaState", "sea surface must not be nil")
	}
	if a.phase == asvUninitialised {
		return invalidState("SetSeaState", "ASV must be initialised before setting sea state")
	}
	a.sea = surface
	a.recomputeUnitWavePressure()
	return nil
}

// waveForce assembles the 6-DOF Froude-Krylov excitation at the ASV's COG
// by summing each spectral component's cached pressure amplitude over an
// analytical slender-body approximation of the underwater hull (spec.md
// 4.4 step 1): the pressure acts over the waterplane area for heave, and
// is weighted by hull half-length/half-beam moment arms projected onto the
// component's travel direction for roll and pitch.
func (a *ASV) waveForce(t float64) RigidBodyDOF {
	cog := a.state.cog(a.spec)
	waterplane := a.spec.waterplaneArea()
	halfBeam := a.spec.Beam / 2
	halfLength := a.spec.WaterlineLength / 2

	var f RigidBodyDOF
	idx := 0
	for d := 0; d < a.sea.DirectionBins(); d++ {
		for fr := 0; fr < a.sea.FrequencyBins(); fr++ {
			w, _ := a.sea.RegularWaveAt(d, fr)
			amplitudePressure := a.state.unitWavePressure[idx]
			idx++
			if amplitudePressure == 0 {
				continue
			}
			phase := w.Phase(cog, t)
			pressure := amplitudePressure * math.Cos(phase)
			relDir := w.Direction() - a.state.Attitude.Z

			f[dofHeave] += pressure * waterplane
			f[dofRoll] += pressure * waterplane * halfBeam * math.Sin(relDir)
			f[dofPitch] += pressure * waterplane * halfLength * math.Cos(relDir)
			f[dofSurge] += pressure * a.spec.Draft * a.spec.Beam * math.Cos(relDir) * 0.1
			f[dofSway] += pressure * a.spec.Draft * a.spec.Beam * math.Sin(relDir) * 0.1
		}
	}
	return f
}

// propulsiveForce sums every thruster's generalised force about the
// body-frame COG offset (spec.md 4.4 step 2). Thruster.Position and
// AsvSpec.CenterOfGravity are both body-frame points; the moment arm must
// stay in that frame rather than mix in the earth-frame COG, whose
// magnitude grows unboundedly as the vessel travels from the origin.
func (a *ASV) propulsiveForce() RigidBodyDOF {
	var f RigidBodyDOF
	for _, th := range a.state.Thrusters {
		f = f.Add(th.generalisedForce(a.spec.CenterOfGravity))
	}
	return f
}

// dragForce returns the quadratic drag opposing each velocity component
// (spec.md 4.4 step 3).
func (a *ASV) dragForce() RigidBodyDOF {
	var f RigidBodyDOF
	v := a.state.Velocity
	for i := range f {
		f[i] = a.dragDiag[i] * v[i] * math.Abs(v[i])
	}
	return f
}

// restoringForce returns the linear hydrostatic spring force on heave,
// roll and pitch (spec.md 4.4 step 4); zero on surge, sway, yaw.
func (a *ASV) restoringForce() RigidBodyDOF {
	return diagApply(a.stiffnessDiag, a.state.Displacement)
}

// ComputeDynamics advances the ASV by dt seconds per the per-step algorithm
// in spec.md 4.4. Fails with InvalidState if called before Init, or
// InvalidParameter if dt <= 0.
func (a *ASV) ComputeDynamics(dt float64) error {
	if a.phase == asvUninitialised {
		return invalidState("ComputeDynamics", "ASV must be initialised before stepping")
	}
	if dt <= 0 {
		return invalidParameter("ComputeDynamics", "dt must be > 0")
	}

	fWave := a.waveForce(a.state.SimTime)
	fProp := a.propulsiveForce()
	fDrag := a.dragForce()
	fRestoring := a.restoringForce()

	total := fWave.Add(fProp).Sub(fDrag).Sub(fRestoring)
	a.state.Force = total
	a.state.Acceleration = diagSolve(a.massDiag, total)

	a.state.Velocity = a.state.Velocity.Add(a.state.Acceleration.Scale(dt))
	a.state.Displacement = a.state.Displacement.Add(a.state.Velocity.Scale(dt))

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

	if a.waypoints != nil {
		a.lastWaypointDistance = a.waypoints.UpdateAndAdvance(a.state.cog(a.spec), a.state.SimTime)
	}
	return nil
}

// Position returns the current earth-frame origin.
func (a *ASV) Position() Coord3D { return a.state.Origin }

// CenterOfGravityPosition returns the current earth-frame COG position.
func (a *ASV) CenterOfGravityPosition() Coord3D { return a.state.cog(a.spec) }

// Attitude returns the current roll, pitch, yaw.
func (a *ASV) Attitude() Coord3D { return a.state.Attitude }

// ForceVector returns the most recently assembled total generalised force.
func (a *ASV) ForceVector() RigidBodyDOF { return a.state.Force }

// AccelerationVector returns the most recently computed acceleration.
func (a *ASV) AccelerationVector() RigidBodyDOF { return a.state.Acceleration }

// VelocityVector returns the current velocity.
func (a *ASV) VelocityVector() RigidBodyDOF { return a.state.Velocity }

// Spec returns the hull specification this ASV was built from.
func (a *ASV) Spec() *AsvSpec { return a.spec }

// SeaSurfaceRef returns the currently assigned (borrowed) sea surface.
func (a *ASV) SeaSurfaceRef() *SeaSurface { return a.sea }

// SimTime returns the current simulation time in seconds.
func (a *ASV) SimTime() float64 { return a.state.SimTime }

// Thrusters returns the current thruster array.
func (a *ASV) Thrusters() []*Thruster { return a.state.Thrusters }

// WaveGliderTuning returns the current wave-glider thrust tuning factor.
func (a *ASV) WaveGliderTuning() float64 { return a.waveGliderTuning }

// SetWaveGliderTuning sets the tuning factor used by
// WaveGliderComputeDynamics. Fails with InvalidParameter if factor < 0;
// zero is accepted and no upper bound is applied.
func (a *ASV) SetWaveGliderTuning(factor float64) error {
	if factor < 0 {
		return invalidParameter("SetWaveGliderTuning", "tuning factor must be >= 0")
	}
	a.waveGliderTuning = factor
	return nil
}

// SetWaypoints attaches a waypoint sequence the ASV will track progress
// against on every ComputeDynamics tick. Passing nil detaches it; the ASV
// never steers toward the sequence itself, it only reports distance (spec.md
// 9: steering policy is a caller-side Controller concern).
func (a *ASV) SetWaypoints(seq *WaypointSequence) {
	a.waypoints = seq
	if seq == nil {
		a.lastWaypointDistance = -1
	}
}

// Waypoints returns the currently attached waypoint sequence, or nil.
func (a *ASV) Waypoints() *WaypointSequence { return a.waypoints }

// DistanceToWaypoint returns the distance, as of the most recent
// ComputeDynamics tick, from the ASV's COG to the active waypoint of its
// attached sequence. Returns -1 if no sequence is attached or the attached
// sequence is done.
func (a *ASV) DistanceToWaypoint() float64 { return a.lastWaypointDistance }
