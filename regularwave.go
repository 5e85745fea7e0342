package asvsim

import (
	"fmt"
	"math"
)

const (
	// Gravity is the acceleration of gravity in m/s^2, used throughout the
	// deep-water dispersion relation and hydrostatic restoring terms.
	Gravity = 9.81
	// WaterDensity is sea water density in kg/m^3.
	WaterDensity = 1025.0
)

// RegularWave is a single sinusoidal wave component: amplitude, frequency,
// phase and (geographic) direction, with the wavenumber, wavelength and
// period derived from the deep-water dispersion relation at construction
// time. RegularWave is immutable after construction (spec.md 4.2).
type RegularWave struct {
	amplitude float64
	frequency float64
	phaseLag  float64
	direction float64

	omega      float64
	waveNumber float64
	waveLength float64
	period     float64
}

// NewRegularWave constructs a RegularWave. Direction is normalised to
// (-pi, pi] on construction. Fails with InvalidParameter when amplitude < 0
// or frequency <= 0.
func NewRegularWave(amplitude, frequency, phaseLag, direction float64) (*RegularWave, error) {
	if amplitude < 0 {
		return nil, invalidParameter("NewRegularWave", "amplitude must be >= 0")
	}
	if frequency <= 0 {
		return nil, invalidParameter("NewRegularWave", "frequency must be > 0")
	}
	omega := twoPi * frequency
	k := omega * omega / Gravity // deep-water dispersion: k = omega^2/g
	return &RegularWave{
		amplitude:  amplitude,
		frequency:  frequency,
		phaseLag:   phaseLag,
		direction:  NormalisePI(direction),
		omega:      omega,
		waveNumber: k,
		waveLength: twoPi / k,
		period:     1 / frequency,
	}, nil
}

// Amplitude returns the wave amplitude in metres.
func (w *RegularWave) Amplitude() float64 { return w.amplitude }

// Frequency returns the wave frequency in Hz.
func (w *RegularWave) Frequency() float64 { return w.frequency }

// PhaseLag returns the constructed phase offset in radians.
func (w *RegularWave) PhaseLag() float64 { return w.phaseLag }

// Direction returns the geographic heading the wave travels towards, in
// radians, normalised to (-pi, pi].
func (w *RegularWave) Direction() float64 { return w.direction }

// AngularFrequency returns omega = 2*pi*frequency, in rad/s.
func (w *RegularWave) AngularFrequency() float64 { return w.omega }

// WaveNumber returns k = omega^2/g (deep water), in rad/m.
func (w *RegularWave) WaveNumber() float64 { return w.waveNumber }

// WaveLength returns lambda = 2*pi/k, in metres.
func (w *RegularWave) WaveLength() float64 { return w.waveLength }

// Period returns T = 1/frequency, in seconds.
func (w *RegularWave) Period() float64 { return w.period }

// Phase returns the instantaneous phase of this wave component at the given
// earth-frame location and time:
//
//	phi = omega*t - k*(x*cos(theta) + y*sin(theta)) + phi0
//
// computed in double precision in exactly that order (spec.md 4.2). The z
// coordinate of location is ignored. No wrap-around is applied; callers
// take cos/sin of the result.
func (w *RegularWave) Phase(location Coord3D, t float64) float64 {
	return w.omega*t - w.waveNumber*(location.X*math.Cos(w.direction)+location.Y*math.Sin(w.direction)) + w.phaseLag
}

// Elevation returns a*cos(phase) at the given location and time. Defined
// for any t >= 0 and any (x, y).
func (w *RegularWave) Elevation(location Coord3D, t float64) float64 {
	return w.amplitude * math.Cos(w.Phase(location, t))
}

// PressureAmplitude returns the linear-theory wave pressure amplitude at
// the given depth (measured downward as positive):
//
//	rho * g * a * exp(-k*depth)
//
// Fails with InvalidParameter on negative depth.
func (w *RegularWave) PressureAmplitude(depth float64) (float64, error) {
	if depth < 0 {
		return 0, invalidParameter("PressureAmplitude", "depth must be >= 0")
	}
	return WaterDensity * Gravity * w.amplitude * math.Exp(-w.waveNumber*depth), nil
}

func (w *RegularWave) String() string {
	return fmt.Sprintf("RegularWave(a=%.3fm f=%.3fHz dir=%.3frad T=%.3fs lambda=%.3fm)",
		w.amplitude, w.frequency, w.direction, w.period, w.waveLength)
}
