package asvsim

import (
	"fmt"
	"math"
	"math/rand"
)

// spreadExponent is the directional spreading exponent s in cos^(2s), used
// to weight energy away from the predominant heading theta_p. s=1 gives the
// classic cos^2 spreading; larger s narrows the directional fan.
const spreadExponent = 1.0

// bretschneiderFminFactor and bretschneiderFmaxFactor bound the spectral frequency
// band as multiples of the peak frequency, chosen to cover ~99% of the
// spectral energy of the Bretschneider form used here.
const (
	bretschneiderFminFactor = 0.5
	bretschneiderFmaxFactor = 3.0
)

// SeaSurface is a directional Bretschneider wave spectrum realised as a
// D x F grid of RegularWave components, indexed row-major by (direction,
// frequency). Immutable after construction; safe to share by reference
// across goroutines (spec.md 4.3, 5).
type SeaSurface struct {
	significantHeight float64
	predominantDir    float64
	seed              int64
	directionBins     int
	frequencyBins     int
	peakFrequency     float64
	freqMin, freqMax  float64

	spectrum []*RegularWave // row-major: d*frequencyBins + f
}

// bretschneiderPeakFrequency returns the peak frequency (Hz) of a fully
// developed Bretschneider sea of significant height hs, via the ITTC
// relation Tp = 2.4129*sqrt(hs).
func bretschneiderPeakFrequency(hs float64) float64 {
	tp := 2.4129 * math.Sqrt(hs)
	return 1 / tp
}

// bretschneiderS returns the one-sided Bretschneider spectral density
// S(f) for significant height hs and peak frequency fp, at frequency f.
func bretschneiderS(f, hs, fp float64) float64 {
	ratio := fp / f
	return (5.0 / 16.0) * hs * hs * fp * fp * fp * fp / (f * f * f * f * f) *
		math.Exp(-1.25*ratio*ratio*ratio*ratio)
}

// directionalSpread returns the cos^(2*spreadExponent) weight of direction
// theta relative to the predominant heading thetaP, zero outside
// [thetaP-pi/2, thetaP+pi/2].
func directionalSpread(theta, thetaP float64) float64 {
	d := NormalisePI(theta - thetaP)
	if d < -pi/2 || d > pi/2 {
		return 0
	}
	return math.Pow(math.Cos(d), 2*spreadExponent)
}

// NewSeaSurface constructs a directional Bretschneider spectrum. Fails with
// InvalidParameter when significantHeight <= 0 or directionBins < 2 or
// frequencyBins < 2.
func NewSeaSurface(significantHeight, predominantDir float64, seed int64, directionBins, frequencyBins int) (*SeaSurface, error) {
	if significantHeight <= 0 {
		return nil, invalidParameter("NewSeaSurface", "significant height must be > 0")
	}
	if directionBins < 2 {
		return nil, invalidParameter("NewSeaSurface", "direction bin count must be >= 2")
	}
	if frequencyBins < 2 {
		return nil, invalidParameter("NewSeaSurface", "frequency bin count must be >= 2")
	}
	thetaP := NormalisePI(predominantDir)
	fp := bretschneiderPeakFrequency(significantHeight)
	fmin := bretschneiderFminFactor * fp
	fmax := bretschneiderFmaxFactor * fp

	s := &SeaSurface{
		significantHeight: significantHeight,
		predominantDir:    thetaP,
		seed:              seed,
		directionBins:     directionBins,
		frequencyBins:     frequencyBins,
		peakFrequency:     fp,
		freqMin:           fmin,
		freqMax:           fmax,
		spectrum:          make([]*RegularWave, directionBins*frequencyBins),
	}

	rng := rand.New(rand.NewSource(seed))

	deltaF := (fmax - fmin) / float64(frequencyBins)
	deltaTheta := pi / float64(directionBins) // direction range spans pi radians

	// Discrete spread normalisation so that sum_i spread_i*deltaTheta ~ 1,
	// keeping the Hs invariant satisfied regardless of directional
	// resolution or spreadExponent.
	spreadRaw := make([]float64, directionBins)
	spreadTotal := 0.0
	for i := 0; i < directionBins; i++ {
		thetaI := thetaP - pi/2 + (float64(i)+0.5)*deltaTheta
		spreadRaw[i] = directionalSpread(thetaI, thetaP)
		spreadTotal += spreadRaw[i] * deltaTheta
	}

	for i := 0; i < directionBins; i++ {
		thetaI := thetaP - pi/2 + (float64(i)+0.5)*deltaTheta
		spreadI := spreadRaw[i] / spreadTotal
		for j := 0; j < frequencyBins; j++ {
			fJ := fmin + (float64(j)+0.5)*deltaF
			spectralDensity := bretschneiderS(fJ, significantHeight, fp) * spreadI
			amplitude := math.Sqrt(2 * spectralDensity * deltaF * deltaTheta)
			phase := rng.Float64() * twoPi

			wave, err := NewRegularWave(amplitude, fJ, phase, thetaI)
			if err != nil {
				// fJ > 0 and amplitude >= 0 by construction; a failure here
				// indicates a logic error in the spectrum construction.
				panic(fmt.Sprintf("NewSeaSurface: invalid spectral component at (%d,%d): %v", i, j, err))
			}
			s.spectrum[i*frequencyBins+j] = wave
		}
	}
	return s, nil
}

// SignificantHeight returns Hs in metres.
func (s *SeaSurface) SignificantHeight() float64 { return s.significantHeight }

// PredominantDirection returns theta_p in radians, normalised to (-pi, pi].
func (s *SeaSurface) PredominantDirection() float64 { return s.predominantDir }

// Seed returns the RNG seed used to construct the spectrum phases.
func (s *SeaSurface) Seed() int64 { return s.seed }

// DirectionBins returns D.
func (s *SeaSurface) DirectionBins() int { return s.directionBins }

// FrequencyBins returns F.
func (s *SeaSurface) FrequencyBins() int { return s.frequencyBins }

// FrequencyRange returns [f_min, f_max] in Hz.
func (s *SeaSurface) FrequencyRange() (float64, float64) { return s.freqMin, s.freqMax }

// PeakFrequency returns f_p in Hz.
func (s *SeaSurface) PeakFrequency() float64 { return s.peakFrequency }

// RegularWaveAt returns the (d, f)-th spectral component. Fails with
// OutOfRange on a bad index.
func (s *SeaSurface) RegularWaveAt(d, f int) (*RegularWave, error) {
	if d < 0 || d >= s.directionBins {
		return nil, outOfRange("RegularWaveAt", "direction index out of range")
	}
	if f < 0 || f >= s.frequencyBins {
		return nil, outOfRange("RegularWaveAt", "frequency index out of range")
	}
	return s.spectrum[d*s.frequencyBins+f], nil
}

// Elevation returns the linear superposition of every spectral component's
// elevation at the given location and time. O(D*F); accumulated in double
// precision.
func (s *SeaSurface) Elevation(location Coord3D, t float64) float64 {
	total := 0.0
	for _, w := range s.spectrum {
		total += w.Elevation(location, t)
	}
	return total
}

// VerticalVelocity returns d(elevation)/dt at the given location and time,
// obtained analytically per component: d/dt[a*cos(phase)] = -a*omega*sin(phase).
func (s *SeaSurface) VerticalVelocity(location Coord3D, t float64) float64 {
	total := 0.0
	for _, w := range s.spectrum {
		total += -w.Amplitude() * w.AngularFrequency() * math.Sin(w.Phase(location, t))
	}
	return total
}
