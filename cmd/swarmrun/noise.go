package main

import (
	"math/rand"
	"sync"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
	asvsim "github.com/resilient-swarms/ASVLite"
)

// NoisySink wraps another sink and perturbs each record's position by
// zero-mean Gaussian sensor noise before forwarding it, grounded on the
// teacher's station.go RangeNoise/RangeRateNoise distmv.Normal pattern.
type NoisySink struct {
	inner         asvsim.OutputSink
	mu            sync.Mutex
	positionNoise *distmv.Normal
}

// NewNoisySink builds a NoisySink with independent per-axis position noise
// of standard deviation sigmaMetres, seeded deterministically.
func NewNoisySink(inner asvsim.OutputSink, sigmaMetres float64, seed int64) *NoisySink {
	src := rand.New(rand.NewSource(seed))
	variance := sigmaMetres * sigmaMetres
	cov := mat64.NewSymDense(3, []float64{
		variance, 0, 0,
		0, variance, 0,
		0, 0, variance,
	})
	noise, ok := distmv.NewNormal([]float64{0, 0, 0}, cov, src)
	if !ok {
		panic("NoisySink: covariance matrix is not positive definite")
	}
	return &NoisySink{inner: inner, positionNoise: noise}
}

// Record implements asvsim.OutputSink.
func (s *NoisySink) Record(rec asvsim.StateRecord) {
	s.mu.Lock()
	sample := s.positionNoise.Rand(nil)
	s.mu.Unlock()
	rec.Position.X += sample[0]
	rec.Position.Y += sample[1]
	rec.Position.Z += sample[2]
	s.inner.Record(rec)
}
