package asvsim

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	pi    = math.Pi
	twoPi = 2 * math.Pi

	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

func sqrt(v float64) float64 { return math.Sqrt(v) }

func mod(a, m float64) float64 { return math.Mod(a, m) }

func equalWithinAbs(a, b, tol float64) bool {
	return floats.EqualWithinAbs(a, b, tol)
}

// sign returns +1 or -1, treating values within tolerance of zero as
// positive. Grounded on the teacher's Sign (math.go).
func sign(v float64) float64 {
	if equalWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// deg2radVal and rad2degVal convert angles between degrees and radians.
func deg2radVal(a float64) float64 { return a * deg2rad }
func rad2degVal(a float64) float64 { return a * rad2deg }

// denseIdentity returns an n x n identity matrix, grounded on the teacher's
// DenseIdentity/ScaledDenseIdentity (math.go).
func denseIdentity(n int) *mat64.Dense {
	return scaledDenseIdentity(n, 1)
}

// scaledDenseIdentity returns an n x n matrix that is s times the identity.
func scaledDenseIdentity(n int, s float64) *mat64.Dense {
	vals := make([]float64, n*n)
	for j := 0; j < n*n; j++ {
		if j%(n+1) == 0 {
			vals[j] = s
		}
	}
	return mat64.NewDense(n, n, vals)
}

// diagDense builds an n x n diagonal matrix from the given diagonal entries,
// generalising the teacher's scaledDenseIdentity to non-uniform diagonals.
// The ASV itself keeps its mass and stiffness diagonals as RigidBodyDOF
// values and does not build them through diagDense.
func diagDense(diag []float64) *mat64.Dense {
	n := len(diag)
	vals := make([]float64, n*n)
	for i, v := range diag {
		vals[i*n+i] = v
	}
	return mat64.NewDense(n, n, vals)
}

// diagOf6 extracts the diagonal of a square mat64.Dense as a RigidBodyDOF.
func diagOf6(m *mat64.Dense) RigidBodyDOF {
	var d RigidBodyDOF
	r, c := m.Dims()
	if r != 6 || c != 6 {
		panic("diagOf6: matrix must be 6x6")
	}
	for i := 0; i < 6; i++ {
		d[i] = m.At(i, i)
	}
	return d
}

// diagSolve solves M*a = f for a diagonal matrix M, returning a. Division
// by a zero diagonal entry is a programmer error (malformed AsvSpec) and
// panics, matching the teacher's stance that malformed internal state is
// not a recoverable condition (prop.go, spacecraft.go panic the same way
// for "should never happen" states).
func diagSolve(diag RigidBodyDOF, f RigidBodyDOF) RigidBodyDOF {
	var a RigidBodyDOF
	for i := 0; i < 6; i++ {
		if diag[i] == 0 {
			panic("diagSolve: singular diagonal entry")
		}
		a[i] = f[i] / diag[i]
	}
	return a
}

// diagApply returns diag componentwise-multiplied with x, i.e. M*x for a
// diagonal M expressed as RigidBodyDOF.
func diagApply(diag RigidBodyDOF, x RigidBodyDOF) RigidBodyDOF {
	var r RigidBodyDOF
	for i := range x {
		r[i] = diag[i] * x[i]
	}
	return r
}
