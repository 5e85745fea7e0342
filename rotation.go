package asvsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 is the elementary rotation matrix about the 1st (x, roll) axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// R2 is the elementary rotation matrix about the 2nd (y, pitch) axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// R3 is the elementary rotation matrix about the 3rd (z, yaw) axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// BodyToEarth returns the 3-2-1 (yaw-pitch-roll) Euler rotation matrix that
// carries a body-frame vector into the earth-fixed frame, grounded on the
// teacher's R1/R2/R3 composition in R3R1R3 (rotation.go), generalised here
// to the standard marine-vehicle Euler sequence instead of the orbital PQW
// 3-1-3 sequence.
func BodyToEarth(roll, pitch, yaw float64) *mat64.Dense {
	var ry, rz mat64.Dense
	ry.Mul(R2(pitch), R1(roll))
	rz.Mul(R3(yaw), &ry)
	return &rz
}

// MxV3 multiplies a 3x3 matrix with a Coord3D vector.
func MxV3(m *mat64.Dense, v Coord3D) Coord3D {
	vVec := mat64.NewVector(3, []float64{v.X, v.Y, v.Z})
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return Coord3D{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// rotateToEarth rotates a body-frame offset into the earth frame given the
// current vessel attitude, stored as Coord3D(roll, pitch, yaw) in radians.
func rotateToEarth(attitude Coord3D, offset Coord3D) Coord3D {
	return MxV3(BodyToEarth(attitude.X, attitude.Y, attitude.Z), offset)
}
