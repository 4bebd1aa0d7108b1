package solarsystem

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	deg2rad = math.Pi / 180
)

// norm returns the norm of a given vector which is supposed to be 2x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// unit returns the unit vector of a given vector.
func unit(a []float64) (b []float64) {
	n := norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0}
	}
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return
}

// dot performs the inner product via mat64/BLAS.
func dot(a, b []float64) float64 {
	return mat64.Dot(mat64.NewVector(len(a), a), mat64.NewVector(len(b), b))
}

// rot2d rotates the provided vector by θ radians about the origin.
// Positive θ is counterclockwise in the mathematical frame; callers working
// in screen coordinates (y increasing downward) see it clockwise.
func rot2d(θ float64, v []float64) []float64 {
	sθ, cθ := math.Sincos(θ)
	R := mat64.NewDense(2, 2, []float64{cθ, -sθ, sθ, cθ})
	rslt := mat64.NewVector(2, nil)
	rslt.MulVec(R, mat64.NewVector(2, v))
	return []float64{rslt.At(0, 0), rslt.At(1, 0)}
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
