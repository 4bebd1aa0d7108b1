package solarsystem

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// LagrangeKind identifies one of the five libration points.
type LagrangeKind uint8

// The five libration points of a two-body system.
const (
	L1 LagrangeKind = iota + 1
	L2
	L3
	L4
	L5
)

// String implements the Stringer interface.
func (k LagrangeKind) String() string {
	switch k {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	case L4:
		return "L4"
	case L5:
		return "L5"
	default:
		panic(fmt.Errorf("unknown libration point %d", uint8(k)))
	}
}

// LagrangePoint is one libration point in absolute display-space coordinates.
type LagrangePoint struct {
	X, Y float64
	Kind LagrangeKind
}

// LagrangePoints returns the five libration points of the primary/secondary
// pair, in L1..L5 order, from the pair's current absolute positions and
// masses. The secondary's position is not assumed axis-aligned: L1, L2 and
// L3 are placed along the actual primary-secondary line, L4 and L5 by
// rotating the separation vector by +60° and -60° about the primary,
// closing the two equilateral triangles.
//
// These are first-order small-mass-ratio approximations, not solutions of
// the restricted three-body problem: they are only meaningful while the
// secondary's mass is small against the primary's.
// Panics if the two bodies share a position or a mass is not positive.
func LagrangePoints(primary, secondary Point, massPrimary, massSecondary float64) [5]LagrangePoint {
	if massPrimary <= 0 || massSecondary <= 0 {
		panic(fmt.Errorf("masses must be positive (%g, %g)", massPrimary, massSecondary))
	}
	rel := []float64{secondary.X - primary.X, secondary.Y - primary.Y}
	d := norm(rel)
	if floats.EqualWithinAbs(d, 0, 1e-12) {
		panic("primary and secondary share a position")
	}
	û := unit(rel)

	var pts [5]LagrangePoint
	// L1/L2 sit at the Hill-sphere radius inside and outside the
	// secondary's orbit.
	rHill := d * math.Cbrt(massSecondary/(3*massPrimary))
	pts[0] = LagrangePoint{primary.X + û[0]*(d-rHill), primary.Y + û[1]*(d-rHill), L1}
	pts[1] = LagrangePoint{primary.X + û[0]*(d+rHill), primary.Y + û[1]*(d+rHill), L2}
	// L3 is opposite the secondary, slightly inside its orbit.
	r3 := d * (7 * massSecondary) / (12 * massPrimary)
	pts[2] = LagrangePoint{primary.X - û[0]*(d-r3), primary.Y - û[1]*(d-r3), L3}
	// L4/L5 close the two equilateral triangles.
	v4 := rot2d(math.Pi/3, rel)
	v5 := rot2d(-math.Pi/3, rel)
	pts[3] = LagrangePoint{primary.X + v4[0], primary.Y + v4[1], L4}
	pts[4] = LagrangePoint{primary.X + v5[0], primary.Y + v5[1], L5}
	return pts
}
