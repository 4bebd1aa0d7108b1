package solarsystem

import (
	"sort"
	"testing"

	"github.com/gonum/floats"
)

func TestDistanceToFocusApsides(t *testing.T) {
	for _, body := range []Body{Mercury, Earth, Moon, Pluto} {
		o := Orbit{body, Point{}}
		a, e := body.SemiMajorAxis, body.Eccentricity
		if peri := o.DistanceToFocus(0); !floats.EqualWithinRel(peri, a*(1-e), 1e-12) {
			t.Fatalf("%s: periapsis %f != %f", body.Name, peri, a*(1-e))
		}
		if apo := o.DistanceToFocus(180); !floats.EqualWithinRel(apo, a*(1+e), 1e-12) {
			t.Fatalf("%s: apoapsis %f != %f", body.Name, apo, a*(1+e))
		}
		if !floats.EqualWithinRel(o.Periapsis(), o.DistanceToFocus(0), 1e-12) {
			t.Fatalf("%s: Periapsis disagrees with the conic at 0°", body.Name)
		}
		if !floats.EqualWithinRel(o.Apoapsis(), o.DistanceToFocus(180), 1e-12) {
			t.Fatalf("%s: Apoapsis disagrees with the conic at 180°", body.Name)
		}
	}
}

func TestDistanceToFocusCircular(t *testing.T) {
	circ := Body{"circ", 5.972e24, 1.496e8, 0, 0, "star"}
	o := Orbit{circ, Point{}}
	for _, ν := range []float64{0, 90, 180, 270} {
		if d := o.DistanceToFocus(ν); !floats.EqualWithinRel(d, 1.496e8, 1e-12) {
			t.Fatalf("circular orbit distance at ν=%f°: %f", ν, d)
		}
	}
	// Inputs beyond a full revolution are legal.
	if !floats.EqualWithinRel(o.DistanceToFocus(360+90), o.DistanceToFocus(90), 1e-12) {
		t.Fatal("ν beyond 360° mishandled")
	}
}

func TestPositionForTrueAnomaly(t *testing.T) {
	scale := DisplayScale()
	focus := Point{12.5, -3}
	o := Orbit{Earth, focus}
	// Periapsis lies along +x from the focus.
	p0 := o.PositionForTrueAnomaly(0)
	if !pointsEqual(p0, Point{focus.X + o.Periapsis()/scale, focus.Y}) {
		t.Fatalf("position at periapsis: %+v", p0)
	}
	// At ν=90° the y offset must point up the screen (negative y).
	p90 := o.PositionForTrueAnomaly(90)
	if p90.Y >= focus.Y {
		t.Fatalf("y offset not inverted for the display frame: %+v", p90)
	}
	if !floats.EqualWithinAbs(p90.X, focus.X, 1e-9) {
		t.Fatalf("x offset at ν=90° should vanish: %+v", p90)
	}
}

func TestEllipseCircularDegeneracy(t *testing.T) {
	circ := Body{"circ", 5.972e24, 1.496e8, 0, 0, "star"}
	focus := Point{4, 7}
	ell := Orbit{circ, focus}.Ellipse()
	r := 1.496e8 / DisplayScale()
	if !floats.EqualWithinRel(ell.RX, r, 1e-12) || !floats.EqualWithinRel(ell.RY, r, 1e-12) {
		t.Fatalf("circular orbit radii: %+v", ell)
	}
	if ell.CX != focus.X || ell.CY != focus.Y {
		t.Fatalf("circular orbit not centered on the orbited body: %+v", ell)
	}
}

func TestEllipseFocusOffset(t *testing.T) {
	scale := DisplayScale()
	focus := Point{0, 0}
	ell := Orbit{Earth, focus}.Ellipse()
	a, e := Earth.SemiMajorAxis, Earth.Eccentricity
	if !floats.EqualWithinRel(focus.X-ell.CX, a*e/scale, 1e-12) {
		t.Fatalf("center not offset by the linear eccentricity: %+v", ell)
	}
	if ell.CY != focus.Y {
		t.Fatal("major axis must stay x-aligned")
	}
	// rx² = ry² + c², the defining relation of the foci.
	c := a * e / scale
	if !floats.EqualWithinRel(ell.RX*ell.RX, ell.RY*ell.RY+c*c, 1e-12) {
		t.Fatalf("focal relation broken: %+v", ell)
	}
}

func TestPath(t *testing.T) {
	o := Orbit{Earth, Point{}}
	ν := 358.617
	for _, n := range []int{36, 37, 360} {
		path := o.Path(ν, n)
		if len(path) != n+1 {
			t.Fatalf("Path(%d) returned %d points", n, len(path))
		}
		if !sort.SliceIsSorted(path, func(i, j int) bool { return path[i].Nu < path[j].Nu }) {
			t.Fatalf("Path(%d) not sorted by true anomaly", n)
		}
		cur := o.PositionForTrueAnomaly(ν)
		found := false
		for _, pt := range path {
			if pt.Nu == ν && pointsEqual(Point{pt.X, pt.Y}, cur) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Path(%d) misses the body's exact position", n)
		}
	}
}

func TestPathBadSampleCount(t *testing.T) {
	o := Orbit{Earth, Point{}}
	assertPanic(t, func() { o.Path(0, 0) })
	assertPanic(t, func() { o.Path(0, -12) })
}
