package solarsystem

import (
	"fmt"
	"math"
	"sort"
)

// Point is an absolute 2-D coordinate pair in display units (kilometers
// divided by the configured scale). The frame is the usual screen frame:
// origin top-left, y increasing downward.
type Point struct {
	X, Y float64
}

// Ellipse is the display-space ellipse traced by an orbit. It is drawn
// around the orbited body's current position, which sits at a focus of the
// ellipse, not at its geometric center.
type Ellipse struct {
	CX, CY, RX, RY float64
}

// PathPoint is one sample of an orbit path: the true anomaly in degrees and
// the absolute display-space coordinates it maps to.
type PathPoint struct {
	Nu, X, Y float64
}

// Orbit binds a body's fixed orbital elements to the display-space position
// of the body it orbits. All geometry queries are pure functions of the
// elements, the focus position and a true anomaly; nothing is cached.
//
// The whole engine is strictly planar and assumes every orbit's major axis
// is aligned with the global x axis (argument of periapsis fixed at zero).
// That is a deliberate constraint, not an omission: generalizing requires
// rotating both Ellipse and PositionForTrueAnomaly by the periapsis argument.
type Orbit struct {
	Body  Body
	Focus Point
}

// SemiParameter returns the semi-parameter p = a(1-e^2) in kilometers.
func (o Orbit) SemiParameter() float64 {
	return o.Body.SemiMajorAxis * (1 - o.Body.Eccentricity*o.Body.Eccentricity)
}

// Apoapsis returns the apoapsis in kilometers.
func (o Orbit) Apoapsis() float64 {
	return o.Body.SemiMajorAxis * (1 + o.Body.Eccentricity)
}

// Periapsis returns the periapsis in kilometers.
func (o Orbit) Periapsis() float64 {
	return o.Body.SemiMajorAxis * (1 - o.Body.Eccentricity)
}

// DistanceToFocus returns the radial distance in kilometers from the orbited
// body to the orbiting body at true anomaly ν (in degrees), via the polar
// form of the conic. With e in [0,1) the denominator is always positive, so
// this is total over any real ν.
func (o Orbit) DistanceToFocus(ν float64) float64 {
	return o.SemiParameter() / (1 + o.Body.Eccentricity*math.Cos(Deg2rad(ν)))
}

// PositionForTrueAnomaly returns the absolute display-space position of the
// body at true anomaly ν (in degrees). The y offset is negated because the
// display frame has y increasing downward while ν increases counterclockwise.
func (o Orbit) PositionForTrueAnomaly(ν float64) Point {
	d := o.DistanceToFocus(ν)
	sν, cν := math.Sincos(Deg2rad(ν))
	scale := sysConfig().kmPerUnit
	return Point{o.Focus.X + d*cν/scale, o.Focus.Y - d*sν/scale}
}

// Ellipse returns the display-space ellipse of this orbit. The center is
// shifted from the focus along the major axis by the linear eccentricity
// c = a·e, so that the orbited body sits at a focus, as the primary does in
// the astronomical convention. An orbit with e = 0 degenerates to a circle
// centered on the orbited body.
func (o Orbit) Ellipse() Ellipse {
	a := o.Body.SemiMajorAxis
	e := o.Body.Eccentricity
	b := a * math.Sqrt(1-e*e)
	scale := sysConfig().kmPerUnit
	return Ellipse{o.Focus.X - a*e/scale, o.Focus.Y, a / scale, b / scale}
}

// Path samples the full orbit: samples evenly spaced true anomalies over
// [0°, 360°), plus one extra sample at the body's own current true anomaly ν
// so the rendered path always passes through the body's exact position. The
// result holds samples+1 points sorted ascending by true anomaly.
// Panics if samples is not positive.
func (o Orbit) Path(ν float64, samples int) []PathPoint {
	if samples <= 0 {
		panic(fmt.Errorf("orbit path needs a positive sample count, got %d", samples))
	}
	path := make([]PathPoint, samples+1)
	step := 360.0 / float64(samples)
	for i := 0; i < samples; i++ {
		angle := float64(i) * step
		pt := o.PositionForTrueAnomaly(angle)
		path[i] = PathPoint{angle, pt.X, pt.Y}
	}
	// Exact current position; ν may fall between two regular samples.
	cur := o.PositionForTrueAnomaly(ν)
	ν = math.Mod(ν, 360)
	if ν < 0 {
		ν += 360
	}
	path[samples] = PathPoint{ν, cur.X, cur.Y}
	sort.Slice(path, func(i, j int) bool { return path[i].Nu < path[j].Nu })
	return path
}
