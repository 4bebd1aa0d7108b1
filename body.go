package solarsystem

import "fmt"

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// gravConst is the gravitational constant in km^3/(kg.s^2).
	gravConst = 6.67430e-20
)

// Body defines one celestial body of the catalog via its fixed orbital
// elements. Records are immutable after construction: positions and true
// anomalies live on the System which owns the catalog, never on the Body.
type Body struct {
	Name          string
	Mass          float64 // kg
	SemiMajorAxis float64 // km; unused for the primary
	Eccentricity  float64 // [0,1), closed orbits only
	MeanAnomaly   float64 // degrees at the J2000 epoch
	Orbits        string  // name of the orbited body; empty only for the primary
}

// GM returns the standard gravitational parameter μ of this body in km^3/s^2.
func (b Body) GM() float64 {
	return gravConst * b.Mass
}

// String implements the Stringer interface.
func (b Body) String() string {
	if b.Orbits == "" {
		return b.Name + " body (primary)"
	}
	return fmt.Sprintf("%s body (orbiting %s)", b.Name, b.Orbits)
}

// Equals returns whether the provided body is the same.
func (b Body) Equals(o Body) bool {
	return b.Name == o.Name && b.Mass == o.Mass && b.SemiMajorAxis == o.SemiMajorAxis && b.Eccentricity == o.Eccentricity && b.Orbits == o.Orbits
}

/* Definitions, J2000 elements. */

// Sun is our closest star.
var Sun = Body{"Sun", 1.989e30, 0, 0, 0, ""}

// Mercury is the smallest one.
var Mercury = Body{"Mercury", 3.3011e23, 5.7909050e7, 0.205630, 174.796, "Sun"}

// Venus is poisonous.
var Venus = Body{"Venus", 4.8675e24, 1.08209475e8, 0.006772, 50.115, "Sun"}

// Earth is home.
var Earth = Body{"Earth", 5.972e24, 1.49598023e8, 0.0167086, 358.617, "Sun"}

// Moon is the only one we've walked on.
var Moon = Body{"Moon", 7.342e22, 3.84399e5, 0.0549, 135.27, "Earth"}

// Mars is the vacation place.
var Mars = Body{"Mars", 6.4171e23, 2.27939366e8, 0.0934, 19.412, "Sun"}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 1.8982e27, 7.78570e8, 0.0489, 20.020, "Sun"}

// Saturn floats and that's really cool.
var Saturn = Body{"Saturn", 5.6834e26, 1.433530e9, 0.0565, 317.020, "Sun"}

// Uranus is no joke.
var Uranus = Body{"Uranus", 8.6810e25, 2.875040e9, 0.046381, 142.238, "Sun"}

// Neptune is far.
var Neptune = Body{"Neptune", 1.02413e26, 4.500000e9, 0.009456, 256.228, "Sun"}

// Pluto is not a planet and had that down ranking coming. It should have stayed in its lane.
var Pluto = Body{"Pluto", 1.303e22, 5.906380e9, 0.2488, 14.53, "Sun"}

// SolarSystem returns the built-in catalog, primary first.
func SolarSystem() []Body {
	return []Body{Sun, Mercury, Venus, Earth, Moon, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}
