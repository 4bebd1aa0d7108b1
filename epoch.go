package solarsystem

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// J2000 is the reference epoch of the catalog mean anomalies.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// OrbitalPeriod returns the period of the body's orbit around its parent.
func OrbitalPeriod(b, parent Body) time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	seconds := periodSeconds(b, parent)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

func periodSeconds(b, parent Body) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(b.SemiMajorAxis, 3)/parent.GM())
}

// MeanAnomalyAt returns the body's mean anomaly in degrees at the given
// epoch, advanced from its J2000 catalog value at the orbit's mean motion.
func MeanAnomalyAt(b, parent Body, dt time.Time) float64 {
	days := julian.TimeToJD(dt) - julian.TimeToJD(J2000)
	m := b.MeanAnomaly + 360*days*86400/periodSeconds(b, parent)
	m = math.Mod(m, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// SystemAt initializes a fresh System with every orbiting body's mean
// anomaly advanced to the given epoch. The catalog records themselves are
// copied, never touched.
func SystemAt(bodies []Body, dt time.Time, options ...Option) (*System, error) {
	table := make(map[string]Body, len(bodies))
	for _, b := range bodies {
		table[b.Name] = b
	}
	advanced := make([]Body, len(bodies))
	for i, b := range bodies {
		// Leave malformed records alone; NewSystem rejects them with a
		// proper error instead of a NaN period here.
		if parent, ok := table[b.Orbits]; ok && b.Orbits != "" && b.SemiMajorAxis > 0 && parent.Mass > 0 {
			b.MeanAnomaly = MeanAnomalyAt(b, parent, dt)
		}
		advanced[i] = b
	}
	return NewSystem(advanced, options...)
}
