package solarsystem

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-kit/kit/log"
)

var (
	// ErrInvalidElements is returned when catalog records violate the
	// orbital-element invariants (eccentricity, semi-major axis, orbit graph).
	ErrInvalidElements = errors.New("invalid orbital elements")
	// ErrUnresolved is returned when a query needs a position which has not
	// been computed, instead of answering against a stale or zero position.
	ErrUnresolved = errors.New("unresolved orbit dependency")
)

// System is the initialized catalog: the immutable body table plus the
// display-space state derived from it in one primary-first pass. Derived
// state lives here, keyed by body name, never on the Body records
// themselves, so a catalog slice can seed any number of independent Systems.
//
// True anomalies are seeded directly from each body's catalog mean anomaly
// without solving Kepler's equation, which is only exact for near-circular
// orbits. TODO: Newton iteration on Kepler's equation for eccentric bodies.
type System struct {
	bodies        map[string]Body
	order         []string // breadth-first from the primary
	primary       string
	positions     map[string]Point
	trueAnomalies map[string]float64
	librations    map[string][5]LagrangePoint
	logger        log.Logger
}

// Option configures a System under construction.
type Option func(*System)

// WithLogger sets the construction logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(s *System) { s.logger = l }
}

// NewSystem validates the catalog and initializes every body's true anomaly
// and absolute position, walking the orbit tree breadth-first so a body is
// only placed once the body it orbits has been. The primary lands at the
// display origin. If the configured libration pair is present in the
// catalog, its five libration points are computed as the final step.
func NewSystem(bodies []Body, options ...Option) (*System, error) {
	s := &System{
		bodies:        make(map[string]Body, len(bodies)),
		positions:     make(map[string]Point, len(bodies)),
		trueAnomalies: make(map[string]float64, len(bodies)),
		librations:    make(map[string][5]LagrangePoint),
		logger:        log.NewNopLogger(),
	}
	for _, opt := range options {
		opt(s)
	}
	if err := s.validate(bodies); err != nil {
		return nil, err
	}
	s.initialize(bodies)
	if len(s.order) != len(s.bodies) {
		// Bodies the walk never reached are on an orbit cycle.
		return nil, fmt.Errorf("%w: %d of %d bodies unreachable from %s", ErrInvalidElements, len(s.bodies)-len(s.order), len(s.bodies), s.primary)
	}
	s.logger.Log("stage", "initialized", "bodies", len(s.order), "primary", s.primary)

	cfg := sysConfig()
	if _, ok := s.bodies[cfg.libPrimary]; ok {
		if _, ok := s.bodies[cfg.libSecondary]; ok {
			if _, err := s.ComputeLibrations(cfg.libPrimary, cfg.libSecondary); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// validate fills the body table and rejects any record breaking the
// orbital-element invariants or the rooted-tree shape of the orbit graph.
func (s *System) validate(bodies []Body) error {
	for _, b := range bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body without a name", ErrInvalidElements)
		}
		if _, seen := s.bodies[b.Name]; seen {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalidElements, b.Name)
		}
		if b.Mass <= 0 {
			return fmt.Errorf("%w: %s: mass %g must be positive", ErrInvalidElements, b.Name, b.Mass)
		}
		if b.Orbits == "" {
			if s.primary != "" {
				return fmt.Errorf("%w: both %s and %s claim to be the primary", ErrInvalidElements, s.primary, b.Name)
			}
			s.primary = b.Name
		} else {
			if b.Orbits == b.Name {
				return fmt.Errorf("%w: %s orbits itself", ErrInvalidElements, b.Name)
			}
			if b.SemiMajorAxis <= 0 {
				return fmt.Errorf("%w: %s: semi-major axis %g must be positive", ErrInvalidElements, b.Name, b.SemiMajorAxis)
			}
			if b.Eccentricity < 0 || b.Eccentricity >= 1 {
				return fmt.Errorf("%w: %s: eccentricity %g outside [0,1)", ErrInvalidElements, b.Name, b.Eccentricity)
			}
		}
		s.bodies[b.Name] = b
	}
	if s.primary == "" {
		return fmt.Errorf("%w: no primary body", ErrInvalidElements)
	}
	for _, b := range bodies {
		if b.Orbits == "" {
			continue
		}
		if _, ok := s.bodies[b.Orbits]; !ok {
			return fmt.Errorf("%w: %s orbits unknown body %q", ErrInvalidElements, b.Name, b.Orbits)
		}
	}
	return nil
}

// initialize performs the single primary-first pass: seed the true anomaly,
// then place the body against its parent's already-settled position.
// Siblings keep their catalog order, so initialization is deterministic.
func (s *System) initialize(bodies []Body) {
	children := make(map[string][]string)
	for _, b := range bodies {
		if b.Orbits != "" {
			children[b.Orbits] = append(children[b.Orbits], b.Name)
		}
	}
	s.order = []string{s.primary}
	s.positions[s.primary] = Point{0, 0}
	s.trueAnomalies[s.primary] = 0
	for i := 0; i < len(s.order); i++ {
		for _, name := range children[s.order[i]] {
			b := s.bodies[name]
			ν := math.Mod(b.MeanAnomaly, 360)
			if ν < 0 {
				ν += 360
			}
			pos := Orbit{b, s.positions[b.Orbits]}.PositionForTrueAnomaly(ν)
			s.trueAnomalies[name] = ν
			s.positions[name] = pos
			s.order = append(s.order, name)
			s.logger.Log("body", name, "nu", ν, "x", pos.X, "y", pos.Y)
		}
	}
}

// Primary returns the name of the root body.
func (s *System) Primary() string {
	return s.primary
}

// Bodies returns the catalog in initialization (breadth-first) order. Bodies
// unreachable from the primary never made it past validation.
func (s *System) Bodies() []Body {
	out := make([]Body, len(s.order))
	for i, name := range s.order {
		out[i] = s.bodies[name]
	}
	return out
}

// Body returns the named catalog record.
func (s *System) Body(name string) (Body, bool) {
	b, ok := s.bodies[name]
	return b, ok
}

// Position returns the named body's absolute display-space position.
func (s *System) Position(name string) (Point, error) {
	pos, ok := s.positions[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: no position for %q", ErrUnresolved, name)
	}
	return pos, nil
}

// TrueAnomaly returns the named body's current true anomaly in degrees.
func (s *System) TrueAnomaly(name string) (float64, error) {
	ν, ok := s.trueAnomalies[name]
	if !ok {
		return 0, fmt.Errorf("%w: no true anomaly for %q", ErrUnresolved, name)
	}
	return ν, nil
}

// Orbit returns the named body's orbit bound to its parent's position.
func (s *System) Orbit(name string) (Orbit, error) {
	b, ok := s.bodies[name]
	if !ok {
		return Orbit{}, fmt.Errorf("%w: unknown body %q", ErrUnresolved, name)
	}
	if b.Orbits == "" {
		return Orbit{}, fmt.Errorf("%s is the primary and has no orbit", name)
	}
	focus, err := s.Position(b.Orbits)
	if err != nil {
		return Orbit{}, err
	}
	return Orbit{b, focus}, nil
}

// Ellipse returns the named body's display-space orbit ellipse.
func (s *System) Ellipse(name string) (Ellipse, error) {
	o, err := s.Orbit(name)
	if err != nil {
		return Ellipse{}, err
	}
	return o.Ellipse(), nil
}

// Path samples the named body's orbit path through its current position.
func (s *System) Path(name string, samples int) ([]PathPoint, error) {
	o, err := s.Orbit(name)
	if err != nil {
		return nil, err
	}
	return o.Path(s.trueAnomalies[name], samples), nil
}

// ComputeLibrations computes, caches and returns the five libration points
// of the named pair. The result is keyed by the secondary, matching the
// convention that a planet owns its libration points with respect to its
// star. Both positions must already be resolved.
func (s *System) ComputeLibrations(primary, secondary string) ([5]LagrangePoint, error) {
	p1, err := s.Position(primary)
	if err != nil {
		return [5]LagrangePoint{}, err
	}
	p2, err := s.Position(secondary)
	if err != nil {
		return [5]LagrangePoint{}, err
	}
	pts := LagrangePoints(p1, p2, s.bodies[primary].Mass, s.bodies[secondary].Mass)
	s.librations[secondary] = pts
	s.logger.Log("stage", "librations", "primary", primary, "secondary", secondary)
	return pts, nil
}

// Librations returns the cached libration points owned by the named body,
// if that body has a designated libration partner.
func (s *System) Librations(name string) ([5]LagrangePoint, bool) {
	pts, ok := s.librations[name]
	return pts, ok
}
