package main

import (
	"flag"
	"os"
	"strings"
	"time"

	solarsystem "github.com/JackyCooper0127/solar-system"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and dumps the
// initialized system: positions, orbit geometry and libration points.

const (
	defaultScenario = "~~unset~~"
	dateFormat      = "2006-01-02 15:04:05"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file (optional, built-in catalog at J2000 otherwise)")
	flag.BoolVar(&verbose, "verbose", false, "also log every body during initialization")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	epoch := solarsystem.J2000
	pair := [2]string{"", ""}
	if scenario != defaultScenario {
		scenario = strings.Replace(scenario, ".toml", "", 1)
		viper.AddConfigPath(".")
		viper.SetConfigName(scenario)
		if err := viper.ReadInConfig(); err != nil {
			logger.Log("error", err, "scenario", scenario)
			os.Exit(1)
		}
		if viper.IsSet("catalog.epoch") {
			dt, err := time.Parse(dateFormat, viper.GetString("catalog.epoch"))
			if err != nil {
				logger.Log("error", err, "key", "catalog.epoch")
				os.Exit(1)
			}
			epoch = dt
		}
		pair[0] = viper.GetString("libration.primary")
		pair[1] = viper.GetString("libration.secondary")
	}

	var opts []solarsystem.Option
	if verbose {
		opts = append(opts, solarsystem.WithLogger(logger))
	}
	sys, err := solarsystem.SystemAt(solarsystem.SolarSystem(), epoch, opts...)
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}
	if pair[0] != "" && pair[1] != "" {
		if _, err := sys.ComputeLibrations(pair[0], pair[1]); err != nil {
			logger.Log("error", err)
			os.Exit(1)
		}
	}

	for _, b := range sys.Bodies() {
		pos, _ := sys.Position(b.Name)
		if b.Orbits == "" {
			logger.Log("body", b.Name, "x", pos.X, "y", pos.Y)
			continue
		}
		orbit, err := sys.Orbit(b.Name)
		if err != nil {
			logger.Log("error", err, "body", b.Name)
			os.Exit(1)
		}
		ell := orbit.Ellipse()
		path, err := sys.Path(b.Name, solarsystem.DefaultPathSamples())
		if err != nil {
			logger.Log("error", err, "body", b.Name)
			os.Exit(1)
		}
		logger.Log("body", b.Name, "x", pos.X, "y", pos.Y,
			"periapsis", orbit.Periapsis(), "apoapsis", orbit.Apoapsis(),
			"rx", ell.RX, "ry", ell.RY, "samples", len(path))
		if pts, ok := sys.Librations(b.Name); ok {
			for _, pt := range pts {
				logger.Log("body", b.Name, "libration", pt.Kind, "x", pt.X, "y", pt.Y)
			}
		}
	}
}
