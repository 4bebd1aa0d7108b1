package solarsystem

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _sysconfig{}
)

// _sysconfig is a "hidden" struct, just use `sysConfig`
type _sysconfig struct {
	kmPerUnit    float64 // display scale, kilometers per display unit
	pathSamples  int     // default orbit path resolution
	libPrimary   string  // designated libration pair
	libSecondary string
}

// sysConfig returns the solar-system configuration. Every knob has a
// compiled-in default; a conf.toml in the directory named by the
// SOLARSYSTEM_CONFIG environment variable overrides them.
func sysConfig() _sysconfig {
	if cfgLoaded {
		return config
	}
	config = _sysconfig{kmPerUnit: 1e6, pathSamples: 360, libPrimary: "Sun", libSecondary: "Earth"}
	if confPath := os.Getenv("SOLARSYSTEM_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if viper.IsSet("display.km_per_unit") {
			config.kmPerUnit = viper.GetFloat64("display.km_per_unit")
		}
		if viper.IsSet("display.path_samples") {
			config.pathSamples = viper.GetInt("display.path_samples")
		}
		if viper.IsSet("libration.primary") {
			config.libPrimary = viper.GetString("libration.primary")
		}
		if viper.IsSet("libration.secondary") {
			config.libSecondary = viper.GetString("libration.secondary")
		}
		if config.kmPerUnit <= 0 {
			panic(fmt.Errorf("display.km_per_unit must be positive, got %f", config.kmPerUnit))
		}
		if config.pathSamples <= 0 {
			panic(fmt.Errorf("display.path_samples must be positive, got %d", config.pathSamples))
		}
	}
	cfgLoaded = true
	return config
}

// DisplayScale returns the configured display scale in kilometers per
// display unit.
func DisplayScale() float64 {
	return sysConfig().kmPerUnit
}

// DefaultPathSamples returns the configured default orbit path resolution.
func DefaultPathSamples() int {
	return sysConfig().pathSamples
}
