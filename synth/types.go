package synth

import "errors"

// ErrInvalidTopology indicates a Config whose Planes, SatsPerPlane, or
// Stations is non-positive, or whose AltitudeKM is negative.
var ErrInvalidTopology = errors.New("synth: invalid topology")

// Config describes the constellation a Generator builds.
type Config struct {
	Planes       int
	SatsPerPlane int
	Stations     int
	Seed         int64

	// AltitudeKM is the circular orbit altitude above Earth's mean
	// radius, used by the orbital period model. Zero selects a default
	// 550km LEO shell.
	AltitudeKM float64

	// OrbitsModeled bounds how many orbital periods of contact windows
	// the generator emits per link; it is not "simulation duration",
	// just a cutoff so the catalog stays finite. Zero selects 3.
	OrbitsModeled int
}

func (c Config) validate() error {
	if c.Planes <= 0 || c.SatsPerPlane <= 0 || c.Stations <= 0 {
		return ErrInvalidTopology
	}
	if c.AltitudeKM < 0 {
		return ErrInvalidTopology
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.AltitudeKM == 0 {
		c.AltitudeKM = 550
	}
	if c.OrbitsModeled == 0 {
		c.OrbitsModeled = 3
	}
	return c
}
