package synth

import (
	"math"
	"math/rand/v2"

	"github.com/contactrouting/cgr/contact"
)

// speedOfLightKMPerS is used to convert link ranges into one-way light
// time.
const speedOfLightKMPerS = 299792.458

// islRateBPS and gsRateBPS are nominal link rates for inter-satellite
// and ground-station links respectively; ISL crosslinks run faster than
// the ground uplink/downlink in a typical walker constellation.
const (
	islRateBPS = 10e6
	gsRateBPS  = 2e6
)

// visibilityProbability is the per-(station,satellite) chance that a
// station sees a given satellite at all during the modeled window,
// standing in for the orbital-geometry calculation a full constellation
// planner would perform.
const visibilityProbability = 0.3

// Generator produces a deterministic contact catalog from a Config. The
// zero value is not usable; construct with NewGenerator.
type Generator struct {
	cfg Config
}

// NewGenerator validates cfg and returns a Generator over it.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg.withDefaults()}, nil
}

// Generate returns the full contact catalog for g's configuration.
// Satellite nodes are numbered 0..planes*satsPerPlane-1 in
// plane-major, ring order; ground-station nodes follow, numbered
// planes*satsPerPlane..+stations-1. Two runs built from an identical
// Config always produce an identical, identically-ordered catalog.
func (g *Generator) Generate() []contact.Contact {
	cfg := g.cfg
	period := orbitalPeriodSeconds(cfg.AltitudeKM)
	numSats := cfg.Planes * cfg.SatsPerPlane

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))

	var out []contact.Contact
	nextID := 1

	ringSeparationKM := 2 * math.Pi * (earthRadiusKM + cfg.AltitudeKM) / float64(cfg.SatsPerPlane)
	islOWLT := ringSeparationKM / speedOfLightKMPerS
	islWindow := period * 0.08

	for p := 0; p < cfg.Planes; p++ {
		for s := 0; s < cfg.SatsPerPlane; s++ {
			from := p*cfg.SatsPerPlane + s
			to := p*cfg.SatsPerPlane + (s+1)%cfg.SatsPerPlane
			if from == to {
				continue // single-satellite plane has no ring neighbor
			}
			for k := 0; k < cfg.OrbitsModeled; k++ {
				start := float64(k)*period + rng.Float64()*period*0.01
				end := start + islWindow
				out = append(out,
					islContact(nextID, from, to, start, end, islOWLT),
					islContact(nextID+1, to, from, start, end, islOWLT))
				nextID += 2
			}
		}
	}

	gsOWLT := cfg.AltitudeKM / speedOfLightKMPerS
	gsWindow := period * 0.05

	for st := 0; st < cfg.Stations; st++ {
		stNode := numSats + st
		for sat := 0; sat < numSats; sat++ {
			if rng.Float64() >= visibilityProbability {
				continue
			}
			passes := 1 + rng.IntN(cfg.OrbitsModeled)
			for k := 0; k < passes; k++ {
				start := float64(k)*period + rng.Float64()*period*0.02
				end := start + gsWindow
				out = append(out,
					gsContact(nextID, sat, stNode, start, end, gsOWLT),
					gsContact(nextID+1, stNode, sat, start, end, gsOWLT))
				nextID += 2
			}
		}
	}

	return out
}

func islContact(id, from, to int, start, end, owlt float64) contact.Contact {
	return contact.Contact{
		ID: id, From: from, To: to,
		TStart: start, TEnd: end, OWLT: owlt,
		RateBPS:       islRateBPS,
		ResidualBytes: islRateBPS * (end - start),
	}
}

func gsContact(id, from, to int, start, end, owlt float64) contact.Contact {
	return contact.Contact{
		ID: id, From: from, To: to,
		TStart: start, TEnd: end, OWLT: owlt,
		RateBPS:       gsRateBPS,
		ResidualBytes: gsRateBPS * (end - start),
	}
}
