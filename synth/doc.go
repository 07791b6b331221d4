// Package synth generates a deterministic, seeded catalog of
// contact.Contact values for a walker-style LEO constellation: a fixed
// number of circular orbital planes, each carrying the same number of
// satellites in a ring, plus a set of ground stations.
//
// Determinism is the whole point: two Generator runs built from the
// same Config produce byte-identical catalogs, so a simulation replay
// or a test fixture never depends on wall-clock time or global RNG
// state. All randomness flows through an explicit math/rand/v2 source
// seeded by Config.Seed.
//
// File layout:
//
//	types.go      Config, sentinel errors
//	orbital.go    circular orbital period model
//	generator.go  Generator, contact window construction
package synth
