package synth_test

import (
	"testing"

	"github.com/contactrouting/cgr/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_RejectsInvalidTopology(t *testing.T) {
	cases := []synth.Config{
		{Planes: 0, SatsPerPlane: 4, Stations: 2},
		{Planes: 2, SatsPerPlane: 0, Stations: 2},
		{Planes: 2, SatsPerPlane: 4, Stations: 0},
		{Planes: 2, SatsPerPlane: 4, Stations: 2, AltitudeKM: -1},
	}
	for _, cfg := range cases {
		_, err := synth.NewGenerator(cfg)
		assert.ErrorIs(t, err, synth.ErrInvalidTopology)
	}
}

func TestGenerate_ProducesNonEmptyCatalog(t *testing.T) {
	g, err := synth.NewGenerator(synth.Config{Planes: 2, SatsPerPlane: 4, Stations: 2, Seed: 7})
	require.NoError(t, err)

	cs := g.Generate()
	assert.NotEmpty(t, cs)
}

func TestGenerate_DeterministicAcrossIdenticalConfig(t *testing.T) {
	cfg := synth.Config{Planes: 3, SatsPerPlane: 6, Stations: 4, Seed: 42}

	g1, err := synth.NewGenerator(cfg)
	require.NoError(t, err)
	g2, err := synth.NewGenerator(cfg)
	require.NoError(t, err)

	assert.Equal(t, g1.Generate(), g2.Generate())
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	g1, err := synth.NewGenerator(synth.Config{Planes: 3, SatsPerPlane: 6, Stations: 4, Seed: 1})
	require.NoError(t, err)
	g2, err := synth.NewGenerator(synth.Config{Planes: 3, SatsPerPlane: 6, Stations: 4, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, g1.Generate(), g2.Generate())
}

func TestGenerate_SingleSatellitePlaneHasNoSelfLoopISL(t *testing.T) {
	g, err := synth.NewGenerator(synth.Config{Planes: 1, SatsPerPlane: 1, Stations: 1, Seed: 1})
	require.NoError(t, err)

	for _, c := range g.Generate() {
		assert.NotEqual(t, c.From, c.To)
	}
}

func TestGenerate_EveryContactHasPositiveWindowAndRate(t *testing.T) {
	g, err := synth.NewGenerator(synth.Config{Planes: 2, SatsPerPlane: 3, Stations: 2, Seed: 99})
	require.NoError(t, err)

	for _, c := range g.Generate() {
		assert.Greater(t, c.TEnd, c.TStart)
		assert.Greater(t, c.RateBPS, 0.0)
		assert.GreaterOrEqual(t, c.OWLT, 0.0)
	}
}
