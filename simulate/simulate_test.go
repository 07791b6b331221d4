package simulate_test

import (
	"testing"

	"github.com/contactrouting/cgr/contact"
	"github.com/contactrouting/cgr/simulate"
	"github.com/contactrouting/cgr/synth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenaltyTracker_UnobservedContactHasZeroPenalty(t *testing.T) {
	tr := simulate.NewPenaltyTracker(0.3)
	assert.Equal(t, 0.0, tr.Penalty(42))
}

func TestPenaltyTracker_RepeatedFailuresMonotonicallyIncreasePenalty(t *testing.T) {
	tr := simulate.NewPenaltyTracker(0.3)

	prev := tr.Penalty(1)
	for i := 0; i < 10; i++ {
		tr.Observe(1, false)
		cur := tr.Penalty(1)
		assert.GreaterOrEqual(t, cur, prev, "penalty must never decrease on a failure")
		prev = cur
	}
	assert.Greater(t, prev, 0.9)
}

func TestPenaltyTracker_SuccessDecreasesPenalty(t *testing.T) {
	tr := simulate.NewPenaltyTracker(0.3)
	for i := 0; i < 5; i++ {
		tr.Observe(1, false)
	}
	before := tr.Penalty(1)
	tr.Observe(1, true)
	assert.Less(t, tr.Penalty(1), before)
}

func TestPenaltyTracker_ApplyScalesRateWithoutMutatingInput(t *testing.T) {
	tr := simulate.NewPenaltyTracker(0.5)
	tr.Observe(1, false)

	cs := []contact.Contact{{ID: 1, RateBPS: 1000}, {ID: 2, RateBPS: 2000}}
	out := tr.Apply(cs)

	assert.Equal(t, 1000.0, cs[0].RateBPS, "input must not be mutated")
	assert.Less(t, out[0].RateBPS, 1000.0)
	assert.Equal(t, 2000.0, out[1].RateBPS, "unobserved contact is unaffected")
}

func TestLoop_StepFindsRouteOnFreshCatalog(t *testing.T) {
	gen, err := synth.NewGenerator(synth.Config{Planes: 1, SatsPerPlane: 4, Stations: 1, Seed: 3})
	require.NoError(t, err)

	tracker := simulate.NewPenaltyTracker(0.3)
	metrics := simulate.NewMetrics(prometheus.NewRegistry())
	loop := simulate.NewLoop(gen, tracker, metrics, nil)

	// 0 and 1 are adjacent satellites in the single plane's ring, so a
	// direct ISL route exists starting at t=0.
	r := loop.Step(contact.Query{Src: 0, Dst: 1, T0: 0, BundleBytes: 1000})
	assert.True(t, r.Found)
}

func TestLoop_RecordOutcomeIsReflectedInSubsequentStep(t *testing.T) {
	gen, err := synth.NewGenerator(synth.Config{Planes: 1, SatsPerPlane: 4, Stations: 1, Seed: 3})
	require.NoError(t, err)

	tracker := simulate.NewPenaltyTracker(0.9)
	metrics := simulate.NewMetrics(prometheus.NewRegistry())
	loop := simulate.NewLoop(gen, tracker, metrics, nil)

	before := loop.Step(contact.Query{Src: 0, Dst: 1, T0: 0, BundleBytes: 1000})
	require.True(t, before.Found)

	for _, id := range before.ContactIDs {
		loop.RecordOutcome(id, false)
	}
	assert.Greater(t, tracker.Penalty(before.ContactIDs[0]), 0.0)
}
