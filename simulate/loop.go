package simulate

import (
	"context"
	"strconv"
	"time"

	"github.com/contactrouting/cgr/contact"
	"github.com/contactrouting/cgr/internal/xlog"
	"github.com/contactrouting/cgr/synth"
)

// Loop drives a live routing simulation: each Step re-derives the
// active contact set from its generator's catalog (orbital
// periodization lives in synth.Generator, which already expresses a
// contact's recurring windows; Loop's job is to apply the current
// EWMA penalty on top before every search) and runs a single routing
// query against it.
type Loop struct {
	catalog []contact.Contact
	tracker *PenaltyTracker
	metrics *Metrics
	log     *xlog.Logger
}

// NewLoop builds a Loop over gen's full contact catalog, computed once
// at construction: the catalog itself is a fixed schedule, only its
// per-contact penalty changes between ticks.
func NewLoop(gen *synth.Generator, tracker *PenaltyTracker, metrics *Metrics, log *xlog.Logger) *Loop {
	return &Loop{
		catalog: gen.Generate(),
		tracker: tracker,
		metrics: metrics,
		log:     log,
	}
}

// Step runs a single routing query against the penalty-adjusted
// catalog and records the outcome to metrics.
func (l *Loop) Step(q contact.Query) contact.Route {
	active := l.tracker.Apply(l.catalog)
	idx := contact.BuildIndex(active)

	l.metrics.ContactsConsidered.Add(float64(len(active)))

	r := contact.BestRoute(active, idx, q)
	if r.Found {
		l.metrics.RoutesFound.Inc()
		if l.log != nil {
			l.log.Infof("route found: hops=%d eta=%f", r.Hops, r.ETA)
		}
	} else {
		l.metrics.RoutesFailed.Inc()
		if l.log != nil {
			l.log.Warnf("no route found for query src=%d dst=%d t0=%f", q.Src, q.Dst, q.T0)
		}
	}
	return r
}

// RecordOutcome folds a simulated delivery outcome for contactID into
// the penalty tracker and republishes its current gauge value.
func (l *Loop) RecordOutcome(contactID int, success bool) {
	l.tracker.Observe(contactID, success)
	l.metrics.PenaltyCurrent.WithLabelValues(strconv.Itoa(contactID)).Set(l.tracker.Penalty(contactID))
}

// Run advances q.T0 by interval*rateMultiplier seconds of simulated
// time on every tick of a real-time ticker paced at interval, calling
// Step after each advance, until ctx is canceled. rateMultiplier lets
// a caller compress a multi-orbit simulation into a short wall-clock
// run; 1.0 means simulated time tracks wall-clock time exactly.
func (l *Loop) Run(ctx context.Context, q contact.Query, interval time.Duration, rateMultiplier float64) error {
	if rateMultiplier <= 0 {
		rateMultiplier = 1
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	simTime := q.T0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			simTime += interval.Seconds() * rateMultiplier
			q.T0 = simTime
			l.Step(q)
		}
	}
}
