package simulate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instrumentation for a live Loop: one
// field per series, all constructed once in NewMetrics under a shared
// namespace/subsystem.
//
// NewMetrics takes an explicit *prometheus.Registry rather than
// registering against the global default, so multiple Loop instances
// (and tests) never collide registering the same metric names against
// the default registerer.
type Metrics struct {
	ContactsConsidered prometheus.Counter
	RoutesFound        prometheus.Counter
	RoutesFailed       prometheus.Counter
	PenaltyCurrent     *prometheus.GaugeVec
}

// NewMetrics registers and returns a fresh Metrics against reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ContactsConsidered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cgr",
			Subsystem: "simulate",
			Name:      "contacts_considered_total",
			Help:      "Total contacts present in the active window set across all ticks.",
		}),
		RoutesFound: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cgr",
			Subsystem: "simulate",
			Name:      "routes_found_total",
			Help:      "Total ticks whose routing query found a route.",
		}),
		RoutesFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cgr",
			Subsystem: "simulate",
			Name:      "routes_failed_total",
			Help:      "Total ticks whose routing query found no route.",
		}),
		PenaltyCurrent: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cgr",
			Subsystem: "simulate",
			Name:      "contact_penalty_current",
			Help:      "Current EWMA failure penalty per contact, in [0, 1].",
		}, []string{"contact_id"}),
	}
}
