// Package metrics exposes the RIB's internal state as Prometheus
// collectors, observed through the same hooks the readvertise policy
// consumes (spec §6's observer contract) plus periodic polling of the
// queue/in-flight gate. Purely additive: nothing here is consulted by
// routing logic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ndnfwd/ribd/rib"
)

// Collectors bundles the RIB's metric set.
type Collectors struct {
	Entries       prometheus.Gauge
	Routes        prometheus.Gauge
	QueueDepth    prometheus.Gauge
	InFlight      prometheus.Gauge
	FibLatency    prometheus.Histogram
	FibFailures   prometheus.Counter
	RouteInserted prometheus.Counter
	RouteErased   prometheus.Counter
}

// New registers a fresh Collectors set with reg.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribd_entries",
			Help: "Number of entries currently in the RIB's prefix table.",
		}),
		Routes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribd_routes",
			Help: "Total number of own routes across all entries.",
		}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribd_update_queue_depth",
			Help: "Number of update batches waiting to be sent to the FIB updater.",
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribd_fib_update_in_flight",
			Help: "1 if a FIB update call is currently outstanding, else 0.",
		}),
		FibLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ribd_fib_update_latency_seconds",
			Help:    "Round-trip latency of FibUpdater.ComputeAndSendFibUpdates calls.",
			Buckets: prometheus.DefBuckets,
		}),
		FibFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribd_fib_update_failures_total",
			Help: "Total number of FibUpdater calls that failed.",
		}),
		RouteInserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribd_routes_inserted_total",
			Help: "Total number of routes added to the RIB.",
		}),
		RouteErased: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribd_routes_erased_total",
			Help: "Total number of routes removed from the RIB.",
		}),
	}
}

// Attach wires c to r's observer hooks and returns a Sample func the
// daemon should call periodically to refresh the queue/entry gauges,
// since those aren't naturally observer-driven.
func Attach(c *Collectors, r *rib.Rib) (sample func()) {
	r.OnAfterAddRoute(func(rib.RibRouteRef) {
		c.RouteInserted.Inc()
	})
	r.OnBeforeRemoveRoute(func(rib.RibRouteRef) {
		c.RouteErased.Inc()
	})
	return func() {
		c.Entries.Set(float64(r.EntryCount()))
		c.Routes.Set(float64(r.Len()))
		c.QueueDepth.Set(float64(r.QueueDepth()))
		if r.InFlight() {
			c.InFlight.Set(1)
		} else {
			c.InFlight.Set(0)
		}
	}
}
