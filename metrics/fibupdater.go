package metrics

import (
	"time"

	"github.com/ndnfwd/ribd/rib"
)

// InstrumentedFibUpdater wraps a rib.FibUpdater to record call latency and
// failure counts, without changing its behavior.
type InstrumentedFibUpdater struct {
	Next       rib.FibUpdater
	Collectors *Collectors
}

// ComputeAndSendFibUpdates implements rib.FibUpdater.
func (f *InstrumentedFibUpdater) ComputeAndSendFibUpdates(batch rib.RibUpdateBatch, onSuccess func([]rib.RibUpdate), onFailure func(code uint32, message string)) {
	start := time.Now()
	f.Next.ComputeAndSendFibUpdates(batch,
		func(delta []rib.RibUpdate) {
			f.Collectors.FibLatency.Observe(time.Since(start).Seconds())
			onSuccess(delta)
		},
		func(code uint32, message string) {
			f.Collectors.FibLatency.Observe(time.Since(start).Seconds())
			f.Collectors.FibFailures.Inc()
			onFailure(code, message)
		},
	)
}
