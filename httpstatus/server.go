// Package httpstatus exposes a read-only view of the RIB over HTTP: a
// JSON /status dump and a Prometheus /metrics endpoint. Neither handler
// ever calls a mutating Rib method — this is observability, not the
// management-command surface (spec §6), which stays external.
package httpstatus

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ndnfwd/ribd/env"
	"github.com/ndnfwd/ribd/rib"
)

// Status is the JSON shape returned by GET /status.
type Status struct {
	Entries    int            `json:"entries"`
	Routes     int            `json:"routes"`
	QueueDepth int            `json:"queueDepth"`
	InFlight   bool           `json:"inFlight"`
	Faces      map[string]int `json:"faces"`
}

// NewRouter builds a chi router serving /status and /metrics. Reads of r
// are dispatched through e so they run on the RIB's own goroutine even
// though HTTP handlers run on their own.
func NewRouter(e *env.Env, r *rib.Rib, reg *prometheus.Registry) http.Handler {
	mux := chi.NewRouter()
	mux.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		v, err := e.DispatchWait(func() (any, error) {
			return buildStatus(r), nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

func buildStatus(r *rib.Rib) Status {
	faces := make(map[string]int)
	for _, f := range r.FaceIDs() {
		count := 0
		r.Entries(func(e *rib.RibEntry) bool {
			if e.HasFaceID(f) {
				count++
			}
			return true
		})
		faces[strconv.FormatUint(uint64(f), 10)] = count
	}
	return Status{
		Entries:    r.EntryCount(),
		Routes:     r.Len(),
		QueueDepth: r.QueueDepth(),
		InFlight:   r.InFlight(),
		Faces:      faces,
	}
}
