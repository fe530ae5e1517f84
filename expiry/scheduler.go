// Package expiry realizes Route.Expires (spec §3's "opaque expiration
// event handle") as entries in a ttlcache whose eviction callback enqueues
// an UNREGISTER. The cache is swept explicitly from the Env's own dispatch
// loop rather than ttlcache's built-in janitor goroutine, so expiration
// stays on the RIB's single cooperative thread (spec §5) instead of
// introducing a second one.
package expiry

import (
	"context"
	"strconv"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ndnfwd/ribd/env"
	"github.com/ndnfwd/ribd/rib"
)

// DefaultSweepInterval is how often the cache is checked for expired
// entries when none is given to NewScheduler.
const DefaultSweepInterval = time.Second

type target struct {
	name rib.Name
	key  rib.RouteKey
}

// Scheduler implements rib.ExpirationScheduler over a ttlcache.
type Scheduler struct {
	cache    *ttlcache.Cache[string, target]
	rib      *rib.Rib
	env      *env.Env
	interval time.Duration
}

// NewScheduler returns a Scheduler that unregisters r's routes through env
// when they expire. Call Start to begin sweeping.
func NewScheduler(r *rib.Rib, e *env.Env, sweepInterval time.Duration) *Scheduler {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	s := &Scheduler{
		cache:    ttlcache.New[string, target](),
		rib:      r,
		env:      e,
		interval: sweepInterval,
	}
	s.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, target]) {
		if reason != ttlcache.EvictionReasonExpired {
			return
		}
		// sweep (the only caller of DeleteExpired) always runs on the
		// Env's own goroutine, so this callback does too: calling
		// BeginApplyUpdate directly here is safe, and re-Dispatching it
		// would send on env's dispatch channel from the one goroutine
		// that drains it, deadlocking the loop forever.
		t := item.Value()
		_ = s.rib.BeginApplyUpdate(rib.RibUpdate{
			Action: rib.Unregister,
			Name:   t.name,
			Route:  rib.Route{FaceID: t.key.FaceID, Origin: t.key.Origin},
		}, nil, nil)
	})
	return s
}

// Start runs the first sweep inline and arms every later one through env.
// Start must be called before anything else touches r concurrently (the
// daemon calls it before starting the Env's loop); every sweep after the
// first runs on the Env's own goroutine via AfterFunc, which is what
// keeps DeleteExpired's eviction callback safe to call BeginApplyUpdate
// on directly instead of re-dispatching.
func (s *Scheduler) Start() {
	s.sweep()
}

func (s *Scheduler) sweep() {
	s.cache.DeleteExpired()
	s.env.AfterFunc(s.interval, s.sweep)
}

// Schedule implements rib.ExpirationScheduler.
func (s *Scheduler) Schedule(name rib.Name, key rib.RouteKey, at time.Time) rib.ExpirationHandle {
	k := encodeKey(name, key)
	ttl := time.Until(at)
	if ttl < 0 {
		ttl = 0
	}
	s.cache.Set(k, target{name: name, key: key}, ttl)
	return k
}

// Cancel implements rib.ExpirationScheduler.
func (s *Scheduler) Cancel(h rib.ExpirationHandle) {
	k, ok := h.(string)
	if !ok {
		return
	}
	s.cache.Delete(k)
}

func encodeKey(name rib.Name, key rib.RouteKey) string {
	return name.String() + "|" + strconv.FormatUint(uint64(key.FaceID), 10) + "|" + strconv.Itoa(int(key.Origin))
}
