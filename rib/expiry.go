package rib

import "time"

// ExpirationHandle is the opaque handle referencing a scheduled expiration
// callback (spec §3 Route.expirationEvent). Its concrete type is owned by
// whichever ExpirationScheduler issued it.
type ExpirationHandle any

// ExpirationScheduler is the injected capability that turns a route's
// Expires timestamp into a future UNREGISTER. Like FibUpdater, it is
// consumed, not constructed, by the Rib. A nil scheduler is valid: routes
// with an expiration simply never time out on their own, which is
// sufficient for tests that only exercise explicit UNREGISTERs.
type ExpirationScheduler interface {
	// Schedule arranges for the scheduler to call back into the Rib
	// (typically via BeginApplyUpdate with an UNREGISTER) at the given
	// time for the given route, and returns a handle that can later be
	// cancelled.
	Schedule(name Name, key RouteKey, at time.Time) ExpirationHandle
	// Cancel cancels a previously scheduled callback. Cancelling a handle
	// that already fired or was already cancelled is a no-op.
	Cancel(h ExpirationHandle)
}

// SetExpirationScheduler installs the scheduler used to realize Route.Expires.
// Routes committed before a scheduler is installed get no expiration event.
func (r *Rib) SetExpirationScheduler(s ExpirationScheduler) {
	r.expiry = s
}

func (r *Rib) cancelExpiry(route Route) {
	if r.expiry == nil || route.expHandle == nil {
		return
	}
	r.expiry.Cancel(route.expHandle)
}

func (r *Rib) scheduleExpiry(name Name, route *Route) {
	if r.expiry == nil || route.Expires == nil {
		return
	}
	route.expHandle = r.expiry.Schedule(name, route.Key(), *route.Expires)
}
