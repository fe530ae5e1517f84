package rib

// RibRouteRef is a reference to a route at a particular position within an
// entry's own route list. It is valid only for the duration of the
// observer callback it was handed to.
type RibRouteRef struct {
	Entry *RibEntry
	Index int
}

// Route dereferences the ref to the route it currently points at.
func (r RibRouteRef) Route() Route {
	return r.Entry.routes[r.Index]
}

type observers struct {
	afterInsertEntry  []func(Name)
	afterAddRoute     []func(RibRouteRef)
	beforeRemoveRoute []func(RibRouteRef)
	afterEraseEntry   []func(Name)
}

// OnAfterInsertEntry registers a callback fired after a new RibEntry is
// created, before its first route is added.
func (r *Rib) OnAfterInsertEntry(fn func(Name)) {
	r.obs.afterInsertEntry = append(r.obs.afterInsertEntry, fn)
}

// OnAfterAddRoute registers a callback fired after a route is added to the
// table — this is the hook the readvertise policy classifies new routes
// from.
func (r *Rib) OnAfterAddRoute(fn func(RibRouteRef)) {
	r.obs.afterAddRoute = append(r.obs.afterAddRoute, fn)
}

// OnBeforeRemoveRoute registers a callback fired just before a route is
// removed from the table, while the reference is still valid.
func (r *Rib) OnBeforeRemoveRoute(fn func(RibRouteRef)) {
	r.obs.beforeRemoveRoute = append(r.obs.beforeRemoveRoute, fn)
}

// OnAfterEraseEntry registers a callback fired after an entry with no
// remaining routes is removed from the table.
func (r *Rib) OnAfterEraseEntry(fn func(Name)) {
	r.obs.afterEraseEntry = append(r.obs.afterEraseEntry, fn)
}

func (r *Rib) fireAfterInsertEntry(n Name) {
	for _, fn := range r.obs.afterInsertEntry {
		fn(n)
	}
}

func (r *Rib) fireAfterAddRoute(ref RibRouteRef) {
	for _, fn := range r.obs.afterAddRoute {
		fn(ref)
	}
}

func (r *Rib) fireBeforeRemoveRoute(ref RibRouteRef) {
	for _, fn := range r.obs.beforeRemoveRoute {
		fn(ref)
	}
}

func (r *Rib) fireAfterEraseEntry(n Name) {
	for _, fn := range r.obs.afterEraseEntry {
		fn(n)
	}
}
