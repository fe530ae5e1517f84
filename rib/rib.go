package rib

import "slices"

// Rib is the prefix-keyed container of entries plus the update queue that
// serializes every mutation through an injected FibUpdater (spec §4.1).
// Every exported method must be called from a single goroutine; the Rib
// itself never spawns one (spec §5).
type Rib struct {
	tbl   *table
	faces *faceIndex
	nItems int

	queue   []updateQueueItem
	inFlight bool

	fibUpdater    FibUpdater
	expiry        ExpirationScheduler
	maxQueueDepth int // 0 = unbounded

	obs observers
}

// New returns an empty Rib. A FibUpdater must be installed with
// SetFibUpdater before any update is applied.
func New() *Rib {
	return &Rib{
		tbl:   newTable(),
		faces: newFaceIndex(),
	}
}

// SetFibUpdater installs the capability that computes and sends FIB
// updates. The Rib never constructs its own updater (spec §9).
func (r *Rib) SetFibUpdater(u FibUpdater) {
	r.fibUpdater = u
}

// SetMaxQueueDepth bounds the update queue. A depth of 0 (the default)
// leaves it unbounded (spec §7's Transient error is opt-in).
func (r *Rib) SetMaxQueueDepth(n int) {
	r.maxQueueDepth = n
}

// Len returns the total number of routes across all entries (nItems).
func (r *Rib) Len() int {
	return r.nItems
}

// EntryCount returns the number of entries currently in the table.
func (r *Rib) EntryCount() int {
	return r.tbl.len()
}

// QueueDepth returns the number of update batches waiting to be sent to
// the FibUpdater, not counting one currently in flight.
func (r *Rib) QueueDepth() int {
	return len(r.queue)
}

// InFlight reports whether a FibUpdater call is currently outstanding.
func (r *Rib) InFlight() bool {
	return r.inFlight
}

// Lookup returns the entry exactly at name, if any.
func (r *Rib) Lookup(name Name) (*RibEntry, bool) {
	return r.tbl.get(name)
}

// Entries calls fn for every entry in Name order.
func (r *Rib) Entries(fn func(*RibEntry) bool) {
	r.tbl.ascend(fn)
}

// FaceIDs returns every face currently present in the face index.
func (r *Rib) FaceIDs() []FaceID {
	return r.faces.faces()
}

// BeginApplyUpdate is the single entry point every update source (a
// management command, an expiration callback, a face-down signal) uses to
// propose a mutation (spec §4.1 step 1). It wraps the update into a
// single-element batch, enqueues it, and drains.
func (r *Rib) BeginApplyUpdate(update RibUpdate, onSuccess func(), onFailure func(code uint32, message string)) error {
	if r.fibUpdater == nil {
		panicProtocolMisuse("BeginApplyUpdate called before a FibUpdater was installed")
	}
	if r.maxQueueDepth > 0 && len(r.queue) >= r.maxQueueDepth {
		return ErrQueueFull
	}
	r.queue = append(r.queue, updateQueueItem{
		batch: RibUpdateBatch{
			FaceID:  update.Route.FaceID,
			Updates: []RibUpdate{update},
		},
		onSuccess: onSuccess,
		onFailure: onFailure,
	})
	r.drain()
	return nil
}

// BeginRemoveFace enqueues a REMOVE_FACE update for every own route held
// under face, across every affected entry, then drains (spec §4.4). Cost
// is O(affected), thanks to the face index.
func (r *Rib) BeginRemoveFace(face FaceID) error {
	if r.fibUpdater == nil {
		panicProtocolMisuse("BeginRemoveFace called before a FibUpdater was installed")
	}
	type pending struct {
		name  Name
		route Route
	}
	var items []pending
	for e := range r.faces.entries(face) {
		for _, rt := range e.routes {
			if rt.FaceID == face {
				items = append(items, pending{e.name, rt})
			}
		}
	}
	// Capacity is checked for the whole face-down up front so a face with
	// many routes either enqueues entirely or not at all — BeginApplyUpdate
	// would otherwise accept the first few and reject a later one,
	// leaving the face half torn down.
	if r.maxQueueDepth > 0 && len(r.queue)+len(items) > r.maxQueueDepth {
		return ErrQueueFull
	}
	for _, it := range items {
		if err := r.BeginApplyUpdate(RibUpdate{Action: RemoveFace, Name: it.name, Route: it.route}, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

// BeginRemoveFailedFaces enqueues REMOVE_FACE updates for every face
// currently in the face index that is not present in active (spec §4.4).
func (r *Rib) BeginRemoveFailedFaces(active map[FaceID]bool) error {
	for _, f := range r.faces.faces() {
		if active[f] {
			continue
		}
		if err := r.BeginRemoveFace(f); err != nil {
			return err
		}
	}
	return nil
}

// drain dispatches the next queued batch to the FibUpdater, if one is
// waiting and none is currently in flight (spec §4.1 step 2, §5 P7).
func (r *Rib) drain() {
	if len(r.queue) == 0 || r.inFlight {
		return
	}
	r.inFlight = true
	item := r.queue[0]
	r.queue = r.queue[1:]

	r.fibUpdater.ComputeAndSendFibUpdates(item.batch,
		func(delta []RibUpdate) { r.onFibSuccess(item, delta) },
		func(code uint32, message string) { r.onFibFailure(item, code, message) },
	)
}

// onFibSuccess commits the originating batch, applies the inherited-route
// delta, then clears the gate and drains the next item (spec §4.1 step 3).
func (r *Rib) onFibSuccess(item updateQueueItem, delta []RibUpdate) {
	for _, u := range item.batch.Updates {
		switch u.Action {
		case Register:
			r.insert(u.Name, u.Route)
		case Unregister, RemoveFace:
			r.erase(u.Name, u.Route.Key())
		}
	}

	for _, d := range delta {
		switch d.Action {
		case Register:
			r.addInheritedRouteAt(d.Name, d.Route)
		case Unregister:
			r.removeInheritedRouteAt(d.Name, d.Route.Key())
		case RemoveFace:
			// no-op on inheritance: the FibUpdater already accounted for it.
		}
	}

	r.inFlight = false
	if item.onSuccess != nil {
		item.onSuccess()
	}
	r.drain()
}

// onFibFailure leaves the table untouched, propagates the failure, then
// clears the gate and drains the next item (spec §4.1 step 4).
func (r *Rib) onFibFailure(item updateQueueItem, code uint32, message string) {
	r.inFlight = false
	if item.onFailure != nil {
		item.onFailure(code, message)
	}
	r.drain()
}

// insert implements spec §4.2: in-place refresh if the route's key already
// exists at this prefix; otherwise append, or create the entry (stealing
// children from its new parent) if the prefix has no entry yet.
func (r *Rib) insert(prefix Name, route Route) {
	if e, ok := r.tbl.get(prefix); ok {
		if idx := e.findRouteIndex(route.Key()); idx != -1 {
			r.cancelExpiry(e.routes[idx])
			e.replaceRoute(idx, route)
			r.scheduleExpiry(prefix, &e.routes[idx])
			return
		}
		idx, _ := e.insertRoute(route)
		r.scheduleExpiry(prefix, &e.routes[idx])
		r.nItems++
		r.faces.add(route.FaceID, e)
		r.fireAfterAddRoute(RibRouteRef{Entry: e, Index: idx})
		return
	}

	e := newRibEntry(prefix)
	parent := r.tbl.findParent(prefix)

	var stolen []*RibEntry
	r.tbl.descendantsOf(prefix, func(c *RibEntry) bool {
		if c.parent == parent {
			stolen = append(stolen, c)
		}
		return true
	})

	if parent != nil {
		parent.addChild(e)
	}
	for _, c := range stolen {
		if parent != nil {
			parent.removeChild(c)
		}
		e.addChild(c)
		c.setParent(e)
	}
	e.setParent(parent)

	r.tbl.insert(e)
	r.fireAfterInsertEntry(prefix)

	idx, _ := e.insertRoute(route)
	r.scheduleExpiry(prefix, &e.routes[idx])
	r.nItems++
	r.faces.add(route.FaceID, e)
	r.fireAfterAddRoute(RibRouteRef{Entry: e, Index: idx})
}

// erase implements spec §4.3.
func (r *Rib) erase(prefix Name, key RouteKey) {
	e, ok := r.tbl.get(prefix)
	if !ok {
		return
	}
	idx := e.findRouteIndex(key)
	if idx == -1 {
		return
	}

	r.fireBeforeRemoveRoute(RibRouteRef{Entry: e, Index: idx})

	route := e.routes[idx]
	r.cancelExpiry(route)
	e.eraseRoute(idx)
	r.nItems--

	if !e.hasFaceID(route.FaceID) {
		r.faces.remove(route.FaceID, e)
	}

	if e.empty() {
		r.eraseEntry(e)
	}
}

// eraseEntry removes an entry with no remaining own routes, reparenting
// its children onto its parent (spec §4.3 step 5).
func (r *Rib) eraseEntry(e *RibEntry) {
	p := e.parent
	for _, c := range slices.Clone(e.children) {
		e.removeChild(c)
		c.setParent(p)
		if p != nil {
			p.addChild(c)
		}
	}
	if p != nil {
		p.removeChild(e)
	}
	e.setParent(nil)

	r.tbl.delete(e)
	r.fireAfterEraseEntry(e.name)
}

func (r *Rib) addInheritedRouteAt(name Name, route Route) {
	if e, ok := r.tbl.get(name); ok {
		e.addInheritedRoute(route)
	}
}

func (r *Rib) removeInheritedRouteAt(name Name, key RouteKey) {
	if e, ok := r.tbl.get(name); ok {
		e.removeInheritedRoute(key)
	}
}

// GetAncestorRoutesForName implements spec §4.5 for a prefix that may not
// yet have an entry of its own — useful for computing the inheritance a
// not-yet-inserted prefix would receive.
func (r *Rib) GetAncestorRoutesForName(name Name) []Route {
	return r.ancestorRoutesFrom(r.tbl.findParent(name))
}

// ancestorRoutesFrom walks from start upward, collecting CHILD_INHERIT
// routes and stopping inclusively at the first ancestor with CAPTURE set.
// Ties are broken in favor of the nearest ancestor, then the result is
// ordered by FaceID.
func (r *Rib) ancestorRoutesFrom(start *RibEntry) []Route {
	seen := make(map[RouteKey]bool)
	var out []Route
	for a := start; a != nil; a = a.parent {
		for _, rt := range a.routes {
			if rt.Flags.Has(ChildInherit) && !seen[rt.Key()] {
				seen[rt.Key()] = true
				out = append(out, rt)
			}
		}
		if a.hasCapture() {
			break
		}
	}
	slices.SortStableFunc(out, func(a, b Route) int {
		switch {
		case a.FaceID < b.FaceID:
			return -1
		case a.FaceID > b.FaceID:
			return 1
		default:
			return 0
		}
	})
	return out
}
