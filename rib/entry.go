package rib

import "slices"

// RibEntry is a single node of the prefix tree: the prefix (Name) it
// governs, its own route set, the inherited routes copied down from
// ancestors, and its parent/child links.
type RibEntry struct {
	name            Name
	routes          []Route
	inheritedRoutes []Route
	parent          *RibEntry
	children        []*RibEntry
}

func newRibEntry(name Name) *RibEntry {
	return &RibEntry{name: name}
}

// Name returns the prefix this entry governs.
func (e *RibEntry) Name() Name {
	return e.name
}

// Routes returns the entry's own routes in insertion order. Callers must
// not mutate the returned slice.
func (e *RibEntry) Routes() []Route {
	return e.routes
}

// InheritedRoutes returns the routes copied down from ancestors.
func (e *RibEntry) InheritedRoutes() []Route {
	return e.inheritedRoutes
}

// Parent returns the nearest strictly-shorter-prefix entry present in the
// RIB, or nil if none.
func (e *RibEntry) Parent() *RibEntry {
	return e.parent
}

// Children returns the entries whose parent is e. Callers must not mutate
// the returned slice.
func (e *RibEntry) Children() []*RibEntry {
	return e.children
}

func (e *RibEntry) setParent(p *RibEntry) {
	e.parent = p
}

func (e *RibEntry) addChild(c *RibEntry) {
	e.children = append(e.children, c)
}

func (e *RibEntry) removeChild(c *RibEntry) {
	e.children = slices.DeleteFunc(e.children, func(x *RibEntry) bool { return x == c })
}

// findRouteIndex returns the index of the route with the given key, or -1.
func (e *RibEntry) findRouteIndex(key RouteKey) int {
	return slices.IndexFunc(e.routes, func(r Route) bool { return r.Key() == key })
}

// insertRoute appends r if no route with the same key exists, returning the
// resulting index and whether an insertion happened. If a route with the
// same key exists, its index is returned with didInsert=false and the
// table is left untouched — the caller (Rib.insert) performs the in-place
// refresh itself so it can also cancel the old expiration event.
func (e *RibEntry) insertRoute(r Route) (int, bool) {
	if i := e.findRouteIndex(r.Key()); i != -1 {
		return i, false
	}
	e.routes = append(e.routes, r)
	return len(e.routes) - 1, true
}

// replaceRoute overwrites the route at index i in place, preserving order.
func (e *RibEntry) replaceRoute(i int, r Route) {
	e.routes[i] = r
}

// eraseRoute removes the route at index i, preserving the order of the
// remaining routes.
func (e *RibEntry) eraseRoute(i int) {
	e.routes = slices.Delete(e.routes, i, i+1)
}

// hasFaceID reports whether any own route has the given face.
func (e *RibEntry) hasFaceID(face FaceID) bool {
	return slices.ContainsFunc(e.routes, func(r Route) bool { return r.FaceID == face })
}

// HasFaceID reports whether any own route has the given face (spec §4.6
// RibEntry.hasFaceId), exported for read-only status/inspection callers.
func (e *RibEntry) HasFaceID(face FaceID) bool {
	return e.hasFaceID(face)
}

// empty reports whether the entry has no own routes. Inherited routes do
// not count.
func (e *RibEntry) empty() bool {
	return len(e.routes) == 0
}

// hasCapture reports whether any own route has the CAPTURE flag set.
func (e *RibEntry) hasCapture() bool {
	return slices.ContainsFunc(e.routes, func(r Route) bool { return r.Flags.Has(Capture) })
}

// addInheritedRoute adds or overwrites an inherited route by key.
func (e *RibEntry) addInheritedRoute(r Route) {
	if i := slices.IndexFunc(e.inheritedRoutes, func(x Route) bool { return x.Key() == r.Key() }); i != -1 {
		e.inheritedRoutes[i] = r
		return
	}
	e.inheritedRoutes = append(e.inheritedRoutes, r)
}

// removeInheritedRoute removes an inherited route by key, if present.
func (e *RibEntry) removeInheritedRoute(key RouteKey) {
	e.inheritedRoutes = slices.DeleteFunc(e.inheritedRoutes, func(x Route) bool { return x.Key() == key })
}
