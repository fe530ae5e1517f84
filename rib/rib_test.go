package rib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/rib"
)

func newTestRib(t *testing.T) (*rib.Rib, *fib.Recorder) {
	t.Helper()
	r := rib.New()
	rec := &fib.Recorder{}
	r.SetFibUpdater(rec)
	return r, rec
}

func registerAndSucceed(t *testing.T, r *rib.Rib, rec *fib.Recorder, name rib.Name, route rib.Route) {
	t.Helper()
	var succeeded bool
	err := r.BeginApplyUpdate(rib.RibUpdate{Action: rib.Register, Name: name, Route: route},
		func() { succeeded = true },
		func(code uint32, message string) { t.Fatalf("unexpected failure: %d %s", code, message) },
	)
	require.NoError(t, err)
	require.Equal(t, 1, rec.Pending())
	rec.Succeed()
	require.True(t, succeeded)
}

func TestBeginApplyUpdate_PanicsWithoutFibUpdater(t *testing.T) {
	r := rib.New()
	assert.Panics(t, func() {
		_ = r.BeginApplyUpdate(rib.RibUpdate{Name: rib.ParseName("/a")}, nil, nil)
	})
}

func TestInsertThenErase_RemovesEntry(t *testing.T) {
	r, rec := newTestRib(t)
	name := rib.ParseName("/a/b")
	registerAndSucceed(t, r, rec, name, rib.Route{FaceID: 1, Origin: rib.OriginApp})

	_, ok := r.Lookup(name)
	require.True(t, ok)
	assert.Equal(t, 1, r.EntryCount())
	assert.Equal(t, 1, r.Len())

	var succeeded bool
	err := r.BeginApplyUpdate(rib.RibUpdate{
		Action: rib.Unregister,
		Name:   name,
		Route:  rib.Route{FaceID: 1, Origin: rib.OriginApp},
	}, func() { succeeded = true }, nil)
	require.NoError(t, err)
	rec.Succeed()
	require.True(t, succeeded)

	_, ok = r.Lookup(name)
	assert.False(t, ok)
	assert.Equal(t, 0, r.EntryCount())
	assert.Equal(t, 0, r.Len())
}

func TestInsert_ParentStealsChild(t *testing.T) {
	r, rec := newTestRib(t)

	registerAndSucceed(t, r, rec, rib.ParseName("/a/b/c"), rib.Route{FaceID: 1, Origin: rib.OriginApp})
	child, ok := r.Lookup(rib.ParseName("/a/b/c"))
	require.True(t, ok)
	assert.Nil(t, child.Parent())

	registerAndSucceed(t, r, rec, rib.ParseName("/a/b"), rib.Route{FaceID: 2, Origin: rib.OriginApp})
	parent, ok := r.Lookup(rib.ParseName("/a/b"))
	require.True(t, ok)

	assert.Same(t, parent, child.Parent())
	assert.Contains(t, parent.Children(), child)
}

func TestAncestorInheritance_CaptureStopsPropagation(t *testing.T) {
	r, rec := newTestRib(t)

	registerAndSucceed(t, r, rec, rib.ParseName("/net"), rib.Route{FaceID: 1, Origin: rib.OriginApp, Flags: rib.ChildInherit})
	registerAndSucceed(t, r, rec, rib.ParseName("/net/site"), rib.Route{FaceID: 2, Origin: rib.OriginApp, Flags: rib.ChildInherit | rib.Capture})

	routes := r.GetAncestorRoutesForName(rib.ParseName("/net/site/app"))
	require.Len(t, routes, 1)
	assert.Equal(t, rib.FaceID(2), routes[0].FaceID)

	routes = r.GetAncestorRoutesForName(rib.ParseName("/net/other"))
	require.Len(t, routes, 1)
	assert.Equal(t, rib.FaceID(1), routes[0].FaceID)
}

func TestAncestorInheritance_NoCaptureCombinesAncestors(t *testing.T) {
	r, rec := newTestRib(t)

	registerAndSucceed(t, r, rec, rib.ParseName("/net"), rib.Route{FaceID: 1, Origin: rib.OriginApp, Flags: rib.ChildInherit})
	registerAndSucceed(t, r, rec, rib.ParseName("/net/site"), rib.Route{FaceID: 2, Origin: rib.OriginApp, Flags: rib.ChildInherit})

	routes := r.GetAncestorRoutesForName(rib.ParseName("/net/site/app"))
	require.Len(t, routes, 2)
	assert.Equal(t, rib.FaceID(1), routes[0].FaceID)
	assert.Equal(t, rib.FaceID(2), routes[1].FaceID)
}

func TestBeginApplyUpdate_FibFailureLeavesTableUnchanged(t *testing.T) {
	r, rec := newTestRib(t)
	name := rib.ParseName("/a")

	var failed bool
	err := r.BeginApplyUpdate(rib.RibUpdate{Action: rib.Register, Name: name, Route: rib.Route{FaceID: 1, Origin: rib.OriginApp}},
		func() { t.Fatal("unexpected success") },
		func(code uint32, message string) {
			failed = true
			assert.Equal(t, uint32(5), code)
			assert.Equal(t, "boom", message)
		},
	)
	require.NoError(t, err)
	rec.Fail(5, "boom")
	require.True(t, failed)

	_, ok := r.Lookup(name)
	assert.False(t, ok)
	assert.Equal(t, 0, r.EntryCount())
}

func TestBeginApplyUpdate_QueueBound(t *testing.T) {
	r, rec := newTestRib(t)
	r.SetMaxQueueDepth(1)

	// First update goes straight to the (single) in-flight slot.
	err := r.BeginApplyUpdate(rib.RibUpdate{Action: rib.Register, Name: rib.ParseName("/a"), Route: rib.Route{FaceID: 1}}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Pending())
	assert.Equal(t, 0, r.QueueDepth())

	// Second update queues behind it, filling the bound.
	err = r.BeginApplyUpdate(rib.RibUpdate{Action: rib.Register, Name: rib.ParseName("/b"), Route: rib.Route{FaceID: 2}}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.QueueDepth())

	// Third update finds the bound already full.
	err = r.BeginApplyUpdate(rib.RibUpdate{Action: rib.Register, Name: rib.ParseName("/c"), Route: rib.Route{FaceID: 3}}, nil, nil)
	assert.ErrorIs(t, err, rib.ErrQueueFull)
}

func TestBeginRemoveFace_RemovesEveryRouteUnderFace(t *testing.T) {
	r, rec := newTestRib(t)

	registerAndSucceed(t, r, rec, rib.ParseName("/a"), rib.Route{FaceID: 1, Origin: rib.OriginApp})
	registerAndSucceed(t, r, rec, rib.ParseName("/a/b"), rib.Route{FaceID: 1, Origin: rib.OriginStatic})
	registerAndSucceed(t, r, rec, rib.ParseName("/c"), rib.Route{FaceID: 2, Origin: rib.OriginApp})

	err := r.BeginRemoveFace(1)
	require.NoError(t, err)
	require.Equal(t, 1, rec.Pending()) // the second update waits behind the first in flight
	rec.Succeed()
	require.Equal(t, 1, rec.Pending())
	rec.Succeed()

	_, ok := r.Lookup(rib.ParseName("/a"))
	assert.False(t, ok)
	_, ok = r.Lookup(rib.ParseName("/a/b"))
	assert.False(t, ok)
	_, ok = r.Lookup(rib.ParseName("/c"))
	assert.True(t, ok)
	assert.NotContains(t, r.FaceIDs(), rib.FaceID(1))
}

func TestBeginApplyUpdate_InheritedDeltaIsCommittedToDescendant(t *testing.T) {
	r, rec := newTestRib(t)

	registerAndSucceed(t, r, rec, rib.ParseName("/net/site/app"), rib.Route{FaceID: 9, Origin: rib.OriginApp})
	e, ok := r.Lookup(rib.ParseName("/net/site/app"))
	require.True(t, ok)
	assert.Empty(t, e.InheritedRoutes())

	// The FibUpdater reports back that /net/site/app should inherit a
	// route from an ancestor's CHILD_INHERIT registration.
	err := r.BeginApplyUpdate(rib.RibUpdate{
		Action: rib.Register,
		Name:   rib.ParseName("/net"),
		Route:  rib.Route{FaceID: 1, Origin: rib.OriginApp, Flags: rib.ChildInherit},
	}, nil, nil)
	require.NoError(t, err)

	inherited := rib.Route{FaceID: 1, Origin: rib.OriginApp, Flags: rib.ChildInherit}
	rec.Succeed(rib.RibUpdate{Action: rib.Register, Name: rib.ParseName("/net/site/app"), Route: inherited})

	e, ok = r.Lookup(rib.ParseName("/net/site/app"))
	require.True(t, ok)
	require.Len(t, e.InheritedRoutes(), 1)
	assert.Equal(t, rib.FaceID(1), e.InheritedRoutes()[0].FaceID)

	// Withdrawing the ancestor's registration reports an UNREGISTER delta
	// that must remove the inherited route again.
	err = r.BeginApplyUpdate(rib.RibUpdate{
		Action: rib.Unregister,
		Name:   rib.ParseName("/net"),
		Route:  rib.Route{FaceID: 1, Origin: rib.OriginApp},
	}, nil, nil)
	require.NoError(t, err)
	rec.Succeed(rib.RibUpdate{Action: rib.Unregister, Name: rib.ParseName("/net/site/app"), Route: inherited})

	e, ok = r.Lookup(rib.ParseName("/net/site/app"))
	require.True(t, ok)
	assert.Empty(t, e.InheritedRoutes())
}

func TestInsert_RefreshReplacesRouteInPlace(t *testing.T) {
	r, rec := newTestRib(t)
	name := rib.ParseName("/a")

	registerAndSucceed(t, r, rec, name, rib.Route{FaceID: 1, Origin: rib.OriginApp, Cost: 10})
	registerAndSucceed(t, r, rec, name, rib.Route{FaceID: 1, Origin: rib.OriginApp, Cost: 20})

	e, ok := r.Lookup(name)
	require.True(t, ok)
	require.Len(t, e.Routes(), 1)
	assert.Equal(t, uint64(20), e.Routes()[0].Cost)
	assert.Equal(t, 1, r.Len())
}
