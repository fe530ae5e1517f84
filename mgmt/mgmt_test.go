package mgmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/mgmt"
	"github.com/ndnfwd/ribd/rib"
)

func newSyncRib() *rib.Rib {
	r := rib.New()
	r.SetFibUpdater(&fib.Func{
		Compute: func(rib.RibUpdateBatch) ([]rib.RibUpdate, error) { return nil, nil },
	})
	return r
}

func TestRegister_AddsRoute(t *testing.T) {
	r := newSyncRib()
	var resp mgmt.ControlResponse
	err := mgmt.Register(r, mgmt.ControlParameters{
		Name:   rib.ParseName("/a/b"),
		FaceID: 1,
		Origin: rib.OriginApp,
		Cost:   5,
	}, func(r mgmt.ControlResponse) { resp = r })
	require.NoError(t, err)
	assert.Equal(t, uint32(200), resp.Code)

	e, ok := r.Lookup(rib.ParseName("/a/b"))
	require.True(t, ok)
	require.Len(t, e.Routes(), 1)
	assert.Equal(t, uint64(5), e.Routes()[0].Cost)
}

func TestRegister_WithExpirationSetsExpires(t *testing.T) {
	r := newSyncRib()
	ms := uint64(1000)
	err := mgmt.Register(r, mgmt.ControlParameters{
		Name:               rib.ParseName("/a"),
		FaceID:             1,
		ExpirationPeriodMs: &ms,
	}, func(mgmt.ControlResponse) {})
	require.NoError(t, err)

	e, ok := r.Lookup(rib.ParseName("/a"))
	require.True(t, ok)
	require.NotNil(t, e.Routes()[0].Expires)
}

func TestUnregister_NonexistentRouteIsAbsorbed(t *testing.T) {
	r := newSyncRib()
	var resp mgmt.ControlResponse
	err := mgmt.Unregister(r, rib.ParseName("/never/registered"), 1, rib.OriginApp, func(r mgmt.ControlResponse) { resp = r })
	require.NoError(t, err)
	assert.Equal(t, uint32(200), resp.Code)
}

func TestParseScript_And_Apply(t *testing.T) {
	script, err := mgmt.ParseScript([]byte(`
- action: register
  name: /a
  faceId: 1
  cost: 3
  flags: [child-inherit]
- action: unregister
  name: /a
  faceId: 1
`))
	require.NoError(t, err)
	require.Len(t, script, 2)

	r := newSyncRib()
	var results []mgmt.ControlResponse
	err = mgmt.Apply(r, script, func(_ mgmt.ScriptEntry, resp mgmt.ControlResponse) {
		results = append(results, resp)
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint32(200), results[0].Code)
	assert.Equal(t, uint32(200), results[1].Code)

	_, ok := r.Lookup(rib.ParseName("/a"))
	assert.False(t, ok)
}
