package readvertise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/rib"
)

func newTestRibForAttach(t *testing.T) (*rib.Rib, *fib.Recorder) {
	t.Helper()
	r := rib.New()
	rec := &fib.Recorder{}
	r.SetFibUpdater(rec)
	return r, rec
}

func settle(t *testing.T, r *rib.Rib, rec *fib.Recorder, update rib.RibUpdate) {
	t.Helper()
	err := r.BeginApplyUpdate(update, nil, func(code uint32, message string) {
		t.Fatalf("unexpected failure: %d %s", code, message)
	})
	require.NoError(t, err)
	require.Equal(t, 1, rec.Pending())
	rec.Succeed()
}
