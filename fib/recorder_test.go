package fib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/rib"
)

func TestRecorder_RecordsAndSettlesInOrder(t *testing.T) {
	rec := &fib.Recorder{}
	var settled []uint64

	rec.ComputeAndSendFibUpdates(rib.RibUpdateBatch{FaceID: 1}, func([]rib.RibUpdate) { settled = append(settled, 1) }, nil)
	rec.ComputeAndSendFibUpdates(rib.RibUpdateBatch{FaceID: 2}, func([]rib.RibUpdate) { settled = append(settled, 2) }, nil)

	require.Equal(t, 2, rec.Pending())
	assert.Equal(t, rib.FaceID(2), rec.LastBatch().FaceID)

	rec.Succeed()
	rec.Succeed()
	assert.Equal(t, []uint64{1, 2}, settled)
	assert.Equal(t, 0, rec.Pending())
}

func TestRecorder_Fail(t *testing.T) {
	rec := &fib.Recorder{}
	var code uint32
	var msg string
	rec.ComputeAndSendFibUpdates(rib.RibUpdateBatch{}, nil, func(c uint32, m string) { code, msg = c, m })
	rec.Fail(3, "no")
	assert.Equal(t, uint32(3), code)
	assert.Equal(t, "no", msg)
}
