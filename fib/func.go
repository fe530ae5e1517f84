// Package fib provides concrete adapters over rib.FibUpdater. Both are
// pure Go with no wire protocol: the real forwarder's FIB-programming
// path is an external collaborator described only through the interface
// (spec §1, §6); these adapters cover the in-process and test cases.
package fib

import (
	"errors"

	"github.com/ndnfwd/ribd/rib"
)

// Dispatcher delivers a function to the Rib's owning goroutine. An
// *env.Env satisfies this; tests can pass a function that calls fn
// directly when there is no separate scheduler.
type Dispatcher interface {
	Dispatch(fn func())
}

// Compute is the synchronous FIB-delta computation a same-process
// forwarder exposes. It returns the inherited-route delta on success, or
// an error that becomes the batch's onFailure(code, message).
type Compute func(batch rib.RibUpdateBatch) ([]rib.RibUpdate, error)

// Func adapts a synchronous Compute function into a rib.FibUpdater,
// delivering its callback through a Dispatcher so it lands back on the
// Rib's single goroutine even if Compute itself runs elsewhere (spec §6:
// "must be invoked on the RIB's event loop").
type Func struct {
	Compute    Compute
	Dispatcher Dispatcher
}

// ComputeAndSendFibUpdates implements rib.FibUpdater.
func (f *Func) ComputeAndSendFibUpdates(batch rib.RibUpdateBatch, onSuccess func([]rib.RibUpdate), onFailure func(code uint32, message string)) {
	delta, err := f.Compute(batch)
	deliver := func() {
		if err != nil {
			var ff *rib.FibFailure
			if errors.As(err, &ff) {
				onFailure(ff.Code, ff.Message)
				return
			}
			onFailure(1, err.Error())
			return
		}
		onSuccess(delta)
	}
	if f.Dispatcher != nil {
		f.Dispatcher.Dispatch(deliver)
		return
	}
	deliver()
}
