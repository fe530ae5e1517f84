package fib

import (
	"fmt"
	"strings"

	"github.com/ndnfwd/ribd/rib"
)

// call captures one invocation of ComputeAndSendFibUpdates, along with the
// callbacks needed to settle it later.
type call struct {
	batch     rib.RibUpdateBatch
	onSuccess func([]rib.RibUpdate)
	onFailure func(code uint32, message string)
}

// Recorder is a deterministic rib.FibUpdater test double: it records every
// batch it is asked to compute and waits for the test to explicitly settle
// it, rather than replying synchronously. This mirrors the teacher's
// action-recording harness, adapted from recording routing decisions to
// recording FIB round-trips.
type Recorder struct {
	calls []call
}

// ComputeAndSendFibUpdates implements rib.FibUpdater by recording the call
// instead of answering it.
func (r *Recorder) ComputeAndSendFibUpdates(batch rib.RibUpdateBatch, onSuccess func([]rib.RibUpdate), onFailure func(code uint32, message string)) {
	r.calls = append(r.calls, call{batch: batch, onSuccess: onSuccess, onFailure: onFailure})
}

// Pending returns the number of calls awaiting a reply.
func (r *Recorder) Pending() int {
	return len(r.calls)
}

// LastBatch returns the most recently recorded batch.
func (r *Recorder) LastBatch() rib.RibUpdateBatch {
	return r.calls[len(r.calls)-1].batch
}

// Succeed settles the oldest unanswered call with the given inherited
// delta.
func (r *Recorder) Succeed(delta ...rib.RibUpdate) {
	c := r.pop()
	c.onSuccess(delta)
}

// Fail settles the oldest unanswered call with a failure.
func (r *Recorder) Fail(code uint32, message string) {
	c := r.pop()
	c.onFailure(code, message)
}

func (r *Recorder) pop() call {
	c := r.calls[0]
	r.calls = r.calls[1:]
	return c
}

// String renders the still-pending calls, oldest first, for test failure
// messages.
func (r *Recorder) String() string {
	lines := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		parts := make([]string, 0, len(c.batch.Updates))
		for _, u := range c.batch.Updates {
			parts = append(parts, fmt.Sprintf("%s %s %s", u.Action, u.Name, u.Route))
		}
		lines = append(lines, fmt.Sprintf("face=%d: %s", c.batch.FaceID, strings.Join(parts, "; ")))
	}
	return strings.Join(lines, "\n")
}
