package rib

import "fmt"

// FibFailure is returned verbatim from the FibUpdater's onFailure callback
// to the caller that originated the update. The RIB's table is unchanged
// when this fires.
type FibFailure struct {
	Code    uint32
	Message string
}

func (e *FibFailure) Error() string {
	return fmt.Sprintf("fib update failed: code=%d message=%s", e.Code, e.Message)
}

// ErrQueueFull is returned by BeginApplyUpdate when the update queue has a
// configured bound and is at capacity (spec §7 Transient). The update is
// rejected before enqueueing; no callback fires.
var ErrQueueFull = fmt.Errorf("rib: update queue is at capacity")

// errProtocolMisuse panics when an entry point is called before a
// FibUpdater has been installed (spec §7 ProtocolMisuse: a fatal assertion,
// a program bug, never recovered inside this package).
type errProtocolMisuse struct {
	reason string
}

func (e *errProtocolMisuse) Error() string {
	return "rib: protocol misuse: " + e.reason
}

func panicProtocolMisuse(reason string) {
	panic(&errProtocolMisuse{reason: reason})
}
