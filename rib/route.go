package rib

import (
	"fmt"
	"time"
)

// Origin identifies who registered a route.
type Origin uint8

const (
	OriginApp Origin = iota
	OriginStatic
	OriginNLSR
	OriginClient
	OriginAutoreg
	OriginPrefixAnn
)

func (o Origin) String() string {
	switch o {
	case OriginApp:
		return "app"
	case OriginStatic:
		return "static"
	case OriginNLSR:
		return "nlsr"
	case OriginClient:
		return "client"
	case OriginAutoreg:
		return "autoreg"
	case OriginPrefixAnn:
		return "prefixann"
	default:
		return fmt.Sprintf("origin(%d)", uint8(o))
	}
}

// Flags is a bitset of route flags.
type Flags uint32

const (
	ChildInherit Flags = 1 << iota
	Capture
)

func (f Flags) Has(bit Flags) bool {
	return f&bit != 0
}

// FaceID identifies a downstream face (link endpoint).
type FaceID uint64

// RouteKey is the stable identity of a Route: two routes are the same
// route iff their (FaceID, Origin) match.
type RouteKey struct {
	FaceID FaceID
	Origin Origin
}

// Route is a single registration record. Cost, Flags and Expires are the
// mutable payload; FaceID/Origin form the stable RouteKey.
type Route struct {
	FaceID  FaceID
	Origin  Origin
	Cost    uint64
	Flags   Flags
	Expires *time.Time // nil means the route never expires

	// expHandle is the opaque handle of the scheduled expiration callback
	// (spec §3 Route.expirationEvent). It is set and cancelled internally
	// by the Rib; callers never read or set it directly.
	expHandle ExpirationHandle
}

// Key returns the route's stable identity.
func (r Route) Key() RouteKey {
	return RouteKey{FaceID: r.FaceID, Origin: r.Origin}
}

// String renders the route for logs and test failure messages.
func (r Route) String() string {
	exp := "never"
	if r.Expires != nil {
		exp = r.Expires.Format(time.RFC3339)
	}
	return fmt.Sprintf("face=%d origin=%s cost=%d flags=%#x expires=%s", r.FaceID, r.Origin, r.Cost, uint32(r.Flags), exp)
}
