// Package mgmt is the management-command surface (spec §6): it
// translates validated REGISTER/UNREGISTER control parameters into the
// Rib's BeginApplyUpdate calls. The NDN Interest/Data dispatcher that
// authenticates commands and decodes them off the wire is an external
// collaborator, out of scope here (spec §1) — this package starts from
// already-decoded ControlParameters, the way the real dispatcher would
// hand them off after authorization.
package mgmt

import (
	"time"

	"github.com/ndnfwd/ribd/rib"
)

// ControlParameters is the decoded REGISTER/UNREGISTER command body
// (spec §6): { name, faceId, origin, cost, flags, expirationPeriodMs? }.
type ControlParameters struct {
	Name               rib.Name
	FaceID             rib.FaceID
	Origin             rib.Origin
	Cost               uint64
	Flags              rib.Flags
	ExpirationPeriodMs *uint64
}

// ControlResponse is what the dispatcher would turn a RIB callback into
// (spec §7): FibFailure maps verbatim, NotFound manifests as success.
type ControlResponse struct {
	Code uint32
	Text string
}

// Register issues a REGISTER update for params and reports the outcome as
// a ControlResponse.
func Register(r *rib.Rib, params ControlParameters, done func(ControlResponse)) error {
	route := rib.Route{
		FaceID: params.FaceID,
		Origin: params.Origin,
		Cost:   params.Cost,
		Flags:  params.Flags,
	}
	if params.ExpirationPeriodMs != nil {
		t := time.Now().Add(time.Duration(*params.ExpirationPeriodMs) * time.Millisecond)
		route.Expires = &t
	}
	return r.BeginApplyUpdate(
		rib.RibUpdate{Action: rib.Register, Name: params.Name, Route: route},
		func() { done(ControlResponse{Code: 200, Text: "OK"}) },
		func(code uint32, message string) { done(ControlResponse{Code: code, Text: message}) },
	)
}

// Unregister issues an UNREGISTER update for the route keyed by
// (faceID, origin) at name. An UNREGISTER against a route that doesn't
// exist is absorbed silently by the Rib and reports success (spec §7
// NotFound).
func Unregister(r *rib.Rib, name rib.Name, faceID rib.FaceID, origin rib.Origin, done func(ControlResponse)) error {
	return r.BeginApplyUpdate(
		rib.RibUpdate{Action: rib.Unregister, Name: name, Route: rib.Route{FaceID: faceID, Origin: origin}},
		func() { done(ControlResponse{Code: 200, Text: "OK"}) },
		func(code uint32, message string) { done(ControlResponse{Code: code, Text: message}) },
	)
}

// RemoveFace issues REMOVE_FACE updates for every route held under faceID.
// This is what a face-down signal drives (spec §4.4), not a REGISTER/
// UNREGISTER command, but it shares the same queue/callback machinery.
func RemoveFace(r *rib.Rib, faceID rib.FaceID) error {
	return r.BeginRemoveFace(faceID)
}
