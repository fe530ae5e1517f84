// Package readvertise implements the readvertise-policy evaluation
// contract (spec §4.7): a stateless classifier invoked from the Rib's
// afterAddRoute/beforeRemoveRoute observer hooks that decides whether a
// newly (un)registered route should be published to an upstream gateway.
//
// The policy is modeled as a capability set (spec §9 design note), not a
// base class: Policy is an interface, and HostToGateway is one concrete
// variant among others an implementer could add (e.g. an NLSR variant).
package readvertise

import (
	"time"

	"github.com/ndnfwd/ribd/rib"
)

// Signer is an opaque reference to a signing identity's key material.
// Identity and key management live outside this component (spec §1); this
// package only ever asks a KeyChain to resolve a name to one.
type Signer struct {
	Identity rib.Name
}

// KeyChain resolves a signing identity name to a Signer. The real
// implementation is owned by the daemon's identity/key management layer,
// out of scope here.
type KeyChain interface {
	SigningByIdentity(identity rib.Name) Signer
}

// ReadvertiseAction is what a Policy returns for a route it chooses to
// advertise: the prefix to advertise, at what cost, signed by whom.
type ReadvertiseAction struct {
	Prefix rib.Name
	Cost   uint64
	Signer Signer
}

// Policy is the capability set spec §9 calls for: classify a newly added
// route, classify a removed one (to withdraw a prior advertisement), and
// report the refresh interval the execution engine should re-advertise on.
type Policy interface {
	ClassifyNewRoute(name rib.Name, route rib.Route) (ReadvertiseAction, bool)
	ClassifyRemovedRoute(name rib.Name, route rib.Route) (ReadvertiseAction, bool)
	RefreshInterval() time.Duration
}

// Advertiser is the readvertise execution engine that actually publishes
// advertisements upstream — out of scope here (spec §1), described only
// through this interface.
type Advertiser interface {
	Advertise(ReadvertiseAction)
	Withdraw(ReadvertiseAction)
}

// Attach wires policy and adv into r's observer hooks: every newly added
// route is classified and, if the policy doesn't decline, advertised;
// every removed route is classified the same way and withdrawn.
func Attach(r *rib.Rib, policy Policy, adv Advertiser) {
	r.OnAfterAddRoute(func(ref rib.RibRouteRef) {
		if action, ok := policy.ClassifyNewRoute(ref.Entry.Name(), ref.Route()); ok {
			adv.Advertise(action)
		}
	})
	r.OnBeforeRemoveRoute(func(ref rib.RibRouteRef) {
		if action, ok := policy.ClassifyRemovedRoute(ref.Entry.Name(), ref.Route()); ok {
			adv.Withdraw(action)
		}
	})
}
