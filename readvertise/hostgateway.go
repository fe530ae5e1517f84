package readvertise

import (
	"time"

	"github.com/ndnfwd/ribd/rib"
)

// DefaultRefreshInterval is the default readvertise refresh period
// (spec §6, default 25 seconds).
const DefaultRefreshInterval = 25 * time.Second

// reservedComponents are never advertised regardless of identity match
// (spec §6: "localhost" and "localhop").
var reservedComponents = map[string]bool{
	"localhost": true,
	"localhop":  true,
}

// HostToGateway is the host-to-gateway readvertise policy variant
// (spec §4.7): advertise a route under the shortest registered signing
// identity that is a prefix of its name, unless the name falls under a
// reserved namespace.
type HostToGateway struct {
	// Identities is the set of registered signing identities, consulted
	// in ClassifyNewRoute/ClassifyRemovedRoute.
	Identities []rib.Name
	// KeyChain resolves a chosen identity to a Signer.
	KeyChain KeyChain
	// Refresh is the configured refresh interval (spec §6 refresh_interval).
	Refresh time.Duration
}

// ClassifyNewRoute implements Policy.
func (p *HostToGateway) ClassifyNewRoute(name rib.Name, route rib.Route) (ReadvertiseAction, bool) {
	return p.classify(name, route)
}

// ClassifyRemovedRoute implements Policy. The classification a removal
// needs to withdraw a prior advertisement is identical to the one that
// produced it.
func (p *HostToGateway) ClassifyRemovedRoute(name rib.Name, route rib.Route) (ReadvertiseAction, bool) {
	return p.classify(name, route)
}

// RefreshInterval implements Policy.
func (p *HostToGateway) RefreshInterval() time.Duration {
	if p.Refresh <= 0 {
		return DefaultRefreshInterval
	}
	return p.Refresh
}

func (p *HostToGateway) classify(name rib.Name, route rib.Route) (ReadvertiseAction, bool) {
	if isReserved(name) {
		return ReadvertiseAction{}, false
	}
	identity, ok := p.shortestMatchingIdentity(name)
	if !ok {
		return ReadvertiseAction{}, false
	}

	// An identity under the "nrd" (NFD RIB dispatcher) sub-namespace
	// advertises its parent, signed with the nrd identity itself.
	prefix := identity
	if n := identity.Len(); n > 0 && identity.At(n-1) == "nrd" {
		prefix = identity.Prefix(n - 1)
	}

	return ReadvertiseAction{
		Prefix: prefix,
		Cost:   route.Cost,
		Signer: p.KeyChain.SigningByIdentity(identity),
	}, true
}

func isReserved(name rib.Name) bool {
	return name.Len() > 0 && reservedComponents[name.At(0)]
}

// shortestMatchingIdentity returns the shortest registered identity that
// is a prefix of name, if any.
func (p *HostToGateway) shortestMatchingIdentity(name rib.Name) (rib.Name, bool) {
	var best rib.Name
	found := false
	for _, id := range p.Identities {
		if !id.IsPrefixOf(name) {
			continue
		}
		if !found || id.Len() < best.Len() {
			best = id
			found = true
		}
	}
	return best, found
}
