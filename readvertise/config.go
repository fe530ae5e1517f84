package readvertise

import (
	"time"

	"github.com/ndnfwd/ribd/config"
	"github.com/ndnfwd/ribd/rib"
)

// NewHostToGatewayFromConfig builds a HostToGateway policy from the
// daemon's readvertise config section (spec §6).
func NewHostToGatewayFromConfig(cfg config.ReadvertiseCfg, kc KeyChain) *HostToGateway {
	identities := make([]rib.Name, 0, len(cfg.Identities))
	for _, s := range cfg.Identities {
		identities = append(identities, rib.ParseName(s))
	}
	return &HostToGateway{
		Identities: identities,
		KeyChain:   kc,
		Refresh:    time.Duration(cfg.RefreshInterval) * time.Second,
	}
}
