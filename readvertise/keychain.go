package readvertise

import "github.com/ndnfwd/ribd/rib"

// StaticKeyChain resolves every identity to a Signer carrying that same
// identity name. Real key material lives in the identity/key management
// layer, out of scope here (spec §1); this is the minimal capability the
// policy needs to produce a ReadvertiseAction in tests and in daemons that
// don't yet have a full keychain wired in.
type StaticKeyChain struct{}

// SigningByIdentity implements KeyChain.
func (StaticKeyChain) SigningByIdentity(identity rib.Name) Signer {
	return Signer{Identity: identity}
}
