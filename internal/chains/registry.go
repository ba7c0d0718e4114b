// Package chains holds the static catalog of EVM chains supported by the
// payment rail. The table is immutable after construction; the order of
// entries is the provisioning fan-out order.
package chains

import "stablecoin-payment-rail/internal/core/domain"

// DefaultChainKey is the rail's default testnet chain. Resolution falls back
// to it for unknown or empty keys.
const DefaultChainKey = "ETH_SEPOLIA"

// supported lists the rail's EVM testnets with their USDC contracts.
// ETH_SEPOLIA first: it is the default and the usual primary chain.
var supported = []domain.ChainDescriptor{
	{Key: "ETH_SEPOLIA", NetworkID: 11155111, USDCAddress: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"},
	{Key: "ARB_SEPOLIA", NetworkID: 421614, USDCAddress: "0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d"},
	{Key: "AVAX_FUJI", NetworkID: 43113, USDCAddress: "0x5425890298aed601595a70AB815c96711a31Bc65"},
	{Key: "BASE_SEPOLIA", NetworkID: 84532, USDCAddress: "0x036CbD53842c5426634e7929541eC2318f3dCF7e"},
	{Key: "MATIC_AMOY", NetworkID: 80002, USDCAddress: "0x41E94Eb019C0762f9Bfcf9Fb1E58725BfB0e7582"},
	{Key: "OP_SEPOLIA", NetworkID: 11155420, USDCAddress: "0x5fd84259d66Cd46123540766Be93DFE6D43130D7"},
	{Key: "UNI_SEPOLIA", NetworkID: 1301, USDCAddress: "0x31d0220469e10c4E71834a79b1f276d740d3768F"},
}

// Registry resolves chain keys to descriptors. Construct once in main and
// inject; never a package-level singleton.
type Registry struct {
	ordered []domain.ChainDescriptor
	byKey   map[string]domain.ChainDescriptor
}

// NewRegistry builds the registry over the supported chain table.
func NewRegistry() *Registry {
	byKey := make(map[string]domain.ChainDescriptor, len(supported))
	for _, c := range supported {
		byKey[c.Key] = c
	}
	return &Registry{ordered: supported, byKey: byKey}
}

// Resolve returns the descriptor for key, or the default descriptor when the
// key is unknown or empty. Resolution never fails.
func (r *Registry) Resolve(key string) domain.ChainDescriptor {
	if c, ok := r.byKey[key]; ok {
		return c
	}
	return r.byKey[DefaultChainKey]
}

// Lookup returns the descriptor for key and whether it was registered,
// letting callers log fallbacks that Resolve performs silently.
func (r *Registry) Lookup(key string) (domain.ChainDescriptor, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// Default returns the default chain descriptor.
func (r *Registry) Default() domain.ChainDescriptor {
	return r.byKey[DefaultChainKey]
}

// All returns every registered descriptor in fixed fan-out order. The
// returned slice is a copy; callers may not mutate the table.
func (r *Registry) All() []domain.ChainDescriptor {
	out := make([]domain.ChainDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}
