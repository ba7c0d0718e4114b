package domain

// ChainDescriptor identifies one supported EVM chain on the payment rail.
// Descriptors are immutable values; the registry owns the canonical set.
type ChainDescriptor struct {
	// Key is the rail's canonical chain identifier, e.g. "ETH_SEPOLIA".
	Key string `json:"key"`
	// NetworkID is the EVM chain id.
	NetworkID uint64 `json:"network_id"`
	// USDCAddress is the collateral-token contract on this chain.
	USDCAddress string `json:"usdc_address"`
}
