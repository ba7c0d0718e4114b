package domain

// ProvisioningResult reports the multi-chain outcome of wallet provisioning.
// Succeeded always contains the primary chain when provisioning returned
// without error; Failed maps chain keys of secondary chains whose derivation
// failed to the failure reason.
type ProvisioningResult struct {
	// PrimaryAddress is the wallet address created on the primary chain.
	// Derivations on other chains manifest the same logical wallet.
	PrimaryAddress string            `json:"primary_address"`
	Succeeded      []string          `json:"succeeded"`
	Failed         map[string]string `json:"failed,omitempty"`
}

// FullyProvisioned reports whether every attempted chain succeeded.
func (r *ProvisioningResult) FullyProvisioned() bool {
	return len(r.Failed) == 0
}

// SucceededOn reports whether the wallet is present on the given chain.
func (r *ProvisioningResult) SucceededOn(chainKey string) bool {
	for _, k := range r.Succeeded {
		if k == chainKey {
			return true
		}
	}
	return false
}
