package domain

import "time"

// Merchant is the persisted onboarding record. It is created exactly once
// during onboarding and never mutated afterwards; sweep/rebalance flows that
// would touch it are future work.
type Merchant struct {
	// ID is sequential ("mer1", "mer2", ...), assigned by the repository
	// at insert time.
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	// WalletAddress is the primary-chain address of the operating wallet.
	WalletAddress string `json:"wallet_address"`
	WalletSetID   string `json:"wallet_set_id"`
	WalletSetName string `json:"wallet_set_name"`
	// Payment-acceptance set: order-scoped collection wallets are created
	// under this set, never under the operating set.
	PaymentAcceptanceWalletSetID   string    `json:"payment_acceptance_wallet_set_id"`
	PaymentAcceptanceWalletSetName string    `json:"payment_acceptance_wallet_set_name"`
	CreatedAt                      time.Time `json:"created_at"`
}
