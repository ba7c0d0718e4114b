package ports

import (
	"context"
	"time"

	"stablecoin-payment-rail/internal/core/domain"
)

// WalletProvisioner creates a merchant's primary wallet and derives its
// presence on every other registered chain, best effort.
type WalletProvisioner interface {
	// Provision creates the primary wallet on primary (fatal on failure),
	// then sequentially derives the same logical wallet on each of others.
	// Secondary failures are recorded in the result, never returned as an
	// error; a settle delay is applied after the fan-out completes.
	Provision(ctx context.Context, merchantSlug, walletSetID string, primary domain.ChainDescriptor, others []domain.ChainDescriptor) (*domain.ProvisioningResult, error)
}

// OnboardingService runs the merchant-setup use case.
type OnboardingService interface {
	Onboard(ctx context.Context, merchantName string) (*OnboardResult, error)
}

// OnboardResult pairs the persisted merchant with the multi-chain footprint
// so callers can see which derivations need out-of-band reconciliation.
type OnboardResult struct {
	Merchant domain.Merchant
	Chains   domain.ProvisioningResult
}

// PaymentLinkService creates order-scoped collection wallets and links.
type PaymentLinkService interface {
	GenerateLink(ctx context.Context, order domain.Order, paymentAcceptanceWalletSetID string) (*domain.PaymentLink, error)
}

// LinkCache stores the last link issued per order so the dashboard can
// re-fetch it without another rail round trip. Misses return nil, nil.
type LinkCache interface {
	Set(ctx context.Context, orderID string, link domain.PaymentLink, ttl time.Duration) error
	Get(ctx context.Context, orderID string) (*domain.PaymentLink, error)
}
