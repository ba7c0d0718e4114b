package service

import (
	"context"
	"time"

	"stablecoin-payment-rail/internal/chains"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/pkg/apperror"
	"stablecoin-payment-rail/pkg/slug"

	"github.com/rs/zerolog"
)

// onboardingService implements ports.OnboardingService.
//
// The workflow is a straight line: operating wallet set -> payment-acceptance
// wallet set -> multi-chain provisioning -> single persisted record. It is
// not resumable; a failure before the persist step must be retried from the
// start by the caller, and wallet sets created before the failure are
// orphaned on the rail. That leak is an accepted cost at this onboarding
// volume, not something this service compensates for.
type onboardingService struct {
	rail         ports.RailClient
	provisioner  ports.WalletProvisioner
	merchantRepo ports.MerchantRepository
	registry     *chains.Registry
	primaryChain domain.ChainDescriptor
	log          zerolog.Logger
}

// NewOnboardingService creates the merchant onboarding workflow. Returns a
// configuration error when primaryChainKey is not a registered chain: unlike
// order-time resolution, the primary chain is operator configuration and
// must fail closed.
func NewOnboardingService(
	rail ports.RailClient,
	provisioner ports.WalletProvisioner,
	merchantRepo ports.MerchantRepository,
	registry *chains.Registry,
	primaryChainKey string,
	log zerolog.Logger,
) (ports.OnboardingService, error) {
	primary, ok := registry.Lookup(primaryChainKey)
	if !ok {
		return nil, apperror.ErrConfiguration("unknown primary chain " + primaryChainKey)
	}
	return &onboardingService{
		rail:         rail,
		provisioner:  provisioner,
		merchantRepo: merchantRepo,
		registry:     registry,
		primaryChain: primary,
		log:          log,
	}, nil
}

func (s *onboardingService) Onboard(ctx context.Context, merchantName string) (*ports.OnboardResult, error) {
	merchantSlug := slug.Make(merchantName)
	if merchantSlug == "" {
		return nil, apperror.Validation("merchant name is required")
	}

	walletSetName := merchantSlug + "-wallet-set"
	paWalletSetName := merchantSlug + "-pa-wallet-set"

	walletSet, err := s.rail.CreateWalletSet(ctx, walletSetName)
	if err != nil {
		return nil, apperror.ErrRailCall("createWalletSet", "", err)
	}

	paWalletSet, err := s.rail.CreateWalletSet(ctx, paWalletSetName)
	if err != nil {
		return nil, apperror.ErrRailCall("createWalletSet", "", err)
	}

	result, err := s.provisioner.Provision(ctx, merchantSlug, walletSet.ID, s.primaryChain, s.secondaryChains())
	if err != nil {
		return nil, err
	}

	merchant := domain.Merchant{
		Name:                           merchantName,
		Slug:                           merchantSlug,
		WalletAddress:                  result.PrimaryAddress,
		WalletSetID:                    walletSet.ID,
		WalletSetName:                  walletSetName,
		PaymentAcceptanceWalletSetID:   paWalletSet.ID,
		PaymentAcceptanceWalletSetName: paWalletSetName,
		CreatedAt:                      time.Now().UTC(),
	}
	if err := s.merchantRepo.Create(ctx, &merchant); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("merchant_id", merchant.ID).
		Str("slug", merchantSlug).
		Str("wallet_address", merchant.WalletAddress).
		Int("chains_succeeded", len(result.Succeeded)).
		Int("chains_failed", len(result.Failed)).
		Msg("merchant onboarded")

	return &ports.OnboardResult{Merchant: merchant, Chains: *result}, nil
}

// secondaryChains returns every registered chain except the primary, in
// registry order.
func (s *onboardingService) secondaryChains() []domain.ChainDescriptor {
	all := s.registry.All()
	others := make([]domain.ChainDescriptor, 0, len(all)-1)
	for _, c := range all {
		if c.Key != s.primaryChain.Key {
			others = append(others, c)
		}
	}
	return others
}
