package service

import (
	"context"
	"time"

	"stablecoin-payment-rail/config"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/pkg/apperror"

	"github.com/rs/zerolog"
)

// provisionerService implements ports.WalletProvisioner.
type provisionerService struct {
	rail        ports.RailClient
	settleDelay time.Duration
	faucet      bool
	sleep       func(time.Duration)
	log         zerolog.Logger
}

// NewWalletProvisioner creates the multi-chain wallet provisioner.
func NewWalletProvisioner(rail ports.RailClient, cfg config.ProvisionerConfig, log zerolog.Logger) ports.WalletProvisioner {
	return &provisionerService{
		rail:        rail,
		settleDelay: cfg.SettleDelay,
		faucet:      cfg.Faucet,
		sleep:       time.Sleep,
		log:         log,
	}
}

// Provision creates the merchant wallet on the primary chain, then derives
// it on every other chain in order.
//
// The fan-out is sequential on purpose: the rail does not guarantee
// idempotent concurrent derivation against the same logical account, and
// sequential execution bounds the request rate. A secondary chain's failure
// is recorded and the loop continues; only the primary creation is fatal.
func (s *provisionerService) Provision(
	ctx context.Context,
	merchantSlug, walletSetID string,
	primary domain.ChainDescriptor,
	others []domain.ChainDescriptor,
) (*domain.ProvisioningResult, error) {
	if merchantSlug == "" {
		return nil, apperror.Validation("merchant slug is required")
	}
	if walletSetID == "" {
		return nil, apperror.Validation("wallet set id is required")
	}

	account, err := s.rail.CreateAccount(ctx, ports.CreateAccountRequest{
		WalletSetID: walletSetID,
		RefID:       merchantSlug + "-wallet",
		Chain:       primary,
	})
	if err != nil {
		return nil, apperror.ErrRailCall("createAccount", primary.Key, err)
	}

	s.log.Info().
		Str("slug", merchantSlug).
		Str("address", account.Address).
		Str("chain", primary.Key).
		Int("remaining_chains", len(others)).
		Msg("primary wallet created, deriving across chains")

	result := &domain.ProvisioningResult{
		PrimaryAddress: account.Address,
		Succeeded:      []string{primary.Key},
		Failed:         map[string]string{},
	}

	for _, chain := range others {
		if _, err := s.rail.DeriveAccount(ctx, *account, chain); err != nil {
			s.log.Warn().Err(err).
				Str("slug", merchantSlug).
				Str("chain", chain.Key).
				Msg("chain derivation failed, continuing")
			result.Failed[chain.Key] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, chain.Key)
	}

	if s.faucet {
		if err := s.rail.Drip(ctx, *account, primary); err != nil {
			s.log.Warn().Err(err).Str("chain", primary.Key).Msg("faucet drip failed")
		}
	}

	// Let the rail's asynchronous replication converge before the caller
	// persists and reports the wallet as available.
	if s.settleDelay > 0 {
		s.sleep(s.settleDelay)
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result, nil
}
