package service

import (
	"context"
	"net/url"
	"time"

	"stablecoin-payment-rail/internal/chains"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/pkg/apperror"

	"github.com/rs/zerolog"
)

// linkCacheTTL bounds how long a re-fetchable link is kept per order.
const linkCacheTTL = 24 * time.Hour

// paymentLinkService implements ports.PaymentLinkService.
type paymentLinkService struct {
	rail     ports.RailClient
	registry *chains.Registry
	cache    ports.LinkCache // nil disables caching
	log      zerolog.Logger
}

// NewPaymentLinkService creates the payment-link generator.
func NewPaymentLinkService(
	rail ports.RailClient,
	registry *chains.Registry,
	cache ports.LinkCache,
	log zerolog.Logger,
) ports.PaymentLinkService {
	return &paymentLinkService{
		rail:     rail,
		registry: registry,
		cache:    cache,
		log:      log,
	}
}

// GenerateLink creates a fresh order-scoped collection wallet and asks the
// rail for a transfer link against it. Order id and amount are echoed into
// the result unchanged.
func (s *paymentLinkService) GenerateLink(ctx context.Context, order domain.Order, paymentAcceptanceWalletSetID string) (*domain.PaymentLink, error) {
	if order.ID == "" {
		return nil, apperror.Validation("order id is required")
	}
	if order.Amount == "" {
		return nil, apperror.Validation("amount is required")
	}
	if paymentAcceptanceWalletSetID == "" {
		return nil, apperror.Validation("payment acceptance wallet set id is required")
	}

	chain, ok := s.registry.Lookup(order.ChainKey)
	if !ok {
		chain = s.registry.Default()
		if order.ChainKey != "" {
			s.log.Warn().
				Str("order_id", order.ID).
				Str("requested_chain", order.ChainKey).
				Str("resolved_chain", chain.Key).
				Msg("unknown chain key, using default chain")
		}
	}

	// The wallet's refId is the only durable trace back to the order; no
	// separate mapping table exists.
	wallet, err := s.rail.CreateAccount(ctx, ports.CreateAccountRequest{
		WalletSetID: paymentAcceptanceWalletSetID,
		RefID:       "order-" + order.ID,
		Chain:       chain,
	})
	if err != nil {
		return nil, apperror.ErrRailCall("createAccount", chain.Key, err)
	}

	link, err := s.rail.GenerateTransferLink(ctx, ports.TransferLinkRequest{
		To:     *wallet,
		Amount: order.Amount,
		Token:  chain.USDCAddress,
		Chain:  chain,
	})
	if err != nil {
		return nil, apperror.ErrRailCall("generateTransferLink", chain.Key, err)
	}

	paymentLink := &domain.PaymentLink{
		WalletAddress: wallet.Address,
		OrderID:       order.ID,
		Amount:        order.Amount,
		Link:          link,
		EncodedLink:   url.QueryEscape(link),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, order.ID, *paymentLink, linkCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("payment link cache write failed")
		}
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("chain", chain.Key).
		Str("wallet_address", wallet.Address).
		Msg("payment link generated")

	return paymentLink, nil
}
