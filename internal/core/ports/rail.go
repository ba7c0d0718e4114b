package ports

import (
	"context"

	"stablecoin-payment-rail/internal/core/domain"
)

// WalletSet is a rail-side named grouping under which wallets are created.
type WalletSet struct {
	ID   string
	Name string
}

// Account is a rail-side wallet: an address bound to a wallet set and a
// chain, optionally tagged with a reference id for correlation.
type Account struct {
	ID          string
	Address     string
	WalletSetID string
	RefID       string
	ChainKey    string
}

// CreateAccountRequest creates a fresh wallet inside a wallet set.
type CreateAccountRequest struct {
	WalletSetID string
	RefID       string
	Chain       domain.ChainDescriptor
}

// TransferLinkRequest asks the rail for a shareable collection link.
type TransferLinkRequest struct {
	To     Account
	Amount string // decimal string, forwarded unparsed
	Token  string // token contract address on the target chain
	Chain  domain.ChainDescriptor
}

// RailClient is the narrow interface to the external payment rail. Calls are
// synchronous and fallible per call; creation calls are idempotent by refId
// where one is supplied. Timeout policy lives in the client implementation,
// not in the callers.
type RailClient interface {
	// CreateWalletSet creates a named wallet set and returns its opaque id.
	CreateWalletSet(ctx context.Context, name string) (*WalletSet, error)
	// CreateAccount creates a new wallet on the request's chain.
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	// DeriveAccount makes an existing logical wallet present on another
	// chain. The rail does not guarantee idempotent concurrent derivation
	// against the same account; callers must serialize.
	DeriveAccount(ctx context.Context, account Account, chain domain.ChainDescriptor) (*Account, error)
	// GenerateTransferLink returns a rail-issued URI encoding destination,
	// amount and token.
	GenerateTransferLink(ctx context.Context, req TransferLinkRequest) (string, error)
	// Drip requests testnet funds for an account. Best effort.
	Drip(ctx context.Context, account Account, chain domain.ChainDescriptor) error
}
