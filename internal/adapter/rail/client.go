// Package rail implements the HTTP client for the external payment rail.
// The rail exposes Circle-style developer-wallet primitives: wallet sets,
// per-chain wallets, transfer links and a testnet faucet.
package rail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stablecoin-payment-rail/config"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.RailClient over HTTP. Timeout policy belongs to
// the injected httpClient; callers do not impose their own.
type Client struct {
	baseURL      string
	apiKey       string
	entitySecret string
	httpClient   HTTPClient
	log          zerolog.Logger
}

// NewClient creates a rail client from config. Returns an error when the
// rail credentials are missing.
func NewClient(cfg config.RailConfig, httpClient HTTPClient, log zerolog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rail config: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		entitySecret: cfg.EntitySecret,
		httpClient:   httpClient,
		log:          log,
	}, nil
}

type walletSetEnvelope struct {
	Data struct {
		WalletSet struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"walletSet"`
	} `json:"data"`
}

type walletEnvelope struct {
	Data struct {
		Wallet struct {
			ID          string `json:"id"`
			Address     string `json:"address"`
			WalletSetID string `json:"walletSetId"`
			RefID       string `json:"refId"`
			Blockchain  string `json:"blockchain"`
		} `json:"wallet"`
	} `json:"data"`
}

type transferLinkEnvelope struct {
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
}

// CreateWalletSet creates a named wallet set on the rail.
func (c *Client) CreateWalletSet(ctx context.Context, name string) (*ports.WalletSet, error) {
	body := map[string]string{
		"name":           name,
		"idempotencyKey": uuid.New().String(),
	}

	var env walletSetEnvelope
	if err := c.post(ctx, "/walletSets", body, &env); err != nil {
		return nil, fmt.Errorf("create wallet set %q: %w", name, err)
	}

	c.log.Debug().Str("wallet_set_id", env.Data.WalletSet.ID).Str("name", name).Msg("wallet set created")
	return &ports.WalletSet{ID: env.Data.WalletSet.ID, Name: env.Data.WalletSet.Name}, nil
}

// CreateAccount creates a fresh wallet inside a wallet set on one chain.
func (c *Client) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*ports.Account, error) {
	body := map[string]string{
		"walletSetId": req.WalletSetID,
		"refId":       req.RefID,
		"blockchain":  req.Chain.Key,
	}

	var env walletEnvelope
	if err := c.post(ctx, "/wallets", body, &env); err != nil {
		return nil, fmt.Errorf("create account on %s: %w", req.Chain.Key, err)
	}

	w := env.Data.Wallet
	c.log.Debug().Str("address", w.Address).Str("chain", req.Chain.Key).Str("ref_id", req.RefID).Msg("account created")
	return &ports.Account{
		ID:          w.ID,
		Address:     w.Address,
		WalletSetID: w.WalletSetID,
		RefID:       w.RefID,
		ChainKey:    w.Blockchain,
	}, nil
}

// DeriveAccount makes an existing logical wallet present on another chain.
func (c *Client) DeriveAccount(ctx context.Context, account ports.Account, chain domain.ChainDescriptor) (*ports.Account, error) {
	body := map[string]string{
		"blockchain": chain.Key,
	}

	path := fmt.Sprintf("/wallets/%s/derive", account.ID)
	var env walletEnvelope
	if err := c.post(ctx, path, body, &env); err != nil {
		return nil, fmt.Errorf("derive account on %s: %w", chain.Key, err)
	}

	w := env.Data.Wallet
	return &ports.Account{
		ID:          w.ID,
		Address:     w.Address,
		WalletSetID: w.WalletSetID,
		RefID:       w.RefID,
		ChainKey:    w.Blockchain,
	}, nil
}

// GenerateTransferLink requests a shareable collection link for an exact
// amount of a token on one chain.
func (c *Client) GenerateTransferLink(ctx context.Context, req ports.TransferLinkRequest) (string, error) {
	body := map[string]string{
		"to":         req.To.Address,
		"amount":     req.Amount,
		"token":      req.Token,
		"blockchain": req.Chain.Key,
	}

	var env transferLinkEnvelope
	if err := c.post(ctx, "/transfers/link", body, &env); err != nil {
		return "", fmt.Errorf("generate transfer link on %s: %w", req.Chain.Key, err)
	}
	return env.Data.Link, nil
}

// Drip requests testnet funds for an account from the rail faucet.
func (c *Client) Drip(ctx context.Context, account ports.Account, chain domain.ChainDescriptor) error {
	body := map[string]string{
		"address":    account.Address,
		"blockchain": chain.Key,
	}

	if err := c.post(ctx, "/faucet/drips", body, nil); err != nil {
		return fmt.Errorf("faucet drip on %s: %w", chain.Key, err)
	}
	return nil
}

// railError is the rail's error body for non-2xx responses.
type railError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Entity-Secret", c.entitySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rail request %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read rail response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var railErr railError
		if json.Unmarshal(respBody, &railErr) == nil && railErr.Message != "" {
			return fmt.Errorf("rail %s returned %d: %s", path, resp.StatusCode, railErr.Message)
		}
		return fmt.Errorf("rail %s returned %d", path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode rail response: %w", err)
		}
	}
	return nil
}
