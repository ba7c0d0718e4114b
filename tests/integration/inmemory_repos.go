package integration

import (
	"context"
	"fmt"
	"sync"

	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
)

// --- In-Memory Merchant Repo ---

// inMemoryMerchantRepo mirrors the postgres repo's contract: Create assigns
// the next sequential merchant id atomically under the lock.
type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	seq       int
	merchants []domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = fmt.Sprintf("mer%d", r.seq)
	r.merchants = append(r.merchants, *m)
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.merchants {
		if r.merchants[i].ID == id {
			m := r.merchants[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Merchant, len(r.merchants))
	copy(out, r.merchants)
	return out, nil
}

// --- Fake Rail Client ---

// fakeRail is a deterministic stand-in for the external payment rail. Every
// created resource gets a sequential id; derivations fail for chains listed
// in failChains.
type fakeRail struct {
	mu         sync.Mutex
	failChains map[string]bool
	walletSets int
	wallets    int
	drips      int
}

func newFakeRail(failChains ...string) *fakeRail {
	f := &fakeRail{failChains: make(map[string]bool)}
	for _, c := range failChains {
		f.failChains[c] = true
	}
	return f
}

func (f *fakeRail) CreateWalletSet(ctx context.Context, name string) (*ports.WalletSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.walletSets++
	return &ports.WalletSet{ID: fmt.Sprintf("ws-%d", f.walletSets), Name: name}, nil
}

func (f *fakeRail) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*ports.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failChains[req.Chain.Key] {
		return nil, fmt.Errorf("chain %s unavailable", req.Chain.Key)
	}
	f.wallets++
	return &ports.Account{
		ID:          fmt.Sprintf("w-%d", f.wallets),
		Address:     fmt.Sprintf("0xwallet%04d", f.wallets),
		WalletSetID: req.WalletSetID,
		RefID:       req.RefID,
		ChainKey:    req.Chain.Key,
	}, nil
}

func (f *fakeRail) DeriveAccount(ctx context.Context, account ports.Account, chain domain.ChainDescriptor) (*ports.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failChains[chain.Key] {
		return nil, fmt.Errorf("chain %s unavailable", chain.Key)
	}
	derived := account
	derived.ChainKey = chain.Key
	return &derived, nil
}

func (f *fakeRail) GenerateTransferLink(ctx context.Context, req ports.TransferLinkRequest) (string, error) {
	return fmt.Sprintf("https://rail.test/pay?address=%s&amount=%s&token=%s&chain=%s",
		req.To.Address, req.Amount, req.Token, req.Chain.Key), nil
}

func (f *fakeRail) Drip(ctx context.Context, account ports.Account, chain domain.ChainDescriptor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drips++
	return nil
}
