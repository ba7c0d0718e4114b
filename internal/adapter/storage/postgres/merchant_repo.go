package postgres

import (
	"context"
	"errors"
	"fmt"

	"stablecoin-payment-rail/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
//
// Merchant ids are sequential ("mer1", "mer2", ...). The id is derived from
// a bigserial inside the INSERT itself, so assigning the next id and
// appending the record is a single atomic statement — concurrent onboarding
// requests cannot race on a stale record count.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant and assigns its sequential id.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants
			(name, slug, wallet_address, wallet_set_id, wallet_set_name,
			 payment_acceptance_wallet_set_id, payment_acceptance_wallet_set_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING 'mer' || seq`

	err := r.pool.QueryRow(ctx, query,
		m.Name, m.Slug, m.WalletAddress, m.WalletSetID, m.WalletSetName,
		m.PaymentAcceptanceWalletSetID, m.PaymentAcceptanceWalletSetName, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its sequential id. Returns nil, nil when the
// merchant does not exist.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := `SELECT 'mer' || seq, name, slug, wallet_address, wallet_set_id, wallet_set_name,
			payment_acceptance_wallet_set_id, payment_acceptance_wallet_set_name, created_at
		FROM merchants WHERE 'mer' || seq = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Slug, &m.WalletAddress, &m.WalletSetID, &m.WalletSetName,
		&m.PaymentAcceptanceWalletSetID, &m.PaymentAcceptanceWalletSetName, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// List returns all merchants in onboarding order.
func (r *MerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	query := `SELECT 'mer' || seq, name, slug, wallet_address, wallet_set_id, wallet_set_name,
			payment_acceptance_wallet_set_id, payment_acceptance_wallet_set_name, created_at
		FROM merchants ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Slug, &m.WalletAddress, &m.WalletSetID, &m.WalletSetName,
			&m.PaymentAcceptanceWalletSetID, &m.PaymentAcceptanceWalletSetName, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merchants: %w", err)
	}
	return merchants, nil
}
