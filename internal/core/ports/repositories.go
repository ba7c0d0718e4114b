package ports

import (
	"context"

	"stablecoin-payment-rail/internal/core/domain"
)

// MerchantRepository defines persistence operations for merchant records.
// Create is an atomic append: the repository assigns the sequential merchant
// id as part of the insert, so concurrent onboarding requests cannot observe
// a stale record count.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	List(ctx context.Context) ([]domain.Merchant, error)
}
