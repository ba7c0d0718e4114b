package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stablecoin-payment-rail/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// LinkCache implements ports.LinkCache using Redis. It keeps the last
// payment link issued per order so the dashboard can re-fetch it without
// another rail round trip.
type LinkCache struct {
	client *goredis.Client
	prefix string
}

// NewLinkCache creates a new Redis-backed payment-link cache.
func NewLinkCache(client *goredis.Client) *LinkCache {
	return &LinkCache{
		client: client,
		prefix: "paymentlink:",
	}
}

// Set stores the link for an order with a TTL.
func (c *LinkCache) Set(ctx context.Context, orderID string, link domain.PaymentLink, ttl time.Duration) error {
	payload, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("marshal payment link: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+orderID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis link cache set: %w", err)
	}
	return nil
}

// Get retrieves the cached link for an order.
// Returns nil, nil if no link is cached.
func (c *LinkCache) Get(ctx context.Context, orderID string) (*domain.PaymentLink, error) {
	val, err := c.client.Get(ctx, c.prefix+orderID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis link cache get: %w", err)
	}

	var link domain.PaymentLink
	if err := json.Unmarshal(val, &link); err != nil {
		return nil, fmt.Errorf("unmarshal payment link: %w", err)
	}
	return &link, nil
}
