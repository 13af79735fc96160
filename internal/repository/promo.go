package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultPromoTTL = 90 * 24 * time.Hour

// PromoRepository remembers issued reward codes so the same code is never handed out twice
// while it is still redeemable.
type PromoRepository interface {
	Reserve(ctx context.Context, code, playerID string) (bool, error)
}

type dbPromo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPromoRepository(client *redis.Client, ttl time.Duration) PromoRepository {
	if ttl <= 0 {
		ttl = DefaultPromoTTL
	}

	return &dbPromo{
		client: client,
		ttl:    ttl,
	}
}

func promoKey(code string) string {
	return "promo:" + code
}

// Reserve returns false when the code is already taken.
func (that *dbPromo) Reserve(ctx context.Context, code, playerID string) (bool, error) {
	reserved, err := that.client.SetNX(ctx, promoKey(code), playerID, that.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve promo code: %w", err)
	}

	return reserved, nil
}
