package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/logger"
)

const (
	cartKeyPrefix = "storefront:cart:"
	cartTTL       = 30 * 24 * time.Hour
)

// RedisCartRepository persists carts as JSON snapshots in Redis, one key
// per session
type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

// Load rehydrates the session's cart. A missing key or a snapshot that no
// longer parses yields an empty cart, never an error to the caller flow.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	cart, err := decodeCart(data)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed cart snapshot")
		return domain.Cart{}, nil
	}
	return cart, nil
}

// Save persists the full cart snapshot before returning
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+sessionID, data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
