package repository

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/logger"
)

// MemoryCartRepository keeps cart snapshots in process memory. It runs the
// same snapshot codec as the Redis repository, so rehydration behaves
// identically; used when Redis is unavailable and in tests.
type MemoryCartRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{snapshots: make(map[string][]byte)}
}

func (r *MemoryCartRepository) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.RLock()
	data, ok := r.snapshots[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.Cart{}, nil
	}

	cart, err := decodeCart(data)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed cart snapshot")
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := encodeCart(cart)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.snapshots[sessionID] = data
	r.mu.Unlock()
	return nil
}
