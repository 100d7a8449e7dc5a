package repository

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/pkg/logger"
)

// MemoryFavoritesRepository keeps favorites snapshots in process memory.
// It runs the same snapshot codec as the Redis repository, so rehydration
// behaves identically; used when Redis is unavailable and in tests.
type MemoryFavoritesRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryFavoritesRepository() *MemoryFavoritesRepository {
	return &MemoryFavoritesRepository{snapshots: make(map[string][]byte)}
}

func (r *MemoryFavoritesRepository) Load(ctx context.Context, sessionID string) (*domain.Favorites, error) {
	r.mu.RLock()
	data, ok := r.snapshots[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.New(), nil
	}

	favorites, err := decodeFavorites(data)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed favorites snapshot")
		return domain.New(), nil
	}
	return favorites, nil
}

func (r *MemoryFavoritesRepository) Save(ctx context.Context, sessionID string, favorites *domain.Favorites) error {
	data, err := encodeFavorites(favorites)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.snapshots[sessionID] = data
	r.mu.Unlock()
	return nil
}
