package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/pkg/logger"
)

const (
	favoritesKeyPrefix = "storefront:favorites:"
	favoritesTTL       = 30 * 24 * time.Hour
)

// RedisFavoritesRepository persists favorites as JSON snapshots in Redis,
// one key per session
type RedisFavoritesRepository struct {
	client *redis.Client
}

func NewRedisFavoritesRepository(client *redis.Client) *RedisFavoritesRepository {
	return &RedisFavoritesRepository{client: client}
}

// Load rehydrates the session's favorites. A missing key or a snapshot
// that no longer parses yields an empty list, never an error to the caller
// flow.
func (r *RedisFavoritesRepository) Load(ctx context.Context, sessionID string) (*domain.Favorites, error) {
	data, err := r.client.Get(ctx, favoritesKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	favorites, err := decodeFavorites(data)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed favorites snapshot")
		return domain.New(), nil
	}
	return favorites, nil
}

// Save persists the full favorites snapshot before returning
func (r *RedisFavoritesRepository) Save(ctx context.Context, sessionID string, favorites *domain.Favorites) error {
	data, err := encodeFavorites(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := r.client.Set(ctx, favoritesKeyPrefix+sessionID, data, favoritesTTL).Err(); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
