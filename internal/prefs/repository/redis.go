package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/prefs/domain"
	"github.com/tair/storefront/pkg/logger"
)

const (
	prefsKeyPrefix = "storefront:prefs:"
	prefsTTL       = 30 * 24 * time.Hour
)

// RedisPreferencesRepository persists preferences as JSON in Redis, one
// key per session
type RedisPreferencesRepository struct {
	client *redis.Client
}

func NewRedisPreferencesRepository(client *redis.Client) *RedisPreferencesRepository {
	return &RedisPreferencesRepository{client: client}
}

// Load rehydrates the session's preferences. A missing key or a record
// that no longer parses yields the defaults, never an error to the caller
// flow.
func (r *RedisPreferencesRepository) Load(ctx context.Context, sessionID string) (domain.Preferences, error) {
	data, err := r.client.Get(ctx, prefsKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed preferences record")
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save persists the preferences before returning
func (r *RedisPreferencesRepository) Save(ctx context.Context, sessionID string, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := r.client.Set(ctx, prefsKeyPrefix+sessionID, data, prefsTTL).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
