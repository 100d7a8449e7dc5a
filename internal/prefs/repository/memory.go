package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tair/storefront/internal/prefs/domain"
	"github.com/tair/storefront/pkg/logger"
)

// MemoryPreferencesRepository keeps preferences in process memory through
// the same JSON codec as the Redis repository; used when Redis is
// unavailable and in tests.
type MemoryPreferencesRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryPreferencesRepository() *MemoryPreferencesRepository {
	return &MemoryPreferencesRepository{records: make(map[string][]byte)}
}

func (r *MemoryPreferencesRepository) Load(ctx context.Context, sessionID string) (domain.Preferences, error) {
	r.mu.RLock()
	data, ok := r.records[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.DefaultPreferences(), nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding malformed preferences record")
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (r *MemoryPreferencesRepository) Save(ctx context.Context, sessionID string, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.records[sessionID] = data
	r.mu.Unlock()
	return nil
}
