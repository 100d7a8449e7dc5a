package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/prefs/domain"
)

// GetPreferencesQuery fetches the session's UI preferences
type GetPreferencesQuery struct {
	SessionID string
}

// GetPreferencesHandler handles preferences queries
type GetPreferencesHandler struct {
	prefs domain.PreferencesRepository
}

// NewGetPreferencesHandler creates a new get preferences handler
func NewGetPreferencesHandler(prefs domain.PreferencesRepository) *GetPreferencesHandler {
	return &GetPreferencesHandler{prefs: prefs}
}

// Handle loads the stored preferences, falling back to the defaults for
// sessions that never chose a theme
func (h *GetPreferencesHandler) Handle(ctx context.Context, q GetPreferencesQuery) (domain.Preferences, error) {
	prefs, err := h.prefs.Load(ctx, q.SessionID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}
