package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/prefs/domain"
)

// SetThemeCommand stores the session's theme choice
type SetThemeCommand struct {
	SessionID string
	Theme     string
}

// SetThemeHandler handles the set theme command
type SetThemeHandler struct {
	prefs  domain.PreferencesRepository
	source domain.SchemeSource
}

// NewSetThemeHandler creates a new set theme handler
func NewSetThemeHandler(prefs domain.PreferencesRepository, source domain.SchemeSource) *SetThemeHandler {
	return &SetThemeHandler{prefs: prefs, source: source}
}

// Handle validates the theme, resolves "system" against the scheme source
// once and persists the result. Unknown themes return
// domain.ErrUnknownTheme without touching the stored state.
func (h *SetThemeHandler) Handle(ctx context.Context, cmd SetThemeCommand) (domain.Preferences, error) {
	theme, err := domain.ParseTheme(cmd.Theme)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := domain.Resolve(theme, h.source)

	if err := h.prefs.Save(ctx, cmd.SessionID, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to persist preferences: %w", err)
	}
	return prefs, nil
}
