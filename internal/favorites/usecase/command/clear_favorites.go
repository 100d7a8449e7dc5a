package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorites/domain"
)

// ClearFavoritesCommand empties the session's favorites
type ClearFavoritesCommand struct {
	SessionID string
}

// ClearFavoritesHandler handles the clear favorites command
type ClearFavoritesHandler struct {
	favorites domain.FavoritesRepository
}

// NewClearFavoritesHandler creates a new clear favorites handler
func NewClearFavoritesHandler(favorites domain.FavoritesRepository) *ClearFavoritesHandler {
	return &ClearFavoritesHandler{favorites: favorites}
}

// Handle clears and persists the empty favorites list
func (h *ClearFavoritesHandler) Handle(ctx context.Context, cmd ClearFavoritesCommand) error {
	favorites, err := h.favorites.Load(ctx, cmd.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	favorites.Clear()

	if err := h.favorites.Save(ctx, cmd.SessionID, favorites); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
