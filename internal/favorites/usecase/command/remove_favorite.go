package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorites/domain"
)

// RemoveFavoriteCommand unfavorites a product for the session
type RemoveFavoriteCommand struct {
	SessionID string
	ProductID string
}

// RemoveFavoriteHandler handles the remove favorite command
type RemoveFavoriteHandler struct {
	favorites domain.FavoritesRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(favorites domain.FavoritesRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{favorites: favorites}
}

// Handle removes the product from the favorites; ids that are not
// favorited are a no-op. The product is not resolved against the catalog,
// so delisted products can still be removed.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	favorites, err := h.favorites.Load(ctx, cmd.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	favorites.Remove(cmd.ProductID)

	if err := h.favorites.Save(ctx, cmd.SessionID, favorites); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
