package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// ToggleFavoriteCommand flips a product's favorite state for the session
type ToggleFavoriteCommand struct {
	SessionID string
	ProductID string
}

// ToggleFavoriteHandler handles the favorite toggle command
type ToggleFavoriteHandler struct {
	favorites domain.FavoritesRepository
	catalog   catalogdomain.CatalogRepository
}

// NewToggleFavoriteHandler creates a new toggle favorite handler
func NewToggleFavoriteHandler(favorites domain.FavoritesRepository, catalog catalogdomain.CatalogRepository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{favorites: favorites, catalog: catalog}
}

// Handle resolves the product, toggles it and persists the snapshot. It
// reports whether the product is favorited after the toggle.
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (bool, error) {
	product, err := h.catalog.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return false, err
	}

	favorites, err := h.favorites.Load(ctx, cmd.SessionID)
	if err != nil {
		return false, fmt.Errorf("failed to load favorites: %w", err)
	}

	favorited := favorites.Toggle(*product)

	if err := h.favorites.Save(ctx, cmd.SessionID, favorites); err != nil {
		return false, fmt.Errorf("failed to persist favorites: %w", err)
	}
	return favorited, nil
}
