package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// AddFavoriteCommand favorites a catalog product for the session
type AddFavoriteCommand struct {
	SessionID string
	ProductID string
}

// AddFavoriteHandler handles the add favorite command
type AddFavoriteHandler struct {
	favorites domain.FavoritesRepository
	catalog   catalogdomain.CatalogRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(favorites domain.FavoritesRepository, catalog catalogdomain.CatalogRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{favorites: favorites, catalog: catalog}
}

// Handle resolves the product and adds it to the favorites. Adding an
// already favorited product is a no-op.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
	product, err := h.catalog.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return err
	}

	favorites, err := h.favorites.Load(ctx, cmd.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	favorites.Add(*product)

	if err := h.favorites.Save(ctx, cmd.SessionID, favorites); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
