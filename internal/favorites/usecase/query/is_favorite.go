package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorites/domain"
)

// IsFavoriteQuery checks one product's favorite state for the session
type IsFavoriteQuery struct {
	SessionID string
	ProductID string
}

// IsFavoriteHandler handles favorite membership queries
type IsFavoriteHandler struct {
	favorites domain.FavoritesRepository
}

// NewIsFavoriteHandler creates a new is favorite handler
func NewIsFavoriteHandler(favorites domain.FavoritesRepository) *IsFavoriteHandler {
	return &IsFavoriteHandler{favorites: favorites}
}

// Handle reports whether the product is in the session's favorites
func (h *IsFavoriteHandler) Handle(ctx context.Context, q IsFavoriteQuery) (bool, error) {
	favorites, err := h.favorites.Load(ctx, q.SessionID)
	if err != nil {
		return false, fmt.Errorf("failed to load favorites: %w", err)
	}
	return favorites.Contains(q.ProductID), nil
}
