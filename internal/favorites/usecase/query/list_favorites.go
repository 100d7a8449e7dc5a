package query

import (
	"context"
	"fmt"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// FavoritesView is the favorites list with its membership index, in the
// order products were favorited
type FavoritesView struct {
	Favorites   []catalogdomain.Product `json:"favorites"`
	FavoriteIDs []string                `json:"favoriteIds"`
	Count       int                     `json:"count"`
}

// ListFavoritesQuery fetches the session's favorites
type ListFavoritesQuery struct {
	SessionID string
}

// ListFavoritesHandler handles favorites list queries
type ListFavoritesHandler struct {
	favorites domain.FavoritesRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(favorites domain.FavoritesRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{favorites: favorites}
}

// Handle loads the favorites and projects them into the view
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) (FavoritesView, error) {
	favorites, err := h.favorites.Load(ctx, q.SessionID)
	if err != nil {
		return FavoritesView{}, fmt.Errorf("failed to load favorites: %w", err)
	}

	snap := favorites.Snapshot()
	return FavoritesView{
		Favorites:   snap.Favorites,
		FavoriteIDs: snap.FavoriteIDs,
		Count:       favorites.Count(),
	}, nil
}
