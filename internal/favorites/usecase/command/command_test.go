package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	favrepo "github.com/tair/storefront/internal/favorites/repository"
	"github.com/tair/storefront/internal/favorites/usecase/command"
	"github.com/tair/storefront/internal/favorites/usecase/query"
)

const testSession = "session-test"

func testCatalog() *catalogrepo.MemoryCatalogRepository {
	products := []catalogdomain.Product{
		{ID: "p1", Name: "Product 1", Slug: "product-1", Price: catalogdomain.Price{Amount: 100, Currency: catalogdomain.CurrencyTRY}},
		{ID: "p2", Name: "Product 2", Slug: "product-2", Price: catalogdomain.Price{Amount: 50, Currency: catalogdomain.CurrencyTRY}},
	}
	return catalogrepo.NewMemoryCatalogRepository(products, nil, nil)
}

func TestToggleFlipsStateAcrossLoads(t *testing.T) {
	ctx := context.Background()
	favorites := favrepo.NewMemoryFavoritesRepository()
	toggle := command.NewToggleFavoriteHandler(favorites, testCatalog())

	favorited, err := toggle.Handle(ctx, command.ToggleFavoriteCommand{SessionID: testSession, ProductID: "p1"})
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = toggle.Handle(ctx, command.ToggleFavoriteCommand{SessionID: testSession, ProductID: "p1"})
	require.NoError(t, err)
	assert.False(t, favorited)

	persisted, err := favorites.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Zero(t, persisted.Count())
}

func TestToggleUnknownProduct(t *testing.T) {
	toggle := command.NewToggleFavoriteHandler(favrepo.NewMemoryFavoritesRepository(), testCatalog())

	_, err := toggle.Handle(context.Background(), command.ToggleFavoriteCommand{
		SessionID: testSession,
		ProductID: "missing",
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestAddThenListKeepsOrder(t *testing.T) {
	ctx := context.Background()
	favorites := favrepo.NewMemoryFavoritesRepository()
	add := command.NewAddFavoriteHandler(favorites, testCatalog())

	for _, id := range []string{"p2", "p1"} {
		require.NoError(t, add.Handle(ctx, command.AddFavoriteCommand{SessionID: testSession, ProductID: id}))
	}

	view, err := query.NewListFavoritesHandler(favorites).Handle(ctx, query.ListFavoritesQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, view.FavoriteIDs)
	assert.Equal(t, 2, view.Count)
}

func TestRemoveDelistedProductStillWorks(t *testing.T) {
	ctx := context.Background()
	favorites := favrepo.NewMemoryFavoritesRepository()
	add := command.NewAddFavoriteHandler(favorites, testCatalog())
	remove := command.NewRemoveFavoriteHandler(favorites)

	require.NoError(t, add.Handle(ctx, command.AddFavoriteCommand{SessionID: testSession, ProductID: "p1"}))

	// removal does not consult the catalog, any favorited id can go
	require.NoError(t, remove.Handle(ctx, command.RemoveFavoriteCommand{SessionID: testSession, ProductID: "p1"}))

	persisted, err := favorites.Load(ctx, testSession)
	require.NoError(t, err)
	assert.False(t, persisted.Contains("p1"))
}

func TestClearFavorites(t *testing.T) {
	ctx := context.Background()
	favorites := favrepo.NewMemoryFavoritesRepository()
	add := command.NewAddFavoriteHandler(favorites, testCatalog())
	clear := command.NewClearFavoritesHandler(favorites)

	for _, id := range []string{"p1", "p2"} {
		require.NoError(t, add.Handle(ctx, command.AddFavoriteCommand{SessionID: testSession, ProductID: id}))
	}

	require.NoError(t, clear.Handle(ctx, command.ClearFavoritesCommand{SessionID: testSession}))

	check := query.NewIsFavoriteHandler(favorites)
	for _, id := range []string{"p1", "p2"} {
		favorited, err := check.Handle(ctx, query.IsFavoriteQuery{SessionID: testSession, ProductID: id})
		require.NoError(t, err)
		assert.False(t, favorited)
	}
}
