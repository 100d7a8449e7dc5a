package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	cartrepo "github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
)

const testSession = "session-test"

func catalogProduct(id string, price float64) catalogdomain.Product {
	return catalogdomain.Product{
		ID:    id,
		Name:  "Product " + id,
		Slug:  "product-" + id,
		Price: catalogdomain.Price{Amount: price, Currency: catalogdomain.CurrencyTRY},
	}
}

func TestGetCartSummaryTotals(t *testing.T) {
	ctx := context.Background()
	catalog := catalogrepo.NewMemoryCatalogRepository([]catalogdomain.Product{
		catalogProduct("p1", 100),
		catalogProduct("p2", 50),
	}, nil, nil)
	carts := cartrepo.NewMemoryCartRepository()

	cart := cartdomain.Cart{}
	cart.AddItem(catalogProduct("p1", 100), 2)
	cart.AddItem(catalogProduct("p2", 50), 1)
	require.NoError(t, carts.Save(ctx, testSession, cart))

	summary, err := query.NewGetCartHandler(carts, catalog).Handle(ctx, query.GetCartQuery{SessionID: testSession})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ItemCount)
	assert.Len(t, summary.Items, 2)
	assert.InDelta(t, 250, summary.Total.Amount, 0.001)
	assert.Equal(t, catalogdomain.CurrencyTRY, summary.Total.Currency)
}

func TestGetCartUsesCurrentCatalogPrice(t *testing.T) {
	ctx := context.Background()
	// catalog now sells p1 at 80, the cart snapshot still says 100
	catalog := catalogrepo.NewMemoryCatalogRepository([]catalogdomain.Product{
		catalogProduct("p1", 80),
	}, nil, nil)
	carts := cartrepo.NewMemoryCartRepository()

	cart := cartdomain.Cart{}
	cart.AddItem(catalogProduct("p1", 100), 2)
	require.NoError(t, carts.Save(ctx, testSession, cart))

	summary, err := query.NewGetCartHandler(carts, catalog).Handle(ctx, query.GetCartQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.InDelta(t, 160, summary.Total.Amount, 0.001)
}

func TestGetCartFallsBackToSnapshotPriceForDelistedProduct(t *testing.T) {
	ctx := context.Background()
	catalog := catalogrepo.NewMemoryCatalogRepository([]catalogdomain.Product{
		catalogProduct("p1", 80),
	}, nil, nil)
	carts := cartrepo.NewMemoryCartRepository()

	cart := cartdomain.Cart{}
	cart.AddItem(catalogProduct("p1", 100), 1)
	cart.AddItem(catalogProduct("gone", 25), 2)
	require.NoError(t, carts.Save(ctx, testSession, cart))

	summary, err := query.NewGetCartHandler(carts, catalog).Handle(ctx, query.GetCartQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.InDelta(t, 130, summary.Total.Amount, 0.001)
}

func TestGetCartEmptySession(t *testing.T) {
	catalog := catalogrepo.NewMemoryCatalogRepository(nil, nil, nil)
	carts := cartrepo.NewMemoryCartRepository()

	summary, err := query.NewGetCartHandler(carts, catalog).Handle(context.Background(), query.GetCartQuery{SessionID: "fresh"})
	require.NoError(t, err)
	assert.Zero(t, summary.ItemCount)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total.Amount)
}
