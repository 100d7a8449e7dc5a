package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartrepo "github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/command"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
)

const testSession = "session-test"

func testCatalog() *catalogrepo.MemoryCatalogRepository {
	products := []catalogdomain.Product{
		{
			ID:    "p1",
			Name:  "Product 1",
			Slug:  "product-1",
			Price: catalogdomain.Price{Amount: 100, Currency: catalogdomain.CurrencyTRY},
		},
		{
			ID:    "p2",
			Name:  "Product 2",
			Slug:  "product-2",
			Price: catalogdomain.Price{Amount: 49.90, Currency: catalogdomain.CurrencyTRY},
		},
	}
	return catalogrepo.NewMemoryCatalogRepository(products, nil, nil)
}

func TestAddItemPersistsAndIncrements(t *testing.T) {
	ctx := context.Background()
	carts := cartrepo.NewMemoryCartRepository()
	handler := command.NewAddItemHandler(carts, testCatalog())

	_, err := handler.Handle(ctx, command.AddItemCommand{
		SessionID: testSession,
		ProductID: "p1",
		Quantity:  2,
	})
	require.NoError(t, err)

	cart, err := handler.Handle(ctx, command.AddItemCommand{
		SessionID: testSession,
		ProductID: "p1",
		Quantity:  2,
	})
	require.NoError(t, err)

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)

	persisted, err := carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, cart.Items, persisted.Items)
}

func TestAddItemUnknownProduct(t *testing.T) {
	handler := command.NewAddItemHandler(cartrepo.NewMemoryCartRepository(), testCatalog())

	_, err := handler.Handle(context.Background(), command.AddItemCommand{
		SessionID: testSession,
		ProductID: "missing",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	ctx := context.Background()
	carts := cartrepo.NewMemoryCartRepository()
	add := command.NewAddItemHandler(carts, testCatalog())
	update := command.NewUpdateQuantityHandler(carts)

	_, err := add.Handle(ctx, command.AddItemCommand{SessionID: testSession, ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	cart, err := update.Handle(ctx, command.UpdateQuantityCommand{
		SessionID: testSession,
		ProductID: "p1",
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.False(t, cart.Contains("p1"))

	persisted, err := carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, persisted.Items)
}

func TestRemoveItemKeepsOtherLines(t *testing.T) {
	ctx := context.Background()
	carts := cartrepo.NewMemoryCartRepository()
	add := command.NewAddItemHandler(carts, testCatalog())
	remove := command.NewRemoveItemHandler(carts)

	for _, id := range []string{"p1", "p2"} {
		_, err := add.Handle(ctx, command.AddItemCommand{SessionID: testSession, ProductID: id, Quantity: 1})
		require.NoError(t, err)
	}

	cart, err := remove.Handle(ctx, command.RemoveItemCommand{SessionID: testSession, ProductID: "p1"})
	require.NoError(t, err)
	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Contains("p2"))
}

func TestClearCartEmptiesSession(t *testing.T) {
	ctx := context.Background()
	carts := cartrepo.NewMemoryCartRepository()
	add := command.NewAddItemHandler(carts, testCatalog())
	clear := command.NewClearCartHandler(carts)

	_, err := add.Handle(ctx, command.AddItemCommand{SessionID: testSession, ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, clear.Handle(ctx, command.ClearCartCommand{SessionID: testSession}))

	persisted, err := carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, persisted.Items)
}
