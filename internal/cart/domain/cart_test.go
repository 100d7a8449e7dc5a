package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

func testProduct(id string, price float64) catalog.Product {
	return catalog.Product{
		ID:   id,
		Name: "Product " + id,
		Slug: "product-" + id,
		Price: catalog.Price{
			Amount:   price,
			Currency: catalog.CurrencyTRY,
		},
	}
}

func TestCartAddItemIncrementsExisting(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 2)
	cart.AddItem(testProduct("p1", 100), 2)

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)
	assert.Len(t, cart.Items, 1)
}

func TestCartAddItemNonPositiveQuantityCountsAsOne(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 0)
	cart.AddItem(testProduct("p2", 50), -3)

	for _, id := range []string{"p1", "p2"} {
		item, ok := cart.Item(id)
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 3)
	cart.AddItem(testProduct("p2", 50), 1)

	cart.UpdateQuantity("p1", 0)

	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Contains("p2"))
	assert.Len(t, cart.Items, 1)
}

func TestCartUpdateQuantityOverwrites(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 3)

	cart.UpdateQuantity("p1", 7)

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 7, item.Quantity)
}

func TestCartUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 1)

	cart.UpdateQuantity("missing", 5)

	assert.Len(t, cart.Items, 1)
	assert.False(t, cart.Contains("missing"))
}

func TestCartRemoveItemAbsentIsNoop(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 1)

	cart.RemoveItem("missing")

	assert.Len(t, cart.Items, 1)
}

func TestCartClear(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 2)
	cart.AddItem(testProduct("p2", 50), 1)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartItemCountSumsQuantities(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 2)
	cart.AddItem(testProduct("p2", 50), 3)

	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartSnapshotTotal(t *testing.T) {
	cart := domain.Cart{}
	cart.AddItem(testProduct("p1", 100), 2)
	cart.AddItem(testProduct("p2", 49.90), 1)

	assert.InDelta(t, 249.90, cart.SnapshotTotal(), 0.001)
}
