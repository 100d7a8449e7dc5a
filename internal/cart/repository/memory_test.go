package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

func cartWith(ids ...string) domain.Cart {
	cart := domain.Cart{}
	for i, id := range ids {
		cart.AddItem(catalog.Product{
			ID:    id,
			Name:  "Product " + id,
			Price: catalog.Price{Amount: float64(i+1) * 10, Currency: catalog.CurrencyTRY},
		}, i+1)
	}
	return cart
}

func TestMemoryCartRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	saved := cartWith("p1", "p2")
	require.NoError(t, repo.Save(ctx, "session-a", saved))

	loaded, err := repo.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, saved.Items, loaded.Items)
}

func TestMemoryCartRepositoryUnknownSessionIsEmpty(t *testing.T) {
	repo := NewMemoryCartRepository()

	cart, err := repo.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryCartRepositorySessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	require.NoError(t, repo.Save(ctx, "session-a", cartWith("p1")))
	require.NoError(t, repo.Save(ctx, "session-b", cartWith("p2", "p3")))

	a, err := repo.Load(ctx, "session-a")
	require.NoError(t, err)
	b, err := repo.Load(ctx, "session-b")
	require.NoError(t, err)

	assert.Len(t, a.Items, 1)
	assert.Len(t, b.Items, 2)
}

func TestMemoryCartRepositoryMalformedSnapshotYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	require.NoError(t, repo.Save(ctx, "session-a", cartWith("p1")))
	repo.mu.Lock()
	repo.snapshots["session-a"] = []byte("{not json")
	repo.mu.Unlock()

	cart, err := repo.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartSnapshotCodecRoundTrip(t *testing.T) {
	saved := cartWith("p1", "p2", "p3")

	data, err := encodeCart(saved)
	require.NoError(t, err)

	loaded, err := decodeCart(data)
	require.NoError(t, err)
	assert.Equal(t, saved.Items, loaded.Items)
}
