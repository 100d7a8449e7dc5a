package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

func testProduct(id string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  "Product " + id,
		Slug:  "product-" + id,
		Price: catalog.Price{Amount: 100, Currency: catalog.CurrencyTRY},
	}
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	f := domain.New()
	f.Add(testProduct("p1"))
	f.Add(testProduct("p1"))

	assert.Equal(t, 1, f.Count())
	assert.True(t, f.Contains("p1"))
}

func TestFavoritesRemoveKeepsListAndSetInLockstep(t *testing.T) {
	f := domain.New()
	f.Add(testProduct("p1"))
	f.Add(testProduct("p2"))
	f.Add(testProduct("p3"))

	f.Remove("p2")

	assert.False(t, f.Contains("p2"))
	assert.Equal(t, 2, f.Count())

	ids := make([]string, 0, 2)
	for _, p := range f.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p3"}, ids)
}

func TestFavoritesRemoveAbsentIsNoop(t *testing.T) {
	f := domain.New()
	f.Add(testProduct("p1"))

	f.Remove("missing")

	assert.Equal(t, 1, f.Count())
}

func TestFavoritesToggleParity(t *testing.T) {
	f := domain.New()
	p := testProduct("p1")

	// odd number of toggles leaves it favorited, even removes it
	for i := 1; i <= 5; i++ {
		favorited := f.Toggle(p)
		wantFavorited := i%2 == 1
		assert.Equal(t, wantFavorited, favorited, "toggle %d", i)
		assert.Equal(t, wantFavorited, f.Contains("p1"), "toggle %d", i)
	}
}

func TestFavoritesListPreservesInsertionOrder(t *testing.T) {
	f := domain.New()
	for i := 1; i <= 4; i++ {
		f.Add(testProduct(fmt.Sprintf("p%d", i)))
	}

	list := f.List()
	require.Len(t, list, 4)
	for i, p := range list {
		assert.Equal(t, fmt.Sprintf("p%d", i+1), p.ID)
	}
}

func TestFavoritesClear(t *testing.T) {
	f := domain.New()
	f.Add(testProduct("p1"))
	f.Add(testProduct("p2"))

	f.Clear()

	assert.Zero(t, f.Count())
	assert.False(t, f.Contains("p1"))
	assert.Empty(t, f.List())
}

func TestFavoritesSnapshotRoundTrip(t *testing.T) {
	f := domain.New()
	f.Add(testProduct("p1"))
	f.Add(testProduct("p2"))
	f.Add(testProduct("p3"))

	snap := f.Snapshot()
	assert.Equal(t, []string{"p1", "p2", "p3"}, snap.FavoriteIDs)

	restored := domain.FromSnapshot(snap)
	assert.Equal(t, 3, restored.Count())
	for _, id := range []string{"p1", "p2", "p3"} {
		assert.True(t, restored.Contains(id))
	}
	assert.False(t, restored.Contains("p4"))
	assert.Equal(t, f.List(), restored.List())
}

func TestFromSnapshotRebuildsSetFromProductList(t *testing.T) {
	// a stale id list must not leak into membership after rehydration
	snap := domain.Snapshot{
		Favorites:   []catalog.Product{testProduct("p1")},
		FavoriteIDs: []string{"p1", "stale"},
	}

	restored := domain.FromSnapshot(snap)
	assert.True(t, restored.Contains("p1"))
	assert.False(t, restored.Contains("stale"))
	assert.Equal(t, 1, restored.Count())
}
