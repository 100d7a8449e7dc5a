package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

func favoritesWith(ids ...string) *domain.Favorites {
	f := domain.New()
	for _, id := range ids {
		f.Add(catalog.Product{
			ID:    id,
			Name:  "Product " + id,
			Price: catalog.Price{Amount: 100, Currency: catalog.CurrencyTRY},
		})
	}
	return f
}

func TestMemoryFavoritesRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFavoritesRepository()

	require.NoError(t, repo.Save(ctx, "session-a", favoritesWith("p1", "p2", "p3")))

	loaded, err := repo.Load(ctx, "session-a")
	require.NoError(t, err)

	assert.Equal(t, 3, loaded.Count())
	for _, id := range []string{"p1", "p2", "p3"} {
		assert.True(t, loaded.Contains(id))
	}
	assert.False(t, loaded.Contains("p4"))

	ids := make([]string, 0, 3)
	for _, p := range loaded.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids)
}

func TestMemoryFavoritesRepositoryUnknownSessionIsEmpty(t *testing.T) {
	repo := NewMemoryFavoritesRepository()

	loaded, err := repo.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Zero(t, loaded.Count())
}

func TestMemoryFavoritesRepositoryMalformedSnapshotYieldsEmptyList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFavoritesRepository()

	require.NoError(t, repo.Save(ctx, "session-a", favoritesWith("p1")))
	repo.mu.Lock()
	repo.snapshots["session-a"] = []byte("{not json")
	repo.mu.Unlock()

	loaded, err := repo.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Zero(t, loaded.Count())
}

func TestFavoritesSnapshotCodecRoundTrip(t *testing.T) {
	saved := favoritesWith("p1", "p2")

	data, err := encodeFavorites(saved)
	require.NoError(t, err)

	loaded, err := decodeFavorites(data)
	require.NoError(t, err)
	assert.Equal(t, saved.List(), loaded.List())
	assert.True(t, loaded.Contains("p1"))
	assert.True(t, loaded.Contains("p2"))
}
