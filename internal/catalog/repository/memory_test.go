package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
)

func TestSeededCatalog_SatisfiesContract(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.Images, "product %s must have images", p.ID)
		assert.True(t, p.Price.Currency.Valid(), "product %s currency", p.ID)
		assert.True(t, p.Stock.Status.Valid(), "product %s stock status", p.ID)
		assert.NotEmpty(t, p.Slug, "product %s slug", p.ID)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(products), count)
}

func TestMemoryCatalog_Lookups(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	want := products[0]

	byID, err := repo.FindByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *byID)

	bySlug, err := repo.FindBySlug(ctx, want.Slug)
	require.NoError(t, err)
	assert.Equal(t, want, *bySlug)

	_, err = repo.FindByID(ctx, "prd-missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.FindBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestMemoryCatalog_CategoryCounts(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category.ID]++
	}
	for _, c := range categories {
		assert.Equal(t, counts[c.ID], c.ProductCount, "category %s", c.ID)
	}
}

func TestMemoryCatalog_ListReturnsCopy(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
