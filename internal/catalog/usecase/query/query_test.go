package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
)

func fixtureRepo(n int) *repository.MemoryCatalogRepository {
	categories := []domain.Category{
		{ID: "electronics", Name: "Electronics", Slug: "electronics"},
		{ID: "fashion", Name: "Fashion", Slug: "fashion"},
	}
	brands := []domain.Brand{{ID: "brand-1", Name: "Acme", Slug: "acme"}}

	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := categories[0]
		if i%2 == 0 {
			cat = categories[1]
		}
		products = append(products, domain.Product{
			ID:          fmt.Sprintf("p%02d", i),
			Slug:        fmt.Sprintf("product-%02d", i),
			Name:        fmt.Sprintf("Product %02d", i),
			Description: "fixture",
			Images:      []domain.Image{{ID: "img", URL: "https://cdn.example/img.jpg", Alt: "img"}},
			Price:       domain.Price{Amount: float64(i * 10), Currency: domain.CurrencyTRY},
			Brand:       brands[0],
			Category:    cat,
			Rating:      domain.Rating{Average: 4, Count: i},
			Stock:       domain.Stock{Available: 5, Status: domain.StockInStock},
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		})
	}
	return repository.NewMemoryCatalogRepository(products, categories, brands)
}

func TestBrowseProducts_PriceAscFirstPage(t *testing.T) {
	h := NewBrowseProductsHandler(fixtureRepo(25))

	page, meta, err := h.Handle(context.Background(), BrowseProductsQuery{
		Sort:     domain.SortPriceAsc,
		Page:     1,
		PageSize: 12,
	})

	require.NoError(t, err)
	require.Len(t, page, 12)
	for i := 1; i < len(page); i++ {
		assert.LessOrEqual(t, page[i-1].Price.Amount, page[i].Price.Amount)
	}
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

func TestBrowseProducts_NormalizesParameters(t *testing.T) {
	h := NewBrowseProductsHandler(fixtureRepo(5))

	page, meta, err := h.Handle(context.Background(), BrowseProductsQuery{
		Sort: domain.ParseSortOption("not-a-sort"),
		Page: -3,
	})

	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, domain.DefaultPageSize, meta.PageSize)
}

func TestBrowseProducts_SearchNarrowsBeforeFilter(t *testing.T) {
	h := NewBrowseProductsHandler(fixtureRepo(25))

	page, meta, err := h.Handle(context.Background(), BrowseProductsQuery{
		Search:  "Product 0",
		Filters: domain.FilterOptions{Categories: []string{"electronics"}},
		Page:    1,
	})

	require.NoError(t, err)
	// Products 01..09 match the search; the odd ones are electronics.
	assert.Equal(t, 5, meta.TotalItems)
	for _, p := range page {
		assert.Equal(t, "electronics", p.Category.ID)
	}
}

func TestGetProduct_ByIDAndSlug(t *testing.T) {
	h := NewGetProductHandler(fixtureRepo(3))
	ctx := context.Background()

	byID, err := h.Handle(ctx, GetProductQuery{ID: "p02"})
	require.NoError(t, err)
	assert.Equal(t, "product-02", byID.Slug)

	bySlug, err := h.Handle(ctx, GetProductQuery{Slug: "product-03"})
	require.NoError(t, err)
	assert.Equal(t, "p03", bySlug.ID)

	_, err = h.Handle(ctx, GetProductQuery{Slug: "missing"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRelatedProducts_SameCategoryExcludingSelf(t *testing.T) {
	h := NewRelatedProductsHandler(fixtureRepo(10))

	related, err := h.Handle(context.Background(), RelatedProductsQuery{ProductID: "p01"})

	require.NoError(t, err)
	require.Len(t, related, 4)
	for _, p := range related {
		assert.Equal(t, "electronics", p.Category.ID)
		assert.NotEqual(t, "p01", p.ID)
	}
}

func TestGetFacets_CachesAndRecomputesOnInvalidate(t *testing.T) {
	repo := fixtureRepo(6)
	h := NewGetFacetsHandlerWithWait(repo, 15*time.Millisecond)
	ctx := context.Background()

	first, err := h.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, first.Availability.InStock)
	require.NotNil(t, first.PriceRange)
	assert.Equal(t, float64(10), first.PriceRange.Min)
	assert.Equal(t, float64(60), first.PriceRange.Max)

	// A burst of invalidations coalesces; the cache still answers afterwards.
	for i := 0; i < 5; i++ {
		h.Invalidate()
	}
	require.Eventually(t, func() bool {
		facets, err := h.Handle(ctx)
		return err == nil && facets.Availability.InStock == 6
	}, time.Second, 10*time.Millisecond)
}
