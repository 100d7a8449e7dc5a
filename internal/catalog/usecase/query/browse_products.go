package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// BrowseProductsQuery carries the user-selected browse parameters
type BrowseProductsQuery struct {
	Search   string
	Filters  domain.FilterOptions
	Sort     domain.SortOption
	Page     int
	PageSize int
}

// BrowseProductsHandler runs the list pipeline over the catalog:
// search, then filter, then sort, then paginate — strictly in that order.
type BrowseProductsHandler struct {
	repo domain.CatalogRepository
}

// NewBrowseProductsHandler creates a new browse handler
func NewBrowseProductsHandler(repo domain.CatalogRepository) *BrowseProductsHandler {
	return &BrowseProductsHandler{repo: repo}
}

// Handle executes the browse query. Parameters are normalized, never
// rejected: an unknown sort becomes featured, page numbers below 1 become 1,
// a page past the end yields an empty page.
func (h *BrowseProductsHandler) Handle(ctx context.Context, q BrowseProductsQuery) ([]domain.Product, domain.PaginationMeta, error) {
	catalog, err := h.repo.List(ctx)
	if err != nil {
		return nil, domain.PaginationMeta{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	if q.PageSize <= 0 {
		q.PageSize = domain.DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}

	result := domain.SearchProducts(catalog, q.Search)
	result = domain.FilterProducts(result, q.Filters)
	result = domain.SortProducts(result, q.Sort)
	page, meta := domain.Paginate(result, q.Page, q.PageSize)

	return page, meta, nil
}
