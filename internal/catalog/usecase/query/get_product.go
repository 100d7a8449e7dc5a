package query

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
)

// GetProductQuery identifies a product by id or slug. ID wins when both are
// set.
type GetProductQuery struct {
	ID   string
	Slug string
}

// GetProductHandler handles single-product lookups
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the lookup. A missing product surfaces as
// domain.ErrProductNotFound, which delivery renders as a not-found state.
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID != "" {
		return h.repo.FindByID(ctx, q.ID)
	}
	return h.repo.FindBySlug(ctx, q.Slug)
}
