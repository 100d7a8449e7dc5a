package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

const defaultRelatedLimit = 4

// RelatedProductsQuery asks for products sharing a category with the given
// product
type RelatedProductsQuery struct {
	ProductID string
	Limit     int
}

// RelatedProductsHandler handles related-product lookups
type RelatedProductsHandler struct {
	repo domain.CatalogRepository
}

// NewRelatedProductsHandler creates a new related products handler
func NewRelatedProductsHandler(repo domain.CatalogRepository) *RelatedProductsHandler {
	return &RelatedProductsHandler{repo: repo}
}

// Handle returns up to Limit products from the same category, excluding the
// product itself, in catalog order.
func (h *RelatedProductsHandler) Handle(ctx context.Context, q RelatedProductsQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = defaultRelatedLimit
	}

	product, err := h.repo.FindByID(ctx, q.ProductID)
	if err != nil {
		return nil, err
	}

	catalog, err := h.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	related := make([]domain.Product, 0, q.Limit)
	for _, p := range catalog {
		if p.ID == product.ID || p.Category.ID != product.Category.ID {
			continue
		}
		related = append(related, p)
		if len(related) == q.Limit {
			break
		}
	}
	return related, nil
}
